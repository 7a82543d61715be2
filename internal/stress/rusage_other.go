//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package stress

func peakRSSKiB() int64 { return 0 }
