//go:build linux || darwin || freebsd || netbsd || openbsd

package stress

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// peakRSSKiB returns the process's maximum resident set size in KiB, or 0
// if it cannot be read.
func peakRSSKiB() int64 {
	var ru unix.Rusage

	err := unix.Getrusage(unix.RUSAGE_SELF, &ru)
	if err != nil {
		return 0
	}

	// Darwin reports bytes; the BSDs and Linux report KiB.
	if runtime.GOOS == "darwin" {
		return int64(ru.Maxrss) / 1024
	}

	return int64(ru.Maxrss)
}
