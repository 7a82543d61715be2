package stress

import (
	"bytes"
	"encoding/json"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

// WriteReport writes res as indented JSON to path. Readers of path see
// either the previous report or the complete new one.
func WriteReport(path string, res Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	data = append(data, '\n')

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, "write report %s", path)
	}

	return nil
}
