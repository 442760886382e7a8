package util

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

// TryWriteAtomic replaces filename with contents, atomically where the
// platform allows it and with a plain write otherwise.
func TryWriteAtomic(filename string, contents []byte) error {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0666); err2 != nil {
			return errors.Wrapf(err1, "%s (on non-atomic retry: %s)", filename, err2)
		}
	}
	return nil
}

// FileExists reports whether filename exists, dying on any error other
// than the file being missing.
func FileExists(filename string) bool {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false
	} else if err != nil {
		Die("%s: %s", filename, err)
		return false
	} else {
		return true
	}
}
