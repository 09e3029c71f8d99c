package utils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const debugFlags = log.Ldate | log.Ltime | log.Lmicroseconds

// NewDebugLogger opens filename in append mode and returns a logger writing to
// it. The caller owns the returned closer.
func NewDebugLogger(filename string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewDebugLogger] unable to create debug log file: %+v", filename)
	}
	return log.New(f, "debug ", debugFlags), f, nil
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
