package trace

import (
	"os"

	"github.com/pkg/errors"
)

// fileLogger receives the tracer's own diagnostics, which would
// otherwise interleave with the rendered table on stderr.
type fileLogger struct {
	file *os.File
}

func newFileLogger(path string) (*fileLogger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "opening trace log")
	}

	return &fileLogger{
		file: file,
	}, nil
}

func (l *fileLogger) Log(msg string) {
	l.file.WriteString(msg)
	l.file.WriteString("\n")
}

func (l *fileLogger) Close() error {
	return l.file.Close()
}
