package trace

import (
	"fmt"
	"os"
)

// DatadogLogger receives the tracer's own log lines so that they do
// not interleave with the prompts on stdout and stderr.
type DatadogLogger struct {
	file *os.File
}

// NewDatadogLogger creates (or truncates) the tracer log file.
func NewDatadogLogger(filename string) (*DatadogLogger, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("creating trace log: %w", err)
	}

	return &DatadogLogger{
		file: file,
	}, nil
}

// Log implements ddtrace.Logger.
func (l *DatadogLogger) Log(msg string) {
	l.file.WriteString(msg)
	l.file.WriteString("\n")
}

func (l *DatadogLogger) Close() error {
	return l.file.Close()
}
