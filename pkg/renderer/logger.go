package renderer

import (
	"fmt"
	"os"

	"github.com/mario007/mc-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// Printf writes a formatted line to stdout.
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// NewDefaultLogger creates a stdout-backed logger.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NopLogger implements core.Logger by discarding everything, for tests
// that don't want rendering progress on stdout.
type NopLogger struct{}

// Printf discards its arguments.
func (l *NopLogger) Printf(format string, args ...interface{}) {}
