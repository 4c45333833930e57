// Package console provides the leveled console logger shared by the generator and the CLI.
package console

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is the process-wide console logger.
var Logger = New(os.Stdout)

// Console writes Info messages always and Debug messages when DebugLevel > 0.
type Console struct {
	DebugLevel int
	out        *log.Logger
}

// New creates a Console writing to w.
func New(w io.Writer) *Console {
	return &Console{out: log.New(w, "", log.LstdFlags)}
}

// SetOutput redirects the console, e.g. to io.Discard for quiet runs.
func (c *Console) SetOutput(w io.Writer) {
	c.out.SetOutput(w)
}

// Printf implements the gen.Debugger interface.
func (c *Console) Printf(format string, v ...interface{}) {
	c.out.Output(2, fmt.Sprintf(format, v...))
}

// Info logs a message unconditionally.
func (c *Console) Info(format string, v ...interface{}) {
	c.out.Output(2, fmt.Sprintf(format, v...))
}

// Debug logs a message when debugging is enabled.
func (c *Console) Debug(format string, v ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	c.out.Output(2, "[debug] "+fmt.Sprintf(format, v...))
}
