package swish

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// Sink receives one formatted log line per call. Sinks append their own
// line terminator. The hook does not serialize calls.
type Sink func(line string)

// Stdout writes lines to standard output. Escape codes are translated on
// consoles that do not understand them.
func Stdout() Sink {
	return WriterSink(colorable.NewColorableStdout())
}

// WriterSink writes each line followed by a newline to w.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

// ZerologSink emits each line as the message of an info event on l.
func ZerologSink(l zerolog.Logger) Sink {
	return func(line string) {
		l.Info().Msg(line)
	}
}
