package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newLogger builds the stderr logger for one process run. Every record
// carries a run_id so interleaved runs can be told apart in shared logs.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler).With("run_id", newRunID())
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

var printer = message.NewPrinter(language.English)

// formatCount renders n with digit grouping and a naive plural,
// e.g. "1 line", "12,345 lines".
func formatCount(n int64, noun string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, noun)
	}
	return printer.Sprintf("%d %ss", n, noun)
}
