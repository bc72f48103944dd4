package harness

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/hello/internal/responder"
)

// Run executes a test scenario and returns the result.
//
// The returned error is non-nil only when the responder itself fails.
// Unmet expectations are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	result := NewResult()
	out := &bytes.Buffer{}

	r := responder.New(strings.NewReader(scenario.Input), out,
		responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		responder.WithLineHook(func(seq int64, line string) {
			result.AddTrace(seq, line, responder.Respond(line))
		}),
	)
	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	result.Output = out.String()

	checkProperties(scenario, result)
	checkExpectation(scenario.Expect, result)

	return result, nil
}

// checkProperties validates what must hold for every input.
func checkProperties(s *Scenario, result *Result) {
	lines := splitOutput(result.Output)
	want := CountLines(s.Input)

	if len(lines) != want {
		result.AddError("output has %d lines, input has %d", len(lines), want)
	}
	for i, line := range lines {
		if line != responder.Response {
			result.AddError("output line %d: got %q, want %q", i+1, line, responder.Response)
		}
	}
	for i, ev := range result.Trace {
		if ev.Seq != int64(i+1) {
			result.AddError("trace event %d has seq %d", i+1, ev.Seq)
		}
	}
}

func checkExpectation(e *Expectation, result *Result) {
	if e == nil {
		return
	}
	if e.Lines != nil {
		if got := len(splitOutput(result.Output)); got != *e.Lines {
			result.AddError("expected %d output lines, got %d", *e.Lines, got)
		}
	}
	if e.Output != nil && *e.Output != result.Output {
		result.AddError("output mismatch: got %q, want %q", result.Output, *e.Output)
	}
}

// CountLines returns how many lines the input stream holds: one per '\n',
// plus one for a non-empty unterminated tail.
func CountLines(input string) int {
	n := strings.Count(input, "\n")
	if input != "" && !strings.HasSuffix(input, "\n") {
		n++
	}
	return n
}

// splitOutput splits newline-terminated output into lines.
func splitOutput(out string) []string {
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
