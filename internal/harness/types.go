package harness

import "fmt"

// TraceEvent records one answered line.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Output is everything the responder wrote.
	Output string `json:"output"`

	// Trace contains one event per answered line, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// AddTrace appends a trace event.
func (r *Result) AddTrace(seq int64, input, output string) {
	r.Trace = append(r.Trace, TraceEvent{Seq: seq, Input: input, Output: output})
}
