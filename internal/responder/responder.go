package responder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Response is the text written for every input line.
const Response = "Hello World!"

// State is the responder's position in its read loop.
type State int

const (
	// Reading means another line may still be read.
	Reading State = iota
	// Done is terminal. It is entered at end-of-stream or after an I/O error.
	Done
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Respond returns the response for a single line. The result is the same
// for every input, including the empty string.
func Respond(line string) string {
	return Response
}

// Responder answers each line of in with one line on out.
//
// A Responder is not safe for concurrent use.
type Responder struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	hook   func(seq int64, line string)
	state  State
	lines  int64
}

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets the logger used for per-line debug events.
// Without it the responder logs to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Responder) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLineHook registers fn to be called after each line is answered, with
// the line's 1-based sequence number and its content.
func WithLineHook(fn func(seq int64, line string)) Option {
	return func(r *Responder) {
		r.hook = fn
	}
}

// New creates a Responder in the Reading state.
func New(in io.Reader, out io.Writer, opts ...Option) *Responder {
	r := &Responder{
		in:     bufio.NewReader(in),
		out:    out,
		logger: slog.Default(),
		state:  Reading,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current state.
func (r *Responder) State() State {
	return r.state
}

// Lines returns how many lines have been answered so far.
func (r *Responder) Lines() int64 {
	return r.lines
}

// Step performs one transition. It returns true if a line was consumed and
// answered, false once the responder is Done. Calling Step in the Done state
// is a no-op returning (false, nil).
func (r *Responder) Step() (bool, error) {
	if r.state == Done {
		return false, nil
	}

	line, ok, err := r.readLine()
	if err != nil {
		r.state = Done
		return false, fmt.Errorf("read line %d: %w", r.lines+1, err)
	}
	if !ok {
		r.state = Done
		return false, nil
	}

	if _, err := io.WriteString(r.out, Respond(line)+"\n"); err != nil {
		r.state = Done
		return false, fmt.Errorf("write response %d: %w", r.lines+1, err)
	}
	r.lines++
	r.logger.Debug("line answered", "seq", r.lines, "bytes", len(line))
	if r.hook != nil {
		r.hook(r.lines, line)
	}
	return true, nil
}

// Run steps until end-of-stream. It returns nil when input is exhausted and
// the first read or write error otherwise.
func (r *Responder) Run() error {
	for {
		ok, err := r.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. ok is false at
// end-of-stream.
func (r *Responder) readLine() (line string, ok bool, err error) {
	s, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		// Unterminated final segment.
		if s == "" {
			return "", false, nil
		}
		return s, true, nil
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// Run answers every line of in on out until end-of-stream.
func Run(in io.Reader, out io.Writer) error {
	return New(in, out).Run()
}
