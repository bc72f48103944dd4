package testutil

import (
	"errors"
	"io"
	"sync"
)

// ErrInjected is the error returned by the fault-injecting readers and writers.
var ErrInjected = errors.New("testutil: injected I/O failure")

// ErrWriter accepts a fixed number of writes and then fails.
//
// Successful writes are captured and available through String().
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ErrWriter struct {
	mu    sync.Mutex
	after int
	calls int
	buf   []byte
	err   error
}

// NewErrWriter creates a writer that fails on write number after+1.
//
// NewErrWriter(0) fails on the first write.
func NewErrWriter(after int) *ErrWriter {
	return &ErrWriter{after: after, err: ErrInjected}
}

// Write implements io.Writer.
func (w *ErrWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls > w.after {
		return 0, w.err
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Calls returns how many times Write was called, failed calls included.
func (w *ErrWriter) Calls() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

// String returns everything written before the failure.
func (w *ErrWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.buf)
}

// ErrReader yields data and then fails with ErrInjected instead of io.EOF.
type ErrReader struct {
	data []byte
}

// NewErrReader creates a reader over data that fails once data is drained.
func NewErrReader(data string) *ErrReader {
	return &ErrReader{data: []byte(data)}
}

// Read implements io.Reader.
func (r *ErrReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, ErrInjected
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

var (
	_ io.Writer = (*ErrWriter)(nil)
	_ io.Reader = (*ErrReader)(nil)
)
