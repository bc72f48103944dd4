// Package responder implements the line responder: for every line read from
// an input stream it writes one fixed response line to an output stream.
//
// The responder is a two-state machine:
//
//	Reading --line--> Reading   (consume the line, write the response)
//	Reading --EOF---> Done      (terminal: no further reads or writes)
//
// A line is terminated by '\n'. A preceding '\r' belongs to the terminator.
// A final segment without a terminator still counts as a line, and lines of
// any length are accepted.
//
// The response never depends on line content, only on the line existing.
// Output is written before the next read, so each response is visible to a
// pipe consumer as soon as its input line has been consumed.
package responder
