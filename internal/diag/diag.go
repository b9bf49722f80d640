// Package diag implements AtomC's single-diagnostic error discipline.
//
// Spec §7 allows exactly one fatal diagnostic per run: lexing, parsing,
// domain analysis, and type analysis all raise through Fatalf, which never
// returns. The call is caught once, at the top of Compile, with Catch — the
// same bailout-via-panic shape go/parser and the teacher's hand-written
// recursive-descent parser both use to avoid threading an error return
// through every grammar production.
package diag

import "fmt"

// Error is a single fatal compiler diagnostic: a line number and a message.
// It never carries more than one error — AtomC does not recover.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("error in line %d: %s", e.Line, e.Message)
}

// fatal is the payload Fatalf panics with; Catch recognises only this type
// and lets any other panic propagate (a real bug, not a diagnostic).
type fatal struct{ err *Error }

// Fatalf raises the current line as a fatal compiler diagnostic. It never
// returns to its caller.
func Fatalf(line int, format string, args ...any) {
	panic(fatal{&Error{Line: line, Message: fmt.Sprintf(format, args...)}})
}

// Catch runs fn and converts a Fatalf panic raised anywhere underneath it
// into a returned *Error. A non-diagnostic panic is re-raised unchanged.
func Catch(fn func()) (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(fatal); ok {
				err = f.err
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
