// Package injector performs the actual input injection. The rest of the
// program depends only on the two capabilities below, never on the
// underlying automation libraries.
package injector

// Injector injects synthetic user input into the running session.
type Injector interface {
	// MovePointer moves the pointer by the given relative offset.
	MovePointer(dx, dy int) error
	// SendKey taps a single key identified by name (e.g. "f15").
	SendKey(key string) error
}

// Error wraps a failure from the underlying input backend.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "inject " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
