package storage

import "fmt"

// Error reports a failure of the backing store: opening the file,
// creating the schema, or running a query.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err as an *Error for op, or nil if err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
