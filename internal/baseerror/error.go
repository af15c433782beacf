package baseerror

// Error is an error kind that may descend from a parent kind. Matching a
// child with errors.Is against any of its ancestors succeeds, which allows
// callers to test for a whole family of errors at once.
type Error struct {
	parent error
	msg    string
}

func New(msg string) *Error {
	return &Error{msg: msg}
}

// New derives a child kind. The message of the child is prefixed with the
// message of the parent, so that "protorecord: short read" reads naturally.
func (err *Error) New(msg string) *Error {
	return &Error{
		parent: err,
		msg:    err.msg + ": " + msg,
	}
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.parent
}
