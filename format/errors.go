package format

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferSize is returned when a buffer does not match the fixed size
	// of the structure being decoded.
	ErrBufferSize = errors.New("buffer size mismatch")

	// ErrItemSize is returned for an IndexItem size other than 12 or 20.
	ErrItemSize = errors.New("unsupported index item size")

	// ErrReserved is returned when the reserved word of a summary is not zero.
	ErrReserved = errors.New("reserved field is not zero")

	// ErrOffsetOverflow is returned when an item offset does not fit in int64.
	ErrOffsetOverflow = errors.New("item offset overflows")
)

// ParseError describes a structure that could not be decoded.
type ParseError struct {
	Struct string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Struct, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func checkSize(name string, b []byte, want int) error {
	if len(b) != want {
		return &ParseError{
			Struct: name,
			Err:    fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(b), want),
		}
	}

	return nil
}
