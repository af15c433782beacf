package binario

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader reads fixed-width unsigned integers from a byte slice. The first read
// that runs past the end of the slice is remembered, and every later read
// returns zero, so a sequence of reads needs a single Err check at the end.
type Reader struct {
	byteOrder binary.ByteOrder
	buf       []byte
	off       int
	err       error
}

func NewReader(buf []byte, byteOrder binary.ByteOrder) *Reader {
	return &Reader{
		buf:       buf,
		byteOrder: byteOrder,
	}
}

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}

	if len(r.buf)-r.off < n {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			io.ErrUnexpectedEOF, n, r.off, len(r.buf)-r.off)
		return nil
	}

	b := r.buf[r.off : r.off+n]
	r.off += n

	return b
}

func (r *Reader) ReadUint8() uint8 {
	if b := r.next(1); b != nil {
		return b[0]
	}

	return 0
}

func (r *Reader) ReadUint16() uint16 {
	if b := r.next(2); b != nil {
		return r.byteOrder.Uint16(b)
	}

	return 0
}

func (r *Reader) ReadUint32() uint32 {
	if b := r.next(4); b != nil {
		return r.byteOrder.Uint32(b)
	}

	return 0
}

func (r *Reader) ReadUint64() uint64 {
	if b := r.next(8); b != nil {
		return r.byteOrder.Uint64(b)
	}

	return 0
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) Err() error {
	return r.err
}
