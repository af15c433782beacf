package binario

import (
	"encoding/binary"
)

// Writer appends fixed-width unsigned integers to a byte slice.
type Writer struct {
	byteOrder binary.AppendByteOrder
	buf       []byte
}

// NewWriter returns a writer that appends to buf. Pass buf[:0] to reuse
// an existing allocation.
func NewWriter(buf []byte, byteOrder binary.AppendByteOrder) *Writer {
	return &Writer{
		buf:       buf,
		byteOrder: byteOrder,
	}
}

func (w *Writer) WriteUint8(value uint8) {
	w.buf = append(w.buf, value)
}

func (w *Writer) WriteUint16(value uint16) {
	w.buf = w.byteOrder.AppendUint16(w.buf, value)
}

func (w *Writer) WriteUint32(value uint32) {
	w.buf = w.byteOrder.AppendUint32(w.buf, value)
}

func (w *Writer) WriteUint64(value uint64) {
	w.buf = w.byteOrder.AppendUint64(w.buf, value)
}

// Bytes returns the accumulated slice.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}
