package binario

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader(t *testing.T) {
	w := NewWriter(nil, binary.LittleEndian)
	w.WriteUint8(math.MaxUint8)
	w.WriteUint16(0x0102)
	w.WriteUint32(math.MaxUint32)
	w.WriteUint64(math.MaxUint64)

	require.Equal(t, 15, w.Len())

	r := NewReader(w.Bytes(), binary.LittleEndian)
	assert.Equal(t, uint8(math.MaxUint8), r.ReadUint8())
	assert.Equal(t, uint16(0x0102), r.ReadUint16())
	assert.Equal(t, uint32(math.MaxUint32), r.ReadUint32())
	assert.Equal(t, uint64(math.MaxUint64), r.ReadUint64())
	assert.Equal(t, 0, r.Remaining())
	assert.NoError(t, r.Err())
}

func TestWriter_LittleEndianLayout(t *testing.T) {
	w := NewWriter(make([]byte, 0, 4), binary.LittleEndian)
	w.WriteUint32(0x04030201)
	assert.Equal(t, []byte{1, 2, 3, 4}, w.Bytes())
}

func TestReader_ShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, binary.LittleEndian)

	assert.Equal(t, uint16(0x0201), r.ReadUint16())
	assert.Equal(t, uint32(0), r.ReadUint32())
	assert.True(t, errors.Is(r.Err(), io.ErrUnexpectedEOF))

	// Further reads keep failing even if they would fit.
	assert.Equal(t, uint8(0), r.ReadUint8())
	assert.Equal(t, 1, r.Remaining())
}
