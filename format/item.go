package format

import (
	"fmt"

	"github.com/maxpoletaev/protorecord/internal/binario"
)

// IndexItem locates one payload in the data file.
type IndexItem struct {
	Offset uint64
	Size   uint32
	// Timestamp is the number of microseconds since the recording start.
	// Always zero in logs without timestamps.
	Timestamp uint64
}

// End returns the offset of the first byte after the payload.
func (it IndexItem) End() uint64 {
	return it.Offset + uint64(it.Size)
}

func validItemSize(itemSize uint32) bool {
	return itemSize == IndexItemSizeTimestamp || itemSize == IndexItemSizeNoTimestamp
}

// CheckItemSize returns a ParseError unless itemSize is one of the two sizes
// an IndexItem can be encoded with.
func CheckItemSize(itemSize uint32) error {
	if !validItemSize(itemSize) {
		return &ParseError{
			Struct: "IndexItem",
			Err:    fmt.Errorf("%w: %d", ErrItemSize, itemSize),
		}
	}

	return nil
}

// AppendIndexItem appends the item encoded with the given item size to dst.
// A non-zero timestamp cannot be encoded into a 12-byte item.
func AppendIndexItem(dst []byte, item IndexItem, itemSize uint32) ([]byte, error) {
	if !validItemSize(itemSize) {
		return dst, fmt.Errorf("%w: %d", ErrItemSize, itemSize)
	}

	if itemSize == IndexItemSizeNoTimestamp && item.Timestamp != 0 {
		return dst, fmt.Errorf("timestamp %d does not fit into a %d-byte item", item.Timestamp, itemSize)
	}

	w := binario.NewWriter(dst, byteOrder)
	w.WriteUint64(item.Offset)
	w.WriteUint32(item.Size)

	if itemSize == IndexItemSizeTimestamp {
		w.WriteUint64(item.Timestamp)
	}

	return w.Bytes(), nil
}

func EncodeIndexItem(item IndexItem, itemSize uint32) ([]byte, error) {
	return AppendIndexItem(make([]byte, 0, itemSize), item, itemSize)
}

func DecodeIndexItem(b []byte, itemSize uint32) (IndexItem, error) {
	if err := CheckItemSize(itemSize); err != nil {
		return IndexItem{}, err
	}

	if err := checkSize("IndexItem", b, int(itemSize)); err != nil {
		return IndexItem{}, err
	}

	r := binario.NewReader(b, byteOrder)
	item := IndexItem{
		Offset: r.ReadUint64(),
		Size:   r.ReadUint32(),
	}

	if itemSize == IndexItemSizeTimestamp {
		item.Timestamp = r.ReadUint64()
	}

	if err := r.Err(); err != nil {
		return IndexItem{}, &ParseError{Struct: "IndexItem", Err: err}
	}

	return item, nil
}
