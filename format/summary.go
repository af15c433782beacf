package format

import (
	"fmt"

	"github.com/maxpoletaev/protorecord/internal/binario"
)

// IndexSummary describes the whole log. It is stored right after the Version.
type IndexSummary struct {
	// TotalItems is the number of items in the log.
	TotalItems uint64
	// IndexItemSize is the encoded size of every IndexItem. Readers navigate
	// the index using this value as is, even if it disagrees with Flags.
	IndexItemSize uint32
	// StartTimeUTC is the recording start time in microseconds since the
	// Unix epoch. Meaningful only when the log has timestamps.
	StartTimeUTC uint64
	Flags        Flags
}

// AppendIndexSummary appends the encoded summary to dst.
func AppendIndexSummary(dst []byte, s IndexSummary) []byte {
	w := binario.NewWriter(dst, byteOrder)
	w.WriteUint64(s.TotalItems)
	w.WriteUint32(s.IndexItemSize)
	w.WriteUint64(s.StartTimeUTC)
	w.WriteUint32(uint32(s.Flags))
	w.WriteUint32(0) // reserved

	return w.Bytes()
}

func EncodeIndexSummary(s IndexSummary) []byte {
	return AppendIndexSummary(make([]byte, 0, IndexSummarySize), s)
}

func DecodeIndexSummary(b []byte) (IndexSummary, error) {
	if err := checkSize("IndexSummary", b, IndexSummarySize); err != nil {
		return IndexSummary{}, err
	}

	r := binario.NewReader(b, byteOrder)
	s := IndexSummary{
		TotalItems:    r.ReadUint64(),
		IndexItemSize: r.ReadUint32(),
		StartTimeUTC:  r.ReadUint64(),
		Flags:         Flags(r.ReadUint32()),
	}

	reserved := r.ReadUint32()

	if err := r.Err(); err != nil {
		return IndexSummary{}, &ParseError{Struct: "IndexSummary", Err: err}
	}

	if reserved != 0 {
		return IndexSummary{}, &ParseError{
			Struct: "IndexSummary",
			Err:    fmt.Errorf("%w: %#x", ErrReserved, reserved),
		}
	}

	return s, nil
}
