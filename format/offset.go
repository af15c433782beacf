package format

import (
	"fmt"
	"math"
	"math/bits"
)

// ItemOffset returns the position of item idx in the index file. The caller
// guarantees idx is below the summary's TotalItems.
func ItemOffset(idx uint64, itemSize uint32) int64 {
	return HeaderSize + int64(idx)*int64(itemSize)
}

// ItemOffsetChecked is ItemOffset for untrusted input: it fails instead of
// producing an offset that does not fit in int64.
func ItemOffsetChecked(idx uint64, itemSize uint32) (int64, error) {
	hi, lo := bits.Mul64(idx, uint64(itemSize))
	if hi != 0 || lo > math.MaxInt64-HeaderSize {
		return 0, fmt.Errorf("%w: item %d of size %d", ErrOffsetOverflow, idx, itemSize)
	}

	return HeaderSize + int64(lo), nil
}

// MinIndexSize returns the smallest index file that can hold the summary
// together with all of its items, saturating at math.MaxInt64.
func MinIndexSize(s IndexSummary) int64 {
	off, err := ItemOffsetChecked(s.TotalItems, s.IndexItemSize)
	if err != nil {
		return math.MaxInt64
	}

	return off
}
