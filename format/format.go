// Package format implements the on-disk layout of a protorecord log: the
// fixed-size Version, IndexSummary and IndexItem structures stored in the
// index file, the flags word, and the arithmetic that locates an item.
//
// All integers are unsigned, fixed-width and little-endian. There is no
// padding between fields:
//
//	Version       24 bytes  major u64 | minor u64 | patch u64
//	IndexSummary  28 bytes  total_items u64 | index_item_size u32 |
//	                        start_time_utc u64 | flags u32 | reserved u32
//	IndexItem     12 bytes  offset u64 | size u32
//	IndexItem     20 bytes  offset u64 | size u32 | timestamp u64
//
// The index file is the Version, followed by the IndexSummary, followed by
// total_items items of index_item_size bytes each.
package format

import (
	"encoding/binary"
)

const (
	// VersionSize is the encoded size of a Version.
	VersionSize = 24

	// IndexSummarySize is the encoded size of an IndexSummary.
	IndexSummarySize = 28

	// IndexItemSizeTimestamp is the encoded size of an IndexItem in a log
	// that stores per-item timestamps.
	IndexItemSizeTimestamp = 20

	// IndexItemSizeNoTimestamp is the encoded size of an IndexItem in a log
	// without timestamps.
	IndexItemSizeNoTimestamp = 12

	// HeaderSize is the number of bytes preceding the first IndexItem.
	HeaderSize = VersionSize + IndexSummarySize
)

var byteOrder = binary.LittleEndian

// ItemSizeFor returns the IndexItem size a conforming writer uses.
func ItemSizeFor(hasTimestamps bool) uint32 {
	if hasTimestamps {
		return IndexItemSizeTimestamp
	}

	return IndexItemSizeNoTimestamp
}
