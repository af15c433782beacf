package record

import (
	"github.com/maxpoletaev/protorecord/internal/baseerror"
)

var (
	// ErrProtorecord is the parent of every error kind in this package.
	ErrProtorecord = baseerror.New("protorecord")

	// ErrOpen is returned when the index or data file cannot be opened.
	ErrOpen = ErrProtorecord.New("open failure")

	// ErrShortRead is returned when a file holds fewer bytes than a fixed-size
	// structure requires.
	ErrShortRead = ErrProtorecord.New("short read")

	// ErrDecode is returned when bytes are present but structurally invalid.
	ErrDecode = ErrProtorecord.New("decode failure")

	// ErrVersionIncompatible is returned when the compatibility policy
	// rejects the version of a log.
	ErrVersionIncompatible = ErrProtorecord.New("file/library version incompatibility")

	// ErrEndOfData is returned when the data file ends before a payload does.
	ErrEndOfData = ErrProtorecord.New("reached end of data file")

	// ErrPayloadDecode is returned when the caller's decoder rejects a payload.
	ErrPayloadDecode = ErrProtorecord.New("payload decode failed")

	// ErrNotInitialized is returned by operations on a reader that was never
	// successfully opened.
	ErrNotInitialized = ErrProtorecord.New("reader not initialized")

	// ErrNoMoreItems is returned when the cursor is past the last item.
	ErrNoMoreItems = ErrProtorecord.New("no more items")

	// ErrFailed is returned by iteration after an earlier sticky failure.
	ErrFailed = ErrProtorecord.New("reader is in failed state")

	// ErrNoTimestamps is returned when asking for a timestamp of a log that
	// does not store them.
	ErrNoTimestamps = ErrProtorecord.New("record has no timestamps")

	// ErrClosed is returned by writer operations after Close.
	ErrClosed = ErrProtorecord.New("writer is closed")

	// ErrPayloadTooLarge is returned when a payload does not fit the 32-bit
	// size field of an item.
	ErrPayloadTooLarge = ErrProtorecord.New("payload too large")
)
