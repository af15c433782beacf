package format

import (
	"fmt"
	"strings"
)

// Flags is the raw flags word of an IndexSummary. Individual bits are only
// meaningful when the VALID bit is set, so they are reachable only through
// Checked.
type Flags uint32

const (
	flagValid            Flags = 0x1
	flagRecordWriteError Flags = 0x2
	flagHasAssumedData   Flags = 0x4
	flagHasTimestamps    Flags = 0x8
)

// FlagSet is the interpretation of a valid flags word.
type FlagSet struct {
	// RecordWriteError is set when the producer failed to write at some point.
	RecordWriteError bool
	// HasAssumedData is set when at least one payload was written
	// pre-serialized, bypassing the producer's encoder.
	HasAssumedData bool
	// HasTimestamps is set when every item carries a timestamp.
	HasTimestamps bool
}

// Flags encodes the set into a flags word with the VALID bit set.
func (s FlagSet) Flags() Flags {
	f := flagValid

	if s.RecordWriteError {
		f |= flagRecordWriteError
	}

	if s.HasAssumedData {
		f |= flagHasAssumedData
	}

	if s.HasTimestamps {
		f |= flagHasTimestamps
	}

	return f
}

// Valid reports whether the VALID bit is set.
func (f Flags) Valid() bool {
	return f&flagValid != 0
}

// Checked interprets the flags word. It returns false, and an empty set,
// when the VALID bit is unset.
func (f Flags) Checked() (FlagSet, bool) {
	if !f.Valid() {
		return FlagSet{}, false
	}

	return FlagSet{
		RecordWriteError: f&flagRecordWriteError != 0,
		HasAssumedData:   f&flagHasAssumedData != 0,
		HasTimestamps:    f&flagHasTimestamps != 0,
	}, true
}

func (f Flags) String() string {
	set, ok := f.Checked()
	if !ok {
		return fmt.Sprintf("INVALID(%#x)", uint32(f))
	}

	names := []string{"VALID"}

	if set.RecordWriteError {
		names = append(names, "RECORD_WRITE_ERROR")
	}

	if set.HasAssumedData {
		names = append(names, "HAS_ASSUMED_DATA")
	}

	if set.HasTimestamps {
		names = append(names, "HAS_TIMESTAMPS")
	}

	if unknown := f &^ (flagValid | flagRecordWriteError | flagHasAssumedData | flagHasTimestamps); unknown != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(unknown)))
	}

	return strings.Join(names, "|")
}
