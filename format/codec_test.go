package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_RoundTrip(t *testing.T) {
	tests := map[string]Version{
		"Zero":    {},
		"Current": CurrentVersion,
		"Max":     {Major: math.MaxUint64, Minor: math.MaxUint64, Patch: math.MaxUint64},
		"Mixed":   {Major: 1, Minor: math.MaxUint32 + 1, Patch: 7},
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			b := EncodeVersion(v)
			require.Len(t, b, VersionSize)

			got, err := DecodeVersion(b)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}

func TestVersion_Layout(t *testing.T) {
	b := EncodeVersion(Version{Major: 1, Minor: 2, Patch: 3})

	want := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		2, 0, 0, 0, 0, 0, 0, 0,
		3, 0, 0, 0, 0, 0, 0, 0,
	}

	assert.Equal(t, want, b)
}

func TestVersion_Compare(t *testing.T) {
	assert.Equal(t, 0, Version{1, 2, 3}.Compare(Version{1, 2, 3}))
	assert.Equal(t, -1, Version{1, 2, 3}.Compare(Version{1, 3, 0}))
	assert.Equal(t, 1, Version{2, 0, 0}.Compare(Version{1, 9, 9}))
	assert.Equal(t, "0.1.0", CurrentVersion.String())
	assert.True(t, Version{}.IsZero())
}

func TestIndexSummary_RoundTrip(t *testing.T) {
	tests := map[string]IndexSummary{
		"Zero": {},
		"Typical": {
			TotalItems:    3,
			IndexItemSize: IndexItemSizeTimestamp,
			StartTimeUTC:  1_700_000_000_000_000,
			Flags:         FlagSet{HasTimestamps: true}.Flags(),
		},
		"Max": {
			TotalItems:    math.MaxUint64,
			IndexItemSize: math.MaxUint32,
			StartTimeUTC:  math.MaxUint64,
			Flags:         Flags(math.MaxUint32),
		},
	}

	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			b := EncodeIndexSummary(s)
			require.Len(t, b, IndexSummarySize)

			got, err := DecodeIndexSummary(b)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestIndexSummary_Layout(t *testing.T) {
	b := EncodeIndexSummary(IndexSummary{
		TotalItems:    0x0102,
		IndexItemSize: 20,
		StartTimeUTC:  0x0A0B,
		Flags:         0x9,
	})

	want := []byte{
		0x02, 0x01, 0, 0, 0, 0, 0, 0, // total_items
		20, 0, 0, 0, // index_item_size
		0x0B, 0x0A, 0, 0, 0, 0, 0, 0, // start_time_utc
		0x9, 0, 0, 0, // flags
		0, 0, 0, 0, // reserved
	}

	assert.Equal(t, want, b)
}

func TestIndexSummary_Reserved(t *testing.T) {
	b := EncodeIndexSummary(IndexSummary{TotalItems: 1})
	b[IndexSummarySize-1] = 1

	_, err := DecodeIndexSummary(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReserved))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "IndexSummary", perr.Struct)
}

func TestIndexItem_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		item     IndexItem
		itemSize uint32
	}{
		"NoTimestamp": {
			item:     IndexItem{Offset: 10, Size: 15},
			itemSize: IndexItemSizeNoTimestamp,
		},
		"Timestamp": {
			item:     IndexItem{Offset: 10, Size: 15, Timestamp: 42},
			itemSize: IndexItemSizeTimestamp,
		},
		"MaxNoTimestamp": {
			item:     IndexItem{Offset: math.MaxUint64, Size: math.MaxUint32},
			itemSize: IndexItemSizeNoTimestamp,
		},
		"MaxTimestamp": {
			item:     IndexItem{Offset: math.MaxUint64, Size: math.MaxUint32, Timestamp: math.MaxUint64},
			itemSize: IndexItemSizeTimestamp,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := EncodeIndexItem(tt.item, tt.itemSize)
			require.NoError(t, err)
			require.Len(t, b, int(tt.itemSize))

			got, err := DecodeIndexItem(b, tt.itemSize)
			require.NoError(t, err)
			assert.Equal(t, tt.item, got)
		})
	}
}

func TestIndexItem_EncodeErrors(t *testing.T) {
	_, err := EncodeIndexItem(IndexItem{Offset: 1, Size: 1, Timestamp: 5}, IndexItemSizeNoTimestamp)
	assert.Error(t, err)

	_, err = EncodeIndexItem(IndexItem{Offset: 1, Size: 1}, 16)
	assert.True(t, errors.Is(err, ErrItemSize))
}

func TestDecode_WrongBufferSize(t *testing.T) {
	tests := map[string]struct {
		decode func() error
		name   string
	}{
		"VersionShort": {
			decode: func() error { _, err := DecodeVersion(make([]byte, VersionSize-1)); return err },
			name:   "Version",
		},
		"VersionLong": {
			decode: func() error { _, err := DecodeVersion(make([]byte, VersionSize+1)); return err },
			name:   "Version",
		},
		"SummaryShort": {
			decode: func() error { _, err := DecodeIndexSummary(make([]byte, 20)); return err },
			name:   "IndexSummary",
		},
		"ItemShort": {
			decode: func() error { _, err := DecodeIndexItem(make([]byte, 12), IndexItemSizeTimestamp); return err },
			name:   "IndexItem",
		},
		"ItemUnsupportedSize": {
			decode: func() error { _, err := DecodeIndexItem(make([]byte, 16), 16); return err },
			name:   "IndexItem",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.decode()
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.name, perr.Struct)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestIndexItem_End(t *testing.T) {
	assert.Equal(t, uint64(25), IndexItem{Offset: 10, Size: 15}.End())
}
