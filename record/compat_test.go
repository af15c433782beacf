package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxpoletaev/protorecord/format"
)

func TestAcceptAnyVersion(t *testing.T) {
	versions := []format.Version{
		{},
		format.CurrentVersion,
		{Major: 1 << 63, Minor: 1, Patch: 1},
	}

	for _, v := range versions {
		assert.True(t, AcceptAnyVersion.IsCompatible(v), v.String())
	}
}

func TestVersionRange(t *testing.T) {
	tests := map[string]struct {
		rng  VersionRange
		v    format.Version
		want bool
	}{
		"InsideBounds": {
			rng:  VersionRange{Min: format.Version{Minor: 1}, Max: format.Version{Major: 1}},
			v:    format.Version{Minor: 5},
			want: true,
		},
		"EqualToMin": {
			rng:  VersionRange{Min: format.Version{Minor: 1}},
			v:    format.Version{Minor: 1},
			want: true,
		},
		"BelowMin": {
			rng:  VersionRange{Min: format.Version{Minor: 1}},
			v:    format.Version{Patch: 9},
			want: false,
		},
		"AboveMax": {
			rng:  VersionRange{Max: format.Version{Major: 1}},
			v:    format.Version{Major: 1, Patch: 1},
			want: false,
		},
		"NoUpperBound": {
			rng:  VersionRange{Min: format.Version{Major: 1}},
			v:    format.Version{Major: 100},
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.IsCompatible(tt.v))
		})
	}
}

func TestCompatibilityFunc(t *testing.T) {
	policy := CompatibilityFunc(func(v format.Version) bool {
		return v.Major == 0
	})

	assert.True(t, policy.IsCompatible(format.CurrentVersion))
	assert.False(t, policy.IsCompatible(format.Version{Major: 1}))
}
