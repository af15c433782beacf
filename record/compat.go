package record

import (
	"github.com/maxpoletaev/protorecord/format"
)

// CompatibilityPolicy decides whether a log written by the given library
// version can be read. It is consulted once per Open, right after the
// version is decoded.
type CompatibilityPolicy interface {
	IsCompatible(v format.Version) bool
}

// CompatibilityFunc adapts a function to CompatibilityPolicy.
type CompatibilityFunc func(v format.Version) bool

func (f CompatibilityFunc) IsCompatible(v format.Version) bool {
	return f(v)
}

// AcceptAnyVersion is the default policy. There is a single on-disk layout
// so far, hence every version is accepted, including the zero one.
var AcceptAnyVersion CompatibilityPolicy = CompatibilityFunc(func(format.Version) bool {
	return true
})

// VersionRange accepts versions between Min and Max, both inclusive.
// A zero Max means there is no upper bound.
type VersionRange struct {
	Min format.Version
	Max format.Version
}

func (r VersionRange) IsCompatible(v format.Version) bool {
	if v.Compare(r.Min) < 0 {
		return false
	}

	if !r.Max.IsZero() && v.Compare(r.Max) > 0 {
		return false
	}

	return true
}
