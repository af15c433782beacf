package format

import (
	"fmt"

	"github.com/maxpoletaev/protorecord/internal/binario"
)

// Version identifies the library revision that produced a log.
// The zero value is the default, invalid version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// CurrentVersion is the version stamped into logs created by this package.
var CurrentVersion = Version{Major: 0, Minor: 1, Patch: 0}

func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or 1 depending on whether v is older than,
// equal to, or newer than other.
func (v Version) Compare(other Version) int {
	pairs := [3][2]uint64{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}

	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}

	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AppendVersion appends the encoded version to dst.
func AppendVersion(dst []byte, v Version) []byte {
	w := binario.NewWriter(dst, byteOrder)
	w.WriteUint64(v.Major)
	w.WriteUint64(v.Minor)
	w.WriteUint64(v.Patch)

	return w.Bytes()
}

func EncodeVersion(v Version) []byte {
	return AppendVersion(make([]byte, 0, VersionSize), v)
}

func DecodeVersion(b []byte) (Version, error) {
	if err := checkSize("Version", b, VersionSize); err != nil {
		return Version{}, err
	}

	r := binario.NewReader(b, byteOrder)
	v := Version{
		Major: r.ReadUint64(),
		Minor: r.ReadUint64(),
		Patch: r.ReadUint64(),
	}

	if err := r.Err(); err != nil {
		return Version{}, &ParseError{Struct: "Version", Err: err}
	}

	return v, nil
}
