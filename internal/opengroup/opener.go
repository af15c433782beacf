package opengroup

import (
	"io"
	"os"

	"github.com/maxpoletaev/protorecord/internal/multierror"
)

type entry struct {
	name   string
	closer io.Closer
}

// Opener acquires a group of files that live and die together. Whatever was
// successfully acquired is released by CloseAll, even if acquiring the rest
// of the group failed.
type Opener struct {
	entries []entry
	errors  multierror.Error[string]
}

func New() *Opener {
	return &Opener{}
}

// Open opens the named file and adds it to the group. On failure it returns
// nil and remembers the error, which is later reported by Err.
func (o *Opener) Open(name string, flag int, mode os.FileMode) *os.File {
	f, err := os.OpenFile(name, flag, mode)
	if err != nil {
		o.errors.Add(name, err)
		return nil
	}

	o.entries = append(o.entries, entry{name: name, closer: f})

	return f
}

// Track adds a resource that was acquired elsewhere, such as a memory-mapped
// file, so that it is released together with the rest of the group.
func (o *Opener) Track(name string, c io.Closer) {
	o.entries = append(o.entries, entry{name: name, closer: c})
}

// Fail records an acquisition error for a resource that is not tracked.
func (o *Opener) Fail(name string, err error) {
	o.errors.Add(name, err)
}

// Len returns the number of resources currently held.
func (o *Opener) Len() int {
	return len(o.entries)
}

func (o *Opener) Err() error {
	return o.errors.Combined()
}

// CloseAll releases every held resource in reverse acquisition order. It is
// safe to call more than once.
func (o *Opener) CloseAll() error {
	errs := multierror.New[string]()

	for i := len(o.entries) - 1; i >= 0; i-- {
		if err := o.entries[i].closer.Close(); err != nil {
			errs.Add(o.entries[i].name, err)
		}
	}

	o.entries = nil

	return errs.Combined()
}

// RemoveAll removes the files of the group from disk. Resources added with
// Track are removed as well, as they are named by their path.
func (o *Opener) RemoveAll() error {
	errs := multierror.New[string]()

	for _, e := range o.entries {
		if err := os.Remove(e.name); err != nil && !os.IsNotExist(err) {
			errs.Add(e.name, err)
		}
	}

	return errs.Combined()
}
