package record

// Iterator walks the remaining items of a reader, decoding each one with
// the given decoder:
//
//	it := record.NewIterator(r, dec)
//	for it.Next() {
//		use(it.Item)
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	reader *Reader
	dec    Decoder[T]
	empty  T
	err    error
	Item   T
}

func NewIterator[T any](reader *Reader, dec Decoder[T]) *Iterator[T] {
	return &Iterator[T]{
		reader: reader,
		dec:    dec,
	}
}

// Next takes the next item and stores it in Item. It returns false once the
// items are exhausted or an error occurs.
func (i *Iterator[T]) Next() bool {
	if i.err != nil {
		return false
	}

	switch i.reader.State() {
	case StateUninitialized, StateOpening:
		i.err = ErrNotInitialized
		i.Item = i.empty

		return false

	case StateFailed:
		i.err = ErrFailed
		i.Item = i.empty

		return false
	}

	if !i.reader.HasNext() {
		i.Item = i.empty
		return false
	}

	item, err := TakeNext(i.reader, i.dec)
	if err != nil {
		i.err = err
		i.Item = i.empty

		return false
	}

	i.Item = item

	return true
}

// Err returns the error that stopped the iteration, if any.
func (i *Iterator[T]) Err() error {
	return i.err
}
