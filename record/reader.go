package record

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/mmap"

	"github.com/maxpoletaev/protorecord/format"
	"github.com/maxpoletaev/protorecord/internal/opengroup"
)

const (
	indexFileName = "index"
	dataFileName  = "data"
)

// Reader reads the items of a record in the order they were written. It owns
// the index and data files of the record until Close is called. A Reader is
// not safe for concurrent use.
//
// Every method resets the failure reason on entry, so Reason always explains
// the most recent call only. Any error returned while fetching an item is
// sticky: the reader moves to StateFailed and returns no more items, even if
// the following ones are intact.
type Reader struct {
	conf     Config
	logger   log.Logger
	state    State
	path     string
	files    *opengroup.Opener
	index    io.ReaderAt
	data     io.ReaderAt
	dataSize int64
	version  format.Version
	summary  format.IndexSummary
	item     format.IndexItem
	itemBuf  []byte
	buf      []byte
	next     uint64
	reason   string
}

// NewReader creates an uninitialized reader. Call Open to attach it to
// a record.
func NewReader(conf Config) *Reader {
	conf.setDefaults()

	return &Reader{
		conf:   conf,
		logger: log.With(conf.Logger, "component", "reader"),
		state:  StateUninitialized,
	}
}

// Open creates a reader and opens the record at path. Unlike NewReader
// followed by Reader.Open, it returns no reader when opening fails.
func Open(path string, conf Config) (*Reader, error) {
	r := NewReader(conf)

	if err := r.Open(path); err != nil {
		return nil, err
	}

	return r, nil
}

// Open opens the index and data files of the record stored in the path
// directory and parses the header of the index. On failure, the reader is
// left uninitialized and every file it managed to open is closed.
//
// The index item size declared in the summary is used as is for navigating
// the index, even when it contradicts the HAS_TIMESTAMPS flag. A summary that
// parses but carries a wrong size makes the subsequent reads fail rather than
// being corrected here.
func (r *Reader) Open(path string) error {
	r.reason = ""

	if r.state != StateUninitialized {
		return r.setReason(fmt.Errorf("%w: reader is already open", ErrOpen))
	}

	r.state = StateOpening
	r.path = path
	r.files = opengroup.New()

	if err := r.openFiles(path); err != nil {
		return r.abortOpen(err)
	}

	if err := r.readHeader(); err != nil {
		return r.abortOpen(err)
	}

	r.state = StateReady
	r.next = 0

	level.Debug(r.logger).Log(
		"msg", "record opened",
		"path", path,
		"version", r.version,
		"items", r.summary.TotalItems,
		"flags", r.summary.Flags,
	)

	return nil
}

func (r *Reader) openFiles(path string) error {
	indexPath := filepath.Join(path, indexFileName)
	dataPath := filepath.Join(path, dataFileName)

	indexFile := r.files.Open(indexPath, os.O_RDONLY, 0)
	if indexFile == nil {
		return fmt.Errorf("%w: failed to open index file '%s': %w", ErrOpen, indexPath, r.files.Err())
	}

	r.index = indexFile

	if r.conf.MmapDataFile {
		mapped, err := mmap.Open(dataPath)
		if err != nil {
			r.files.Fail(dataPath, err)
			return fmt.Errorf("%w: failed to open data file '%s': %w", ErrOpen, dataPath, r.files.Err())
		}

		r.files.Track(dataPath, mapped)
		r.data = mapped
		r.dataSize = int64(mapped.Len())

		return nil
	}

	dataFile := r.files.Open(dataPath, os.O_RDONLY, 0)
	if dataFile == nil {
		return fmt.Errorf("%w: failed to open data file '%s': %w", ErrOpen, dataPath, r.files.Err())
	}

	stat, err := dataFile.Stat()
	if err != nil {
		return fmt.Errorf("%w: failed to stat data file '%s': %w", ErrOpen, dataPath, err)
	}

	r.data = dataFile
	r.dataSize = stat.Size()

	return nil
}

func (r *Reader) readHeader() error {
	header := make([]byte, format.HeaderSize)

	if err := readFullAt(r.index, header[:format.VersionSize], 0); err != nil {
		return fmt.Errorf("%w: index file too small to parse Version: %w", ErrShortRead, err)
	}

	version, err := format.DecodeVersion(header[:format.VersionSize])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if !r.conf.Compatibility.IsCompatible(version) {
		return fmt.Errorf("%w: record version %s", ErrVersionIncompatible, version)
	}

	if err := readFullAt(r.index, header[format.VersionSize:], format.VersionSize); err != nil {
		return fmt.Errorf("%w: index file too small to parse IndexSummary: %w", ErrShortRead, err)
	}

	summary, err := format.DecodeIndexSummary(header[format.VersionSize:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	r.version = version
	r.summary = summary

	return nil
}

func (r *Reader) abortOpen(err error) error {
	if closeErr := r.files.CloseAll(); closeErr != nil {
		level.Warn(r.logger).Log("msg", "failed to close record files", "path", r.path, "err", closeErr)
	}

	r.reset()

	level.Debug(r.logger).Log("msg", "failed to open record", "path", r.path, "err", err)

	return r.setReason(err)
}

func (r *Reader) reset() {
	r.state = StateUninitialized
	r.files = nil
	r.index = nil
	r.data = nil
	r.dataSize = 0
	r.version = format.Version{}
	r.summary = format.IndexSummary{}
	r.item = format.IndexItem{}
	r.next = 0
}

func (r *Reader) setReason(err error) error {
	r.reason = err.Error()
	return err
}

// fail moves the reader to the failed state. Failures of an uninitialized
// reader only set the reason, as there is nothing to fail.
func (r *Reader) fail(err error) error {
	if r.state == StateReady {
		r.state = StateFailed

		level.Error(r.logger).Log("msg", "record read failed", "path", r.path, "item", r.next, "err", err)
	}

	return r.setReason(err)
}

func (r *Reader) initialized() bool {
	return r.state == StateReady || r.state == StateFailed
}

// checkNext verifies that the reader is positioned at a readable item.
func (r *Reader) checkNext() error {
	switch {
	case !r.initialized():
		return ErrNotInitialized
	case r.state == StateFailed:
		return ErrFailed
	case r.next >= r.summary.TotalItems:
		return ErrNoMoreItems
	}

	return nil
}

// lookupItem reads the index item with the given number into the scratch item.
func (r *Reader) lookupItem(idx uint64) error {
	itemSize := r.summary.IndexItemSize

	// The size comes from the file, so it is checked before it is used
	// to size the scratch buffer.
	if err := format.CheckItemSize(itemSize); err != nil {
		return fmt.Errorf("%w: item %d: %w", ErrDecode, idx, err)
	}

	pos, err := format.ItemOffsetChecked(idx, itemSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if cap(r.itemBuf) < int(itemSize) {
		r.itemBuf = make([]byte, itemSize)
	}

	buf := r.itemBuf[:itemSize]

	if err := readFullAt(r.index, buf, pos); err != nil {
		return fmt.Errorf("%w: reached end of index file at item %d: %w", ErrShortRead, idx, err)
	}

	item, err := format.DecodeIndexItem(buf, itemSize)
	if err != nil {
		return fmt.Errorf("%w: item %d: %w", ErrDecode, idx, err)
	}

	r.item = item

	return nil
}

// readNext fetches the payload of the item under the cursor and hands it to
// fn without advancing the cursor. Every failure is sticky.
func (r *Reader) readNext(fn func(b []byte) error) error {
	r.reason = ""

	if err := r.checkNext(); err != nil {
		return r.fail(err)
	}

	if err := r.lookupItem(r.next); err != nil {
		return r.fail(err)
	}

	item := r.item

	if item.Offset > math.MaxInt64 || item.End() > uint64(r.dataSize) {
		return r.fail(fmt.Errorf("%w: item %d spans [%d, %d), data file has %d bytes",
			ErrEndOfData, r.next, item.Offset, item.End(), r.dataSize))
	}

	if cap(r.buf) < int(item.Size) {
		r.buf = make([]byte, max(int(item.Size), r.conf.BufferSize))
	}

	payload := r.buf[:item.Size]

	if err := readFullAt(r.data, payload, int64(item.Offset)); err != nil {
		return r.fail(fmt.Errorf("%w: item %d: %w", ErrEndOfData, r.next, err))
	}

	if err := fn(payload); err != nil {
		return r.fail(fmt.Errorf("%w: item %d: %w", ErrPayloadDecode, r.next, err))
	}

	return nil
}

// GetNext decodes the item under the cursor without advancing it.
func GetNext[T any](r *Reader, dec Decoder[T]) (T, error) {
	var msg T

	err := r.readNext(func(b []byte) error {
		var err error
		msg, err = dec.Decode(b)

		return err
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return msg, nil
}

// TakeNext decodes the item under the cursor and advances the cursor if
// decoding succeeded. This is the only way to move the cursor forward.
func TakeNext[T any](r *Reader, dec Decoder[T]) (T, error) {
	msg, err := GetNext(r, dec)
	if err != nil {
		return msg, err
	}

	r.next++

	return msg, nil
}

// HasNext reports whether the next TakeNext may succeed.
func (r *Reader) HasNext() bool {
	r.reason = ""
	return r.state == StateReady && r.next < r.summary.TotalItems
}

// NextItem returns the index item under the cursor. Unlike GetNext, it does
// not touch the data file and its failures are not sticky.
func (r *Reader) NextItem() (format.IndexItem, error) {
	r.reason = ""

	if err := r.checkNext(); err != nil {
		return format.IndexItem{}, r.setReason(err)
	}

	if err := r.lookupItem(r.next); err != nil {
		return format.IndexItem{}, r.setReason(err)
	}

	return r.item, nil
}

// NextTimestamp returns the timestamp of the item under the cursor, in
// microseconds since the start of the recording. Presence of timestamps is
// decided by the declared item size, the same way navigation is.
func (r *Reader) NextTimestamp() (uint64, error) {
	item, err := r.NextItem()
	if err != nil {
		return 0, err
	}

	if r.summary.IndexItemSize != format.IndexItemSizeTimestamp {
		return 0, r.setReason(ErrNoTimestamps)
	}

	return item.Timestamp, nil
}

// Position returns the number of items taken so far.
func (r *Reader) Position() uint64 {
	r.reason = ""
	return r.next
}

// Size returns the number of items in the record, or zero if the reader
// is not initialized.
func (r *Reader) Size() uint64 {
	r.reason = ""

	if r.initialized() {
		return r.summary.TotalItems
	}

	return 0
}

// Flags returns the raw flags word of the record.
func (r *Reader) Flags() format.Flags {
	r.reason = ""

	if !r.initialized() {
		r.setReason(ErrNotInitialized) //nolint:errcheck
		return 0
	}

	return r.summary.Flags
}

func (r *Reader) flagSet() format.FlagSet {
	if !r.initialized() {
		return format.FlagSet{}
	}

	set, _ := r.summary.Flags.Checked()

	return set
}

// HasAssumedData reports whether some payloads were written pre-serialized.
// It is false when the flags of the record are not valid.
func (r *Reader) HasAssumedData() bool {
	r.reason = ""
	return r.flagSet().HasAssumedData
}

// HasTimestamps reports whether the record was written with per-item
// timestamps. It is false when the flags of the record are not valid.
func (r *Reader) HasTimestamps() bool {
	r.reason = ""
	return r.flagSet().HasTimestamps
}

// StartTime returns the start time of the recording in microseconds since
// the Unix epoch. The value must not be used when ok is false.
func (r *Reader) StartTime() (us uint64, ok bool) {
	r.reason = ""

	if !r.initialized() {
		r.setReason(ErrNotInitialized) //nolint:errcheck
	}

	return r.summary.StartTimeUTC, r.initialized()
}

// Version returns the library version the record was written with, or the
// zero version if the reader is not initialized.
func (r *Reader) Version() format.Version {
	r.reason = ""

	if !r.initialized() {
		r.setReason(ErrNotInitialized) //nolint:errcheck
	}

	return r.version
}

// State returns the lifecycle state of the reader.
func (r *Reader) State() State {
	return r.state
}

// Reason returns the explanation of the failure of the previous call and
// clears it. An empty string means the previous call succeeded.
func (r *Reader) Reason() string {
	reason := r.reason
	r.reason = ""

	return reason
}

// Close releases the files of the record. It is safe to call Close more than
// once, and on a reader that failed to open.
func (r *Reader) Close() error {
	r.reason = ""

	if r.files == nil {
		return nil
	}

	err := r.files.CloseAll()

	level.Debug(r.logger).Log("msg", "record closed", "path", r.path)

	r.reset()

	if err != nil {
		return r.setReason(fmt.Errorf("failed to close record: %w", err))
	}

	return nil
}

// readFullAt fills buf from src at off. Any shortfall is reported as
// io.ErrUnexpectedEOF.
func readFullAt(src io.ReaderAt, buf []byte, off int64) error {
	n, err := src.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}
