package record

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/protorecord/format"
	"github.com/maxpoletaev/protorecord/internal/multierror"
	"github.com/maxpoletaev/protorecord/internal/opengroup"
)

const readmeFileName = "README.md"

// Writer creates a new record and appends items to it. The summary in the
// index file is only final after Close. Only a single writer may produce
// a record, and a Writer is not safe for concurrent use.
type Writer struct {
	conf       WriterConfig
	logger     log.Logger
	path       string
	files      *opengroup.Opener
	index      *os.File
	data       *os.File
	flags      format.FlagSet
	itemSize   uint32
	startTime  time.Time
	dataOffset uint64
	count      uint64
	itemBuf    []byte
	encBuf     []byte
	writeErr   error
	closed     bool
}

// Create makes the record directory at path and writes the header of the
// index file. Unless conf.Overwrite is set, the directory must not exist.
func Create(path string, conf WriterConfig) (w *Writer, err error) {
	conf.setDefaults()

	created := true

	if err := os.Mkdir(path, 0o755); err != nil {
		if !conf.Overwrite || !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create record: %w", err)
		}

		created = false
	}

	og := opengroup.New()

	defer func() {
		if err != nil {
			og.CloseAll()  //nolint:errcheck
			og.RemoveAll() //nolint:errcheck

			// An existing directory is reused as is and left in place.
			if created {
				os.Remove(path) //nolint:errcheck
			}
		}
	}()

	const flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC

	indexFile := og.Open(filepath.Join(path, indexFileName), flags, 0o644)
	dataFile := og.Open(filepath.Join(path, dataFileName), flags, 0o644)

	if err = og.Err(); err != nil {
		return nil, fmt.Errorf("failed to open files: %w", err)
	}

	w = &Writer{
		conf:      conf,
		logger:    log.With(conf.Logger, "component", "writer", "path", path),
		path:      path,
		files:     og,
		index:     indexFile,
		data:      dataFile,
		flags:     format.FlagSet{HasTimestamps: conf.Timestamps},
		itemSize:  format.ItemSizeFor(conf.Timestamps),
		startTime: conf.Clock(),
	}

	header := format.AppendVersion(make([]byte, 0, format.HeaderSize), format.CurrentVersion)
	header = format.AppendIndexSummary(header, w.summary())

	if _, err = indexFile.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write index header: %w", err)
	}

	return w, nil
}

func (w *Writer) summary() format.IndexSummary {
	return format.IndexSummary{
		TotalItems:    w.count,
		IndexItemSize: w.itemSize,
		StartTimeUTC:  uint64(w.startTime.UnixMicro()),
		Flags:         w.flags.Flags(),
	}
}

// Append encodes msg with enc and appends it to the record.
func Append[T any](w *Writer, enc Encoder[T], msg T) error {
	if err := w.checkWritable(); err != nil {
		return err
	}

	buf, err := enc.Encode(w.encBuf[:0], msg)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	// The encoder may have grown the buffer, keep the larger one.
	w.encBuf = buf

	return w.writeItem(buf)
}

// AppendAssumed appends a payload that was serialized by the caller. The
// record is marked as containing assumed data once the first such payload
// is written.
func (w *Writer) AppendAssumed(payload []byte) error {
	if err := w.checkWritable(); err != nil {
		return err
	}

	if err := w.writeItem(payload); err != nil {
		return err
	}

	w.flags.HasAssumedData = true

	return nil
}

func (w *Writer) checkWritable() error {
	if w.closed {
		return ErrClosed
	}

	if w.writeErr != nil {
		return fmt.Errorf("writer failed earlier: %w", w.writeErr)
	}

	return nil
}

// writeItem stores the payload first and the index item second, so that the
// index never points past the data that was actually written.
func (w *Writer) writeItem(payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	item := format.IndexItem{
		Offset: w.dataOffset,
		Size:   uint32(len(payload)),
	}

	if w.conf.Timestamps {
		if elapsed := w.conf.Clock().Sub(w.startTime); elapsed > 0 {
			item.Timestamp = uint64(elapsed.Microseconds())
		}
	}

	itemBuf, err := format.AppendIndexItem(w.itemBuf[:0], item, w.itemSize)
	if err != nil {
		return err
	}

	w.itemBuf = itemBuf

	n, err := w.data.Write(payload)
	w.dataOffset += uint64(n)

	if err != nil {
		return w.markFailed(fmt.Errorf("failed to write data: %w", err))
	}

	if _, err := w.index.Write(itemBuf); err != nil {
		return w.markFailed(fmt.Errorf("failed to write index item: %w", err))
	}

	w.count++

	return nil
}

// markFailed flags the record as damaged. A partially written index item
// would shift every item after it, so the writer refuses further appends.
func (w *Writer) markFailed(err error) error {
	w.flags.RecordWriteError = true
	w.writeErr = err

	level.Error(w.logger).Log("msg", "record write failed", "item", w.count, "err", err)

	return err
}

// Len returns the number of items written so far.
func (w *Writer) Len() uint64 {
	return w.count
}

// Flags returns the flags the record will be stored with.
func (w *Writer) Flags() format.Flags {
	return w.flags.Flags()
}

// Close stores the final summary, closes the files and, if configured, writes
// the README. It is safe to call Close more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true
	errs := multierror.New[string]()

	summary := format.EncodeIndexSummary(w.summary())
	if _, err := w.index.WriteAt(summary, format.VersionSize); err != nil {
		errs.Add("summary", err)
	}

	if err := w.files.CloseAll(); err != nil {
		errs.Add("close", err)
	}

	if w.conf.Readme {
		if err := w.writeReadme(); err != nil {
			errs.Add("readme", err)
		}
	}

	if err := errs.Combined(); err != nil {
		level.Error(w.logger).Log("msg", "failed to close record", "err", err)
		return fmt.Errorf("failed to close record: %w", err)
	}

	level.Debug(w.logger).Log("msg", "record closed", "items", w.count, "flags", w.flags.Flags())

	return nil
}

func (w *Writer) writeReadme() error {
	content := fmt.Sprintf(
		"**THIS FILE IS AUTO GENERATED AND ITS FORMAT SHOULD NOT BE ASSUMED**\n"+
			"This directory was created with the protorecord library.\n"+
			"protorecord version: %s\n"+
			"Creation Time: %s\n"+
			"Items: %d\n",
		format.CurrentVersion,
		w.startTime.Format("Monday January 02, 2006 03:04:05 PM"),
		w.count,
	)

	return os.WriteFile(filepath.Join(w.path, readmeFileName), []byte(content), 0o644)
}
