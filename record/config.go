package record

import (
	"time"

	"github.com/go-kit/log"
)

const defaultBufferSize = 64 * 1024

type Config struct {
	// Logger is used to report opening, closing and failures of the reader.
	// Defaults to a no-op logger.
	Logger log.Logger
	// MmapDataFile maps the data file into memory instead of reading it with
	// pread. Useful for large logs that are read many times.
	MmapDataFile bool
	// Compatibility decides which versions can be read. Defaults to
	// AcceptAnyVersion.
	Compatibility CompatibilityPolicy
	// BufferSize is the initial size of the payload scratch buffer. The buffer
	// grows on demand. Defaults to 64KB.
	BufferSize int
}

func DefaultConfig() Config {
	return Config{
		Logger:        log.NewNopLogger(),
		Compatibility: AcceptAnyVersion,
		BufferSize:    defaultBufferSize,
	}
}

func (c *Config) setDefaults() {
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}

	if c.Compatibility == nil {
		c.Compatibility = AcceptAnyVersion
	}

	if c.BufferSize <= 0 {
		c.BufferSize = defaultBufferSize
	}
}

type WriterConfig struct {
	// Logger is used to report write failures. Defaults to a no-op logger.
	Logger log.Logger
	// Timestamps stores the time elapsed since the start of the recording
	// with every item, which makes each index item 8 bytes larger.
	Timestamps bool
	// Overwrite allows reusing an existing record directory. Existing index
	// and data files are truncated.
	Overwrite bool
	// Readme writes a human-readable README.md into the record on Close.
	Readme bool
	// Clock returns the current time. The monotonic reading of the returned
	// value is used for item timestamps. Defaults to time.Now.
	Clock func() time.Time
}

func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		Logger: log.NewNopLogger(),
		Readme: true,
		Clock:  time.Now,
	}
}

func (c *WriterConfig) setDefaults() {
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}

	if c.Clock == nil {
		c.Clock = time.Now
	}
}
