package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/twmb/murmur3"

	"github.com/maxpoletaev/protorecord/record"
)

type dumpOptions struct {
	payload string
	limit   uint64
}

func formatPayload(mode string, b []byte) string {
	switch mode {
	case "hex":
		return hex.EncodeToString(b)
	case "string":
		return strconv.Quote(string(b))
	case "murmur3":
		return fmt.Sprintf("%016x", murmur3.Sum64(b))
	default:
		return ""
	}
}

// dump prints the header of the record followed by one line per item.
func dump(out io.Writer, r *record.Reader, do dumpOptions) error {
	fmt.Fprintf(out, "version: %s\n", r.Version())
	fmt.Fprintf(out, "items: %d\n", r.Size())
	fmt.Fprintf(out, "flags: %s\n", r.Flags())

	if us, ok := r.StartTime(); ok {
		start := time.UnixMicro(int64(us)).UTC()
		fmt.Fprintf(out, "start_time: %s\n", start.Format(time.RFC3339Nano))
	}

	hasTimestamps := r.HasTimestamps()

	for n := uint64(0); r.HasNext(); n++ {
		if do.limit > 0 && n >= do.limit {
			break
		}

		item, err := r.NextItem()
		if err != nil {
			return fmt.Errorf("failed to read item %d: %w", n, err)
		}

		payload, err := record.TakeNext(r, record.Bytes)
		if err != nil {
			return fmt.Errorf("failed to read item %d: %w", n, err)
		}

		line := fmt.Sprintf("%d\toffset=%d\tsize=%d", n, item.Offset, item.Size)

		if hasTimestamps {
			line += fmt.Sprintf("\ttimestamp=%d", item.Timestamp)
		}

		if do.payload != "none" && do.payload != "" {
			line += "\tpayload=" + formatPayload(do.payload, payload)
		}

		fmt.Fprintln(out, line)
	}

	return nil
}
