package main

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"

	"github.com/maxpoletaev/protorecord/record"
)

func setupLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger
}

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	logger := setupLogger()

	conf := record.DefaultConfig()
	conf.Logger = logger
	conf.MmapDataFile = opts.Mmap

	r, err := record.Open(opts.Args.Path, conf)
	if err != nil {
		level.Error(logger).Log("msg", "failed to open record", "path", opts.Args.Path, "err", err)
		os.Exit(1)
	}

	err = dump(os.Stdout, r, dumpOptions{
		payload: opts.Payload,
		limit:   opts.Limit,
	})

	if closeErr := r.Close(); closeErr != nil {
		level.Warn(logger).Log("msg", "failed to close record", "err", closeErr)
	}

	if err != nil {
		level.Error(logger).Log("msg", "failed to dump record", "path", opts.Args.Path, "err", err)
		os.Exit(1)
	}
}
