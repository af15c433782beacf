package protoio_test

import (
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/maxpoletaev/protorecord/protoio"
	"github.com/maxpoletaev/protorecord/record"
)

var (
	_ record.Encoder[*wrapperspb.StringValue] = protoio.NewEncoder[*wrapperspb.StringValue]()
	_ record.Decoder[*wrapperspb.StringValue] = protoio.NewDecoder(newStringValue)
)

func newStringValue() *wrapperspb.StringValue {
	return &wrapperspb.StringValue{}
}

func Example() {
	dir, err := os.MkdirTemp("", "protoio")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "recording")

	conf := record.DefaultWriterConfig()
	conf.Readme = false

	w, err := record.Create(path, conf)
	if err != nil {
		panic(err)
	}

	enc := protoio.NewEncoder[*wrapperspb.StringValue]()
	for _, s := range []string{"alpha", "beta"} {
		if err := record.Append(w, enc, wrapperspb.String(s)); err != nil {
			panic(err)
		}
	}

	if err := w.Close(); err != nil {
		panic(err)
	}

	r, err := record.Open(path, record.DefaultConfig())
	if err != nil {
		panic(err)
	}
	defer r.Close()

	dec := protoio.NewDecoder(newStringValue)
	for r.HasNext() {
		msg, err := record.TakeNext(r, dec)
		if err != nil {
			panic(err)
		}

		fmt.Println(msg.GetValue())
	}

	// Output:
	// alpha
	// beta
}
