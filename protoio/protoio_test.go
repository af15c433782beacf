package protoio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestEncodeDecode(t *testing.T) {
	enc := NewEncoder[*wrapperspb.StringValue]()
	dec := NewDecoder(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

	b, err := enc.Encode(nil, wrapperspb.String("helloworld"))
	require.NoError(t, err)

	msg, err := dec.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "helloworld", msg.GetValue())
}

func TestEncode_Appends(t *testing.T) {
	enc := NewEncoder[*wrapperspb.UInt64Value]()

	prefix := []byte{0xFF}
	b, err := enc.Encode(prefix, wrapperspb.UInt64(7))
	require.NoError(t, err)

	want, err := proto.Marshal(wrapperspb.UInt64(7))
	require.NoError(t, err)

	assert.Equal(t, append([]byte{0xFF}, want...), b)
}

func TestDecode_DoesNotAlias(t *testing.T) {
	enc := NewEncoder[*wrapperspb.BytesValue]()
	dec := NewDecoder(func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} })

	b, err := enc.Encode(nil, wrapperspb.Bytes([]byte("abc")))
	require.NoError(t, err)

	msg, err := dec.Decode(b)
	require.NoError(t, err)

	for i := range b {
		b[i] = 0
	}

	assert.Equal(t, []byte("abc"), msg.GetValue())
}

func TestDecode_Invalid(t *testing.T) {
	dec := NewDecoder(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

	// A length-delimited field 1 claiming more bytes than available.
	_, err := dec.Decode([]byte{0x0A, 0x10, 'a'})
	assert.Error(t, err)
}
