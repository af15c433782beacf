package record

import (
	"bytes"
)

// Decoder turns the raw bytes of a payload into a message. The slice passed
// to Decode is only valid for the duration of the call and must not be
// retained.
type Decoder[T any] interface {
	Decode(b []byte) (T, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc[T any] func(b []byte) (T, error)

func (f DecoderFunc[T]) Decode(b []byte) (T, error) {
	return f(b)
}

// Bytes is a decoder that returns a copy of the raw payload.
var Bytes Decoder[[]byte] = DecoderFunc[[]byte](func(b []byte) ([]byte, error) {
	return bytes.Clone(b), nil
})

// Encoder serializes a message by appending it to dst and returning the
// extended slice, so that the writer can reuse a single buffer.
type Encoder[T any] interface {
	Encode(dst []byte, msg T) ([]byte, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc[T any] func(dst []byte, msg T) ([]byte, error)

func (f EncoderFunc[T]) Encode(dst []byte, msg T) ([]byte, error) {
	return f(dst, msg)
}

// RawBytes is an encoder that stores the bytes as is.
var RawBytes Encoder[[]byte] = EncoderFunc[[]byte](func(dst []byte, msg []byte) ([]byte, error) {
	return append(dst, msg...), nil
})
