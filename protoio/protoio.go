// Package protoio adapts protobuf messages to the payload codecs of a record,
// so that a record can store and return typed messages.
package protoio

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/runtime/protoiface"
)

// Decoder unmarshals payloads into new messages of type T.
type Decoder[T proto.Message] struct {
	new  func() T
	opts proto.UnmarshalOptions
}

// NewDecoder returns a decoder that allocates every message with newMsg.
func NewDecoder[T proto.Message](newMsg func() T) *Decoder[T] {
	return &Decoder[T]{
		new: newMsg,
	}
}

// Decode unmarshals b into a fresh message. The message does not reference
// b after the call returns.
func (d *Decoder[T]) Decode(b []byte) (T, error) {
	msg := d.new()

	if err := d.opts.Unmarshal(b, msg); err != nil {
		var empty T
		return empty, fmt.Errorf("proto unmarshaling failed: %w", err)
	}

	return msg, nil
}

// Encoder marshals messages of type T. Map fields are sorted, so that equal
// messages always produce equal payloads.
type Encoder[T proto.Message] struct {
	opts proto.MarshalOptions
}

func NewEncoder[T proto.Message]() *Encoder[T] {
	return &Encoder[T]{
		opts: proto.MarshalOptions{Deterministic: true},
	}
}

// Encode appends the marshaled message to dst.
func (e *Encoder[T]) Encode(dst []byte, msg T) ([]byte, error) {
	out, err := e.opts.MarshalState(protoiface.MarshalInput{
		Message: msg.ProtoReflect(),
		Buf:     dst,
	})
	if err != nil {
		return dst, fmt.Errorf("proto marshaling failed: %w", err)
	}

	// The dst buffer could have been resized by the MarshalState call,
	// so the caller has to continue with the returned one.
	return out.Buf, nil
}
