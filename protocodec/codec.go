// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package protocodec writes values in the protocol buffers wire format.
// Element i of a structure is field number i+1. Nested structures are
// length-delimited submessages, strings and bytes are length-delimited,
// float64 is fixed64, and int64 and bool are (zigzag) varints.
//
// Fields are yielded in wire order, so a decoder may see them in any order.
package protocodec

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/luxfi/polycodec"
)

// rootField holds a primitive written outside of any structure.
const rootField protowire.Number = 1

var (
	ErrWireType     = errors.New("unexpected wire type")
	ErrMissingField = errors.New("missing field")

	_ polycodec.Codec = (*Codec)(nil)
)

type config struct {
	resolver polycodec.Resolver
	maxSize  int
}

// Option configures a Codec.
type Option func(*config)

// WithResolver sets the registry consulted for open-set variants.
func WithResolver(r polycodec.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithMaxSize bounds the size of encoded and decoded messages.
func WithMaxSize(maxSize int) Option {
	return func(c *config) {
		c.maxSize = maxSize
	}
}

// Codec marshals values to and from the protobuf wire format.
type Codec struct {
	config config
}

// New returns a protobuf wire codec
func New(opts ...Option) *Codec {
	c := &Codec{config: config{maxSize: polycodec.DefaultMaxSize}}
	for _, opt := range opts {
		opt(&c.config)
	}
	return c
}

// Marshal writes v using s
func (c *Codec) Marshal(s polycodec.Serializer, v any) ([]byte, error) {
	var buf []byte
	if err := s.Serialize(&encoder{config: &c.config, out: &buf, field: rootField, root: true}, v); err != nil {
		return nil, err
	}
	if len(buf) > c.config.maxSize {
		return nil, polycodec.ErrMaxSizeExceeded
	}
	return buf, nil
}

// Unmarshal reads a value of s's type from b.
func (c *Codec) Unmarshal(s polycodec.Serializer, b []byte) (any, error) {
	if len(b) > c.config.maxSize {
		return nil, polycodec.ErrMaxSizeExceeded
	}
	return s.Deserialize(&decoder{config: &c.config, msg: b, root: true})
}

func fieldNumber(index int) (protowire.Number, error) {
	if index < 0 || index >= math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", polycodec.ErrElementOutOfRange, index)
	}
	num := protowire.Number(index + 1)
	if !num.IsValid() {
		return 0, fmt.Errorf("%w: field %d", polycodec.ErrElementOutOfRange, num)
	}
	return num, nil
}
