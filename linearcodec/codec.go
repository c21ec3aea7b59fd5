// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linearcodec writes values as a flat big-endian byte stream. Every
// element of a structure is written in declaration order with no framing, so
// decoders always read structures in one pass.
package linearcodec

import (
	"errors"
	"fmt"

	"github.com/luxfi/polycodec"
)

var (
	ErrTrailingBytes = errors.New("trailing bytes after value")

	_ polycodec.Codec = (*Codec)(nil)
)

// Option configures a Codec.
type Option func(*Codec)

// WithMaxSize bounds the number of bytes Marshal may produce.
func WithMaxSize(maxSize int) Option {
	return func(c *Codec) {
		c.maxSize = maxSize
	}
}

// WithResolver sets the registry consulted for open-set variants.
func WithResolver(r polycodec.Resolver) Option {
	return func(c *Codec) {
		c.resolver = r
	}
}

// Codec is a linear codec for serialization
type Codec struct {
	maxSize  int
	resolver polycodec.Resolver
}

// New returns a new linear codec
func New(opts ...Option) *Codec {
	c := &Codec{
		maxSize: polycodec.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Marshal writes v using s
func (c *Codec) Marshal(s polycodec.Serializer, v any) ([]byte, error) {
	p := polycodec.NewPacker(c.maxSize)
	if err := s.Serialize(&encoder{p: p, resolver: c.resolver}, v); err != nil {
		return nil, err
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Bytes[:p.Offset], nil
}

// Unmarshal reads a value of s's type from b. All of b must be consumed.
func (c *Codec) Unmarshal(s polycodec.Serializer, b []byte) (any, error) {
	if len(b) > c.maxSize {
		return nil, polycodec.ErrMaxSizeExceeded
	}
	p := polycodec.PackerFromBytes(b)
	v, err := s.Deserialize(&decoder{p: p, resolver: c.resolver})
	if err != nil {
		return nil, err
	}
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, p.Remaining())
	}
	return v, nil
}

// Size returns the number of bytes Marshal would produce for v.
func (c *Codec) Size(s polycodec.Serializer, v any) (int, error) {
	z := &sizer{resolver: c.resolver}
	if err := s.Serialize(z, v); err != nil {
		return 0, err
	}
	return z.size, nil
}

// encoder writes to a Packer. It is its own StructEncoder because structures
// carry no framing.
type encoder struct {
	p        *polycodec.Packer
	resolver polycodec.Resolver
}

func (e *encoder) Resolver() polycodec.Resolver { return e.resolver }

func (e *encoder) BeginStructure(*polycodec.Descriptor) (polycodec.StructEncoder, error) {
	return e, e.p.Err
}

func (e *encoder) EncodeString(v string) error {
	e.p.PackStr(v)
	return e.p.Err
}

func (e *encoder) EncodeFloat64(v float64) error {
	e.p.PackFloat64(v)
	return e.p.Err
}

func (e *encoder) EncodeInt64(v int64) error {
	e.p.PackLong(uint64(v))
	return e.p.Err
}

func (e *encoder) EncodeBool(v bool) error {
	e.p.PackBool(v)
	return e.p.Err
}

func (e *encoder) EncodeBytes(v []byte) error {
	e.p.PackBytes(v)
	return e.p.Err
}

func (e *encoder) EncodeStringElement(_ *polycodec.Descriptor, _ int, v string) error {
	return e.EncodeString(v)
}

func (e *encoder) EncodeFloat64Element(_ *polycodec.Descriptor, _ int, v float64) error {
	return e.EncodeFloat64(v)
}

func (e *encoder) EncodeInt64Element(_ *polycodec.Descriptor, _ int, v int64) error {
	return e.EncodeInt64(v)
}

func (e *encoder) EncodeBoolElement(_ *polycodec.Descriptor, _ int, v bool) error {
	return e.EncodeBool(v)
}

func (e *encoder) EncodeBytesElement(_ *polycodec.Descriptor, _ int, v []byte) error {
	return e.EncodeBytes(v)
}

func (e *encoder) EncodeSerializableElement(_ *polycodec.Descriptor, _ int, s polycodec.Serializer, v any) error {
	if err := s.Serialize(e, v); err != nil {
		return err
	}
	return e.p.Err
}

func (e *encoder) EndStructure(*polycodec.Descriptor) error {
	return e.p.Err
}

// decoder reads from a Packer. Structures always answer ReadAll.
type decoder struct {
	p        *polycodec.Packer
	resolver polycodec.Resolver
}

func (d *decoder) Resolver() polycodec.Resolver { return d.resolver }

func (d *decoder) BeginStructure(*polycodec.Descriptor) (polycodec.StructDecoder, error) {
	return d, d.p.Err
}

func (d *decoder) DecodeElementIndex(*polycodec.Descriptor) (polycodec.ElementIndex, error) {
	return polycodec.ReadAll, d.p.Err
}

func (d *decoder) DecodeString() (string, error) {
	v := d.p.UnpackStr()
	return v, d.p.Err
}

func (d *decoder) DecodeFloat64() (float64, error) {
	v := d.p.UnpackFloat64()
	return v, d.p.Err
}

func (d *decoder) DecodeInt64() (int64, error) {
	v := int64(d.p.UnpackLong())
	return v, d.p.Err
}

func (d *decoder) DecodeBool() (bool, error) {
	v := d.p.UnpackBool()
	return v, d.p.Err
}

func (d *decoder) DecodeBytes() ([]byte, error) {
	v := d.p.UnpackBytes()
	return v, d.p.Err
}

func (d *decoder) DecodeStringElement(*polycodec.Descriptor, int) (string, error) {
	return d.DecodeString()
}

func (d *decoder) DecodeFloat64Element(*polycodec.Descriptor, int) (float64, error) {
	return d.DecodeFloat64()
}

func (d *decoder) DecodeInt64Element(*polycodec.Descriptor, int) (int64, error) {
	return d.DecodeInt64()
}

func (d *decoder) DecodeBoolElement(*polycodec.Descriptor, int) (bool, error) {
	return d.DecodeBool()
}

func (d *decoder) DecodeBytesElement(*polycodec.Descriptor, int) ([]byte, error) {
	return d.DecodeBytes()
}

func (d *decoder) DecodeSerializableElement(_ *polycodec.Descriptor, _ int, s polycodec.Serializer) (any, error) {
	v, err := s.Deserialize(d)
	if err != nil {
		return nil, err
	}
	return v, d.p.Err
}

func (d *decoder) EndStructure(*polycodec.Descriptor) error {
	return d.p.Err
}
