// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocodec

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/luxfi/polycodec"
)

// encoder appends one value to out as field. A root structure writes its
// elements straight into out instead of nesting them.
type encoder struct {
	config *config
	out    *[]byte
	field  protowire.Number
	root   bool
}

func (e *encoder) Resolver() polycodec.Resolver { return e.config.resolver }

func (e *encoder) BeginStructure(*polycodec.Descriptor) (polycodec.StructEncoder, error) {
	if e.root {
		return &structEncoder{config: e.config, buf: e.out}, nil
	}
	return &structEncoder{config: e.config, buf: new([]byte), parent: e.out, field: e.field}, nil
}

func (e *encoder) EncodeString(v string) error {
	*e.out = appendString(*e.out, e.field, v)
	return nil
}

func (e *encoder) EncodeFloat64(v float64) error {
	*e.out = appendFloat64(*e.out, e.field, v)
	return nil
}

func (e *encoder) EncodeInt64(v int64) error {
	*e.out = appendInt64(*e.out, e.field, v)
	return nil
}

func (e *encoder) EncodeBool(v bool) error {
	*e.out = appendBool(*e.out, e.field, v)
	return nil
}

func (e *encoder) EncodeBytes(v []byte) error {
	*e.out = appendBytes(*e.out, e.field, v)
	return nil
}

// structEncoder collects the fields of one message. A nested message is
// appended to parent when the structure ends.
type structEncoder struct {
	config *config
	buf    *[]byte
	parent *[]byte
	field  protowire.Number
}

func (s *structEncoder) EncodeStringElement(_ *polycodec.Descriptor, index int, v string) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	*s.buf = appendString(*s.buf, num, v)
	return nil
}

func (s *structEncoder) EncodeFloat64Element(_ *polycodec.Descriptor, index int, v float64) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	*s.buf = appendFloat64(*s.buf, num, v)
	return nil
}

func (s *structEncoder) EncodeInt64Element(_ *polycodec.Descriptor, index int, v int64) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	*s.buf = appendInt64(*s.buf, num, v)
	return nil
}

func (s *structEncoder) EncodeBoolElement(_ *polycodec.Descriptor, index int, v bool) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	*s.buf = appendBool(*s.buf, num, v)
	return nil
}

func (s *structEncoder) EncodeBytesElement(_ *polycodec.Descriptor, index int, v []byte) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	*s.buf = appendBytes(*s.buf, num, v)
	return nil
}

func (s *structEncoder) EncodeSerializableElement(_ *polycodec.Descriptor, index int, serializer polycodec.Serializer, v any) error {
	num, err := fieldNumber(index)
	if err != nil {
		return err
	}
	return serializer.Serialize(&encoder{config: s.config, out: s.buf, field: num}, v)
}

func (s *structEncoder) EndStructure(*polycodec.Descriptor) error {
	if s.parent != nil {
		*s.parent = appendBytes(*s.parent, s.field, *s.buf)
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendFloat64(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}
