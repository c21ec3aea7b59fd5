// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package protocodec

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/luxfi/polycodec"
)

// field is a decoded field value. For length-delimited fields data holds
// the payload without its length prefix.
type field struct {
	typ  protowire.Type
	data []byte
}

// next consumes one field from msg.
func next(msg []byte) (protowire.Number, field, int, error) {
	num, typ, n := protowire.ConsumeTag(msg)
	if n < 0 {
		return 0, field{}, 0, protowire.ParseError(n)
	}
	m := protowire.ConsumeFieldValue(num, typ, msg[n:])
	if m < 0 {
		return 0, field{}, 0, protowire.ParseError(m)
	}
	raw := msg[n : n+m]
	switch typ {
	case protowire.BytesType:
		data, _ := protowire.ConsumeBytes(raw)
		return num, field{typ: typ, data: data}, n + m, nil
	case protowire.VarintType, protowire.Fixed64Type, protowire.Fixed32Type:
		return num, field{typ: typ, data: raw}, n + m, nil
	default:
		return 0, field{}, 0, fmt.Errorf("%w: %d for field %d", ErrWireType, typ, num)
	}
}

// find returns the last occurrence of num in msg, matching protobuf's
// last-one-wins rule for scalar fields.
func find(msg []byte, num protowire.Number) (field, error) {
	var (
		found field
		ok    bool
	)
	for len(msg) > 0 {
		n, f, size, err := next(msg)
		if err != nil {
			return field{}, err
		}
		if n == num {
			found, ok = f, true
		}
		msg = msg[size:]
	}
	if !ok {
		return field{}, fmt.Errorf("%w: %d", ErrMissingField, num)
	}
	return found, nil
}

func (f field) want(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: want %d, got %d", ErrWireType, typ, f.typ)
	}
	return nil
}

func (f field) asString() (string, error) {
	if err := f.want(protowire.BytesType); err != nil {
		return "", err
	}
	return string(f.data), nil
}

func (f field) asBytes() ([]byte, error) {
	if err := f.want(protowire.BytesType); err != nil {
		return nil, err
	}
	return append([]byte{}, f.data...), nil
}

func (f field) asFloat64() (float64, error) {
	if err := f.want(protowire.Fixed64Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed64(f.data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), nil
}

func (f field) asVarint() (uint64, error) {
	if err := f.want(protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(f.data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return v, nil
}

func (f field) asInt64() (int64, error) {
	v, err := f.asVarint()
	return protowire.DecodeZigZag(v), err
}

func (f field) asBool() (bool, error) {
	v, err := f.asVarint()
	return protowire.DecodeBool(v), err
}

// decoder reads one value. The root decoder owns the whole message; every
// other decoder reads a single field.
type decoder struct {
	config *config
	msg    []byte
	root   bool
	field  field
}

func (d *decoder) Resolver() polycodec.Resolver { return d.config.resolver }

func (d *decoder) value() (field, error) {
	if d.root {
		return find(d.msg, rootField)
	}
	return d.field, nil
}

func (d *decoder) BeginStructure(*polycodec.Descriptor) (polycodec.StructDecoder, error) {
	if d.root {
		return &structDecoder{config: d.config, msg: d.msg, last: -1}, nil
	}
	if err := d.field.want(protowire.BytesType); err != nil {
		return nil, err
	}
	return &structDecoder{config: d.config, msg: d.field.data, last: -1}, nil
}

func (d *decoder) DecodeString() (string, error) {
	f, err := d.value()
	if err != nil {
		return "", err
	}
	return f.asString()
}

func (d *decoder) DecodeFloat64() (float64, error) {
	f, err := d.value()
	if err != nil {
		return 0, err
	}
	return f.asFloat64()
}

func (d *decoder) DecodeInt64() (int64, error) {
	f, err := d.value()
	if err != nil {
		return 0, err
	}
	return f.asInt64()
}

func (d *decoder) DecodeBool() (bool, error) {
	f, err := d.value()
	if err != nil {
		return false, err
	}
	return f.asBool()
}

func (d *decoder) DecodeBytes() ([]byte, error) {
	f, err := d.value()
	if err != nil {
		return nil, err
	}
	return f.asBytes()
}

// structDecoder yields the fields of one message in wire order.
type structDecoder struct {
	config  *config
	msg     []byte
	pos     int
	last    int
	current field
}

func (s *structDecoder) DecodeElementIndex(*polycodec.Descriptor) (polycodec.ElementIndex, error) {
	if s.pos >= len(s.msg) {
		return polycodec.Done, nil
	}
	num, f, n, err := next(s.msg[s.pos:])
	if err != nil {
		return polycodec.Done, err
	}
	s.pos += n
	s.last = int(num) - 1
	s.current = f
	return polycodec.Index(s.last), nil
}

func (s *structDecoder) element(index int) (field, error) {
	if index == s.last {
		return s.current, nil
	}
	num, err := fieldNumber(index)
	if err != nil {
		return field{}, err
	}
	return find(s.msg, num)
}

func (s *structDecoder) DecodeStringElement(_ *polycodec.Descriptor, index int) (string, error) {
	f, err := s.element(index)
	if err != nil {
		return "", err
	}
	return f.asString()
}

func (s *structDecoder) DecodeFloat64Element(_ *polycodec.Descriptor, index int) (float64, error) {
	f, err := s.element(index)
	if err != nil {
		return 0, err
	}
	return f.asFloat64()
}

func (s *structDecoder) DecodeInt64Element(_ *polycodec.Descriptor, index int) (int64, error) {
	f, err := s.element(index)
	if err != nil {
		return 0, err
	}
	return f.asInt64()
}

func (s *structDecoder) DecodeBoolElement(_ *polycodec.Descriptor, index int) (bool, error) {
	f, err := s.element(index)
	if err != nil {
		return false, err
	}
	return f.asBool()
}

func (s *structDecoder) DecodeBytesElement(_ *polycodec.Descriptor, index int) ([]byte, error) {
	f, err := s.element(index)
	if err != nil {
		return nil, err
	}
	return f.asBytes()
}

func (s *structDecoder) DecodeSerializableElement(_ *polycodec.Descriptor, index int, serializer polycodec.Serializer) (any, error) {
	f, err := s.element(index)
	if err != nil {
		return nil, err
	}
	return serializer.Deserialize(&decoder{config: s.config, field: f})
}

// EndStructure ignores fields that were never requested.
func (*structDecoder) EndStructure(*polycodec.Descriptor) error {
	return nil
}
