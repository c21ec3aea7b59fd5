// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsoncodec

import "github.com/luxfi/polycodec"

// encoder stores one value into out.
type encoder struct {
	config *config
	out    *any
}

func (e *encoder) Resolver() polycodec.Resolver { return e.config.resolver }

func (e *encoder) BeginStructure(*polycodec.Descriptor) (polycodec.StructEncoder, error) {
	obj := &object{}
	*e.out = obj
	return &structEncoder{config: e.config, obj: obj}, nil
}

func (e *encoder) EncodeString(v string) error {
	*e.out = v
	return nil
}

func (e *encoder) EncodeFloat64(v float64) error {
	*e.out = v
	return nil
}

func (e *encoder) EncodeInt64(v int64) error {
	*e.out = v
	return nil
}

func (e *encoder) EncodeBool(v bool) error {
	*e.out = v
	return nil
}

func (e *encoder) EncodeBytes(v []byte) error {
	*e.out = v
	return nil
}

type structEncoder struct {
	config *config
	obj    *object
}

func (s *structEncoder) put(d *polycodec.Descriptor, index int, v any) error {
	name, err := d.ElementName(index)
	if err != nil {
		return err
	}
	s.obj.set(name, v)
	return nil
}

func (s *structEncoder) EncodeStringElement(d *polycodec.Descriptor, index int, v string) error {
	return s.put(d, index, v)
}

func (s *structEncoder) EncodeFloat64Element(d *polycodec.Descriptor, index int, v float64) error {
	return s.put(d, index, v)
}

func (s *structEncoder) EncodeInt64Element(d *polycodec.Descriptor, index int, v int64) error {
	return s.put(d, index, v)
}

func (s *structEncoder) EncodeBoolElement(d *polycodec.Descriptor, index int, v bool) error {
	return s.put(d, index, v)
}

func (s *structEncoder) EncodeBytesElement(d *polycodec.Descriptor, index int, v []byte) error {
	return s.put(d, index, v)
}

func (s *structEncoder) EncodeSerializableElement(d *polycodec.Descriptor, index int, serializer polycodec.Serializer, v any) error {
	var slot any
	if err := serializer.Serialize(&encoder{config: s.config, out: &slot}, v); err != nil {
		return err
	}
	return s.put(d, index, slot)
}

func (*structEncoder) EndStructure(*polycodec.Descriptor) error {
	return nil
}
