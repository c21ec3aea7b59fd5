// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsoncodec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/luxfi/polycodec"
)

// decoder reads one parsed JSON value.
type decoder struct {
	config *config
	node   any
}

func (d *decoder) Resolver() polycodec.Resolver { return d.config.resolver }

func (d *decoder) BeginStructure(desc *polycodec.Descriptor) (polycodec.StructDecoder, error) {
	obj, ok := d.node.(*object)
	if !ok {
		return nil, fmt.Errorf("%w decoding %s", unexpected("object", d.node), desc.Name())
	}
	return &structDecoder{config: d.config, obj: obj, last: -1}, nil
}

func (d *decoder) DecodeString() (string, error) {
	s, ok := d.node.(string)
	if !ok {
		return "", unexpected("string", d.node)
	}
	return s, nil
}

func (d *decoder) DecodeFloat64() (float64, error) {
	n, ok := d.node.(json.Number)
	if !ok {
		return 0, unexpected("number", d.node)
	}
	return n.Float64()
}

func (d *decoder) DecodeInt64() (int64, error) {
	n, ok := d.node.(json.Number)
	if !ok {
		return 0, unexpected("number", d.node)
	}
	return n.Int64()
}

func (d *decoder) DecodeBool() (bool, error) {
	b, ok := d.node.(bool)
	if !ok {
		return false, unexpected("bool", d.node)
	}
	return b, nil
}

func (d *decoder) DecodeBytes() ([]byte, error) {
	s, ok := d.node.(string)
	if !ok {
		return nil, unexpected("base64 string", d.node)
	}
	return base64.StdEncoding.DecodeString(s)
}

// structDecoder yields the keys of an object in document order.
type structDecoder struct {
	config  *config
	obj     *object
	pos     int
	last    int
	current any
}

func (s *structDecoder) DecodeElementIndex(d *polycodec.Descriptor) (polycodec.ElementIndex, error) {
	for s.pos < len(s.obj.members) {
		m := s.obj.members[s.pos]
		s.pos++
		index := d.ElementIndex(m.key)
		if index == polycodec.UnknownName {
			if s.config.ignoreUnknownKeys {
				continue
			}
			return polycodec.Done, fmt.Errorf("%w: %q in %s", polycodec.ErrUnknownElement, m.key, d.Name())
		}
		s.last = index
		s.current = m.value
		return polycodec.Index(index), nil
	}
	return polycodec.Done, nil
}

// element returns the value of the element at index, preferring the member
// most recently yielded by DecodeElementIndex.
func (s *structDecoder) element(d *polycodec.Descriptor, index int) (*decoder, error) {
	if index == s.last {
		return &decoder{config: s.config, node: s.current}, nil
	}
	name, err := d.ElementName(index)
	if err != nil {
		return nil, err
	}
	v, ok := s.obj.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingElement, name, d.Name())
	}
	return &decoder{config: s.config, node: v}, nil
}

func (s *structDecoder) DecodeStringElement(d *polycodec.Descriptor, index int) (string, error) {
	e, err := s.element(d, index)
	if err != nil {
		return "", err
	}
	return e.DecodeString()
}

func (s *structDecoder) DecodeFloat64Element(d *polycodec.Descriptor, index int) (float64, error) {
	e, err := s.element(d, index)
	if err != nil {
		return 0, err
	}
	return e.DecodeFloat64()
}

func (s *structDecoder) DecodeInt64Element(d *polycodec.Descriptor, index int) (int64, error) {
	e, err := s.element(d, index)
	if err != nil {
		return 0, err
	}
	return e.DecodeInt64()
}

func (s *structDecoder) DecodeBoolElement(d *polycodec.Descriptor, index int) (bool, error) {
	e, err := s.element(d, index)
	if err != nil {
		return false, err
	}
	return e.DecodeBool()
}

func (s *structDecoder) DecodeBytesElement(d *polycodec.Descriptor, index int) ([]byte, error) {
	e, err := s.element(d, index)
	if err != nil {
		return nil, err
	}
	return e.DecodeBytes()
}

func (s *structDecoder) DecodeSerializableElement(d *polycodec.Descriptor, index int, serializer polycodec.Serializer) (any, error) {
	e, err := s.element(d, index)
	if err != nil {
		return nil, err
	}
	return serializer.Deserialize(e)
}

// EndStructure leaves unread keys untouched.
func (*structDecoder) EndStructure(*polycodec.Descriptor) error {
	return nil
}
