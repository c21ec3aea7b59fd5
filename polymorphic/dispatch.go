// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polymorphic

import (
	"fmt"
	"reflect"

	"github.com/luxfi/polycodec"
)

// lookup resolves variant serializers for one polymorphic family.
type lookup interface {
	forType(r polycodec.Resolver, t reflect.Type) (polycodec.Serializer, bool, error)
	forName(r polycodec.Resolver, name string) (polycodec.Serializer, bool)
}

// engine writes a value as the two-element structure
// [discriminant, payload] and reads it back.
type engine struct {
	base   reflect.Type
	desc   *polycodec.Descriptor
	lookup lookup
}

func (e *engine) resolveForEncode(r polycodec.Resolver, v any) (polycodec.Serializer, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %v", polycodec.ErrMarshalNil, e.base)
	}
	t := reflect.TypeOf(v)
	s, ok, err := e.lookup.forType(r, t)
	if err != nil {
		return nil, err
	}
	if ok {
		return s, nil
	}
	return nil, &polycodec.UnregisteredSubtypeError{Type: t, Base: e.base}
}

func (e *engine) resolveForDecode(r polycodec.Resolver, name string) (polycodec.Serializer, error) {
	if s, ok := e.lookup.forName(r, name); ok {
		return s, nil
	}
	return nil, &polycodec.UnregisteredSubtypeError{Name: name, Base: e.base}
}

func (e *engine) serialize(enc polycodec.Encoder, v any) error {
	s, err := e.resolveForEncode(enc.Resolver(), v)
	if err != nil {
		return err
	}

	se, err := enc.BeginStructure(e.desc)
	if err != nil {
		return err
	}
	if err := se.EncodeStringElement(e.desc, polycodec.DiscriminantIndex, s.Descriptor().Name()); err != nil {
		return err
	}
	if err := se.EncodeSerializableElement(e.desc, polycodec.ValueIndex, s, v); err != nil {
		return err
	}
	return se.EndStructure(e.desc)
}

func (e *engine) deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(e.desc)
	if err != nil {
		return nil, err
	}

	var (
		name     string
		haveName bool
		value    any
		decoded  bool
	)
	readValue := func() error {
		s, err := e.resolveForDecode(dec.Resolver(), name)
		if err != nil {
			return err
		}
		value, err = sd.DecodeSerializableElement(e.desc, polycodec.ValueIndex, s)
		if err != nil {
			return err
		}
		decoded = true
		return nil
	}

loop:
	for {
		next, err := sd.DecodeElementIndex(e.desc)
		if err != nil {
			return nil, err
		}
		switch {
		case next.Step == polycodec.StepDone:
			break loop
		case decoded:
			return nil, fmt.Errorf("%w: got %v in %s after the payload",
				polycodec.ErrInvalidStructureIndex, next, e.desc.Name())
		case next.Step == polycodec.StepReadAll:
			name, err = sd.DecodeStringElement(e.desc, polycodec.DiscriminantIndex)
			if err != nil {
				return nil, err
			}
			haveName = true
			if err := readValue(); err != nil {
				return nil, err
			}
			break loop
		case next.Step == polycodec.StepIndex && next.Index == polycodec.DiscriminantIndex:
			name, err = sd.DecodeStringElement(e.desc, polycodec.DiscriminantIndex)
			if err != nil {
				return nil, err
			}
			haveName = true
		case next.Step == polycodec.StepIndex && next.Index == polycodec.ValueIndex:
			if !haveName {
				return nil, fmt.Errorf("%w: decoding %s", polycodec.ErrPayloadBeforeDiscriminant, e.desc.Name())
			}
			if err := readValue(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: got %v in %s, expected 0, 1, read-all or done",
				polycodec.ErrInvalidStructureIndex, next, e.desc.Name())
		}
	}

	if err := sd.EndStructure(e.desc); err != nil {
		return nil, err
	}
	if !decoded {
		if !haveName {
			name = polycodec.UnknownDiscriminant
		}
		return nil, fmt.Errorf("%w: %q in %s", polycodec.ErrMissingPolymorphicValue, name, e.desc.Name())
	}
	return value, nil
}

// openLookup resolves every variant through the resolver alone.
type openLookup struct {
	base reflect.Type
}

func (l openLookup) forType(r polycodec.Resolver, t reflect.Type) (polycodec.Serializer, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	s, ok := r.LookupByType(l.base, t)
	return s, ok, nil
}

func (l openLookup) forName(r polycodec.Resolver, name string) (polycodec.Serializer, bool) {
	if r == nil {
		return nil, false
	}
	return r.LookupByName(l.base, name)
}
