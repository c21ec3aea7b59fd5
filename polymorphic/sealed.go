// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polymorphic

import (
	"fmt"
	"reflect"

	"github.com/luxfi/polycodec"
)

var _ polycodec.Serializer = (*Sealed)(nil)

// Variant is one entry of a closed family.
type Variant struct {
	Type       reflect.Type
	Serializer polycodec.Serializer
}

// Sealed serializes values of an interface type whose variants are all
// known when the serializer is built. The variant tables never change after
// construction. Lookups that miss fall through to the Resolver so abstract
// branches of an otherwise closed hierarchy can still be registered.
type Sealed struct {
	engine
	variants []Variant
	byType   map[reflect.Type]polycodec.Serializer
	byName   map[string]polycodec.Serializer
}

// NewSealed builds a closed-family serializer from two parallel slices:
// types[i] is serialized by serializers[i] under the name
// serializers[i].Descriptor().Name().
func NewSealed(
	serialName string,
	base reflect.Type,
	types []reflect.Type,
	serializers []polycodec.Serializer,
) (*Sealed, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base type for %s", polycodec.ErrUnsupportedType, serialName)
	}
	if len(types) != len(serializers) {
		return nil, fmt.Errorf("%w: %d types, %d serializers in %s",
			polycodec.ErrConstructionMismatch, len(types), len(serializers), serialName)
	}

	s := &Sealed{
		variants: make([]Variant, len(types)),
		byType:   make(map[reflect.Type]polycodec.Serializer, len(types)),
		byName:   make(map[string]polycodec.Serializer, len(types)),
	}
	descriptors := make([]*polycodec.Descriptor, len(types))
	for i, t := range types {
		serializer := serializers[i]
		if t == nil || serializer == nil {
			return nil, fmt.Errorf("%w: nil variant at %d in %s", polycodec.ErrUnsupportedType, i, serialName)
		}
		if base.Kind() == reflect.Interface && !t.Implements(base) {
			return nil, fmt.Errorf("%w: %v does not implement %v", polycodec.ErrDoesNotImplementInterface, t, base)
		}
		name := serializer.Descriptor().Name()
		if _, exists := s.byType[t]; exists {
			return nil, fmt.Errorf("%w: type %v already registered in %s", polycodec.ErrDuplicateVariant, t, serialName)
		}
		if _, exists := s.byName[name]; exists {
			return nil, fmt.Errorf("%w: name %q already registered in %s", polycodec.ErrDuplicateVariant, name, serialName)
		}
		s.byType[t] = serializer
		s.byName[name] = serializer
		s.variants[i] = Variant{Type: t, Serializer: serializer}
		descriptors[i] = serializer.Descriptor()
	}

	value := polycodec.NewSealedDescriptor(serialName+"."+polycodec.ValueElement, descriptors...)
	s.engine = engine{
		base:   base,
		desc:   polycodec.NewPolymorphicDescriptor(serialName, value),
		lookup: sealedLookup{s: s, open: openLookup{base: base}},
	}
	return s, nil
}

// MustSealed is like NewSealed but panics on error. It suits package-level
// variable initialization.
func MustSealed(
	serialName string,
	base reflect.Type,
	types []reflect.Type,
	serializers []polycodec.Serializer,
) *Sealed {
	s, err := NewSealed(serialName, base, types, serializers)
	if err != nil {
		panic(err)
	}
	return s
}

// Base returns the interface type identifying the family.
func (s *Sealed) Base() reflect.Type {
	return s.base
}

// Len returns the number of variants.
func (s *Sealed) Len() int {
	return len(s.variants)
}

// Variants returns the variants in construction order.
func (s *Sealed) Variants() []Variant {
	variants := make([]Variant, len(s.variants))
	copy(variants, s.variants)
	return variants
}

// SerializerForType returns the variant serializer registered for t,
// ignoring any resolver.
func (s *Sealed) SerializerForType(t reflect.Type) (polycodec.Serializer, bool) {
	serializer, ok := s.byType[t]
	return serializer, ok
}

// SerializerForName returns the variant serializer registered under name,
// ignoring any resolver.
func (s *Sealed) SerializerForName(name string) (polycodec.Serializer, bool) {
	serializer, ok := s.byName[name]
	return serializer, ok
}

func (s *Sealed) Descriptor() *polycodec.Descriptor {
	return s.desc
}

func (s *Sealed) Serialize(enc polycodec.Encoder, v any) error {
	return s.serialize(enc, v)
}

func (s *Sealed) Deserialize(dec polycodec.Decoder) (any, error) {
	return s.deserialize(dec)
}

type sealedLookup struct {
	s    *Sealed
	open openLookup
}

// forType rejects a resolved serializer whose name belongs to a closed
// variant, since decoding that name would pick the closed variant instead.
func (l sealedLookup) forType(r polycodec.Resolver, t reflect.Type) (polycodec.Serializer, bool, error) {
	if serializer, ok := l.s.byType[t]; ok {
		return serializer, true, nil
	}
	serializer, ok, err := l.open.forType(r, t)
	if err != nil || !ok {
		return nil, false, err
	}
	name := serializer.Descriptor().Name()
	if _, exists := l.s.byName[name]; exists {
		return nil, false, fmt.Errorf("%w: %v resolves to name %q, already used by a closed variant of %v",
			polycodec.ErrDuplicateVariant, t, name, l.s.base)
	}
	return serializer, true, nil
}

func (l sealedLookup) forName(r polycodec.Resolver, name string) (polycodec.Serializer, bool) {
	if serializer, ok := l.s.byName[name]; ok {
		return serializer, true
	}
	return l.open.forName(r, name)
}
