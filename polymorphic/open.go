// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polymorphic

import (
	"reflect"

	"github.com/luxfi/polycodec"
)

var _ polycodec.Serializer = (*Open)(nil)

// Open serializes values of an interface type whose variants are registered
// in the Resolver carried by the encoder or decoder.
type Open struct {
	engine
}

// NewOpen returns a serializer for the family identified by base. serialName
// names the family on the wire and in descriptors.
func NewOpen(serialName string, base reflect.Type) *Open {
	value := polycodec.NewContextualDescriptor(serialName + "." + polycodec.ValueElement)
	return &Open{engine{
		base:   base,
		desc:   polycodec.NewPolymorphicDescriptor(serialName, value),
		lookup: openLookup{base: base},
	}}
}

// Base returns the interface type identifying the family.
func (o *Open) Base() reflect.Type {
	return o.base
}

func (o *Open) Descriptor() *polycodec.Descriptor {
	return o.desc
}

func (o *Open) Serialize(enc polycodec.Encoder, v any) error {
	return o.serialize(enc, v)
}

func (o *Open) Deserialize(dec polycodec.Decoder) (any, error) {
	return o.deserialize(dec)
}
