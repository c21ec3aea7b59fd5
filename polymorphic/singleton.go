// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polymorphic

import "github.com/luxfi/polycodec"

// Singleton serializes a stateless value as an empty structure. Decoding
// always returns the instance it was built with.
type Singleton[T any] struct {
	instance T
	desc     *polycodec.Descriptor
}

// NewSingleton returns a serializer for the single value instance.
func NewSingleton[T any](serialName string, instance T) *Singleton[T] {
	return &Singleton[T]{
		instance: instance,
		desc:     polycodec.NewSingletonDescriptor(serialName),
	}
}

// Instance returns the shared value.
func (s *Singleton[T]) Instance() T {
	return s.instance
}

func (s *Singleton[T]) Descriptor() *polycodec.Descriptor {
	return s.desc
}

func (s *Singleton[T]) Serialize(enc polycodec.Encoder, v any) error {
	if _, err := polycodec.As[T](s.desc, v); err != nil {
		return err
	}
	se, err := enc.BeginStructure(s.desc)
	if err != nil {
		return err
	}
	return se.EndStructure(s.desc)
}

func (s *Singleton[T]) Deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(s.desc)
	if err != nil {
		return nil, err
	}
	if err := sd.EndStructure(s.desc); err != nil {
		return nil, err
	}
	return s.instance, nil
}
