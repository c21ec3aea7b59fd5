// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "fmt"

// Serializer converts values of one type to and from a structural encoding.
// Implementations must be safe for concurrent use.
type Serializer interface {
	Descriptor() *Descriptor
	Serialize(enc Encoder, v any) error
	Deserialize(dec Decoder) (any, error)
}

// Primitive serializers
var (
	StringSerializer  Serializer = stringSerializer{}
	Float64Serializer Serializer = float64Serializer{}
	Int64Serializer   Serializer = int64Serializer{}
	BoolSerializer    Serializer = boolSerializer{}
	BytesSerializer   Serializer = bytesSerializer{}
)

// As asserts that v has type T, reporting ErrUnexpectedType otherwise.
func As[T any](d *Descriptor, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, fmt.Errorf("%w: %s can't serialize %T", ErrUnexpectedType, d.Name(), v)
	}
	return t, nil
}

type stringSerializer struct{}

func (stringSerializer) Descriptor() *Descriptor { return StringDescriptor }

func (stringSerializer) Serialize(enc Encoder, v any) error {
	s, err := As[string](StringDescriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeString(s)
}

func (stringSerializer) Deserialize(dec Decoder) (any, error) {
	return dec.DecodeString()
}

type float64Serializer struct{}

func (float64Serializer) Descriptor() *Descriptor { return Float64Descriptor }

func (float64Serializer) Serialize(enc Encoder, v any) error {
	f, err := As[float64](Float64Descriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeFloat64(f)
}

func (float64Serializer) Deserialize(dec Decoder) (any, error) {
	return dec.DecodeFloat64()
}

type int64Serializer struct{}

func (int64Serializer) Descriptor() *Descriptor { return Int64Descriptor }

func (int64Serializer) Serialize(enc Encoder, v any) error {
	i, err := As[int64](Int64Descriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeInt64(i)
}

func (int64Serializer) Deserialize(dec Decoder) (any, error) {
	return dec.DecodeInt64()
}

type boolSerializer struct{}

func (boolSerializer) Descriptor() *Descriptor { return BoolDescriptor }

func (boolSerializer) Serialize(enc Encoder, v any) error {
	b, err := As[bool](BoolDescriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeBool(b)
}

func (boolSerializer) Deserialize(dec Decoder) (any, error) {
	return dec.DecodeBool()
}

type bytesSerializer struct{}

func (bytesSerializer) Descriptor() *Descriptor { return BytesDescriptor }

func (bytesSerializer) Serialize(enc Encoder, v any) error {
	b, err := As[[]byte](BytesDescriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeBytes(b)
}

func (bytesSerializer) Deserialize(dec Decoder) (any, error) {
	return dec.DecodeBytes()
}
