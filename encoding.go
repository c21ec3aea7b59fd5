// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "fmt"

// Encoder writes a single value in a format-specific way.
type Encoder interface {
	// Resolver returns the open registry serializers may consult, or nil.
	Resolver() Resolver

	BeginStructure(d *Descriptor) (StructEncoder, error)

	EncodeString(v string) error
	EncodeFloat64(v float64) error
	EncodeInt64(v int64) error
	EncodeBool(v bool) error
	EncodeBytes(v []byte) error
}

// StructEncoder writes the indexed elements of one structure.
type StructEncoder interface {
	EncodeStringElement(d *Descriptor, index int, v string) error
	EncodeFloat64Element(d *Descriptor, index int, v float64) error
	EncodeInt64Element(d *Descriptor, index int, v int64) error
	EncodeBoolElement(d *Descriptor, index int, v bool) error
	EncodeBytesElement(d *Descriptor, index int, v []byte) error
	EncodeSerializableElement(d *Descriptor, index int, s Serializer, v any) error

	EndStructure(d *Descriptor) error
}

// Decoder reads a single value in a format-specific way.
type Decoder interface {
	// Resolver returns the open registry serializers may consult, or nil.
	Resolver() Resolver

	BeginStructure(d *Descriptor) (StructDecoder, error)

	DecodeString() (string, error)
	DecodeFloat64() (float64, error)
	DecodeInt64() (int64, error)
	DecodeBool() (bool, error)
	DecodeBytes() ([]byte, error)
}

// StructDecoder reads the indexed elements of one structure.
type StructDecoder interface {
	// DecodeElementIndex reports which element comes next. Formats that
	// always deliver elements in declaration order may answer ReadAll once,
	// after which the caller reads every element in order.
	DecodeElementIndex(d *Descriptor) (ElementIndex, error)

	DecodeStringElement(d *Descriptor, index int) (string, error)
	DecodeFloat64Element(d *Descriptor, index int) (float64, error)
	DecodeInt64Element(d *Descriptor, index int) (int64, error)
	DecodeBoolElement(d *Descriptor, index int) (bool, error)
	DecodeBytesElement(d *Descriptor, index int) ([]byte, error)
	DecodeSerializableElement(d *Descriptor, index int, s Serializer) (any, error)

	// EndStructure finishes the structure, skipping unread elements if the
	// format allows it.
	EndStructure(d *Descriptor) error
}

// Step is the kind of answer given by StructDecoder.DecodeElementIndex.
type Step uint8

const (
	// StepIndex means ElementIndex.Index holds the next element.
	StepIndex Step = iota
	// StepReadAll means every element is available and should be read in
	// declaration order.
	StepReadAll
	// StepDone means no elements remain.
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepIndex:
		return "index"
	case StepReadAll:
		return "read-all"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("Step(%d)", uint8(s))
	}
}

// ElementIndex is the outcome of asking a StructDecoder for the next element.
type ElementIndex struct {
	Step  Step
	Index int
}

var (
	// ReadAll asks the caller to read every element in order.
	ReadAll = ElementIndex{Step: StepReadAll}
	// Done signals that no elements remain.
	Done = ElementIndex{Step: StepDone}
)

// Index returns the outcome for the element at i.
func Index(i int) ElementIndex {
	return ElementIndex{Step: StepIndex, Index: i}
}

func (e ElementIndex) String() string {
	if e.Step == StepIndex {
		return fmt.Sprintf("index %d", e.Index)
	}
	return e.Step.String()
}

// DecodeElements drives sd until it reports Done, calling fn for every
// element index it yields. ReadAll expands into every index of d in order.
// Indices outside of d fail with ErrElementOutOfRange.
func DecodeElements(sd StructDecoder, d *Descriptor, fn func(index int) error) error {
	for {
		next, err := sd.DecodeElementIndex(d)
		if err != nil {
			return err
		}
		switch next.Step {
		case StepDone:
			return nil
		case StepReadAll:
			for i := 0; i < d.NumElements(); i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		case StepIndex:
			if next.Index < 0 || next.Index >= d.NumElements() {
				return fmt.Errorf("%w: %d in %s", ErrElementOutOfRange, next.Index, d.Name())
			}
			if err := fn(next.Index); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %v", ErrInvalidStructureIndex, next)
		}
	}
}
