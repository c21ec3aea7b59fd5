// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "fmt"

// UnknownName is returned by ElementIndex when no element has the given name.
const UnknownName = -1

// Kind is the structural kind of a serializable type.
type Kind uint8

const (
	KindString Kind = iota
	KindFloat64
	KindInt64
	KindBool
	KindBytes
	KindStruct
	// KindSingleton marks a stateless type with exactly one instance.
	KindSingleton
	// KindSealed aggregates the descriptors of every variant of a closed
	// polymorphic family.
	KindSealed
	// KindPolymorphic is the discriminant + payload structure written by the
	// dispatch engine.
	KindPolymorphic
	// KindContextual describes a payload whose shape is only known once a
	// serializer has been resolved at runtime.
	KindContextual
)

var kindNames = [...]string{
	KindString:      "STRING",
	KindFloat64:     "FLOAT64",
	KindInt64:       "INT64",
	KindBool:        "BOOL",
	KindBytes:       "BYTES",
	KindStruct:      "STRUCT",
	KindSingleton:   "SINGLETON",
	KindSealed:      "SEALED",
	KindPolymorphic: "POLYMORPHIC",
	KindContextual:  "CONTEXTUAL",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Primitive reports whether values of this kind are written without a
// surrounding structure.
func (k Kind) Primitive() bool {
	return k <= KindBytes
}

// Element is a named child of a composite descriptor.
type Element struct {
	Name       string
	Descriptor *Descriptor
}

// Descriptor describes the shape of a serializable type: its serial name,
// its kind and, for composite kinds, its ordered elements.
//
// Descriptors are immutable once built and may be shared freely.
type Descriptor struct {
	name     string
	kind     Kind
	elements []Element
}

// Primitive descriptors
var (
	StringDescriptor  = &Descriptor{name: "string", kind: KindString}
	Float64Descriptor = &Descriptor{name: "float64", kind: KindFloat64}
	Int64Descriptor   = &Descriptor{name: "int64", kind: KindInt64}
	BoolDescriptor    = &Descriptor{name: "bool", kind: KindBool}
	BytesDescriptor   = &Descriptor{name: "bytes", kind: KindBytes}
)

// NewStructDescriptor returns a descriptor for a record with the given
// elements.
func NewStructDescriptor(name string, elements ...Element) *Descriptor {
	return &Descriptor{
		name:     name,
		kind:     KindStruct,
		elements: elements,
	}
}

// NewSingletonDescriptor returns the descriptor of a single-instance type.
// It has one element named after the type whose descriptor is the singleton
// descriptor itself.
func NewSingletonDescriptor(name string) *Descriptor {
	return &Descriptor{
		name:     name,
		kind:     KindSingleton,
		elements: []Element{{Name: name}},
	}
}

// NewSealedDescriptor aggregates the descriptors of a closed variant set.
// Elements keep the order of variants and are keyed by each variant's own
// name. Duplicate names are not rejected here.
func NewSealedDescriptor(name string, variants ...*Descriptor) *Descriptor {
	elements := make([]Element, len(variants))
	for i, v := range variants {
		elements[i] = Element{Name: v.Name(), Descriptor: v}
	}
	return &Descriptor{
		name:     name,
		kind:     KindSealed,
		elements: elements,
	}
}

// NewContextualDescriptor describes a payload resolved at runtime.
func NewContextualDescriptor(name string) *Descriptor {
	return &Descriptor{name: name, kind: KindContextual}
}

// Element names of the two-field polymorphic structure.
const (
	DiscriminantElement = "type"
	ValueElement        = "value"
)

// Element indices of the two-field polymorphic structure.
const (
	DiscriminantIndex = 0
	ValueIndex        = 1
)

// NewPolymorphicDescriptor returns the descriptor of the discriminant +
// payload structure. value describes the payload element.
func NewPolymorphicDescriptor(name string, value *Descriptor) *Descriptor {
	return &Descriptor{
		name: name,
		kind: KindPolymorphic,
		elements: []Element{
			{Name: DiscriminantElement, Descriptor: StringDescriptor},
			{Name: ValueElement, Descriptor: value},
		},
	}
}

// Name returns the serial name.
func (d *Descriptor) Name() string {
	return d.name
}

// Kind returns the structural kind.
func (d *Descriptor) Kind() Kind {
	return d.kind
}

// NumElements returns the number of elements.
func (d *Descriptor) NumElements() int {
	return len(d.elements)
}

// ElementName returns the name of the element at index.
func (d *Descriptor) ElementName(index int) (string, error) {
	if index < 0 || index >= len(d.elements) {
		return "", fmt.Errorf("%w: %d in %s", ErrElementOutOfRange, index, d.name)
	}
	return d.elements[index].Name, nil
}

// ElementIndex returns the index of the named element, or UnknownName.
func (d *Descriptor) ElementIndex(name string) int {
	for i, e := range d.elements {
		if e.Name == name {
			return i
		}
	}
	return UnknownName
}

// ElementDescriptor returns the descriptor of the element at index. For a
// singleton the only element resolves to the singleton itself.
func (d *Descriptor) ElementDescriptor(index int) (*Descriptor, error) {
	if index < 0 || index >= len(d.elements) {
		return nil, fmt.Errorf("%w: %d in %s", ErrElementOutOfRange, index, d.name)
	}
	if d.kind == KindSingleton {
		return d, nil
	}
	return d.elements[index].Descriptor, nil
}

// Equal reports whether two descriptors describe the same shape. Singletons
// are equal when their names are. Other kinds compare name, kind and element
// names.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	if d.kind != o.kind || d.name != o.name {
		return false
	}
	if d.kind == KindSingleton {
		return true
	}
	if len(d.elements) != len(o.elements) {
		return false
	}
	for i := range d.elements {
		if d.elements[i].Name != o.elements[i].Name {
			return false
		}
	}
	return true
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.name, d.kind)
}
