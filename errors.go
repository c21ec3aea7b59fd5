// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import (
	"errors"
	"fmt"
	"reflect"
)

// Common codec errors
var (
	ErrUnsupportedType           = errors.New("unsupported type")
	ErrDoesNotImplementInterface = errors.New("does not implement interface")
	ErrMarshalNil                = errors.New("can't marshal nil value")
	ErrUnmarshalZeroLength       = errors.New("can't unmarshal zero length value")
	ErrUnexpectedType            = errors.New("unexpected value type")
	ErrCantPackVersion           = errors.New("couldn't pack codec version")
	ErrCantUnpackVersion         = errors.New("couldn't unpack codec version")
	ErrUnknownVersion            = errors.New("unknown codec version")
	ErrDuplicateCodec            = errors.New("duplicate codec registration")
	ErrMaxSizeExceeded           = errors.New("max size exceeded")
	ErrUnknownElement            = errors.New("unknown element")
	ErrElementOutOfRange         = errors.New("element index out of range")
)

// Polymorphic dispatch errors
var (
	ErrConstructionMismatch      = errors.New("variant types and serializers differ in length")
	ErrDuplicateVariant          = errors.New("duplicate variant registration")
	ErrUnregisteredSubtype       = errors.New("unregistered subtype")
	ErrPayloadBeforeDiscriminant = errors.New("payload encountered before discriminant")
	ErrInvalidStructureIndex     = errors.New("invalid structure index")
	ErrMissingPolymorphicValue   = errors.New("missing polymorphic value")
)

// UnknownDiscriminant is reported when a polymorphic structure ends before
// its discriminant was read.
const UnknownDiscriminant = "unknown"

// UnregisteredSubtypeError reports a variant that resolves neither through a
// closed variant table nor through the open registry. Exactly one of Type
// (encode) and Name (decode) is set.
type UnregisteredSubtypeError struct {
	Name string
	Type reflect.Type
	Base reflect.Type
}

func (e *UnregisteredSubtypeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("%s: type %v is not registered for polymorphic serialization in the scope of %v",
			ErrUnregisteredSubtype, e.Type, e.Base)
	}
	return fmt.Sprintf("%s: serializer for subclass %q is not found in the polymorphic scope of %v",
		ErrUnregisteredSubtype, e.Name, e.Base)
}

func (*UnregisteredSubtypeError) Unwrap() error {
	return ErrUnregisteredSubtype
}
