// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "reflect"

// Resolver finds the serializer of an open-set variant. Both lookups are
// read-only and report a miss with ok == false.
type Resolver interface {
	LookupByType(base, t reflect.Type) (s Serializer, ok bool)
	LookupByName(base reflect.Type, name string) (s Serializer, ok bool)
}

// Registry registers new variants that can be marshaled polymorphically.
type Registry interface {
	Resolver
	Register(base, t reflect.Type, s Serializer) error
}
