// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry holds the open-set variants of polymorphic families.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/luxfi/polycodec"
)

var (
	ErrCantRegisterType = errors.New("can't register type")

	_ polycodec.Registry = (*Registry)(nil)
)

// DefaultFunc picks a serializer for a discriminant that has no registered
// variant. Returning false reports a miss.
type DefaultFunc func(name string) (polycodec.Serializer, bool)

// Entry is a single registered variant.
type Entry struct {
	Base       reflect.Type
	Type       reflect.Type
	Name       string
	Serializer polycodec.Serializer
}

type family struct {
	byType   map[reflect.Type]polycodec.Serializer
	byName   map[string]polycodec.Serializer
	types    map[string]reflect.Type
	fallback DefaultFunc
}

func newFamily() *family {
	return &family{
		byType: make(map[reflect.Type]polycodec.Serializer),
		byName: make(map[string]polycodec.Serializer),
		types:  make(map[string]reflect.Type),
	}
}

// Registry maps (base type, runtime type) and (base type, name) pairs to
// variant serializers. It is safe for concurrent use.
type Registry struct {
	lock     sync.RWMutex
	families map[reflect.Type]*family
	count    int
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		families: make(map[reflect.Type]*family),
	}
}

// Register adds t as a variant of base, serialized by s under the name
// s.Descriptor().Name().
func (r *Registry) Register(base, t reflect.Type, s polycodec.Serializer) error {
	if base == nil || t == nil || s == nil {
		return fmt.Errorf("%w: nil argument", ErrCantRegisterType)
	}
	if base.Kind() == reflect.Interface && !t.Implements(base) {
		return fmt.Errorf("%w: %v does not implement %v", polycodec.ErrDoesNotImplementInterface, t, base)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	return r.register(base, t, s)
}

func (r *Registry) register(base, t reflect.Type, s polycodec.Serializer) error {
	name := s.Descriptor().Name()
	f := r.families[base]
	if f == nil {
		f = newFamily()
		r.families[base] = f
	}
	if _, exists := f.byType[t]; exists {
		return fmt.Errorf("%w: %v already registered for %v", polycodec.ErrDuplicateVariant, t, base)
	}
	if _, exists := f.byName[name]; exists {
		return fmt.Errorf("%w: name %q already registered for %v", polycodec.ErrDuplicateVariant, name, base)
	}
	f.byType[t] = s
	f.byName[name] = s
	f.types[name] = t
	r.count++
	return nil
}

// RegisterDefault installs fn as the fallback for names of base that have no
// registered variant. Only one fallback may be installed per base.
func (r *Registry) RegisterDefault(base reflect.Type, fn DefaultFunc) error {
	if base == nil || fn == nil {
		return fmt.Errorf("%w: nil argument", ErrCantRegisterType)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	f := r.families[base]
	if f == nil {
		f = newFamily()
		r.families[base] = f
	}
	if f.fallback != nil {
		return fmt.Errorf("%w: default already registered for %v", polycodec.ErrDuplicateVariant, base)
	}
	f.fallback = fn
	return nil
}

// LookupByType returns the serializer registered for t under base. A nil
// registry holds nothing.
func (r *Registry) LookupByType(base, t reflect.Type) (polycodec.Serializer, bool) {
	if r == nil {
		return nil, false
	}
	r.lock.RLock()
	defer r.lock.RUnlock()

	f, ok := r.families[base]
	if !ok {
		return nil, false
	}
	s, ok := f.byType[t]
	return s, ok
}

// LookupByName returns the serializer registered under name for base,
// consulting the default of base on a miss. A nil registry holds nothing.
func (r *Registry) LookupByName(base reflect.Type, name string) (polycodec.Serializer, bool) {
	if r == nil {
		return nil, false
	}
	r.lock.RLock()
	f, ok := r.families[base]
	if !ok {
		r.lock.RUnlock()
		return nil, false
	}
	s, ok := f.byName[name]
	fallback := f.fallback
	r.lock.RUnlock()

	if ok {
		return s, true
	}
	if fallback != nil {
		return fallback(name)
	}
	return nil, false
}

// Entries returns the variants registered for base, sorted by name.
func (r *Registry) Entries(base reflect.Type) []Entry {
	if r == nil {
		return nil
	}
	r.lock.RLock()
	defer r.lock.RUnlock()

	f, ok := r.families[base]
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(f.byName))
	for name, s := range f.byName {
		entries = append(entries, Entry{
			Base:       base,
			Type:       f.types[name],
			Name:       name,
			Serializer: s,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Count returns the number of registered variants across all families.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.count
}

// Include copies every variant of other into r. Nothing is copied if any
// variant conflicts with one already in r.
func (r *Registry) Include(other *Registry) error {
	if other == r {
		return nil
	}

	other.lock.RLock()
	var entries []Entry
	for base, f := range other.families {
		for name, s := range f.byName {
			entries = append(entries, Entry{Base: base, Type: f.types[name], Name: name, Serializer: s})
		}
	}
	other.lock.RUnlock()

	r.lock.Lock()
	defer r.lock.Unlock()

	for _, e := range entries {
		f := r.families[e.Base]
		if f == nil {
			continue
		}
		if _, exists := f.byType[e.Type]; exists {
			return fmt.Errorf("%w: %v already registered for %v", polycodec.ErrDuplicateVariant, e.Type, e.Base)
		}
		if _, exists := f.byName[e.Name]; exists {
			return fmt.Errorf("%w: name %q already registered for %v", polycodec.ErrDuplicateVariant, e.Name, e.Base)
		}
	}
	for _, e := range entries {
		if err := r.register(e.Base, e.Type, e.Serializer); err != nil {
			return err
		}
	}
	return nil
}
