// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/internal/shapes"
	"github.com/luxfi/polycodec/registry"
)

var (
	circleType  = reflect.TypeFor[shapes.Circle]()
	squareType  = reflect.TypeFor[shapes.Square]()
	polygonType = reflect.TypeFor[shapes.Polygon]()
)

func TestRegisterAndLookup(t *testing.T) {
	require := require.New(t)

	r := registry.New()
	require.NoError(r.Register(shapes.Base, circleType, shapes.CircleSerializer))

	s, ok := r.LookupByType(shapes.Base, circleType)
	require.True(ok)
	require.Equal(shapes.CircleSerializer, s)

	s, ok = r.LookupByName(shapes.Base, "Circle")
	require.True(ok)
	require.Equal(shapes.CircleSerializer, s)

	_, ok = r.LookupByType(shapes.Base, squareType)
	require.False(ok)
	_, ok = r.LookupByName(shapes.Base, "Square")
	require.False(ok)
	_, ok = r.LookupByName(reflect.TypeFor[fmt.Stringer](), "Circle")
	require.False(ok)

	require.Equal(1, r.Count())
}

func TestNilRegistry(t *testing.T) {
	require := require.New(t)

	var r *registry.Registry
	_, ok := r.LookupByType(shapes.Base, circleType)
	require.False(ok)
	_, ok = r.LookupByName(shapes.Base, "Circle")
	require.False(ok)
	require.Nil(r.Entries(shapes.Base))
	require.Zero(r.Count())
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name        string
		base        reflect.Type
		typ         reflect.Type
		serializer  polycodec.Serializer
		expectedErr error
	}{
		{
			name:        "nil base",
			typ:         squareType,
			serializer:  shapes.SquareSerializer,
			expectedErr: registry.ErrCantRegisterType,
		},
		{
			name:        "nil serializer",
			base:        shapes.Base,
			typ:         squareType,
			expectedErr: registry.ErrCantRegisterType,
		},
		{
			name:        "not a shape",
			base:        shapes.Base,
			typ:         reflect.TypeFor[string](),
			serializer:  polycodec.StringSerializer,
			expectedErr: polycodec.ErrDoesNotImplementInterface,
		},
		{
			name:        "duplicate type",
			base:        shapes.Base,
			typ:         circleType,
			serializer:  shapes.SquareSerializer,
			expectedErr: polycodec.ErrDuplicateVariant,
		},
		{
			name:        "duplicate name",
			base:        shapes.Base,
			typ:         squareType,
			serializer:  shapes.CircleSerializer,
			expectedErr: polycodec.ErrDuplicateVariant,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := registry.New()
			require.NoError(t, r.Register(shapes.Base, circleType, shapes.CircleSerializer))

			err := r.Register(test.base, test.typ, test.serializer)
			require.ErrorIs(t, err, test.expectedErr)
			require.Equal(t, 1, r.Count())
		})
	}
}

func TestRegisterDefault(t *testing.T) {
	require := require.New(t)

	r := registry.New()
	require.NoError(r.Register(shapes.Base, circleType, shapes.CircleSerializer))

	var asked []string
	fallback := func(name string) (polycodec.Serializer, bool) {
		asked = append(asked, name)
		if name == "Legacy" {
			return shapes.SquareSerializer, true
		}
		return nil, false
	}
	require.NoError(r.RegisterDefault(shapes.Base, fallback))

	err := r.RegisterDefault(shapes.Base, fallback)
	require.ErrorIs(err, polycodec.ErrDuplicateVariant)

	s, ok := r.LookupByName(shapes.Base, "Circle")
	require.True(ok)
	require.Equal(shapes.CircleSerializer, s)

	s, ok = r.LookupByName(shapes.Base, "Legacy")
	require.True(ok)
	require.Equal(shapes.SquareSerializer, s)

	_, ok = r.LookupByName(shapes.Base, "Triangle")
	require.False(ok)

	require.Equal([]string{"Legacy", "Triangle"}, asked)
}

func TestEntriesSortedByName(t *testing.T) {
	r, err := shapes.NewRegistry(true)
	require.NoError(t, err)

	entries := r.Entries(shapes.Base)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		require.Equal(t, shapes.Base, e.Base)
		require.Equal(t, e.Name, e.Serializer.Descriptor().Name())
	}
	require.Equal(t, []string{"Circle", "EmptyMarker", "Labeled", "Polygon", "Square"}, names)
	require.Nil(t, r.Entries(reflect.TypeFor[fmt.Stringer]()))
}

func TestInclude(t *testing.T) {
	require := require.New(t)

	r := registry.New()
	require.NoError(r.Register(shapes.Base, circleType, shapes.CircleSerializer))

	other := registry.New()
	require.NoError(other.Register(shapes.Base, squareType, shapes.SquareSerializer))
	require.NoError(other.Register(shapes.Base, polygonType, shapes.PolygonSerializer))

	require.NoError(r.Include(other))
	require.Equal(3, r.Count())
	_, ok := r.LookupByName(shapes.Base, "Polygon")
	require.True(ok)

	require.NoError(r.Include(r))
	require.Equal(3, r.Count())
}

func TestIncludeConflictCopiesNothing(t *testing.T) {
	require := require.New(t)

	r := registry.New()
	require.NoError(r.Register(shapes.Base, circleType, shapes.CircleSerializer))

	other := registry.New()
	require.NoError(other.Register(shapes.Base, squareType, shapes.SquareSerializer))
	require.NoError(other.Register(shapes.Base, circleType, shapes.CircleSerializer))

	err := r.Include(other)
	require.ErrorIs(err, polycodec.ErrDuplicateVariant)
	require.Equal(1, r.Count())
	_, ok := r.LookupByName(shapes.Base, "Square")
	require.False(ok)
}

func TestConcurrentAccess(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(shapes.Base, circleType, shapes.CircleSerializer))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s, ok := r.LookupByName(shapes.Base, "Circle")
				if !ok || s != shapes.CircleSerializer {
					t.Error("lookup of a registered variant failed")
					return
				}
				_ = r.Entries(shapes.Base)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := r.Register(shapes.Base, squareType, shapes.SquareSerializer); err != nil {
			t.Error(err)
		}
	}()
	wg.Wait()

	require.Equal(t, 2, r.Count())
}
