// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type shape interface{ Area() float64 }

type triangle struct{}

func TestUnregisteredSubtypeError(t *testing.T) {
	base := reflect.TypeFor[shape]()

	byName := &UnregisteredSubtypeError{Name: "Triangle", Base: base}
	require.ErrorIs(t, byName, ErrUnregisteredSubtype)
	require.Contains(t, byName.Error(), `"Triangle"`)
	require.Contains(t, byName.Error(), base.String())

	byType := &UnregisteredSubtypeError{Type: reflect.TypeFor[triangle](), Base: base}
	require.ErrorIs(t, byType, ErrUnregisteredSubtype)
	require.Contains(t, byType.Error(), "polycodec.triangle")

	wrapped := fmt.Errorf("decoding: %w", byName)
	var target *UnregisteredSubtypeError
	require.ErrorAs(t, wrapped, &target)
	require.Same(t, byName, target)
}
