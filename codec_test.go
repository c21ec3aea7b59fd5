// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/internal/shapes"
	"github.com/luxfi/polycodec/jsoncodec"
	"github.com/luxfi/polycodec/linearcodec"
)

const (
	linearVersion uint16 = 0
	jsonVersion   uint16 = 1
)

func newManager(t *testing.T) polycodec.Manager {
	m := polycodec.NewDefaultManager()
	require.NoError(t, m.RegisterCodec(linearVersion, linearcodec.New()))
	require.NoError(t, m.RegisterCodec(jsonVersion, jsoncodec.New()))
	return m
}

func TestManagerVersions(t *testing.T) {
	m := newManager(t)

	for _, version := range []uint16{linearVersion, jsonVersion} {
		b, err := m.Marshal(version, shapes.Serializer, shapes.Square{Side: 3})
		require.NoError(t, err)
		require.Equal(t, []byte{byte(version >> 8), byte(version)}, b[:polycodec.VersionSize])

		v, gotVersion, err := m.Unmarshal(b, shapes.Serializer)
		require.NoError(t, err)
		require.Equal(t, version, gotVersion)
		require.Equal(t, shapes.Square{Side: 3}, v)
	}
}

func TestManagerDuplicateCodec(t *testing.T) {
	m := newManager(t)
	err := m.RegisterCodec(linearVersion, linearcodec.New())
	require.ErrorIs(t, err, polycodec.ErrDuplicateCodec)
}

func TestManagerUnknownVersion(t *testing.T) {
	m := newManager(t)

	_, err := m.Marshal(7, shapes.Serializer, shapes.Circle{Radius: 1})
	require.ErrorIs(t, err, polycodec.ErrUnknownVersion)

	_, version, err := m.Unmarshal([]byte{0x00, 0x07}, shapes.Serializer)
	require.ErrorIs(t, err, polycodec.ErrUnknownVersion)
	require.Equal(t, uint16(7), version)
}

func TestManagerShortInput(t *testing.T) {
	m := newManager(t)
	_, _, err := m.Unmarshal([]byte{0x00}, shapes.Serializer)
	require.ErrorIs(t, err, polycodec.ErrCantUnpackVersion)
}

func TestManagerMaxSize(t *testing.T) {
	m := polycodec.NewManager(4)
	require.NoError(t, m.RegisterCodec(linearVersion, linearcodec.New()))

	_, err := m.Marshal(linearVersion, shapes.Serializer, shapes.Circle{Radius: 1})
	require.ErrorIs(t, err, polycodec.ErrMaxSizeExceeded)

	_, _, err = m.Unmarshal(make([]byte, 5), shapes.Serializer)
	require.ErrorIs(t, err, polycodec.ErrMaxSizeExceeded)
}

func TestGenericMarshal(t *testing.T) {
	require := require.New(t)
	c := jsoncodec.New()

	b, err := polycodec.Marshal[shapes.Shape](c, shapes.Serializer, shapes.Circle{Radius: 2})
	require.NoError(err)

	shape, err := polycodec.Unmarshal[shapes.Shape](c, shapes.Serializer, b)
	require.NoError(err)
	require.Equal(shapes.Circle{Radius: 2}, shape)

	_, err = polycodec.Unmarshal[shapes.Square](c, shapes.Serializer, b)
	require.ErrorIs(err, polycodec.ErrUnexpectedType)
}

func TestPrimitiveSerializers(t *testing.T) {
	c := linearcodec.New()
	tests := []struct {
		name       string
		serializer polycodec.Serializer
		value      any
	}{
		{name: "string", serializer: polycodec.StringSerializer, value: "shape"},
		{name: "float64", serializer: polycodec.Float64Serializer, value: 2.5},
		{name: "int64", serializer: polycodec.Int64Serializer, value: int64(-42)},
		{name: "bool", serializer: polycodec.BoolSerializer, value: true},
		{name: "bytes", serializer: polycodec.BytesSerializer, value: []byte{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := c.Marshal(test.serializer, test.value)
			require.NoError(t, err)
			got, err := c.Unmarshal(test.serializer, b)
			require.NoError(t, err)
			require.Equal(t, test.value, got)
		})
	}
}

func TestPrimitiveSerializerWrongType(t *testing.T) {
	_, err := linearcodec.New().Marshal(polycodec.StringSerializer, 42)
	require.ErrorIs(t, err, polycodec.ErrUnexpectedType)
}
