// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsoncodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/internal/shapes"
)

func newCodec(t *testing.T, opts ...Option) *Codec {
	r, err := shapes.NewRegistry(false)
	require.NoError(t, err)
	return New(append([]Option{WithResolver(r)}, opts...)...)
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		value    shapes.Shape
		expected string
	}{
		{
			name:     "circle",
			value:    shapes.Circle{Radius: 2},
			expected: `{"type":"Circle","value":{"radius":2}}`,
		},
		{
			name:     "square",
			value:    shapes.Square{Side: 1.5},
			expected: `{"type":"Square","value":{"side":1.5}}`,
		},
		{
			name:     "singleton",
			value:    shapes.Empty,
			expected: `{"type":"EmptyMarker","value":{}}`,
		},
		{
			name:     "registered polygon",
			value:    shapes.Polygon{Sides: 6},
			expected: `{"type":"Polygon","value":{"sides":6,"regular":false,"id":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="}}`,
		},
		{
			name:     "nested",
			value:    shapes.Labeled{Label: "l", Inner: shapes.Circle{Radius: 1}},
			expected: `{"type":"Labeled","value":{"label":"l","inner":{"type":"Circle","value":{"radius":1}}}}`,
		},
	}
	c := newCodec(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := c.Marshal(shapes.Serializer, test.value)
			require.NoError(t, err)
			require.JSONEq(t, test.expected, string(b))
			require.Equal(t, test.expected, string(b))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []shapes.Shape{
		shapes.Circle{Radius: 2},
		shapes.Square{Side: 3.5},
		shapes.Empty,
		shapes.Polygon{Sides: 5, Regular: true, ID: ids.ID{1, 2, 3}},
		shapes.Labeled{Label: "outer", Inner: shapes.Labeled{Label: "inner", Inner: shapes.Empty}},
	}
	c := newCodec(t)
	for _, value := range values {
		b, err := c.Marshal(shapes.Serializer, value)
		require.NoError(t, err)

		got, err := c.Unmarshal(shapes.Serializer, b)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(value, got, cmp.AllowUnexported(shapes.EmptyMarker{})))
	}
}

func TestUnmarshalAnyElementOrderWithinPayload(t *testing.T) {
	c := newCodec(t)
	v, err := c.Unmarshal(shapes.Serializer, []byte(`{"type":"Polygon","value":{"regular":true,"sides":3}}`))
	require.NoError(t, err)
	require.Equal(t, shapes.Polygon{Sides: 3, Regular: true}, v)
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		expectedErr error
	}{
		{
			name:        "unregistered discriminant",
			json:        `{"type":"Triangle","value":{}}`,
			expectedErr: polycodec.ErrUnregisteredSubtype,
		},
		{
			name:        "payload before discriminant",
			json:        `{"value":{"radius":2},"type":"Circle"}`,
			expectedErr: polycodec.ErrPayloadBeforeDiscriminant,
		},
		{
			name:        "missing payload",
			json:        `{"type":"Circle"}`,
			expectedErr: polycodec.ErrMissingPolymorphicValue,
		},
		{
			name:        "empty object",
			json:        `{}`,
			expectedErr: polycodec.ErrMissingPolymorphicValue,
		},
		{
			name:        "discriminant after payload",
			json:        `{"type":"Circle","value":{"radius":2},"type":"Square"}`,
			expectedErr: polycodec.ErrInvalidStructureIndex,
		},
		{
			name:        "payload twice",
			json:        `{"type":"Circle","value":{"radius":2},"value":{"radius":9}}`,
			expectedErr: polycodec.ErrInvalidStructureIndex,
		},
		{
			name:        "unknown key in envelope",
			json:        `{"kind":"Circle"}`,
			expectedErr: polycodec.ErrUnknownElement,
		},
		{
			name:        "unknown key in payload",
			json:        `{"type":"Circle","value":{"radius":2,"color":"red"}}`,
			expectedErr: polycodec.ErrUnknownElement,
		},
		{
			name:        "discriminant not a string",
			json:        `{"type":7,"value":{}}`,
			expectedErr: ErrUnexpectedJSON,
		},
		{
			name:        "not an object",
			json:        `["Circle",{"radius":2}]`,
			expectedErr: ErrUnexpectedJSON,
		},
		{
			name:        "trailing data",
			json:        `{"type":"Circle","value":{"radius":2}} {}`,
			expectedErr: ErrTrailingData,
		},
		{
			name:        "empty input",
			json:        ` `,
			expectedErr: polycodec.ErrUnmarshalZeroLength,
		},
	}
	c := newCodec(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := c.Unmarshal(shapes.Serializer, []byte(test.json))
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestUnregisteredSubtypeNamesDiscriminant(t *testing.T) {
	_, err := newCodec(t).Unmarshal(shapes.Serializer, []byte(`{"type":"Triangle","value":{}}`))

	var unregistered *polycodec.UnregisteredSubtypeError
	require.ErrorAs(t, err, &unregistered)
	require.Equal(t, "Triangle", unregistered.Name)
	require.Equal(t, shapes.Base, unregistered.Base)
}

func TestIgnoreUnknownKeys(t *testing.T) {
	c := newCodec(t, WithIgnoreUnknownKeys(true))
	v, err := c.Unmarshal(shapes.Serializer, []byte(`{"version":2,"type":"Circle","value":{"radius":2,"color":"red"}}`))
	require.NoError(t, err)
	require.Equal(t, shapes.Circle{Radius: 2}, v)
}

func TestSingletonIgnoresContent(t *testing.T) {
	c := newCodec(t)
	for _, input := range []string{`{}`, `{"junk":1}`} {
		v, err := c.Unmarshal(shapes.EmptySerializer, []byte(input))
		require.NoError(t, err)
		require.Same(t, shapes.Empty, v)
	}

	b, err := c.Marshal(shapes.EmptySerializer, shapes.Empty)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}

func TestIndent(t *testing.T) {
	c := newCodec(t, WithIndent("  "))
	b, err := c.Marshal(shapes.Serializer, shapes.Circle{Radius: 2})
	require.NoError(t, err)
	require.Equal(t, "{\n  \"type\": \"Circle\",\n  \"value\": {\n    \"radius\": 2\n  }\n}", string(b))
}

func TestOpenRequiresResolver(t *testing.T) {
	_, err := New().Marshal(shapes.OpenSerializer, shapes.Circle{Radius: 2})
	require.ErrorIs(t, err, polycodec.ErrUnregisteredSubtype)

	r, err := shapes.NewRegistry(true)
	require.NoError(t, err)
	c := New(WithResolver(r))

	b, err := c.Marshal(shapes.OpenSerializer, shapes.Circle{Radius: 2})
	require.NoError(t, err)
	require.Equal(t, `{"type":"Circle","value":{"radius":2}}`, string(b))
}

func TestPrimitives(t *testing.T) {
	c := New()

	b, err := c.Marshal(polycodec.BytesSerializer, []byte{0xff})
	require.NoError(t, err)
	require.Equal(t, `"/w=="`, string(b))

	v, err := c.Unmarshal(polycodec.Int64Serializer, []byte(`-12`))
	require.NoError(t, err)
	require.Equal(t, int64(-12), v)

	_, err = c.Unmarshal(polycodec.BoolSerializer, []byte(`"true"`))
	require.ErrorIs(t, err, ErrUnexpectedJSON)
}
