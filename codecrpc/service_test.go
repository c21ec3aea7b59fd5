// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codecrpc

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	rpcjson "github.com/gorilla/rpc/json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/codecmock"
	"github.com/luxfi/polycodec/internal/shapes"
	"github.com/luxfi/polycodec/linearcodec"
)

func newService(t *testing.T, opts ...Option) *Service {
	r, err := shapes.NewRegistry(false)
	require.NoError(t, err)

	s, err := NewService(map[string]polycodec.Serializer{
		"Shape":   shapes.Serializer,
		"Polygon": shapes.PolygonSerializer,
	}, append([]Option{WithResolver(r)}, opts...)...)
	require.NoError(t, err)
	return s
}

func newTestServer(t *testing.T) *httptest.Server {
	server, err := NewServer(newService(t))
	require.NoError(t, err)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, url, method string, args, reply any) error {
	body, err := rpcjson.EncodeClientRequest(ServiceName+"."+method, args)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	return rpcjson.DecodeClientResponse(resp.Body, reply)
}

func TestNewServiceRejectsEmptyName(t *testing.T) {
	_, err := NewService(map[string]polycodec.Serializer{"": shapes.Serializer})
	require.ErrorIs(t, err, ErrEmptyFamily)
}

func TestFamilies(t *testing.T) {
	ts := newTestServer(t)

	reply := FamiliesReply{}
	require.NoError(t, call(t, ts.URL, "Families", &FamiliesArgs{}, &reply))
	require.Equal(t, []string{"Polygon", "Shape"}, reply.Families)
}

func TestDescribe(t *testing.T) {
	require := require.New(t)
	ts := newTestServer(t)

	reply := DescribeReply{}
	require.NoError(call(t, ts.URL, "Describe", &DescribeArgs{Family: "Shape"}, &reply))

	d := reply.Descriptor
	require.Equal("Shape", d.Name)
	require.Equal("POLYMORPHIC", d.Kind)
	require.Len(d.Elements, 2)
	require.Equal(polycodec.DiscriminantElement, d.Elements[0].Name)
	require.Equal("STRING", d.Elements[0].Descriptor.Kind)

	value := d.Elements[1].Descriptor
	require.Equal("SEALED", value.Kind)
	require.Len(value.Elements, 3)

	names := make([]string, len(value.Elements))
	for i, e := range value.Elements {
		names[i] = e.Name
	}
	require.Equal([]string{"Circle", "Square", "EmptyMarker"}, names)

	empty := value.Elements[2].Descriptor
	require.Equal("SINGLETON", empty.Kind)
	require.Len(empty.Elements, 1)
	require.True(empty.Elements[0].Descriptor.Ref)
}

func TestEncodeDecode(t *testing.T) {
	require := require.New(t)
	ts := newTestServer(t)

	input := `{"type":"Circle","value":{"radius":2}}`
	encoded := EncodeReply{}
	require.NoError(call(t, ts.URL, "Encode", &EncodeArgs{
		Family: "Shape",
		Value:  json.RawMessage(input),
	}, &encoded))

	expected, err := linearcodec.New().Marshal(shapes.Serializer, shapes.Circle{Radius: 2})
	require.NoError(err)
	require.Equal(expected, encoded.Bytes)

	decoded := DecodeReply{}
	require.NoError(call(t, ts.URL, "Decode", &DecodeArgs{
		Family: "Shape",
		Bytes:  encoded.Bytes,
	}, &decoded))
	require.JSONEq(input, string(decoded.Value))
	require.Equal("Circle", decoded.Discriminant)
}

func TestDecodeNonPolymorphicFamily(t *testing.T) {
	ts := newTestServer(t)

	b, err := linearcodec.New().Marshal(shapes.PolygonSerializer, shapes.Polygon{Sides: 3})
	require.NoError(t, err)

	decoded := DecodeReply{}
	require.NoError(t, call(t, ts.URL, "Decode", &DecodeArgs{Family: "Polygon", Bytes: b}, &decoded))
	require.Empty(t, decoded.Discriminant)

	var polygon struct {
		Sides int64 `json:"sides"`
	}
	require.NoError(t, json.Unmarshal(decoded.Value, &polygon))
	require.Equal(t, int64(3), polygon.Sides)
}

func TestErrors(t *testing.T) {
	ts := newTestServer(t)

	err := call(t, ts.URL, "Describe", &DescribeArgs{Family: "Triangle"}, &DescribeReply{})
	require.ErrorContains(t, err, ErrUnknownFamily.Error())

	err = call(t, ts.URL, "Encode", &EncodeArgs{
		Family: "Shape",
		Value:  json.RawMessage(`{"type":"Triangle","value":{}}`),
	}, &EncodeReply{})
	require.ErrorContains(t, err, "Triangle")

	err = call(t, ts.URL, "Decode", &DecodeArgs{Family: "Shape", Bytes: []byte{0x00}}, &DecodeReply{})
	require.ErrorContains(t, err, polycodec.ErrInsufficientLength.Error())
}

func TestEncodeLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	s := newService(t, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	err := s.Encode(nil, &EncodeArgs{
		Family: "Shape",
		Value:  json.RawMessage(`{"value":{"radius":2},"type":"Circle"}`),
	}, &EncodeReply{})
	require.ErrorIs(t, err, polycodec.ErrPayloadBeforeDiscriminant)
	require.Contains(t, buf.String(), "encode failed")
	require.Contains(t, buf.String(), "family=Shape")
}

func TestMaxSize(t *testing.T) {
	s := newService(t, WithMaxSize(8))

	err := s.Encode(nil, &EncodeArgs{
		Family: "Shape",
		Value:  json.RawMessage(`{"type":"Circle","value":{"radius":2}}`),
	}, &EncodeReply{})
	require.ErrorIs(t, err, polycodec.ErrMaxSizeExceeded)
}

func TestDecodeLogsMalformedEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	odd := codecmock.NewSerializer(ctrl)
	odd.EXPECT().Descriptor().Return(polycodec.NewPolymorphicDescriptor("Odd", polycodec.StringDescriptor)).AnyTimes()
	odd.EXPECT().Deserialize(gomock.Any()).DoAndReturn(func(dec polycodec.Decoder) (any, error) {
		return dec.DecodeString()
	})
	odd.EXPECT().Serialize(gomock.Any(), "odd").DoAndReturn(func(enc polycodec.Encoder, v any) error {
		return enc.EncodeString(v.(string))
	})

	var buf bytes.Buffer
	s, err := NewService(
		map[string]polycodec.Serializer{"Odd": odd},
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)

	b, err := linearcodec.New().Marshal(polycodec.StringSerializer, "odd")
	require.NoError(t, err)

	err = s.Decode(nil, &DecodeArgs{Family: "Odd", Bytes: b}, &DecodeReply{})
	require.Error(t, err)
	require.Contains(t, buf.String(), "decode failed")
	require.Contains(t, buf.String(), "family=Odd")
}
