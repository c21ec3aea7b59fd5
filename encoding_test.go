// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/codecmock"
)

var pointDescriptor = polycodec.NewStructDescriptor("Point",
	polycodec.Element{Name: "x", Descriptor: polycodec.Int64Descriptor},
	polycodec.Element{Name: "y", Descriptor: polycodec.Int64Descriptor},
	polycodec.Element{Name: "z", Descriptor: polycodec.Int64Descriptor},
)

func TestDecodeElements(t *testing.T) {
	tests := []struct {
		name     string
		steps    []polycodec.ElementIndex
		expected []int
	}{
		{
			name:     "read all",
			steps:    []polycodec.ElementIndex{polycodec.ReadAll},
			expected: []int{0, 1, 2},
		},
		{
			name:     "indexed",
			steps:    []polycodec.ElementIndex{polycodec.Index(2), polycodec.Index(0), polycodec.Done},
			expected: []int{2, 0},
		},
		{
			name:  "done",
			steps: []polycodec.ElementIndex{polycodec.Done},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sd := codecmock.NewStructDecoder(ctrl)
			calls := make([]any, len(test.steps))
			for i, step := range test.steps {
				calls[i] = sd.EXPECT().DecodeElementIndex(pointDescriptor).Return(step, nil)
			}
			gomock.InOrder(calls...)

			var visited []int
			err := polycodec.DecodeElements(sd, pointDescriptor, func(index int) error {
				visited = append(visited, index)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, test.expected, visited)
		})
	}
}

func TestDecodeElementsOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	sd := codecmock.NewStructDecoder(ctrl)
	sd.EXPECT().DecodeElementIndex(pointDescriptor).Return(polycodec.Index(3), nil)

	err := polycodec.DecodeElements(sd, pointDescriptor, func(int) error {
		require.FailNow(t, "no element should be visited")
		return nil
	})
	require.ErrorIs(t, err, polycodec.ErrElementOutOfRange)
}

func TestDecodeElementsStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sd := codecmock.NewStructDecoder(ctrl)
	sd.EXPECT().DecodeElementIndex(pointDescriptor).Return(polycodec.ReadAll, nil)

	var visited []int
	err := polycodec.DecodeElements(sd, pointDescriptor, func(index int) error {
		visited = append(visited, index)
		if index == 1 {
			return polycodec.ErrUnexpectedType
		}
		return nil
	})
	require.ErrorIs(t, err, polycodec.ErrUnexpectedType)
	require.Equal(t, []int{0, 1}, visited)
}
