// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "github.com/luxfi/ids"

// IDDescriptor describes an ids.ID, written as its raw bytes.
var IDDescriptor = &Descriptor{name: "ids.ID", kind: KindBytes}

// IDSerializer writes an ids.ID as fixed-length bytes.
var IDSerializer Serializer = idSerializer{}

type idSerializer struct{}

func (idSerializer) Descriptor() *Descriptor { return IDDescriptor }

func (idSerializer) Serialize(enc Encoder, v any) error {
	id, err := As[ids.ID](IDDescriptor, v)
	if err != nil {
		return err
	}
	return enc.EncodeBytes(id[:])
}

func (idSerializer) Deserialize(dec Decoder) (any, error) {
	b, err := dec.DecodeBytes()
	if err != nil {
		return ids.Empty, err
	}
	return ids.ToID(b)
}
