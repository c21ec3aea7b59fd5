// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linearcodec

import "github.com/luxfi/polycodec"

// sizer counts the bytes an encoder would write.
type sizer struct {
	size     int
	resolver polycodec.Resolver
}

func (z *sizer) Resolver() polycodec.Resolver { return z.resolver }

func (z *sizer) BeginStructure(*polycodec.Descriptor) (polycodec.StructEncoder, error) {
	return z, nil
}

func (z *sizer) EncodeString(v string) error {
	if len(v) > polycodec.MaxStringLen {
		return polycodec.ErrBadLength
	}
	z.size += polycodec.StringLen(v)
	return nil
}

func (z *sizer) EncodeFloat64(float64) error {
	z.size += polycodec.LongLen
	return nil
}

func (z *sizer) EncodeInt64(int64) error {
	z.size += polycodec.LongLen
	return nil
}

func (z *sizer) EncodeBool(bool) error {
	z.size += polycodec.BoolLen
	return nil
}

func (z *sizer) EncodeBytes(v []byte) error {
	z.size += polycodec.IntLen + len(v)
	return nil
}

func (z *sizer) EncodeStringElement(_ *polycodec.Descriptor, _ int, v string) error {
	return z.EncodeString(v)
}

func (z *sizer) EncodeFloat64Element(_ *polycodec.Descriptor, _ int, v float64) error {
	return z.EncodeFloat64(v)
}

func (z *sizer) EncodeInt64Element(_ *polycodec.Descriptor, _ int, v int64) error {
	return z.EncodeInt64(v)
}

func (z *sizer) EncodeBoolElement(_ *polycodec.Descriptor, _ int, v bool) error {
	return z.EncodeBool(v)
}

func (z *sizer) EncodeBytesElement(_ *polycodec.Descriptor, _ int, v []byte) error {
	return z.EncodeBytes(v)
}

func (z *sizer) EncodeSerializableElement(_ *polycodec.Descriptor, _ int, s polycodec.Serializer, v any) error {
	return s.Serialize(z, v)
}

func (*sizer) EndStructure(*polycodec.Descriptor) error {
	return nil
}
