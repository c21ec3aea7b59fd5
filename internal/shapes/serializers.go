// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shapes

import (
	"fmt"
	"reflect"

	"github.com/luxfi/ids"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/polymorphic"
)

var (
	circleDescriptor = polycodec.NewStructDescriptor("Circle",
		polycodec.Element{Name: "radius", Descriptor: polycodec.Float64Descriptor},
	)
	squareDescriptor = polycodec.NewStructDescriptor("Square",
		polycodec.Element{Name: "side", Descriptor: polycodec.Float64Descriptor},
	)
	polygonDescriptor = polycodec.NewStructDescriptor("Polygon",
		polycodec.Element{Name: "sides", Descriptor: polycodec.Int64Descriptor},
		polycodec.Element{Name: "regular", Descriptor: polycodec.BoolDescriptor},
		polycodec.Element{Name: "id", Descriptor: polycodec.IDDescriptor},
	)
)

// MustSealed reads variant descriptors, so the family follows them.
var (
	Base = reflect.TypeFor[Shape]()

	CircleSerializer  polycodec.Serializer = circleSerializer{}
	SquareSerializer  polycodec.Serializer = squareSerializer{}
	EmptySerializer                        = polymorphic.NewSingleton("EmptyMarker", Empty)
	PolygonSerializer polycodec.Serializer = polygonSerializer{}
	LabeledSerializer polycodec.Serializer = labeledSerializer{}

	// Serializer is the closed Shape family.
	Serializer = polymorphic.MustSealed(
		"Shape",
		Base,
		[]reflect.Type{
			reflect.TypeFor[Circle](),
			reflect.TypeFor[Square](),
			reflect.TypeFor[*EmptyMarker](),
		},
		[]polycodec.Serializer{
			CircleSerializer,
			SquareSerializer,
			EmptySerializer,
		},
	)

	// OpenSerializer resolves every Shape through the registry.
	OpenSerializer = polymorphic.NewOpen("Shape", Base)
)

var labeledDescriptor = polycodec.NewStructDescriptor("Labeled",
	polycodec.Element{Name: "label", Descriptor: polycodec.StringDescriptor},
	polycodec.Element{Name: "inner", Descriptor: Serializer.Descriptor()},
)

type circleSerializer struct{}

func (circleSerializer) Descriptor() *polycodec.Descriptor { return circleDescriptor }

func (circleSerializer) Serialize(enc polycodec.Encoder, v any) error {
	c, err := polycodec.As[Circle](circleDescriptor, v)
	if err != nil {
		return err
	}
	se, err := enc.BeginStructure(circleDescriptor)
	if err != nil {
		return err
	}
	if err := se.EncodeFloat64Element(circleDescriptor, 0, c.Radius); err != nil {
		return err
	}
	return se.EndStructure(circleDescriptor)
}

func (circleSerializer) Deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(circleDescriptor)
	if err != nil {
		return nil, err
	}
	var c Circle
	err = polycodec.DecodeElements(sd, circleDescriptor, func(index int) error {
		var err error
		c.Radius, err = sd.DecodeFloat64Element(circleDescriptor, index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, sd.EndStructure(circleDescriptor)
}

type squareSerializer struct{}

func (squareSerializer) Descriptor() *polycodec.Descriptor { return squareDescriptor }

func (squareSerializer) Serialize(enc polycodec.Encoder, v any) error {
	s, err := polycodec.As[Square](squareDescriptor, v)
	if err != nil {
		return err
	}
	se, err := enc.BeginStructure(squareDescriptor)
	if err != nil {
		return err
	}
	if err := se.EncodeFloat64Element(squareDescriptor, 0, s.Side); err != nil {
		return err
	}
	return se.EndStructure(squareDescriptor)
}

func (squareSerializer) Deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(squareDescriptor)
	if err != nil {
		return nil, err
	}
	var s Square
	err = polycodec.DecodeElements(sd, squareDescriptor, func(index int) error {
		var err error
		s.Side, err = sd.DecodeFloat64Element(squareDescriptor, index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, sd.EndStructure(squareDescriptor)
}

type polygonSerializer struct{}

func (polygonSerializer) Descriptor() *polycodec.Descriptor { return polygonDescriptor }

func (polygonSerializer) Serialize(enc polycodec.Encoder, v any) error {
	p, err := polycodec.As[Polygon](polygonDescriptor, v)
	if err != nil {
		return err
	}
	se, err := enc.BeginStructure(polygonDescriptor)
	if err != nil {
		return err
	}
	if err := se.EncodeInt64Element(polygonDescriptor, 0, p.Sides); err != nil {
		return err
	}
	if err := se.EncodeBoolElement(polygonDescriptor, 1, p.Regular); err != nil {
		return err
	}
	if err := se.EncodeSerializableElement(polygonDescriptor, 2, polycodec.IDSerializer, p.ID); err != nil {
		return err
	}
	return se.EndStructure(polygonDescriptor)
}

func (polygonSerializer) Deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(polygonDescriptor)
	if err != nil {
		return nil, err
	}
	var p Polygon
	err = polycodec.DecodeElements(sd, polygonDescriptor, func(index int) error {
		var err error
		switch index {
		case 0:
			p.Sides, err = sd.DecodeInt64Element(polygonDescriptor, index)
		case 1:
			p.Regular, err = sd.DecodeBoolElement(polygonDescriptor, index)
		case 2:
			var id any
			id, err = sd.DecodeSerializableElement(polygonDescriptor, index, polycodec.IDSerializer)
			if err == nil {
				p.ID = id.(ids.ID)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, sd.EndStructure(polygonDescriptor)
}

type labeledSerializer struct{}

func (labeledSerializer) Descriptor() *polycodec.Descriptor { return labeledDescriptor }

func (labeledSerializer) Serialize(enc polycodec.Encoder, v any) error {
	l, err := polycodec.As[Labeled](labeledDescriptor, v)
	if err != nil {
		return err
	}
	se, err := enc.BeginStructure(labeledDescriptor)
	if err != nil {
		return err
	}
	if err := se.EncodeStringElement(labeledDescriptor, 0, l.Label); err != nil {
		return err
	}
	if err := se.EncodeSerializableElement(labeledDescriptor, 1, Serializer, l.Inner); err != nil {
		return err
	}
	return se.EndStructure(labeledDescriptor)
}

func (labeledSerializer) Deserialize(dec polycodec.Decoder) (any, error) {
	sd, err := dec.BeginStructure(labeledDescriptor)
	if err != nil {
		return nil, err
	}
	var l Labeled
	err = polycodec.DecodeElements(sd, labeledDescriptor, func(index int) error {
		switch index {
		case 0:
			label, err := sd.DecodeStringElement(labeledDescriptor, index)
			l.Label = label
			return err
		case 1:
			inner, err := sd.DecodeSerializableElement(labeledDescriptor, index, Serializer)
			if err != nil {
				return err
			}
			shape, ok := inner.(Shape)
			if !ok {
				return fmt.Errorf("%w: %T is not a Shape", polycodec.ErrUnexpectedType, inner)
			}
			l.Inner = shape
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, sd.EndStructure(labeledDescriptor)
}
