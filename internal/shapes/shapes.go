// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package shapes is a small polymorphic family used to exercise the codecs.
// Circle, Square and Empty form the closed set; Polygon and Labeled are only
// known to the registry returned by NewRegistry.
package shapes

import (
	"reflect"

	"github.com/luxfi/ids"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/registry"
)

type Shape interface {
	Corners() int64
}

type Circle struct {
	Radius float64
}

func (Circle) Corners() int64 { return 0 }

type Square struct {
	Side float64
}

func (Square) Corners() int64 { return 4 }

// EmptyMarker has exactly one instance, Empty.
type EmptyMarker struct {
	name string
}

func (*EmptyMarker) Corners() int64 { return 0 }

var Empty = &EmptyMarker{name: "EmptyMarker"}

type Polygon struct {
	Sides   int64
	Regular bool
	ID      ids.ID
}

func (p Polygon) Corners() int64 { return p.Sides }

type Labeled struct {
	Label string
	Inner Shape
}

func (l Labeled) Corners() int64 {
	if l.Inner == nil {
		return 0
	}
	return l.Inner.Corners()
}

// Triangle is never registered anywhere.
type Triangle struct{}

func (Triangle) Corners() int64 { return 3 }

// NewRegistry returns a registry holding Polygon and Labeled. With
// includeClosed the closed variants are registered as well, so that
// OpenSerializer can handle them.
func NewRegistry(includeClosed bool) (*registry.Registry, error) {
	r := registry.New()
	errs := polycodec.Errs{}
	errs.Add(
		r.Register(Base, reflect.TypeFor[Polygon](), PolygonSerializer),
		r.Register(Base, reflect.TypeFor[Labeled](), LabeledSerializer),
	)
	if includeClosed {
		errs.Add(
			r.Register(Base, reflect.TypeFor[Circle](), CircleSerializer),
			r.Register(Base, reflect.TypeFor[Square](), SquareSerializer),
			r.Register(Base, reflect.TypeFor[*EmptyMarker](), EmptySerializer),
		)
	}
	return r, errs.Err
}
