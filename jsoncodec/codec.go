// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package jsoncodec writes values as JSON. Structures become objects keyed by
// element name, written in declaration order. Decoders walk keys in document
// order, so a polymorphic value must list "type" before "value".
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luxfi/polycodec"
)

var (
	ErrUnexpectedJSON = errors.New("unexpected JSON value")
	ErrMissingElement = errors.New("missing element")
	ErrTrailingData   = errors.New("trailing data after JSON value")

	_ polycodec.Codec = (*Codec)(nil)
)

type config struct {
	resolver          polycodec.Resolver
	indent            string
	ignoreUnknownKeys bool
}

// Option configures a Codec.
type Option func(*config)

// WithResolver sets the registry consulted for open-set variants.
func WithResolver(r polycodec.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithIndent pretty-prints output using indent for each level.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

// WithIgnoreUnknownKeys skips object keys that name no element instead of
// failing with polycodec.ErrUnknownElement.
func WithIgnoreUnknownKeys(ignore bool) Option {
	return func(c *config) {
		c.ignoreUnknownKeys = ignore
	}
}

// Codec marshals values to and from JSON.
type Codec struct {
	config config
}

// New returns a JSON codec
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(&c.config)
	}
	return c
}

// Marshal writes v using s
func (c *Codec) Marshal(s polycodec.Serializer, v any) ([]byte, error) {
	var root any
	if err := s.Serialize(&encoder{config: &c.config, out: &root}, v); err != nil {
		return nil, err
	}
	data, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	if c.config.indent == "" {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", c.config.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal reads a value of s's type from b.
func (c *Codec) Unmarshal(s polycodec.Serializer, b []byte) (any, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, polycodec.ErrUnmarshalZeroLength
	}
	root, err := parse(b)
	if err != nil {
		return nil, err
	}
	return s.Deserialize(&decoder{config: &c.config, node: root})
}

func unexpected(want string, got any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrUnexpectedJSON, want, got)
}
