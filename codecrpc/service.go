// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codecrpc exposes registered serializers over JSON-RPC: descriptor
// introspection and transcoding between JSON and the linear binary format.
package codecrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gorilla/rpc"
	rpcjson "github.com/gorilla/rpc/json"

	"github.com/luxfi/polycodec"
	"github.com/luxfi/polycodec/jsoncodec"
	"github.com/luxfi/polycodec/linearcodec"
)

// ServiceName is the JSON-RPC service prefix, as in "Codec.Describe".
const ServiceName = "Codec"

var (
	ErrUnknownFamily = errors.New("unknown family")
	ErrEmptyFamily   = errors.New("empty family name")
)

type config struct {
	log      *slog.Logger
	resolver polycodec.Resolver
	maxSize  int
}

// Option configures a Service.
type Option func(*config)

// WithLogger sets the logger requests are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithResolver sets the registry used for open-set variants.
func WithResolver(r polycodec.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithMaxSize bounds binary payloads.
func WithMaxSize(maxSize int) Option {
	return func(c *config) {
		c.maxSize = maxSize
	}
}

// Service serves a fixed set of named root serializers. It is read-only after
// construction.
type Service struct {
	log      *slog.Logger
	families map[string]polycodec.Serializer
	names    []string
	json     *jsoncodec.Codec
	linear   *linearcodec.Codec
}

// NewService returns a service for the given families, keyed by the name
// clients use to address them.
func NewService(families map[string]polycodec.Serializer, opts ...Option) (*Service, error) {
	c := config{
		log:     slog.New(slog.DiscardHandler),
		maxSize: polycodec.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(&c)
	}

	s := &Service{
		log:      c.log,
		families: make(map[string]polycodec.Serializer, len(families)),
		json:     jsoncodec.New(jsoncodec.WithResolver(c.resolver)),
		linear:   linearcodec.New(linearcodec.WithResolver(c.resolver), linearcodec.WithMaxSize(c.maxSize)),
	}
	for name, serializer := range families {
		if name == "" {
			return nil, ErrEmptyFamily
		}
		s.families[name] = serializer
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

// NewServer returns a JSON-RPC server exposing s under ServiceName.
func NewServer(s *Service) (*rpc.Server, error) {
	server := rpc.NewServer()
	server.RegisterCodec(rpcjson.NewCodec(), "application/json")
	server.RegisterCodec(rpcjson.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(s, ServiceName); err != nil {
		return nil, err
	}
	return server, nil
}

func (s *Service) family(name string) (polycodec.Serializer, error) {
	serializer, ok := s.families[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return serializer, nil
}

type FamiliesArgs struct{}

type FamiliesReply struct {
	Families []string `json:"families"`
}

// Families lists the registered family names in sorted order.
func (s *Service) Families(_ *http.Request, _ *FamiliesArgs, reply *FamiliesReply) error {
	reply.Families = append([]string{}, s.names...)
	return nil
}

type DescribeArgs struct {
	Family string `json:"family"`
}

type DescribeReply struct {
	Descriptor *DescriptorInfo `json:"descriptor"`
}

// Describe returns the descriptor tree of a family.
func (s *Service) Describe(_ *http.Request, args *DescribeArgs, reply *DescribeReply) error {
	serializer, err := s.family(args.Family)
	if err != nil {
		s.log.Warn("describe failed", "family", args.Family, "error", err)
		return err
	}
	reply.Descriptor = Describe(serializer.Descriptor())
	return nil
}

type EncodeArgs struct {
	Family string          `json:"family"`
	Value  json.RawMessage `json:"value"`
}

type EncodeReply struct {
	Bytes []byte `json:"bytes"`
}

// Encode reads a JSON value of a family and returns its linear encoding.
func (s *Service) Encode(_ *http.Request, args *EncodeArgs, reply *EncodeReply) error {
	serializer, err := s.family(args.Family)
	if err != nil {
		s.log.Warn("encode failed", "family", args.Family, "error", err)
		return err
	}
	v, err := s.json.Unmarshal(serializer, args.Value)
	if err != nil {
		s.log.Warn("encode failed", "family", args.Family, "error", err)
		return err
	}
	b, err := s.linear.Marshal(serializer, v)
	if err != nil {
		s.log.Warn("encode failed", "family", args.Family, "error", err)
		return err
	}
	s.log.Debug("encoded", "family", args.Family, "size", len(b))
	reply.Bytes = b
	return nil
}

type DecodeArgs struct {
	Family string `json:"family"`
	Bytes  []byte `json:"bytes"`
}

type DecodeReply struct {
	Value json.RawMessage `json:"value"`
	// Discriminant is the variant name when the family is polymorphic.
	Discriminant string `json:"discriminant,omitempty"`
}

// Decode reads a linear encoding of a family and returns it as JSON.
func (s *Service) Decode(_ *http.Request, args *DecodeArgs, reply *DecodeReply) error {
	serializer, err := s.family(args.Family)
	if err != nil {
		s.log.Warn("decode failed", "family", args.Family, "error", err)
		return err
	}
	v, err := s.linear.Unmarshal(serializer, args.Bytes)
	if err != nil {
		s.log.Warn("decode failed", "family", args.Family, "error", err)
		return err
	}
	b, err := s.json.Marshal(serializer, v)
	if err != nil {
		s.log.Warn("decode failed", "family", args.Family, "error", err)
		return err
	}
	reply.Value = b
	if serializer.Descriptor().Kind() == polycodec.KindPolymorphic {
		var envelope struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(b, &envelope); err != nil {
			s.log.Warn("decode failed", "family", args.Family, "error", err)
			return err
		}
		reply.Discriminant = envelope.Type
	}
	s.log.Debug("decoded", "family", args.Family, "discriminant", reply.Discriminant)
	return nil
}
