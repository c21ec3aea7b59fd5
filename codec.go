// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import "sync"

// Codec marshals and unmarshals values of a serializer's type in one format
type Codec interface {
	Marshal(s Serializer, v any) ([]byte, error)
	Unmarshal(s Serializer, b []byte) (any, error)
}

// Manager manages multiple codec versions
type Manager interface {
	RegisterCodec(version uint16, codec Codec) error
	Marshal(version uint16, s Serializer, v any) ([]byte, error)
	Unmarshal(b []byte, s Serializer) (any, uint16, error)
}

const (
	// DefaultMaxSize is the default maximum size for codec manager (1MB)
	DefaultMaxSize = 1024 * 1024
	// DefaultInitialSize is the largest buffer a Packer allocates up front
	DefaultInitialSize = 4 * 1024
)

// NewManager returns a new codec manager
func NewManager(maxSize int) Manager {
	return &manager{
		maxSize: maxSize,
		codecs:  make(map[uint16]Codec),
	}
}

// NewDefaultManager returns a codec manager with default max size
func NewDefaultManager() Manager {
	return NewManager(DefaultMaxSize)
}

type manager struct {
	lock    sync.RWMutex
	maxSize int
	codecs  map[uint16]Codec
}

func (m *manager) RegisterCodec(version uint16, codec Codec) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, exists := m.codecs[version]; exists {
		return ErrDuplicateCodec
	}
	m.codecs[version] = codec
	return nil
}

func (m *manager) codec(version uint16) (Codec, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	codec, exists := m.codecs[version]
	return codec, exists
}

func (m *manager) Marshal(version uint16, s Serializer, v any) ([]byte, error) {
	codec, exists := m.codec(version)
	if !exists {
		return nil, ErrUnknownVersion
	}

	body, err := codec.Marshal(s, v)
	if err != nil {
		return nil, err
	}

	p := NewPacker(m.maxSize)
	p.PackShort(version)
	if p.Err != nil {
		return nil, ErrCantPackVersion
	}
	p.PackFixedBytes(body)
	return p.Bytes[:p.Offset], p.Err
}

func (m *manager) Unmarshal(b []byte, s Serializer) (any, uint16, error) {
	if len(b) > m.maxSize {
		return nil, 0, ErrMaxSizeExceeded
	}
	if len(b) < VersionSize {
		return nil, 0, ErrCantUnpackVersion
	}

	p := PackerFromBytes(b)
	version := p.UnpackShort()
	if p.Err != nil {
		return nil, 0, ErrCantUnpackVersion
	}

	codec, exists := m.codec(version)
	if !exists {
		return nil, version, ErrUnknownVersion
	}

	v, err := codec.Unmarshal(s, b[p.Offset:])
	return v, version, err
}

// Marshal encodes v with c using the serializer s.
func Marshal[T any](c Codec, s Serializer, v T) ([]byte, error) {
	return c.Marshal(s, v)
}

// Unmarshal decodes b with c using the serializer s and asserts the result
// is a T.
func Unmarshal[T any](c Codec, s Serializer, b []byte) (T, error) {
	v, err := c.Unmarshal(s, b)
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](s.Descriptor(), v)
}
