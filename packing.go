// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polycodec

import (
	"encoding/binary"
	"errors"
	"math"
)

// Size constants for binary packing
const (
	// ByteLen is the number of bytes per byte
	ByteLen = 1
	// ShortLen is the number of bytes per short
	ShortLen = 2
	// VersionSize is the number of bytes used for codec version
	VersionSize = ShortLen
	// IntLen is the number of bytes per int
	IntLen = 4
	// LongLen is the number of bytes per long
	LongLen = 8
	// BoolLen is the number of bytes per bool
	BoolLen = 1
)

// MaxStringLen is the maximum string length that can be packed
const MaxStringLen = math.MaxUint16

// Packing errors
var (
	ErrInsufficientLength = errors.New("packing: insufficient length")
	ErrNegativeLength     = errors.New("packing: negative length")
	ErrBadLength          = errors.New("packing: bad length")
	ErrOverflow           = errors.New("packing: overflow")
	ErrInvalidBool        = errors.New("packing: invalid bool")
)

// StringLen returns the packed length of a string (2-byte length prefix + string bytes)
func StringLen(str string) int {
	return ShortLen + len(str)
}

// Errs collects errors during a series of operations.
// It stores only the first error encountered.
type Errs struct {
	Err error
}

// Errored returns true if an error has been recorded.
func (errs *Errs) Errored() bool {
	return errs.Err != nil
}

// Add records the first non-nil error.
func (errs *Errs) Add(errors ...error) {
	if errs.Err == nil {
		for _, err := range errors {
			if err != nil {
				errs.Err = err
				break
			}
		}
	}
}

// Packer packs and unpacks big-endian primitives. The first failure is
// latched in Err and turns every later call into a no-op.
type Packer struct {
	Bytes   []byte
	Offset  int
	MaxSize int
	Err     error
}

// NewPacker returns a new Packer that refuses to grow past maxSize bytes.
func NewPacker(maxSize int) *Packer {
	if maxSize < 0 {
		maxSize = 0
	}
	initial := maxSize
	// Avoid huge upfront allocations; capacity will grow as needed.
	if initial > DefaultInitialSize {
		initial = DefaultInitialSize
	}
	return &Packer{
		Bytes:   make([]byte, 0, initial),
		MaxSize: maxSize,
	}
}

// PackerFromBytes returns a Packer initialized with the given bytes
func PackerFromBytes(b []byte) *Packer {
	return &Packer{
		Bytes:   b,
		MaxSize: len(b),
	}
}

// Remaining returns the number of bytes remaining to read
func (p *Packer) Remaining() int {
	return len(p.Bytes) - p.Offset
}

// Errored returns true if there's been an error
func (p *Packer) Errored() bool {
	return p.Err != nil
}

// expand ensures capacity for n more bytes
func (p *Packer) expand(n int) {
	if p.Err != nil {
		return
	}
	needed := p.Offset + n
	if needed > p.MaxSize {
		p.Err = ErrMaxSizeExceeded
		return
	}
	if needed > cap(p.Bytes) {
		newCap := min(max(cap(p.Bytes)*2, needed), p.MaxSize)
		newBytes := make([]byte, len(p.Bytes), newCap)
		copy(newBytes, p.Bytes)
		p.Bytes = newBytes
	}
	if needed > len(p.Bytes) {
		p.Bytes = p.Bytes[:needed]
	}
}

// PackByte packs a byte
func (p *Packer) PackByte(val byte) {
	p.expand(ByteLen)
	if p.Err != nil {
		return
	}
	p.Bytes[p.Offset] = val
	p.Offset++
}

// UnpackByte unpacks a byte
func (p *Packer) UnpackByte() byte {
	if p.Err != nil {
		return 0
	}
	if p.Offset >= len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := p.Bytes[p.Offset]
	p.Offset++
	return val
}

// PackShort packs a uint16
func (p *Packer) PackShort(val uint16) {
	p.expand(ShortLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint16(p.Bytes[p.Offset:], val)
	p.Offset += ShortLen
}

// UnpackShort unpacks a uint16
func (p *Packer) UnpackShort() uint16 {
	if p.Err != nil {
		return 0
	}
	if p.Offset+ShortLen > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := binary.BigEndian.Uint16(p.Bytes[p.Offset:])
	p.Offset += ShortLen
	return val
}

// PackInt packs a uint32
func (p *Packer) PackInt(val uint32) {
	p.expand(IntLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint32(p.Bytes[p.Offset:], val)
	p.Offset += IntLen
}

// UnpackInt unpacks a uint32
func (p *Packer) UnpackInt() uint32 {
	if p.Err != nil {
		return 0
	}
	if p.Offset+IntLen > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := binary.BigEndian.Uint32(p.Bytes[p.Offset:])
	p.Offset += IntLen
	return val
}

// PackLong packs a uint64
func (p *Packer) PackLong(val uint64) {
	p.expand(LongLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint64(p.Bytes[p.Offset:], val)
	p.Offset += LongLen
}

// UnpackLong unpacks a uint64
func (p *Packer) UnpackLong() uint64 {
	if p.Err != nil {
		return 0
	}
	if p.Offset+LongLen > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return 0
	}
	val := binary.BigEndian.Uint64(p.Bytes[p.Offset:])
	p.Offset += LongLen
	return val
}

// PackFloat64 packs the IEEE 754 bits of a float64
func (p *Packer) PackFloat64(val float64) {
	p.PackLong(math.Float64bits(val))
}

// UnpackFloat64 unpacks a float64
func (p *Packer) UnpackFloat64() float64 {
	return math.Float64frombits(p.UnpackLong())
}

// PackBool packs a bool
func (p *Packer) PackBool(val bool) {
	if val {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// UnpackBool unpacks a bool. Any byte other than 0 or 1 is rejected.
func (p *Packer) UnpackBool() bool {
	switch p.UnpackByte() {
	case 0:
		return false
	case 1:
		return true
	default:
		if p.Err == nil {
			p.Err = ErrInvalidBool
		}
		return false
	}
}

// PackBytes packs a byte slice with length prefix
func (p *Packer) PackBytes(val []byte) {
	if len(val) > math.MaxInt32 {
		p.Err = ErrOverflow
		return
	}
	p.PackInt(uint32(len(val)))
	p.PackFixedBytes(val)
}

// UnpackBytes unpacks a byte slice with length prefix
func (p *Packer) UnpackBytes() []byte {
	length := p.UnpackInt()
	if length > math.MaxInt32 {
		p.Err = ErrOverflow
		return nil
	}
	return p.UnpackFixedBytes(int(length))
}

// PackFixedBytes packs a fixed-length byte slice
func (p *Packer) PackFixedBytes(val []byte) {
	p.expand(len(val))
	if p.Err != nil {
		return
	}
	copy(p.Bytes[p.Offset:], val)
	p.Offset += len(val)
}

// UnpackFixedBytes unpacks a fixed-length byte slice
func (p *Packer) UnpackFixedBytes(n int) []byte {
	if p.Err != nil {
		return nil
	}
	if n < 0 {
		p.Err = ErrNegativeLength
		return nil
	}
	if p.Offset+n > len(p.Bytes) {
		p.Err = ErrInsufficientLength
		return nil
	}
	val := make([]byte, n)
	copy(val, p.Bytes[p.Offset:p.Offset+n])
	p.Offset += n
	return val
}

// PackStr packs a string with length prefix
func (p *Packer) PackStr(val string) {
	strLen := len(val)
	if strLen > MaxStringLen {
		p.Err = ErrBadLength
		return
	}
	p.PackShort(uint16(strLen))
	p.PackFixedBytes([]byte(val))
}

// UnpackStr unpacks a string with length prefix
func (p *Packer) UnpackStr() string {
	strLen := p.UnpackShort()
	return string(p.UnpackFixedBytes(int(strLen)))
}
