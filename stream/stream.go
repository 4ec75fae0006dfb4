// Package stream provides the endian-aware positioned byte reader used
// by every per-format parser: fixed-width integer reads, a stack of
// bounded sub-section limits, and compound-document (OLE) sub-stream
// access.
package stream

import (
	"encoding/binary"
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// Whence selects the reference point for Seek.
type Whence int

const (
	SeekBegin Whence = iota
	SeekCurrent
	SeekEnd
)

// Reader is a positioned cursor over an immutable in-memory byte slice.
// The default endianness for all Mac word-processor formats is
// big-endian; callers targeting PC-era formats construct with
// NewLittleEndian instead.
type Reader struct {
	data   []byte
	pos    int64
	limit  int64 // -1 means "no limit" (end of data)
	stack  []int64
	bigEnd bool

	storage oleLookup
}

// oleLookup is the narrow capability a Reader needs from storage.Reader
// without importing package storage (which would create an import
// cycle, since storage builds Readers over extracted sub-streams).
type oleLookup interface {
	IsCompound() bool
	ListEntries() []string
	OpenEntry(path string) ([]byte, error)
}

// New creates a big-endian Reader (the default for Mac formats) over data.
func New(data []byte) *Reader {
	return &Reader{data: data, limit: -1, bigEnd: true}
}

// NewLittleEndian creates a little-endian Reader (PC-era formats).
func NewLittleEndian(data []byte) *Reader {
	return &Reader{data: data, limit: -1, bigEnd: false}
}

// WithStorage attaches a compound-document lookup capability, enabling
// IsOLE/ListOLEEntries/OpenOLE. Returns the same Reader for chaining.
func (r *Reader) WithStorage(s oleLookup) *Reader {
	r.storage = s
	return r
}

func (r *Reader) effectiveEnd() int64 {
	if r.limit >= 0 {
		return r.limit
	}
	return int64(len(r.data))
}

// Tell returns the current position relative to the start of the data
// (limits constrain how far reads may go, not the coordinate origin).
func (r *Reader) Tell() int64 { return r.pos }

// AtEOS reports whether the cursor sits at or past the current section
// limit (or end of data, with no limit pushed).
func (r *Reader) AtEOS() bool { return r.pos >= r.effectiveEnd() }

// Seek moves the cursor, clamping to [0, limit]. It returns true if the
// requested position had to be clamped.
func (r *Reader) Seek(offset int64, whence Whence) bool {
	var target int64
	switch whence {
	case SeekBegin:
		target = offset
	case SeekCurrent:
		target = r.pos + offset
	case SeekEnd:
		target = r.effectiveEnd() + offset
	}
	clamped := false
	if target < 0 {
		target = 0
		clamped = true
	}
	if end := r.effectiveEnd(); target > end {
		target = end
		clamped = true
	}
	r.pos = target
	return clamped
}

// PushLimit introduces a new section ending at absolute offset end. The
// stack of limits must be strictly decreasing going down (each pushed
// limit at least as tight as its parent); callers that violate this are
// clamped to the parent's limit.
func (r *Reader) PushLimit(end int64) {
	parent := r.effectiveEnd()
	if end > parent {
		end = parent
	}
	r.stack = append(r.stack, r.limit)
	r.limit = end
}

// PopLimit restores the previous section limit.
func (r *Reader) PopLimit() {
	if len(r.stack) == 0 {
		r.limit = -1
		return
	}
	r.limit = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Reader) readN(n int) ([]byte, error) {
	end := r.pos + int64(n)
	if end > r.effectiveEnd() || end > int64(len(r.data)) {
		return nil, mwawerr.New(mwawerr.Truncated, "stream.read", fmt.Errorf("need %d bytes at %d, have %d", n, r.pos, r.effectiveEnd()-r.pos))
	}
	b := r.data[r.pos:end]
	r.pos = end
	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads an unsigned 16-bit integer using the reader's endianness.
func (r *Reader) U16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	if r.bigEnd {
		return binary.BigEndian.Uint16(b), nil
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads an unsigned 32-bit integer using the reader's endianness.
func (r *Reader) U32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	if r.bigEnd {
		return binary.BigEndian.Uint32(b), nil
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// ReadBlock reads exactly n bytes and returns a copy.
func (r *Reader) ReadBlock(n int) ([]byte, error) {
	b, err := r.readN(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadToEndOfSection reads all remaining bytes up to the current limit.
func (r *Reader) ReadToEndOfSection() ([]byte, error) {
	n := int(r.effectiveEnd() - r.pos)
	if n < 0 {
		n = 0
	}
	return r.ReadBlock(n)
}

// IsOLE reports whether this reader was constructed with compound-
// document support and the underlying data is a compound file.
func (r *Reader) IsOLE() bool {
	return r.storage != nil && r.storage.IsCompound()
}

// ListOLEEntries lists named sub-streams in the attached compound
// document, if any.
func (r *Reader) ListOLEEntries() []string {
	if r.storage == nil {
		return nil
	}
	return r.storage.ListEntries()
}

// OpenOLE opens a named sub-stream as a fresh big-endian Reader over its
// concatenated sectors.
func (r *Reader) OpenOLE(path string) (*Reader, error) {
	if r.storage == nil {
		return nil, mwawerr.New(mwawerr.Generic, "stream.OpenOLE", fmt.Errorf("reader has no attached storage"))
	}
	data, err := r.storage.OpenEntry(path)
	if err != nil {
		return nil, err
	}
	return New(data), nil
}

// Len returns the total size of the underlying byte slice (not limited).
func (r *Reader) Len() int64 { return int64(len(r.data)) }
