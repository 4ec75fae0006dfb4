// Package zippack writes a minimal ZIP container for ODF packaging:
// local file headers, a central directory, and an end-of-central-
// directory record, using raw DEFLATE at compression level 1 and
// storing a member uncompressed when deflate doesn't shrink it (§6.3).
package zippack

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"hash/crc32"
	"time"

	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

const (
	localHeaderSig   = 0x04034b50
	centralHeaderSig = 0x02014b50
	eocdSig          = 0x06054b50

	methodStore   = 0
	methodDeflate = 8

	versionMadeBy = 20
)

type member struct {
	name       string
	data       []byte
	method     uint16
	crc        uint32
	compSize   uint32
	rawSize    uint32
	localOff   uint32
	modTime    uint16
	modDate    uint16
}

// Writer accumulates members in memory and produces the final archive
// from Bytes. It does not stream to an io.Writer incrementally — the
// teacher's own compression use (macros.go's zlib decompression of
// VBA modules) is a one-shot in-memory operation, and this mirrors
// that shape for the write side.
type Writer struct {
	members []member
	names   map[string]bool
	stamp   time.Time
}

// NewWriter returns an empty archive writer. stamp is used for every
// member's MS-DOS timestamp fields (the ZIP format carries no timezone
// or sub-second precision).
func NewWriter(stamp time.Time) *Writer {
	return &Writer{names: make(map[string]bool), stamp: stamp}
}

// Add stores name with the given uncompressed content, deflating it at
// level 1 and falling back to a stored (uncompressed) entry when
// deflate does not produce a smaller result.
func (w *Writer) Add(name string, data []byte) error {
	if w.names[name] {
		return mwawerr.New(mwawerr.Generic, "zippack.Add", errDuplicateName(name))
	}
	w.names[name] = true

	sum := crc32.ChecksumIEEE(data)
	compressed, ok := deflateRaw(data)

	m := member{
		name:    name,
		crc:     sum,
		rawSize: uint32(len(data)),
	}
	dosTime, dosDate := dosTimestamp(w.stamp)
	m.modTime, m.modDate = dosTime, dosDate

	if ok && len(compressed) < len(data) {
		m.data = compressed
		m.method = methodDeflate
		m.compSize = uint32(len(compressed))
	} else {
		m.data = data
		m.method = methodStore
		m.compSize = uint32(len(data))
	}
	w.members = append(w.members, m)
	return nil
}

type errDuplicateName string

func (e errDuplicateName) Error() string { return "duplicate member name: " + string(e) }

// deflateRaw compresses data with raw DEFLATE (no zlib/gzip wrapper)
// at the fastest compression level, in the same "fast, in-memory,
// one-shot" shape as the teacher's macros.go use of compress/zlib
// (nothing in this module imports compress/zlib).
func deflateRaw(data []byte) ([]byte, bool) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestSpeed)
	if err != nil {
		return nil, false
	}
	if _, err := fw.Write(data); err != nil {
		return nil, false
	}
	if err := fw.Close(); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func dosTimestamp(t time.Time) (uint16, uint16) {
	dosTime := uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	year := t.Year()
	if year < 1980 {
		year = 1980
	}
	dosDate := uint16((year-1980)<<9 | int(t.Month())<<5 | t.Day())
	return dosTime, dosDate
}

// Bytes serializes the archive: every local header+data in insertion
// order, then the central directory, then the EOCD record.
func (w *Writer) Bytes() []byte {
	var out bytes.Buffer
	offsets := make([]uint32, len(w.members))

	for i := range w.members {
		m := &w.members[i]
		m.localOff = uint32(out.Len())
		offsets[i] = m.localOff
		writeLocalHeader(&out, m)
		out.Write(m.data)
	}

	cdStart := uint32(out.Len())
	for i := range w.members {
		writeCentralHeader(&out, &w.members[i])
	}
	cdSize := uint32(out.Len()) - cdStart

	var eocd [22]byte
	binary.LittleEndian.PutUint32(eocd[0:], eocdSig)
	binary.LittleEndian.PutUint16(eocd[8:], uint16(len(w.members)))
	binary.LittleEndian.PutUint16(eocd[10:], uint16(len(w.members)))
	binary.LittleEndian.PutUint32(eocd[12:], cdSize)
	binary.LittleEndian.PutUint32(eocd[16:], cdStart)
	out.Write(eocd[:])

	return out.Bytes()
}

func writeLocalHeader(out *bytes.Buffer, m *member) {
	var h [30]byte
	binary.LittleEndian.PutUint32(h[0:], localHeaderSig)
	binary.LittleEndian.PutUint16(h[4:], versionMadeBy)
	binary.LittleEndian.PutUint16(h[8:], m.method)
	binary.LittleEndian.PutUint16(h[10:], m.modTime)
	binary.LittleEndian.PutUint16(h[12:], m.modDate)
	binary.LittleEndian.PutUint32(h[14:], m.crc)
	binary.LittleEndian.PutUint32(h[18:], m.compSize)
	binary.LittleEndian.PutUint32(h[22:], m.rawSize)
	binary.LittleEndian.PutUint16(h[26:], uint16(len(m.name)))
	out.Write(h[:])
	out.WriteString(m.name)
}

func writeCentralHeader(out *bytes.Buffer, m *member) {
	var h [46]byte
	binary.LittleEndian.PutUint32(h[0:], centralHeaderSig)
	binary.LittleEndian.PutUint16(h[4:], versionMadeBy)
	binary.LittleEndian.PutUint16(h[6:], versionMadeBy)
	binary.LittleEndian.PutUint16(h[10:], m.method)
	binary.LittleEndian.PutUint16(h[12:], m.modTime)
	binary.LittleEndian.PutUint16(h[14:], m.modDate)
	binary.LittleEndian.PutUint32(h[16:], m.crc)
	binary.LittleEndian.PutUint32(h[20:], m.compSize)
	binary.LittleEndian.PutUint32(h[24:], m.rawSize)
	binary.LittleEndian.PutUint16(h[28:], uint16(len(m.name)))
	binary.LittleEndian.PutUint32(h[42:], m.localOff)
	out.Write(h[:])
	out.WriteString(m.name)
}
