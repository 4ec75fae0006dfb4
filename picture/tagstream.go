package picture

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// tagWriter implements the length-prefixed S/E/T tag-stream grammar
// (§4.3) used to encode a small XML-equivalent fragment: 'S' (start
// element: name, property count, (name,value) pairs), 'E' (end
// element: name), 'T' (text). Every length and count is a fixed-width
// uint32 in host byte order; this package fixes that order to little
// endian (unlike the stream package, whose readers default to big
// endian).
type tagWriter struct {
	buf bytes.Buffer
}

func (w *tagWriter) writeString(s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	w.buf.Write(lenBuf[:])
	w.buf.WriteString(s)
}

func (w *tagWriter) writeCount(n int) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(n))
	w.buf.Write(lenBuf[:])
}

// startElement is ordered to match map iteration would be non-
// deterministic, so callers pass an ordered attrs slice.
type attr struct {
	name  string
	value string
}

func (w *tagWriter) startElement(name string, attrs []attr) {
	w.buf.WriteByte('S')
	w.writeString(name)
	w.writeCount(len(attrs))
	for _, a := range attrs {
		w.writeString(a.name)
		w.writeString(a.value)
	}
}

func (w *tagWriter) endElement(name string) {
	w.buf.WriteByte('E')
	w.writeString(name)
}

func (w *tagWriter) characters(s string) {
	if len(s) == 0 {
		return
	}
	w.buf.WriteByte('T')
	w.writeString(s)
}

func (w *tagWriter) bytes() []byte { return w.buf.Bytes() }

// tagReader parses the grammar tagWriter produces; used by tests and
// by any future round-trip consumer.
type tagReader struct {
	data []byte
	pos  int
}

type Event struct {
	Kind  byte // 'S', 'E', or 'T'
	Name  string
	Attrs []attr
	Text  string
}

func (r *tagReader) readUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, mwawerr.New(mwawerr.Truncated, "tagstream.readUint32", nil)
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *tagReader) readString() (string, error) {
	n, err := r.readUint32()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", mwawerr.New(mwawerr.Truncated, "tagstream.readString", nil)
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// decodeEvents parses a full tag stream into a flat event list.
func decodeEvents(data []byte) ([]Event, error) {
	r := &tagReader{data: data}
	var out []Event
	for r.pos < len(r.data) {
		tag := r.data[r.pos]
		r.pos++
		switch tag {
		case 'S':
			name, err := r.readString()
			if err != nil {
				return nil, err
			}
			count, err := r.readUint32()
			if err != nil {
				return nil, err
			}
			attrs := make([]attr, count)
			for i := range attrs {
				k, err := r.readString()
				if err != nil {
					return nil, err
				}
				v, err := r.readString()
				if err != nil {
					return nil, err
				}
				attrs[i] = attr{k, v}
			}
			out = append(out, Event{Kind: 'S', Name: name, Attrs: attrs})
		case 'E':
			name, err := r.readString()
			if err != nil {
				return nil, err
			}
			out = append(out, Event{Kind: 'E', Name: name})
		case 'T':
			s, err := r.readString()
			if err != nil {
				return nil, err
			}
			out = append(out, Event{Kind: 'T', Text: s})
		default:
			return nil, mwawerr.New(mwawerr.MalformedZone, "tagstream.decode", fmt.Errorf("unknown tag byte %#x", tag))
		}
	}
	return out, nil
}
