package storage

import (
	"fmt"
	"time"

	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// PropertySet holds the subset of an OLE SummaryInformation stream this
// library needs to populate a sink's start_document metadata-properties
// argument (§6.1). Full custom-property and DocumentSummaryInformation
// support is out of scope; this covers the standard PIDs.
type PropertySet struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	Comments string
	Created  time.Time
	Modified time.Time
}

// property type tags (VT_*) this parser understands; others are skipped.
const (
	vtLPSTR    = 0x001E
	vtFILETIME = 0x0040
)

// Standard SummaryInformation property IDs.
const (
	pidTitle      = 0x02
	pidSubject    = 0x03
	pidAuthor     = 0x04
	pidKeywords   = 0x05
	pidComments   = 0x06
	pidCreateTime = 0x0C
	pidLastSave   = 0x0D
)

// ParsePropertySet parses a \005SummaryInformation stream.
//
// The stream format: a 28-byte header (byte order mark, format, OS,
// class ID, section count), one section list entry {format ID, offset},
// then per-section {size, property count, {id, offset} pairs}, then the
// properties themselves as {type, value} pairs at id-offset.
func ParsePropertySet(data []byte) (*PropertySet, error) {
	if len(data) < 28+20 {
		return nil, mwawerr.New(mwawerr.Truncated, "storage.ParsePropertySet", fmt.Errorf("stream too short"))
	}
	sectionCount := readU32LE(data, 24)
	if sectionCount == 0 {
		return &PropertySet{}, nil
	}
	// Only the first section (FMTID_SummaryInformation) is consulted.
	sectionOffset := readU32LE(data, 28+16)
	if int(sectionOffset) >= len(data) {
		return nil, mwawerr.New(mwawerr.MalformedZone, "storage.ParsePropertySet", fmt.Errorf("section offset out of range"))
	}
	section := data[sectionOffset:]
	if len(section) < 8 {
		return nil, mwawerr.New(mwawerr.Truncated, "storage.ParsePropertySet", fmt.Errorf("section header too short"))
	}
	propCount := readU32LE(section, 4)

	ps := &PropertySet{}
	for i := uint32(0); i < propCount; i++ {
		entryOff := 8 + int(i)*8
		if entryOff+8 > len(section) {
			break
		}
		id := readU32LE(section, entryOff)
		valOff := int(readU32LE(section, entryOff+4))
		if valOff+4 > len(section) {
			continue
		}
		typeTag := readU32LE(section, valOff)
		valData := section[valOff+4:]

		switch id {
		case pidTitle:
			ps.Title = readPropString(typeTag, valData)
		case pidSubject:
			ps.Subject = readPropString(typeTag, valData)
		case pidAuthor:
			ps.Author = readPropString(typeTag, valData)
		case pidKeywords:
			ps.Keywords = readPropString(typeTag, valData)
		case pidComments:
			ps.Comments = readPropString(typeTag, valData)
		case pidCreateTime:
			ps.Created = readPropTime(typeTag, valData)
		case pidLastSave:
			ps.Modified = readPropTime(typeTag, valData)
		}
	}
	return ps, nil
}

func readPropString(typeTag uint32, data []byte) string {
	if typeTag != vtLPSTR || len(data) < 4 {
		return ""
	}
	strLen := int(readU32LE(data, 0))
	if 4+strLen > len(data) || strLen == 0 {
		return ""
	}
	raw := data[4 : 4+strLen]
	// Codepage-1252/ASCII strings are the common case; trim the NUL.
	for len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	return string(raw)
}

func readPropTime(typeTag uint32, data []byte) time.Time {
	if typeTag != vtFILETIME || len(data) < 8 {
		return time.Time{}
	}
	lo := uint64(readU32LE(data, 0))
	hi := uint64(readU32LE(data, 4))
	ticks := hi<<32 | lo
	// FILETIME: 100ns intervals since 1601-01-01.
	const epochDiff = 116444736000000000
	if ticks < epochDiff {
		return time.Time{}
	}
	unixNanos := (ticks - epochDiff) * 100
	return time.Unix(0, int64(unixNanos)).UTC()
}
