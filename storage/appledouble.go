package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

const (
	appleDoubleMagic   = 0x00051607
	appleDoubleVersion = 0x00020000

	entryFinderInfo = 9
	entryResource   = 2
)

// AppleDoubleEntry is one {type, offset, length} triple from the entry
// table, with its bytes already sliced out.
type AppleDoubleEntry struct {
	TypeID uint32
	Data   []byte
}

// ParseAppleDouble recognizes the compound header (magic, version, 16
// bytes of padding) and entry table of an AppleDouble-framed byte
// stream, returning the named sub-streams it carries. Unknown type IDs
// are preserved verbatim so callers can round-trip them.
func ParseAppleDouble(data []byte) (map[string]AppleDoubleEntry, error) {
	if len(data) < 26 {
		return nil, mwawerr.New(mwawerr.Truncated, "storage.ParseAppleDouble", fmt.Errorf("header too short"))
	}
	magic := binary.BigEndian.Uint32(data[0:4])
	version := binary.BigEndian.Uint32(data[4:8])
	if magic != appleDoubleMagic || version != appleDoubleVersion {
		return nil, mwawerr.New(mwawerr.UnsupportedVersion, "storage.ParseAppleDouble", fmt.Errorf("bad magic/version"))
	}
	// 16 bytes of filler follow the 8-byte header, then a 2-byte entry count.
	const tableStart = 8 + 16
	if len(data) < tableStart+2 {
		return nil, mwawerr.New(mwawerr.Truncated, "storage.ParseAppleDouble", fmt.Errorf("no entry count"))
	}
	count := binary.BigEndian.Uint16(data[tableStart : tableStart+2])

	out := make(map[string]AppleDoubleEntry, count)
	pos := tableStart + 2
	for i := 0; i < int(count); i++ {
		if pos+12 > len(data) {
			return nil, mwawerr.New(mwawerr.Truncated, "storage.ParseAppleDouble", fmt.Errorf("entry %d out of bounds", i))
		}
		typeID := binary.BigEndian.Uint32(data[pos : pos+4])
		offset := binary.BigEndian.Uint32(data[pos+4 : pos+8])
		length := binary.BigEndian.Uint32(data[pos+8 : pos+12])
		pos += 12

		if int64(offset)+int64(length) > int64(len(data)) {
			return nil, mwawerr.New(mwawerr.MalformedZone, "storage.ParseAppleDouble", fmt.Errorf("entry %d extends past end of file", i))
		}
		name := entryName(typeID, i)
		out[name] = AppleDoubleEntry{TypeID: typeID, Data: data[offset : offset+length]}
	}
	return out, nil
}

func entryName(typeID uint32, index int) string {
	switch typeID {
	case entryResource:
		return "resource-fork"
	case entryFinderInfo:
		return "finder-info"
	default:
		return fmt.Sprintf("entry-%d-%d", typeID, index)
	}
}

// EmitAppleDouble is the inverse of ParseAppleDouble: it produces the
// compound bytes consumed by downstream ODF-packaging tooling, given an
// optional finder-info blob and/or resource fork.
func EmitAppleDouble(finderInfo, resourceFork []byte) []byte {
	var entries []AppleDoubleEntry
	if finderInfo != nil {
		entries = append(entries, AppleDoubleEntry{TypeID: entryFinderInfo, Data: finderInfo})
	}
	if resourceFork != nil {
		entries = append(entries, AppleDoubleEntry{TypeID: entryResource, Data: resourceFork})
	}

	headerLen := 8 + 16 + 2 + 12*len(entries)
	out := make([]byte, headerLen)
	binary.BigEndian.PutUint32(out[0:4], appleDoubleMagic)
	binary.BigEndian.PutUint32(out[4:8], appleDoubleVersion)
	binary.BigEndian.PutUint16(out[headerLen-12*len(entries)-2:], uint16(len(entries)))

	pos := 8 + 16 + 2
	offset := headerLen
	for _, e := range entries {
		binary.BigEndian.PutUint32(out[pos:pos+4], e.TypeID)
		binary.BigEndian.PutUint32(out[pos+4:pos+8], uint32(offset))
		binary.BigEndian.PutUint32(out[pos+8:pos+12], uint32(len(e.Data)))
		pos += 12
		out = append(out, e.Data...)
		offset += len(e.Data)
	}
	return out
}

// FinderDatRecord is one 92-byte record from a Finder.dat-style table:
// 21 records per 2048-byte page (plus 24 bytes of page padding), each
// carrying a Pascal filename, 32 bytes of finder info, and the name of
// a sibling 8.3 resource-fork file under RESOURCE.FRK/.
type FinderDatRecord struct {
	Name         string
	FinderInfo   [32]byte
	ResourceFile string
}

const (
	finderDatPageSize    = 2048
	finderDatRecordSize  = 92
	finderDatRecsPerPage = 21
)

// ExtractFinderDat enumerates the fixed-stride record table described in
// spec §4.2 and emits one FinderDatRecord per populated slot.
func ExtractFinderDat(data []byte) ([]FinderDatRecord, error) {
	var out []FinderDatRecord
	for pageStart := 0; pageStart+finderDatPageSize <= len(data)+finderDatPageSize && pageStart < len(data); pageStart += finderDatPageSize {
		pageEnd := pageStart + finderDatPageSize
		if pageEnd > len(data) {
			pageEnd = len(data)
		}
		page := data[pageStart:pageEnd]
		for i := 0; i < finderDatRecsPerPage; i++ {
			off := i * finderDatRecordSize
			if off+finderDatRecordSize > len(page) {
				break
			}
			rec := page[off : off+finderDatRecordSize]
			// Layout: 1 byte name length, 31-byte fixed Pascal name
			// field, 32 bytes finder info, 12-byte 8.3 resource name,
			// 16 bytes padding. 1+31+32+12+16 = 92.
			nameLen := int(rec[0])
			if nameLen == 0 || nameLen > 31 {
				continue // empty slot
			}
			name := string(rec[1 : 1+nameLen])
			var finfo [32]byte
			copy(finfo[:], rec[32:64])
			resNameRaw := rec[64:76]
			resEnd := 0
			for resEnd < len(resNameRaw) && resNameRaw[resEnd] != 0 {
				resEnd++
			}
			resName := sanitizeShortName(string(resNameRaw[:resEnd]))
			if resName == "" {
				resName = sanitizeShortName(name)
			}

			out = append(out, FinderDatRecord{
				Name:         name,
				FinderInfo:   finfo,
				ResourceFile: "RESOURCE.FRK/" + resName,
			})
		}
	}
	return out, nil
}

func sanitizeShortName(name string) string {
	if len(name) > 8 {
		name = name[:8]
	}
	return name
}
