package msword

import (
	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/listener"
)

// chpxPictureRef is the CHPX opcode marking a picture placeholder
// character: a 4-byte FC into the "Data" stream where the PICF
// (picture frame header) for this run begins.
const chpxPictureRef = 0x06

// picturePlaceholder is the character Word substitutes into the text
// stream at a picture's anchor point.
const picturePlaceholder = '\x01'

// picfHeaderSize is the fixed portion of a PICF: a 4-byte cb (total
// size including this header) followed by a 2-byte mm (mode: 1 for an
// embedded bitmap, other values for metafile/EMF data this parser does
// not decode) and 2 bytes of reserved padding before the picture's own
// payload.
const picfHeaderSize = 8

// findPictureFC scans a CHPX grpprl for a chpxPictureRef opcode,
// walking the same opcodes applyCHPX recognizes so it stops in the
// same place applyCHPX would on an unrecognized opcode (§4.7's
// unknown-opcode-terminates-record rule applies identically here).
func findPictureFC(data []byte) (fc uint32, ok bool) {
	i := 0
	for i < len(data) {
		switch data[i] {
		case chpxBold, chpxItalic, chpxUnderline, chpxFontHalfPt:
			i += 2
		case chpxFontID:
			i += 3
		case chpxPictureRef:
			if i+4 >= len(data) {
				return 0, false
			}
			return uint32(data[i+1]) | uint32(data[i+2])<<8 | uint32(data[i+3])<<16 | uint32(data[i+4])<<24, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// emitPictureAt reads the PICF at fc in dataStream and, if it is a raw
// bitmap (mm == 1), inserts it as a frame holding a binary object — the
// frame/picture pass of §4.7 step 5.
func emitPictureAt(l *listener.Listener, dataStream []byte, fc uint32) {
	if uint64(fc)+picfHeaderSize > uint64(len(dataStream)) {
		return
	}
	header := dataStream[fc : fc+picfHeaderSize]
	cb := le32(header[0:])
	mm := le16(header[4:])
	if mm != 1 {
		return // metafile/EMF payloads are out of scope; only raw bitmaps are emitted
	}
	if uint64(fc)+uint64(cb) > uint64(len(dataStream)) || cb < picfHeaderSize {
		return
	}
	payload := dataStream[fc+picfHeaderSize : fc+cb]
	l.InsertPicture(doctypes.FramePosition{}, payload, "image/bmp")
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
