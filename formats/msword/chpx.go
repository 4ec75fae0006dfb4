package msword

import (
	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/listener"
)

// Character property codes (CHPX) follow the same byte-keyed opcode
// shape as PAPX (§4.7), applied to the listener's pending font state.
const (
	chpxBold       = 0x01 // 1 byte: 0 off, nonzero on
	chpxItalic     = 0x02 // 1 byte
	chpxUnderline  = 0x03 // 1 byte
	chpxFontHalfPt = 0x04 // 1 byte, half-points
	chpxFontID     = 0x05 // 2 bytes LE, legacy font id
)

type unknownCHPXOpcode struct {
	opcode byte
	offset int
}

// applyCHPX interprets a single CHPX grpprl against the listener's
// pending font state.
func applyCHPX(l *listener.Listener, data []byte) *unknownCHPXOpcode {
	var bits uint32
	i := 0
	for i < len(data) {
		op := data[i]
		switch op {
		case chpxBold:
			if i+1 >= len(data) {
				return &unknownCHPXOpcode{op, i}
			}
			if data[i+1] != 0 {
				bits |= 1 << doctypes.StyleBold
			}
			i += 2
		case chpxItalic:
			if i+1 >= len(data) {
				return &unknownCHPXOpcode{op, i}
			}
			if data[i+1] != 0 {
				bits |= 1 << doctypes.StyleItalic
			}
			i += 2
		case chpxUnderline:
			if i+1 >= len(data) {
				return &unknownCHPXOpcode{op, i}
			}
			if data[i+1] != 0 {
				bits |= 1 << doctypes.StyleUnderlineSingle
			}
			i += 2
		case chpxFontHalfPt:
			if i+1 >= len(data) {
				return &unknownCHPXOpcode{op, i}
			}
			l.SetFontSize(float64(data[i+1]) / 2.0)
			i += 2
		case chpxFontID:
			if i+2 >= len(data) {
				return &unknownCHPXOpcode{op, i}
			}
			l.SetTextFontByID(int32(le16(data[i+1:])))
			i += 3
		default:
			l.SetTextAttribute(bits)
			return &unknownCHPXOpcode{op, i}
		}
	}
	l.SetTextAttribute(bits)
	return nil
}
