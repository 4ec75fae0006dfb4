package msword

import (
	"encoding/binary"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/structures"
)

// sedEntrySize is the size in bytes of one SED (Section Descriptor)
// PLC data element: a 2-byte unused fn, a 4-byte fcSepx, and 6 more
// reserved/unused bytes this parser does not need.
const sedEntrySize = 12

// twipsPerPoint converts twips (1/20 point) to points.
const twipsPerPoint = 1.0 / 20.0

// pageSpansFromSections builds one doctypes.PageSpan per section
// described by sedPLC, reading each section's SEPX from wordData at
// the fcSepx the SED entry names. Falls back to a single default page
// if no section table is present (older/degenerate documents).
func pageSpansFromSections(sedPLC *structures.PLC, wordData []byte) []doctypes.PageSpan {
	if sedPLC == nil || sedPLC.Count() == 0 {
		return []doctypes.PageSpan{defaultPageSpan()}
	}

	pages := make([]doctypes.PageSpan, 0, sedPLC.Count())
	for i := 0; i < sedPLC.Count(); i++ {
		raw, err := sedPLC.GetDataAt(i)
		if err != nil || len(raw) < sedEntrySize {
			pages = append(pages, defaultPageSpan())
			continue
		}

		fcSepx := binary.LittleEndian.Uint32(raw[2:6])
		if fcSepx == 0xFFFFFFFF {
			pages = append(pages, defaultPageSpan())
			continue
		}

		pages = append(pages, pageSpanFromSepx(wordData, fcSepx))
	}
	return pages
}

func pageSpanFromSepx(wordData []byte, fc uint32) doctypes.PageSpan {
	if uint64(fc) >= uint64(len(wordData)) {
		return defaultPageSpan()
	}
	sepx, err := structures.ParseSEPX(wordData[fc:])
	if err != nil {
		return defaultPageSpan()
	}
	sep, err := sepx.ParseSEP()
	if err != nil {
		return defaultPageSpan()
	}

	orientation := doctypes.OrientationPortrait
	if sep.IsLandscape() {
		orientation = doctypes.OrientationLandscape
	}

	return doctypes.PageSpan{
		FormWidth:   twipsToPoints(sep.XaPage),
		FormLength:  twipsToPoints(sep.YaPage),
		Orientation: orientation,
		Margins: doctypes.Margins{
			Left:   twipsToPoints(sep.DxaLeft),
			Right:  twipsToPoints(sep.DxaRight),
			Top:    twipsToPoints(sep.DyaTop),
			Bottom: twipsToPoints(sep.DyaBottom),
		},
		Count: 1,
	}
}

func defaultPageSpan() doctypes.PageSpan {
	return doctypes.PageSpan{FormWidth: 612, FormLength: 792, Count: 1}
}

func twipsToPoints(twips uint16) float64 {
	return float64(twips) * twipsPerPoint
}
