package msword

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/structures"
)

func buildSEDPLCAndWordData(t *testing.T) (*structures.PLC, []byte) {
	t.Helper()

	const fcSepx = 100

	wordData := make([]byte, 200)
	sep := make([]byte, 32)
	binary.LittleEndian.PutUint16(sep[0:], 12240) // XaPage, twips (8.5in)
	binary.LittleEndian.PutUint16(sep[2:], 15840) // YaPage, twips (11in)
	binary.LittleEndian.PutUint16(sep[4:], 1440)  // DxaLeft
	binary.LittleEndian.PutUint16(sep[6:], 1440)  // DxaRight
	binary.LittleEndian.PutUint16(sep[8:], 1440)  // DyaTop
	binary.LittleEndian.PutUint16(sep[10:], 1440) // DyaBottom

	sepx := make([]byte, 2+len(sep))
	binary.LittleEndian.PutUint16(sepx[0:], uint16(len(sep)))
	copy(sepx[2:], sep)
	copy(wordData[fcSepx:], sepx)

	// One SED PLC entry: CPs [0, 10), pointing at fcSepx.
	var plcData []byte
	plcData = append(plcData, 0, 0, 0, 0) // CP 0
	plcData = append(plcData, 10, 0, 0, 0) // CP 10
	sed := make([]byte, sedEntrySize)
	binary.LittleEndian.PutUint32(sed[2:], fcSepx)
	plcData = append(plcData, sed...)

	plc, err := structures.ParsePLC(plcData, sedEntrySize)
	require.NoError(t, err)
	return plc, wordData
}

func TestPageSpansFromSections(t *testing.T) {
	plc, wordData := buildSEDPLCAndWordData(t)

	pages := pageSpansFromSections(plc, wordData)
	require.Len(t, pages, 1)
	require.InDelta(t, 612.0, pages[0].FormWidth, 0.01)
	require.InDelta(t, 792.0, pages[0].FormLength, 0.01)
	require.InDelta(t, 72.0, pages[0].Margins.Left, 0.01)
	require.Equal(t, doctypes.OrientationPortrait, pages[0].Orientation)
}

func TestPageSpansFromSectionsNilPLC(t *testing.T) {
	pages := pageSpansFromSections(nil, nil)
	require.Len(t, pages, 1)
	require.Equal(t, defaultPageSpan(), pages[0])
}

func TestPageSpansFromSectionsNoSepxFallsBackToDefault(t *testing.T) {
	var plcData []byte
	plcData = append(plcData, 0, 0, 0, 0)
	plcData = append(plcData, 10, 0, 0, 0)
	sed := make([]byte, sedEntrySize)
	binary.LittleEndian.PutUint32(sed[2:], 0xFFFFFFFF)
	plcData = append(plcData, sed...)

	plc, err := structures.ParsePLC(plcData, sedEntrySize)
	require.NoError(t, err)

	pages := pageSpansFromSections(plc, nil)
	require.Equal(t, defaultPageSpan(), pages[0])
}
