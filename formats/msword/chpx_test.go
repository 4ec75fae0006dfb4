package msword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyCHPXBoldItalicUnderline(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{
		chpxBold, 0x01,
		chpxItalic, 0x01,
		chpxUnderline, 0x00,
	}
	unk := applyCHPX(l, data)
	require.Nil(t, unk)
}

func TestApplyCHPXFontSize(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{chpxFontHalfPt, 24} // 12pt
	unk := applyCHPX(l, data)
	require.Nil(t, unk)
}

func TestApplyCHPXStopsOnUnknownOpcode(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{chpxBold, 0x01, 0xEE}
	unk := applyCHPX(l, data)
	require.NotNil(t, unk)
	require.Equal(t, byte(0xEE), unk.opcode)
}

func TestApplyCHPXFontID(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{chpxFontID, 0x05, 0x00} // font id 5
	unk := applyCHPX(l, data)
	require.Nil(t, unk)
}
