package writenow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/stream"
)

func TestParseTableTokenTwoCells(t *testing.T) {
	data := []byte{
		0x00, 0x02, // count = 2

		0x00, 0x00, 0x00, 0x00, 0x02, 0xD0, 0x02, 0xD0, // cell 0: (0,0)-(720,720) twips
		0x02, 0xD0, 0x00, 0x00, 0x05, 0xA0, 0x02, 0xD0, // cell 1: (720,0)-(1440,720) twips
	}
	r := stream.New(data)
	cells, err := ParseTableToken(r)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	require.InDelta(t, 0, cells[0].Box.Min.X, 0.01)
	require.InDelta(t, 48, cells[0].Box.Max.X, 0.01) // 720 twips * 96/1440
	require.InDelta(t, 48, cells[1].Box.Min.X, 0.01)
	require.InDelta(t, 96, cells[1].Box.Max.X, 0.01)
}

func TestParseTableTokenTruncated(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x00} // count = 1, but no cell data
	r := stream.New(data)
	_, err := ParseTableToken(r)
	require.Error(t, err)
}

func TestParseTableTokenZeroCells(t *testing.T) {
	data := []byte{0x00, 0x00}
	r := stream.New(data)
	cells, err := ParseTableToken(r)
	require.NoError(t, err)
	require.Empty(t, cells)
}
