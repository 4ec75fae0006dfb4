package msword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPictureFC(t *testing.T) {
	data := []byte{
		chpxBold, 0x01,
		chpxPictureRef, 0x64, 0x00, 0x00, 0x00, // fc = 100
	}
	fc, ok := findPictureFC(data)
	require.True(t, ok)
	require.Equal(t, uint32(100), fc)
}

func TestFindPictureFCAbsentOnUnknownOpcode(t *testing.T) {
	data := []byte{0xEE, 0x00}
	_, ok := findPictureFC(data)
	require.False(t, ok)
}

func TestFindPictureFCTruncated(t *testing.T) {
	data := []byte{chpxPictureRef, 0x01, 0x02}
	_, ok := findPictureFC(data)
	require.False(t, ok)
}

func TestEmitPictureAtRawBitmap(t *testing.T) {
	l, rec := newTestListener()

	payload := []byte{0xAA, 0xBB, 0xCC}
	dataStream := make([]byte, 20)
	dataStream[0] = byte(len(payload) + picfHeaderSize)
	dataStream[4] = 1 // mm = 1, raw bitmap
	copy(dataStream[picfHeaderSize:], payload)

	emitPictureAt(l, dataStream, 0)

	require.Contains(t, rec.Names(), "open_frame")
	require.Contains(t, rec.Names(), "insert_binary_object")
	require.Contains(t, rec.Names(), "close_frame")
}

func TestEmitPictureAtSkipsMetafile(t *testing.T) {
	l, rec := newTestListener()

	dataStream := make([]byte, 20)
	dataStream[0] = 16
	dataStream[4] = 2 // mm = 2, metafile: not decoded

	emitPictureAt(l, dataStream, 0)
	require.NotContains(t, rec.Names(), "open_frame")
}
