package zippack

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedStamp = time.Date(2020, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestAddAndBytesProducesValidSignatures(t *testing.T) {
	w := NewWriter(fixedStamp)
	require.NoError(t, w.Add("mimetype", []byte("application/vnd.oasis.opendocument.text")))
	require.NoError(t, w.Add("content.xml", bytes.Repeat([]byte("hello world "), 50)))

	data := w.Bytes()
	require.Equal(t, uint32(localHeaderSig), binary.LittleEndian.Uint32(data[0:4]))

	var eocdOff = -1
	for i := 0; i+4 <= len(data); i++ {
		if binary.LittleEndian.Uint32(data[i:i+4]) == eocdSig {
			eocdOff = i
		}
	}
	require.NotEqual(t, -1, eocdOff, "archive must contain an EOCD record")
	numEntries := binary.LittleEndian.Uint16(data[eocdOff+10:])
	require.Equal(t, uint16(2), numEntries)
}

func TestIncompressibleShortDataIsStored(t *testing.T) {
	w := NewWriter(fixedStamp)
	require.NoError(t, w.Add("x", []byte{1}))
	require.Equal(t, uint16(methodStore), w.members[0].method)
}

func TestHighlyRepetitiveDataIsDeflated(t *testing.T) {
	w := NewWriter(fixedStamp)
	require.NoError(t, w.Add("x", bytes.Repeat([]byte("a"), 4096)))
	require.Equal(t, uint16(methodDeflate), w.members[0].method)
	require.Less(t, int(w.members[0].compSize), int(w.members[0].rawSize))
}

func TestDuplicateNameErrors(t *testing.T) {
	w := NewWriter(fixedStamp)
	require.NoError(t, w.Add("a", []byte("1")))
	require.Error(t, w.Add("a", []byte("2")))
}
