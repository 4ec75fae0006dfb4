package msword

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fib"
	"github.com/Distrotech/libmwaw-sub009/sink"
)

// fakeOLE is a minimal, flat-namespace stand-in for storage.Reader built
// entirely in memory so the parser can be exercised without a real OLE
// compound file on disk.
type fakeOLE struct {
	entries map[string][]byte
}

func (f *fakeOLE) OpenEntry(name string) ([]byte, error) {
	data, ok := f.entries[name]
	if !ok {
		return nil, errNotFound(name)
	}
	return data, nil
}

func (f *fakeOLE) ListEntries() []string {
	names := make([]string, 0, len(f.entries))
	for k := range f.entries {
		names = append(names, k)
	}
	return names
}

type notFoundError string

func (e notFoundError) Error() string { return "not found: " + string(e) }

func errNotFound(name string) error { return notFoundError(name) }

// buildFixture assembles a synthetic single-piece, unencrypted document:
// the text "Hi" with a bold character run and a right-justified
// paragraph, laid out the way a real Word 97 WordDocument/0Table pair
// would be, but trimmed to the minimum each structure needs.
func buildFixture(t *testing.T) (wordDocument, table0 []byte) {
	t.Helper()

	const (
		textFC         = 430
		chpxPage       = 1
		papxPage       = 2
		fcPlcfbteChpx  = 17
		lcbPlcfbteChpx = 12
		fcPlcfbtePapx  = 29
		lcbPlcfbtePapx = 12
		fcClx          = 0
		lcbClx         = 17
	)

	var buf bytes.Buffer
	base := fib.FibBase{WIdent: 0xA5EC, NFib: 0x00C1}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, base))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0))) // Csw
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, fib.FibRgW97{}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0))) // Cslw
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, fib.FibRgLw97{}))

	const blobSize = 272
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(blobSize/8))) // CbRgFcLcb

	blob := make([]byte, blobSize)
	binary.LittleEndian.PutUint32(blob[96:], fcPlcfbteChpx)
	binary.LittleEndian.PutUint32(blob[100:], lcbPlcfbteChpx)
	binary.LittleEndian.PutUint32(blob[104:], fcPlcfbtePapx)
	binary.LittleEndian.PutUint32(blob[108:], lcbPlcfbtePapx)
	binary.LittleEndian.PutUint32(blob[264:], fcClx)
	binary.LittleEndian.PutUint32(blob[268:], lcbClx)
	buf.Write(blob)

	// Pad out to the text position, then write "Hi" as ANSI bytes.
	for buf.Len() < textFC {
		buf.WriteByte(0)
	}
	buf.WriteString("Hi")

	// Pad to the CHPX FKP page boundary (absolute offset 512).
	for buf.Len() < chpxPage*512 {
		buf.WriteByte(0)
	}
	chpxPageStart := buf.Len()
	chpxPageBuf := make([]byte, 512)
	binary.LittleEndian.PutUint32(chpxPageBuf[0:], textFC) // entry FC
	chpxPageBuf[4] = 20                                     // offset into page
	chpxPageBuf[20] = 2                                     // grpprl length
	chpxPageBuf[21] = chpxBold
	chpxPageBuf[22] = 0x01
	chpxPageBuf[511] = 1 // entry count
	buf.Write(chpxPageBuf)
	require.Equal(t, chpxPage*512, chpxPageStart)

	// Pad to the PAPX FKP page boundary (absolute offset 1024).
	for buf.Len() < papxPage*512 {
		buf.WriteByte(0)
	}
	papxPageBuf := make([]byte, 512)
	binary.LittleEndian.PutUint32(papxPageBuf[0:], textFC) // entry FC
	binary.LittleEndian.PutUint16(papxPageBuf[4:], 40)     // offset into page
	papxPageBuf[40] = 1                                    // grpprl length in words
	papxPageBuf[41] = papxJustification
	papxPageBuf[42] = 0x02 // right
	papxPageBuf[511] = 1   // entry count
	buf.Write(papxPageBuf)

	wordDocument = buf.Bytes()

	// 0Table: CLX (marker + PlcPcd), then the two BTE PLCs.
	var table bytes.Buffer
	table.WriteByte(0x02) // PlcPcd marker
	table.Write([]byte{0, 0, 0, 0})
	table.Write([]byte{2, 0, 0, 0}) // CPs: [0, 2)
	table.Write([]byte{0x01, 0x00})
	binary.Write(&table, binary.LittleEndian, uint32(textFC))
	table.Write([]byte{0, 0}) // PCD: FNoEncryption, fc=textFC, prm=0

	table.Write([]byte{0, 0, 0, 0})
	binary.Write(&table, binary.LittleEndian, uint32(len(wordDocument)))
	binary.Write(&table, binary.LittleEndian, uint32(chpxPage))

	table.Write([]byte{0, 0, 0, 0})
	binary.Write(&table, binary.LittleEndian, uint32(len(wordDocument)))
	binary.Write(&table, binary.LittleEndian, uint32(papxPage))

	return wordDocument, table.Bytes()
}

func TestParseSimpleDocument(t *testing.T) {
	wordDocument, table0 := buildFixture(t)

	r := &fakeOLE{entries: map[string][]byte{
		"WordDocument": wordDocument,
		"0Table":       table0,
	}}

	p, err := Open(r, Options{})
	require.NoError(t, err)
	require.False(t, p.HasMacros())

	rec := sink.NewRecorder()
	l := NewListener(rec, []doctypes.PageSpan{{FormWidth: 612, FormLength: 792}})
	require.NoError(t, p.Run(l))

	require.Contains(t, rec.Names(), "start_document")
	require.Contains(t, rec.Names(), "insert_text")
	require.Contains(t, rec.Names(), "end_document")

	var text string
	for _, e := range rec.Events {
		if e.Name == "insert_text" {
			text += e.Text
		}
	}
	require.Equal(t, "Hi", text)
}

func TestOpenMissingWordDocumentStream(t *testing.T) {
	r := &fakeOLE{entries: map[string][]byte{}}
	_, err := Open(r, Options{})
	require.Error(t, err)
}

func TestHasMacrosDetectsVBAStream(t *testing.T) {
	r := &fakeOLE{entries: map[string][]byte{
		"_VBA_PROJECT": {0x01},
	}}
	require.True(t, HasMacros(r))
}

func TestHasMacrosAbsent(t *testing.T) {
	r := &fakeOLE{entries: map[string][]byte{
		"WordDocument": {0x01},
	}}
	require.False(t, HasMacros(r))
}
