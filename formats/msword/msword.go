// Package msword implements the PerFormatParser for the Microsoft Word
// 97-2003 binary format (§4.7): it reads the OLE compound document,
// parses the FIB and its associated PLCs, and drives a listener.Listener
// through the document's sections, paragraphs, runs, and text.
package msword

import (
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/crypto"
	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fontreg"
	"github.com/Distrotech/libmwaw-sub009/listener"
	"github.com/Distrotech/libmwaw-sub009/listengine"
	"github.com/Distrotech/libmwaw-sub009/mwawerr"
	"github.com/Distrotech/libmwaw-sub009/sink"
	"github.com/Distrotech/libmwaw-sub009/storage"
	"github.com/Distrotech/libmwaw-sub009/streams"
	"github.com/Distrotech/libmwaw-sub009/structures"
	"golang.org/x/text/encoding/charmap"
)

// Options configures a single parse.
type Options struct {
	// Password supplies the decryption password for an encrypted
	// document. Left empty, an encrypted document fails with
	// mwawerr.UnsupportedEncryption.
	Password string
}

// Parser holds the streams of an opened .doc file, ready to drive a
// listener.Listener through a full text pass.
type Parser struct {
	word       *streams.WordDocumentStream
	table      *streams.TableStream
	pieces     *structures.PlcPcd
	cipher     *crypto.RC4
	props      *storage.PropertySet
	hasMacros  bool
	dataStream []byte
}

// HasMacros reports whether the opened document carries a VBA project.
func (p *Parser) HasMacros() bool { return p.hasMacros }

// Pages returns one doctypes.PageSpan per section, read from the
// document's SEP (section property) records. A document with no
// section table at all yields a single default page.
func (p *Parser) Pages() []doctypes.PageSpan {
	sedPLC, _ := p.table.GetSectionTable(p.word.FIB.RgFcLcb.FcPlcfsed, p.word.FIB.RgFcLcb.LcbPlcfsed)
	return pageSpansFromSections(sedPLC, p.word.Data)
}

// oleReader is the subset of storage.Reader this package depends on.
type oleReader interface {
	OpenEntry(path string) ([]byte, error)
}

// Open reads wordStream (the "WordDocument" entry), the matching table
// stream, and an optional SummaryInformation stream, and returns a
// Parser ready to Run against a listener.
func Open(r oleReader, opts Options) (*Parser, error) {
	wordData, err := r.OpenEntry("WordDocument")
	if err != nil {
		return nil, err
	}

	wds, err := streams.NewWordDocumentStream(wordData)
	if err != nil {
		return nil, mwawerr.New(mwawerr.MalformedZone, "msword.Open", err)
	}

	tableName := wds.FIB.GetTableStreamName()
	tableData, err := r.OpenEntry(tableName)
	if err != nil {
		return nil, err
	}

	var cipher *crypto.RC4
	if wds.IsEncrypted() {
		cipher, err = buildCipher(tableData, opts.Password)
		if err != nil {
			return nil, err
		}
		// The table stream itself (beyond the encryption header) is
		// not RC4-encrypted; only text pieces with !FNoEncryption are.
	}

	ts := streams.NewTableStream(tableData, tableName)

	pieces, err := ts.GetPieceTable(wds.FIB.RgFcLcb.FcClx, wds.FIB.RgFcLcb.LcbClx)
	if err != nil {
		return nil, mwawerr.New(mwawerr.MalformedZone, "msword.Open", err)
	}

	p := &Parser{
		word:      wds,
		table:     ts,
		pieces:    pieces,
		cipher:    cipher,
		hasMacros: HasMacros(r),
	}

	if sumInfo, err := r.OpenEntry("\x05SummaryInformation"); err == nil {
		if ps, err := storage.ParsePropertySet(sumInfo); err == nil {
			p.props = ps
		}
	}

	if dataStream, err := r.OpenEntry("Data"); err == nil {
		p.dataStream = dataStream
	}

	return p, nil
}

// Run drives l through the full document: one section, then every
// piece's formatted runs in order, per §4.7's catalog-then-text-pass
// shape (the catalog here is the piece table and the CHPX/PAPX bin
// tables, already resolved in Open).
func (p *Parser) Run(l *listener.Listener) error {
	l.StartDocument(p.documentMetadata())
	l.OpenSection(nil, doctypes.UnitInch)

	chpxBTE, _ := p.table.GetCharacterFormattingTable(
		p.word.FIB.RgFcLcb.FcPlcfbteChpx, p.word.FIB.RgFcLcb.LcbPlcfbteChpx)
	papxBTE, _ := p.table.GetParagraphFormattingTable(
		p.word.FIB.RgFcLcb.FcPlcfbtePapx, p.word.FIB.RgFcLcb.LcbPlcfbtePapx)

	for i := 0; i < p.pieces.Count(); i++ {
		start, end, pcd, err := p.pieces.GetTextRange(i)
		if err != nil {
			return mwawerr.New(mwawerr.MalformedZone, "msword.Run", err)
		}
		if end <= start {
			continue
		}

		fc := pcd.GetActualFC()
		applyFormattingAt(l, chpxBTE, papxBTE, p.word.Data, fc)

		numChars := start.Distance(end)
		byteLen := numChars
		if pcd.IsUnicode {
			byteLen *= 2
		}
		if uint64(fc)+uint64(byteLen) > uint64(len(p.word.Data)) {
			return mwawerr.New(mwawerr.Truncated, "msword.Run", fmt.Errorf("piece %d: FC range out of bounds", i))
		}
		raw := p.word.Data[fc : fc+byteLen]
		if !pcd.FNoEncryption && p.cipher != nil {
			raw = p.cipher.Decrypt(raw)
		}

		p.emitPieceText(l, raw, pcd.IsUnicode, chpxBTE, fc)
	}

	l.CloseSection()
	l.EndDocument()
	return nil
}

// emitPieceText decodes a piece's raw bytes (ANSI via Windows-1252, or
// UTF-16LE) and feeds each character to the listener, translating CR
// into a paragraph break and the tab character into a tab stop per
// §4.7's per-character dispatch. A picture-placeholder character
// triggers the frame/picture pass (§4.7 step 5): the CHPX covering its
// FC is re-consulted for a picture reference into the Data stream.
func (p *Parser) emitPieceText(l *listener.Listener, raw []byte, isUnicode bool, chpxBTE *structures.PLC, pieceFC uint32) {
	var runes []rune
	var byteOffsets []int
	if isUnicode {
		for i := 0; i+1 < len(raw); i += 2 {
			runes = append(runes, rune(uint16(raw[i])|uint16(raw[i+1])<<8))
			byteOffsets = append(byteOffsets, i)
		}
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			decoded = raw
		}
		runes = []rune(string(decoded))
		for i := range runes {
			byteOffsets = append(byteOffsets, i)
		}
	}

	for idx, c := range runes {
		switch c {
		case '\r', '\n':
			l.InsertEOL()
		case '\t':
			l.InsertTab()
		case picturePlaceholder:
			p.emitPictureFor(l, chpxBTE, pieceFC+uint32(byteOffsets[idx]))
		default:
			l.InsertCharacter(c)
		}
	}
}

// emitPictureFor locates the CHPX covering charFC and, if it carries a
// picture reference, emits the picture as a frame.
func (p *Parser) emitPictureFor(l *listener.Listener, chpxBTE *structures.PLC, charFC uint32) {
	if chpxBTE == nil || p.dataStream == nil {
		return
	}
	entry := fkpEntryForFC(chpxBTE, p.word.Data, structures.FKPTypeCHP, charFC)
	if entry == nil {
		return
	}
	fc, ok := findPictureFC(entry.Data)
	if !ok {
		return
	}
	emitPictureAt(l, p.dataStream, fc)
}

// applyFormattingAt locates the FKP page covering fc in each BTE PLC
// and applies its grpprl to the listener, in font-then-paragraph order
// (§4.7's canonical dispatch).
func applyFormattingAt(l *listener.Listener, chpxBTE, papxBTE *structures.PLC, wordData []byte, fc uint32) {
	if chpxBTE != nil {
		if entry := fkpEntryForFC(chpxBTE, wordData, structures.FKPTypeCHP, fc); entry != nil {
			applyCHPX(l, entry.Data)
		}
	}
	if papxBTE != nil {
		if entry := fkpEntryForFC(papxBTE, wordData, structures.FKPTypePAP, fc); entry != nil {
			applyPAPX(l, entry.Data)
		}
	}
}

// fkpEntryForFC walks bte (a PLC of 4-byte page numbers keyed by FC) to
// find the page covering fc, loads that 512-byte page from wordData,
// and returns the formatting entry applying at fc.
func fkpEntryForFC(bte *structures.PLC, wordData []byte, kind structures.FKPType, fc uint32) *structures.FKPEntry {
	for i := 0; i < bte.Count(); i++ {
		start, end, err := bte.GetRange(i)
		if err != nil || uint32(start) > fc || fc >= uint32(end) {
			continue
		}
		raw, err := bte.GetDataAt(i)
		if err != nil || len(raw) < 4 {
			return nil
		}
		page := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
		pageOffset := int(page) * structures.FKPSize
		if pageOffset+structures.FKPSize > len(wordData) {
			return nil
		}
		fkp, err := structures.ParseFKP(wordData[pageOffset:pageOffset+structures.FKPSize], kind)
		if err != nil {
			return nil
		}
		return fkp.FindEntryForFC(fc)
	}
	return nil
}

func (p *Parser) documentMetadata() doctypes.Properties {
	props := doctypes.NewProperties()
	if p.props == nil {
		return props
	}
	if p.props.Title != "" {
		props.SetStr("dc:title", p.props.Title)
	}
	if p.props.Subject != "" {
		props.SetStr("dc:subject", p.props.Subject)
	}
	if p.props.Author != "" {
		props.SetStr("meta:initial-creator", p.props.Author)
	}
	if p.props.Keywords != "" {
		props.SetStr("meta:keyword", p.props.Keywords)
	}
	if p.props.Comments != "" {
		props.SetStr("dc:description", p.props.Comments)
	}
	return props
}

// NewListener builds the Listener Run drives, wiring a fresh font
// registry and list engine the way every msword document needs (§4.6).
func NewListener(s sink.DocumentSink, pages []doctypes.PageSpan) *listener.Listener {
	return listener.New(s, fontreg.NewRegistry(), listengine.NewEngine(), pages)
}

// Parse is the convenience entry point: open the OLE container, build a
// Listener over s, and run the parse to completion.
func Parse(r oleReader, s sink.DocumentSink, opts Options) error {
	p, err := Open(r, opts)
	if err != nil {
		return err
	}
	l := NewListener(s, p.Pages())
	return p.Run(l)
}
