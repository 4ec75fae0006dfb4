// Package listener implements the document-event state machine
// (§4.6): the sole component that speaks to the external sink. Per-
// format parsers drive it through a fixed set of high-level
// operations; it owns paragraph/span/table/frame/list bookkeeping and
// only ever emits well-nested Open*/Close* calls.
package listener

import (
	"log"
	"time"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fontreg"
	"github.com/Distrotech/libmwaw-sub009/listengine"
	"github.com/Distrotech/libmwaw-sub009/sink"
)

// FieldKind is the kind of computed field insert_field can produce.
type FieldKind int

const (
	FieldPageNumber FieldKind = iota
	FieldDate
	FieldTime
	FieldTitle
	FieldDatabaseLink
)

// BreakKind is the kind of structural break insert_break understands.
type BreakKind int

const (
	BreakColumn BreakKind = iota
	BreakPage
	BreakSoftPage
)

// NoteKind distinguishes a footnote from an endnote.
type NoteKind int

const (
	NoteFootnote NoteKind = iota
	NoteEndnote
)

// SubDocumentType tags what kind of sub-document a recursive parse is
// producing — needed because a text box permits open_section while a
// footnote does not (§4.6, open_section pre-condition).
type SubDocumentType int

const (
	SubDocumentNone SubDocumentType = iota
	SubDocumentHeaderFooter
	SubDocumentNote
	SubDocumentTextBox
	SubDocumentComment
)

// SubDocumentFunc is a callback the parser supplies: invoking it must
// re-enter the parser's own text pass scoped to the sub-document's
// data, driving this same Listener recursively.
type SubDocumentFunc func()

// SubDocumentID identifies a sub-document for re-entrancy detection
// (§5): a parser assigns one per header/footer/footnote/text box
// instance it may recurse into.
type SubDocumentID = doctypes.SubDocumentID

// Listener is the document-event state machine. It is not safe for
// concurrent use — per §5, there is one active parse at a time and all
// Listener state is unshared.
type Listener struct {
	sink   sink.DocumentSink
	fonts  *fontreg.Registry
	lists  *listengine.Engine

	stack []*parsingState
	cur   *parsingState

	pages       []doctypes.PageSpan
	currentPage int

	subDocuments map[SubDocumentID]bool
}

// New returns a Listener driving s, resolving legacy font ids via
// fonts and nested list state via lists. pages is the page-span list
// computed by the parser ahead of time (§3.7); the Listener consumes
// it one span at a time as page breaks occur.
func New(s sink.DocumentSink, fonts *fontreg.Registry, lists *listengine.Engine, pages []doctypes.PageSpan) *Listener {
	return &Listener{
		sink:         s,
		fonts:        fonts,
		lists:        lists,
		pages:        pages,
		subDocuments: make(map[SubDocumentID]bool),
	}
}

// badState logs a recoverable state violation and returns, matching
// §4.6.5's "log and return" failure model for normal bad-state calls.
func badState(op string, detail string) {
	log.Printf("listener: %s: %s", op, detail)
}

// fatal panics on an unrecoverable framing violation (§4.6.5: "the
// Listener throws only on unrecoverable framing violations").
func fatal(op, detail string) {
	panic("listener: " + op + ": " + detail)
}

// StartDocument begins the document. Idempotent: a second call is a
// no-op rather than an error, per §4.6's "idempotent start".
func (l *Listener) StartDocument(meta doctypes.Properties) {
	if l.cur == nil {
		l.cur = newParsingState()
	}
	if l.cur.documentStarted {
		return
	}
	l.cur.documentStarted = true
	l.sink.StartDocument(meta)
}

// EndDocument closes any open paragraph, list-element, section, and
// page span before signaling the end, per §4.6's end_document
// post-condition.
func (l *Listener) EndDocument() {
	if l.cur == nil || !l.cur.documentStarted {
		fatal("end_document", "document was never started")
	}
	l.closeParagraphOrListElement()
	if l.cur.sectionOpened {
		l.closeSection()
	}
	if l.cur.pageSpanOpened {
		l.closePageSpan()
	}
	l.sink.EndDocument()
}

// pushSubDocument enters a nested parse, per §5's stack discipline. It
// rejects re-entry of the same sub-document id (loop guard against
// self-referential footers/footnotes).
func (l *Listener) pushSubDocument(id SubDocumentID, typ SubDocumentType, fn SubDocumentFunc) {
	if l.subDocuments[id] {
		badState("handle_sub_document", "re-entrant sub-document id; skipped")
		return
	}
	l.subDocuments[id] = true
	defer delete(l.subDocuments, id)

	parent := l.cur
	l.stack = append(l.stack, parent)
	l.cur = newParsingState()
	l.cur.subDocumentType = typ
	l.cur.documentStarted = true
	defer func() {
		l.cur = l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]
	}()

	fn()
}

// OpenSection opens a section with len(colWidths) columns (or 1 by
// default). Rejected — logged and returned — inside a table, or inside
// a sub-document whose type isn't a text box (§4.6).
func (l *Listener) OpenSection(colWidths []doctypes.Value, unit doctypes.Unit) {
	if l.cur.inTable {
		badState("open_section", "a table is open")
		return
	}
	if l.cur.subDocumentType != SubDocumentNone && l.cur.subDocumentType != SubDocumentTextBox {
		badState("open_section", "not permitted in this sub-document type")
		return
	}
	if l.cur.sectionOpened {
		badState("open_section", "a section is already open")
		return
	}
	if !l.cur.pageSpanOpened {
		l.openPageSpan()
	}
	props := doctypes.NewProperties()
	n := len(colWidths)
	if n == 0 {
		n = 1
	}
	props.SetInt("fo:column-count", int64(n))
	l.cur.sectionOpened = true
	l.cur.paragraphEmittedInSection = false
	l.sink.OpenSection(props, colWidths)
}

func (l *Listener) CloseSection() {
	if !l.cur.sectionOpened || l.cur.inTable {
		badState("close_section", "no open section, or inside a table")
		return
	}
	l.closeSection()
}

// closeSection closes whatever paragraph or list element is open. A
// section that never opened a single paragraph still emits one empty
// open_paragraph/close_paragraph pair before closing (§8, end-to-end
// scenario 1: an empty document still nests a paragraph inside its
// section).
func (l *Listener) closeSection() {
	if !l.cur.paragraphEmittedInSection {
		l.openParagraph()
	}
	l.closeParagraphOrListElement()
	l.cur.sectionOpened = false
	l.flushListState(0)
	l.sink.CloseSection()
}

// JustificationChange updates pending justification. If force, the
// current paragraph closes first and the list level resets, per
// §4.6's justification_change row.
func (l *Listener) JustificationChange(j doctypes.Justification, force bool) {
	if force {
		l.closeParagraphOrListElement()
		l.cur.pendingListLevel = 0
	}
	l.cur.pendingPara.justification = j
}

func (l *Listener) LineSpacingChange(value float64, unit doctypes.Unit) {
	l.cur.pendingPara.lineSpacing = doctypes.LineSpacing{Value: value, Unit: unit}
}

// marginEdge identifies which of the four paragraph edges
// SetParagraphMargin updates.
type marginEdge int

const (
	EdgeLeft marginEdge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// SetParagraphMargin updates the pending paragraph margin for edge.
// Left/right feed the style bucket of the three-bucket model (§4.6.2).
// Top/bottom values are accepted but not recorded: the pending
// paragraph has no top/bottom margin, so they do not reach the sink.
func (l *Listener) SetParagraphMargin(edge marginEdge, value float64, unit doctypes.Unit) {
	switch edge {
	case EdgeLeft:
		l.cur.pendingPara.leftMargin.fromStyle = value
	case EdgeRight:
		l.cur.pendingPara.rightMargin.fromStyle = value
	case EdgeTop, EdgeBottom:
		// not recorded; see the doc comment above.
	default:
		badState("set_paragraph_margin", "unknown edge")
	}
}

func (l *Listener) SetParagraphTextIndent(value float64) {
	l.cur.pendingPara.textIndent = value
}

// SetTabs installs the pending tab list, clamping right-aligned tabs
// beyond maxWidth-10pt when maxWidth >= 0 (§4.6 set_tabs).
func (l *Listener) SetTabs(tabs []doctypes.Tab, maxWidth float64) {
	if maxWidth >= 0 {
		tabs = doctypes.ClampRightTabs(tabs, maxWidth)
	}
	l.cur.pendingPara.tabs = tabs
}

func (l *Listener) SetTextAttribute(bits uint32) {
	for i := uint(0); i < 32; i++ {
		l.cur.pendingFont.font = l.cur.pendingFont.font.WithFlag(i, bits&(1<<i) != 0)
	}
}

func (l *Listener) SetTextFont(name string) {
	l.cur.pendingFont.name = name
}

// SetTextFontByID resolves a legacy font id through the registry's
// target-font mapping (§4.4) before installing it, applying the
// family's additive size delta to the pending font size.
func (l *Listener) SetTextFontByID(id int32) {
	name, delta := l.fonts.TargetFont(id)
	l.cur.pendingFont.name = name
	l.cur.pendingFont.font.ID = id
	if l.cur.pendingFont.font.Size > 0 {
		l.cur.pendingFont.font.Size += delta
	}
}

func (l *Listener) SetFontSize(s float64) {
	l.cur.pendingFont.font.Size = s
}

func (l *Listener) SetFontColor(c doctypes.Color) {
	l.cur.pendingFont.font.Color = c
}

// SetTextLanguage closes the current span so the next one carries the
// new locale, per §4.6's set_text_language row.
func (l *Listener) SetTextLanguage(locale string) {
	if l.cur.spanOpened {
		l.closeSpan()
	}
	l.cur.pendingFont.language = locale
}

// InsertCharacter buffers c, opening a span first if none is open, and
// flushing any deferred tab ahead of it.
func (l *Listener) InsertCharacter(c rune) {
	if !l.cur.paragraphOpened && !l.cur.listElementOpened {
		l.openParagraph()
	}
	l.flushDeferredTabs()
	if !l.cur.spanOpened {
		l.openSpan()
	}
	l.cur.textBuffer = append(l.cur.textBuffer, c)
}

// InsertUnicode buffers u as UTF-8, silently skipping U+FFFD.
func (l *Listener) InsertUnicode(u rune) {
	if u == 0xFFFD {
		return
	}
	l.InsertCharacter(u)
}

// InsertTab either increments the deferred-tab counter (no paragraph
// open yet) or flushes the text buffer and emits a tab.
func (l *Listener) InsertTab() {
	if !l.cur.paragraphOpened && !l.cur.listElementOpened {
		l.cur.deferredTabs++
		return
	}
	l.flushText()
	l.sink.InsertTab()
}

func (l *Listener) flushDeferredTabs() {
	for l.cur.deferredTabs > 0 {
		l.cur.deferredTabs--
		if l.cur.paragraphOpened || l.cur.listElementOpened {
			l.flushText()
			l.sink.InsertTab()
		}
	}
}

// InsertEOL flushes pending tabs, closes the paragraph or list
// element, and clears superscript/subscript for the next span.
func (l *Listener) InsertEOL() {
	l.flushDeferredTabs()
	l.closeParagraphOrListElement()
	l.cur.pendingFont.superscript = false
	l.cur.pendingFont.subscript = false
}

// InsertField inserts a computed field. Date/time kinds render a
// formatted string inline; the others open a field span of the given
// kind, per §4.6's insert_field row.
func (l *Listener) InsertField(kind FieldKind, now time.Time) {
	switch kind {
	case FieldDate:
		l.InsertText(now.Format("01/02/06"))
	case FieldTime:
		l.InsertText(now.Format("03:04:05 PM"))
	default:
		l.flushText()
		props := doctypes.NewProperties()
		props.SetStr("libmwaw:field-kind", fieldKindName(kind))
		l.sink.InsertField(fieldKindName(kind), props)
	}
}

func fieldKindName(k FieldKind) string {
	switch k {
	case FieldPageNumber:
		return "page-number"
	case FieldTitle:
		return "title"
	case FieldDatabaseLink:
		return "database-link"
	default:
		return "unknown"
	}
}

// InsertText appends a plain string, equivalent to InsertCharacter per
// rune.
func (l *Listener) InsertText(s string) {
	for _, r := range s {
		l.InsertCharacter(r)
	}
}

func (l *Listener) InsertSpace() {
	l.InsertCharacter(' ')
}

// InsertBreak closes any open paragraph/list; on a page break opens a
// fresh page span if none is open. Inside a sub-document there is no
// hard page break — it degrades to a column break (§4.6).
func (l *Listener) InsertBreak(kind BreakKind) {
	l.closeParagraphOrListElement()
	if kind == BreakPage && l.cur.subDocumentType != SubDocumentNone {
		kind = BreakColumn
	}
	switch kind {
	case BreakPage:
		l.cur.pendingPara.pageBreak = true
		if !l.cur.pageSpanOpened {
			l.openPageSpan()
		}
	case BreakSoftPage:
		l.cur.pendingPara.pageBreak = true
	case BreakColumn:
		l.cur.pendingPara.columnBreak = true
	}
}

// OpenFrame emits a frame with geometry translated from position
// (§4.6.3). Rejected inside a table when no cell is open, or if
// another frame is already open.
func (l *Listener) OpenFrame(position doctypes.FramePosition) {
	if l.cur.inFrame {
		badState("open_frame", "a frame is already open")
		return
	}
	if l.cur.inTable && !l.cur.inTableCell {
		badState("open_frame", "inside a table but no cell is open")
		return
	}
	l.cur.inFrame = true
	l.sink.OpenFrame(translateFramePosition(position))
}

func (l *Listener) CloseFrame() {
	if !l.cur.inFrame {
		badState("close_frame", "no frame is open")
		return
	}
	l.cur.inFrame = false
	l.sink.CloseFrame()
}

// translateFramePosition renders position into backend properties in
// points, replacing "full" alignment with the containing width/height
// (expressed here as the natural size itself, since the caller has
// already resolved containment before calling OpenFrame).
func translateFramePosition(p doctypes.FramePosition) doctypes.Properties {
	props := doctypes.NewProperties()
	props.SetFloat("svg:x", p.Origin.X, doctypes.UnitPoint)
	props.SetFloat("svg:y", p.Origin.Y, doctypes.UnitPoint)
	w, h := p.NaturalSize.X, p.NaturalSize.Y
	props.SetFloat("svg:width", w, doctypes.UnitPoint)
	props.SetFloat("svg:height", h, doctypes.UnitPoint)
	switch p.Anchor {
	case doctypes.AnchorPage:
		props.SetStr("text:anchor-type", "page")
		props.SetInt("text:anchor-page-number", int64(p.PageNumber))
	case doctypes.AnchorParagraph:
		props.SetStr("text:anchor-type", "paragraph")
	case doctypes.AnchorCharBaseline:
		props.SetStr("text:anchor-type", "as-char")
	case doctypes.AnchorChar:
		props.SetStr("text:anchor-type", "char")
	}
	switch p.Wrap {
	case doctypes.WrapDynamic:
		props.SetStr("style:wrap", "dynamic")
	case doctypes.WrapRunThrough:
		props.SetStr("style:wrap", "run-through")
	default:
		props.SetStr("style:wrap", "none")
	}
	return props
}

// InsertTextBox opens a frame + text box, recursively parses subdoc,
// then closes both.
func (l *Listener) InsertTextBox(position doctypes.FramePosition, id SubDocumentID, subdoc SubDocumentFunc) {
	l.OpenFrame(position)
	l.sink.OpenTextBox(doctypes.NewProperties())
	l.pushSubDocument(id, SubDocumentTextBox, subdoc)
	l.sink.CloseTextBox()
	l.CloseFrame()
}

// InsertPicture opens a frame, inserts the binary payload, and closes
// the frame.
func (l *Listener) InsertPicture(position doctypes.FramePosition, data []byte, mime string) {
	l.OpenFrame(position)
	props := doctypes.NewProperties().SetStr("libmwaw:mime-type", mime)
	l.sink.InsertBinaryObject(props, data)
	l.CloseFrame()
}

// InsertNote opens a footnote or endnote with an incrementing counter
// and recursively parses subdoc. Rejected if already inside a note.
func (l *Listener) InsertNote(kind NoteKind, id SubDocumentID, subdoc SubDocumentFunc) {
	if l.cur.inNote || l.cur.subDocumentType == SubDocumentNote {
		badState("insert_note", "already inside a note")
		return
	}
	l.cur.inNote = true
	defer func() { l.cur.inNote = false }()

	props := doctypes.NewProperties()
	if kind == NoteFootnote {
		l.sink.OpenFootnote(props)
	} else {
		l.sink.OpenEndnote(props)
	}
	l.pushSubDocument(id, SubDocumentNote, subdoc)
	if kind == NoteFootnote {
		l.sink.CloseFootnote()
	} else {
		l.sink.CloseEndnote()
	}
}

// OpenTable opens a table with fixed column widths. Rejected if a
// table is already open.
func (l *Listener) OpenTable(colWidths []doctypes.Value, unit doctypes.Unit) {
	if l.cur.inTable {
		badState("open_table", "a table is already open")
		return
	}
	l.closeParagraphOrListElement()
	l.cur.inTable = true
	props := doctypes.NewProperties()
	l.sink.OpenTable(props, colWidths)
}

func (l *Listener) CloseTable() {
	if !l.cur.inTable {
		badState("close_table", "no table is open")
		return
	}
	if l.cur.inTableRow {
		l.closeTableRow()
	}
	l.cur.inTable = false
	l.sink.CloseTable()
}

func (l *Listener) OpenTableRow(height float64, header bool) {
	if !l.cur.inTable {
		badState("open_table_row", "no table is open")
		return
	}
	if l.cur.inTableRow {
		badState("open_table_row", "a row is already open")
		return
	}
	l.cur.inTableRow = true
	props := doctypes.NewProperties().SetFloat("style:row-height", height, doctypes.UnitPoint)
	if header {
		props.SetInt("table:is-header-row", 1)
	}
	l.sink.OpenTableRow(props)
}

func (l *Listener) closeTableRow() {
	if l.cur.inTableCell {
		l.closeTableCell()
	}
	l.cur.inTableRow = false
	l.sink.CloseTableRow()
}

func (l *Listener) CloseTableRow() {
	if !l.cur.inTableRow {
		badState("close_table_row", "no row is open")
		return
	}
	l.closeTableRow()
}

// OpenTableCell closes any previously-open cell before opening the new
// one, per §4.6's "closes any previously-open cell" post-condition.
func (l *Listener) OpenTableCell(cell doctypes.Cell, extras doctypes.Properties) {
	if !l.cur.inTableRow {
		badState("open_table_cell", "no row is open")
		return
	}
	if l.cur.inTableCell {
		l.closeTableCell()
	}
	l.cur.inTableCell = true
	cell = cell.Normalized()
	props := doctypes.NewProperties()
	props.SetInt("table:number-columns-spanned", int64(cell.Colspan))
	props.SetInt("table:number-rows-spanned", int64(cell.Rowspan))
	for k, v := range extras {
		props[k] = v
	}
	l.sink.OpenTableCell(props)
}

func (l *Listener) closeTableCell() {
	l.cur.inTableCell = false
	l.sink.CloseTableCell()
}

func (l *Listener) CloseTableCell() {
	if !l.cur.inTableCell {
		badState("close_table_cell", "no cell is open")
		return
	}
	l.closeTableCell()
}

// SetCurrentList sets the active list for subsequent paragraphs.
func (l *Listener) SetCurrentList(id int) {
	l.lists.SetCurrent(id)
}

// SetCurrentListLevel records the pending list level; it takes effect
// at the next paragraph open (§4.6.4).
func (l *Listener) SetCurrentListLevel(n int) {
	l.cur.pendingListLevel = n
}
