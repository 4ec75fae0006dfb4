package listener

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fontreg"
	"github.com/Distrotech/libmwaw-sub009/listengine"
	"github.com/Distrotech/libmwaw-sub009/sink"
)

func newTestListener(pages []doctypes.PageSpan) (*Listener, *sink.Recorder) {
	r := sink.NewRecorder()
	l := New(r, fontreg.NewRegistry(), listengine.NewEngine(), pages)
	return l, r
}

func onePage() []doctypes.PageSpan {
	return []doctypes.PageSpan{{FormWidth: 612, FormLength: 792}}
}

func TestBasicParagraphRoundTrip(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.OpenSection(nil, doctypes.UnitPoint)
	l.InsertText("hello")
	l.InsertEOL()
	l.CloseSection()
	l.EndDocument()

	require.Equal(t, []string{
		"start_document",
		"open_page_span",
		"open_section",
		"open_paragraph",
		"open_span",
		"insert_text",
		"close_span",
		"close_paragraph",
		"close_section",
		"close_page_span",
		"end_document",
	}, r.Names())
}

func TestEmptySectionStillEmitsOneParagraph(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.OpenSection(nil, doctypes.UnitPoint)
	l.CloseSection()
	l.EndDocument()

	require.Equal(t, []string{
		"start_document",
		"open_page_span",
		"open_section",
		"open_paragraph",
		"close_paragraph",
		"close_section",
		"close_page_span",
		"end_document",
	}, r.Names())
}

func TestStartDocumentIsIdempotent(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.StartDocument(doctypes.NewProperties())

	count := 0
	for _, n := range r.Names() {
		if n == "start_document" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestCloseTableWithNoOpenTableLogsAndReturns(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.CloseTable()
	require.NotContains(t, r.Names(), "close_table")
}

func TestOpenTableCellClosesPreviousCell(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.OpenTable(nil, doctypes.UnitPoint)
	l.OpenTableRow(20, false)
	l.OpenTableCell(doctypes.Cell{Col: 0, Row: 0}, doctypes.NewProperties())
	l.OpenTableCell(doctypes.Cell{Col: 1, Row: 0}, doctypes.NewProperties())
	l.CloseTableRow()
	l.CloseTable()

	names := r.Names()
	var cellCloses, cellOpens int
	for _, n := range names {
		if n == "open_table_cell" {
			cellOpens++
		}
		if n == "close_table_cell" {
			cellCloses++
		}
	}
	require.Equal(t, 2, cellOpens)
	require.Equal(t, 2, cellCloses, "opening a second cell must close the first")
}

func TestInsertNoteRejectsReentrance(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())

	seenID := SubDocumentID(1)
	l.InsertNote(NoteFootnote, seenID, func() {
		l.InsertNote(NoteFootnote, seenID, func() {
			t.Fatal("nested re-entrant sub-document must not run")
		})
	})

	count := 0
	for _, n := range r.Names() {
		if n == "open_footnote" {
			count++
		}
	}
	require.Equal(t, 1, count, "the re-entrant inner call must be skipped")
}

func TestInsertBreakPageDegradesToColumnInSubDocument(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.InsertTextBox(doctypes.FramePosition{}, SubDocumentID(2), func() {
		l.InsertBreak(BreakPage)
	})
	require.NotContains(t, r.Names(), "open_page_span", "a hard page break inside a sub-document must not open a new page span")
}

func TestDeferredTabBeforeParagraphOpen(t *testing.T) {
	l, r := newTestListener(onePage())
	l.StartDocument(doctypes.NewProperties())
	l.InsertTab()
	l.InsertTab()
	require.NotContains(t, r.Names(), "insert_tab", "a tab with no open paragraph must only be deferred")
	l.InsertText("x")
	require.Contains(t, r.Names(), "insert_tab", "deferred tabs must flush once a paragraph opens")
}
