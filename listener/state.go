package listener

import "github.com/Distrotech/libmwaw-sub009/doctypes"

// marginBuckets implements the three-independent-contribution model of
// §4.6.2: the observable paragraph margin is the sum of a page-margin
// bucket, a paragraph-style bucket, and a tab-based bucket. The tab
// bucket resets at every paragraph end; the other two persist until
// explicitly changed.
type marginBuckets struct {
	fromPage  float64
	fromStyle float64
	fromTabs  float64
}

func (m marginBuckets) total() float64 {
	return m.fromPage + m.fromStyle + m.fromTabs
}

// renormalize preserves the observable total when the page-margin
// contribution changes out from under an open paragraph: the style
// bucket absorbs the delta so total() is unchanged by the page-margin
// transition itself (§4.6.2, "re-normalized so the observable
// paragraph margin is preserved across the transition").
func (m *marginBuckets) renormalize(newPageMargin float64) {
	delta := m.fromPage - newPageMargin
	m.fromPage = newPageMargin
	m.fromStyle += delta
}

// pendingParagraph accumulates paragraph-level properties between
// paragraph opens; it is reset by resetParagraphState.
type pendingParagraph struct {
	justification   doctypes.Justification
	lineSpacing     doctypes.LineSpacing
	leftMargin      marginBuckets
	rightMargin     marginBuckets
	textIndent      float64
	tabs            []doctypes.Tab
	borders         doctypes.BorderMask
	columnBreak     bool
	pageBreak       bool
}

func newPendingParagraph() pendingParagraph {
	return pendingParagraph{justification: doctypes.JustifyLeft}
}

// pendingFont accumulates character-level properties between span
// opens; set_text_language closes the current span so the change is
// never silently retroactive (§4.6, set_text_language row).
type pendingFont struct {
	font          doctypes.Font
	name          string
	language      string
	superscript   bool
	subscript     bool
}

// parsingState is one entry of the Listener's parsing-state stack
// (§4.6, §5): every sub-document parse pushes a fresh one.
type parsingState struct {
	documentStarted bool
	pageSpanOpened  bool
	sectionOpened   bool
	paragraphOpened bool
	listElementOpened bool
	spanOpened      bool

	// paragraphEmittedInSection tracks whether any paragraph or list
	// element has been opened since the current section opened, so an
	// empty section can still close with one empty paragraph (§8).
	paragraphEmittedInSection bool

	inTable      bool
	inTableRow   bool
	inTableCell  bool

	inFrame bool
	inNote  bool

	pendingPara pendingParagraph
	pendingFont pendingFont

	deferredTabs int
	textBuffer   []rune

	currentListLevel int
	pendingListLevel int

	pageMarginLeft  float64
	pageMarginRight float64

	subDocumentType SubDocumentType
}

func newParsingState() *parsingState {
	return &parsingState{
		pendingPara: newPendingParagraph(),
		pendingFont: pendingFont{font: doctypes.NewFont()},
	}
}
