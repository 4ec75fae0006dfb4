// Package sink declares the external collaborator the Listener drives:
// the back-end that consumes a stream of document events. This package
// ships no rendering backend — only the interface and a Recorder test
// double that captures the call sequence for assertions.
package sink

import "github.com/Distrotech/libmwaw-sub009/doctypes"

// DocumentSink receives document-structure events in document order.
// Every Open* has a matching Close*; pairs never interleave across
// frame boundaries.
type DocumentSink interface {
	StartDocument(metadata doctypes.Properties)
	EndDocument()

	OpenPageSpan(props doctypes.Properties)
	ClosePageSpan()

	OpenSection(props doctypes.Properties, columns []doctypes.Value)
	CloseSection()

	OpenParagraph(props doctypes.Properties, tabs []doctypes.Tab)
	CloseParagraph()
	OpenListElement(props doctypes.Properties, tabs []doctypes.Tab)
	CloseListElement()

	OpenOrderedListLevel(props doctypes.Properties)
	CloseOrderedListLevel()
	OpenUnorderedListLevel(props doctypes.Properties)
	CloseUnorderedListLevel()

	OpenSpan(props doctypes.Properties)
	CloseSpan()

	InsertText(text string)
	InsertSpace()
	InsertTab()
	InsertField(name string, props doctypes.Properties)

	OpenTable(props doctypes.Properties, columns []doctypes.Value)
	CloseTable()
	OpenTableRow(props doctypes.Properties)
	CloseTableRow()
	OpenTableCell(props doctypes.Properties)
	CloseTableCell()

	OpenFrame(props doctypes.Properties)
	CloseFrame()
	OpenTextBox(props doctypes.Properties)
	CloseTextBox()
	InsertBinaryObject(props doctypes.Properties, data []byte)

	OpenHeader(props doctypes.Properties)
	CloseHeader()
	OpenFooter(props doctypes.Properties)
	CloseFooter()
	OpenFootnote(props doctypes.Properties)
	CloseFootnote()
	OpenEndnote(props doctypes.Properties)
	CloseEndnote()
	OpenComment(props doctypes.Properties)
	CloseComment()
}
