package sink

import "github.com/Distrotech/libmwaw-sub009/doctypes"

// Event is one recorded call, identified by name, with a shallow copy
// of any text/property payload useful for assertions.
type Event struct {
	Name string
	Text string
}

// Recorder is a no-op DocumentSink that records the call sequence, used
// by tests to assert the exact event order the testable properties
// (§8) require.
type Recorder struct {
	Events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) record(name string)              { r.Events = append(r.Events, Event{Name: name}) }
func (r *Recorder) recordText(name, text string)     { r.Events = append(r.Events, Event{Name: name, Text: text}) }

// Names returns just the event names, in order — the common shape for
// comparing against an expected trace.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Name
	}
	return out
}

func (r *Recorder) StartDocument(doctypes.Properties)              { r.record("start_document") }
func (r *Recorder) EndDocument()                                    { r.record("end_document") }
func (r *Recorder) OpenPageSpan(doctypes.Properties)                { r.record("open_page_span") }
func (r *Recorder) ClosePageSpan()                                  { r.record("close_page_span") }
func (r *Recorder) OpenSection(doctypes.Properties, []doctypes.Value) { r.record("open_section") }
func (r *Recorder) CloseSection()                                   { r.record("close_section") }
func (r *Recorder) OpenParagraph(doctypes.Properties, []doctypes.Tab) { r.record("open_paragraph") }
func (r *Recorder) CloseParagraph()                                  { r.record("close_paragraph") }
func (r *Recorder) OpenListElement(doctypes.Properties, []doctypes.Tab) { r.record("open_list_element") }
func (r *Recorder) CloseListElement()                                { r.record("close_list_element") }
func (r *Recorder) OpenOrderedListLevel(doctypes.Properties)         { r.record("open_ordered_list_level") }
func (r *Recorder) CloseOrderedListLevel()                           { r.record("close_ordered_list_level") }
func (r *Recorder) OpenUnorderedListLevel(doctypes.Properties)       { r.record("open_unordered_list_level") }
func (r *Recorder) CloseUnorderedListLevel()                         { r.record("close_unordered_list_level") }
func (r *Recorder) OpenSpan(doctypes.Properties)                    { r.record("open_span") }
func (r *Recorder) CloseSpan()                                      { r.record("close_span") }
func (r *Recorder) InsertText(text string)                          { r.recordText("insert_text", text) }
func (r *Recorder) InsertSpace()                                    { r.record("insert_space") }
func (r *Recorder) InsertTab()                                      { r.record("insert_tab") }
func (r *Recorder) InsertField(name string, _ doctypes.Properties)  { r.recordText("insert_field", name) }
func (r *Recorder) OpenTable(doctypes.Properties, []doctypes.Value) { r.record("open_table") }
func (r *Recorder) CloseTable()                                     { r.record("close_table") }
func (r *Recorder) OpenTableRow(doctypes.Properties)                { r.record("open_table_row") }
func (r *Recorder) CloseTableRow()                                  { r.record("close_table_row") }
func (r *Recorder) OpenTableCell(doctypes.Properties)               { r.record("open_table_cell") }
func (r *Recorder) CloseTableCell()                                 { r.record("close_table_cell") }
func (r *Recorder) OpenFrame(doctypes.Properties)                   { r.record("open_frame") }
func (r *Recorder) CloseFrame()                                     { r.record("close_frame") }
func (r *Recorder) OpenTextBox(doctypes.Properties)                 { r.record("open_text_box") }
func (r *Recorder) CloseTextBox()                                   { r.record("close_text_box") }
func (r *Recorder) InsertBinaryObject(doctypes.Properties, []byte)  { r.record("insert_binary_object") }
func (r *Recorder) OpenHeader(doctypes.Properties)                  { r.record("open_header") }
func (r *Recorder) CloseHeader()                                    { r.record("close_header") }
func (r *Recorder) OpenFooter(doctypes.Properties)                  { r.record("open_footer") }
func (r *Recorder) CloseFooter()                                    { r.record("close_footer") }
func (r *Recorder) OpenFootnote(doctypes.Properties)                { r.record("open_footnote") }
func (r *Recorder) CloseFootnote()                                  { r.record("close_footnote") }
func (r *Recorder) OpenEndnote(doctypes.Properties)                 { r.record("open_endnote") }
func (r *Recorder) CloseEndnote()                                   { r.record("close_endnote") }
func (r *Recorder) OpenComment(doctypes.Properties)                 { r.record("open_comment") }
func (r *Recorder) CloseComment()                                   { r.record("close_comment") }

var _ DocumentSink = (*Recorder)(nil)
