package doctypes

// PLCEventKind tags the variant carried by a PLCEvent (§3.6).
type PLCEventKind int

const (
	EventFontChange PLCEventKind = iota
	EventParagraphChange
	EventSectionChange
	EventPageBreak
	EventLineBreak
	EventFootnoteRef
	EventNote
	EventToken
	EventTextPosition
	EventHeaderFooterBoundary
)

// PLCEvent is one entry of a Piecewise Locator: a text offset paired
// with a typed event. ID is the catalog/lookup index the event variant
// carries (font id, paragraph id, section id, ...).
type PLCEvent struct {
	Offset int64
	Kind   PLCEventKind
	ID     int
}

// PLC is a sorted, offset-keyed event list for one text stream.
//
// Invariant: Events are sorted by Offset (ties broken by insertion
// order, so font-before-paragraph-before-token-before-character
// dispatch order at a shared offset is preserved, per §5's ordering
// guarantee); every Offset lies in [0, StreamLength].
type PLC struct {
	Events       []PLCEvent
	StreamLength int64
}

// Valid reports whether the PLC's monotonicity and bounds invariants
// hold.
func (p *PLC) Valid() bool {
	last := int64(-1)
	for _, e := range p.Events {
		if e.Offset < last {
			return false
		}
		if e.Offset < 0 || e.Offset > p.StreamLength {
			return false
		}
		last = e.Offset
	}
	return true
}

// Insert appends an event, keeping the stable-sorted-by-offset
// invariant via a simple insertion (PLCs are built once per zone pass,
// so O(n) insert is acceptable).
func (p *PLC) Insert(e PLCEvent) {
	i := len(p.Events)
	for i > 0 && p.Events[i-1].Offset > e.Offset {
		i--
	}
	p.Events = append(p.Events, PLCEvent{})
	copy(p.Events[i+1:], p.Events[i:])
	p.Events[i] = e
}

// Cursor advances through a PLC's events as a text offset increases,
// without re-scanning from the start each time (§9 design notes: "a
// sorted array ... binary-searched by a cursor advancing with the
// text").
type Cursor struct {
	plc *PLC
	idx int
}

func NewCursor(plc *PLC) *Cursor { return &Cursor{plc: plc} }

// Advance returns all events whose Offset is <= target that have not
// already been returned, in order, then advances the cursor past them.
func (c *Cursor) Advance(target int64) []PLCEvent {
	var out []PLCEvent
	for c.idx < len(c.plc.Events) && c.plc.Events[c.idx].Offset <= target {
		out = append(out, c.plc.Events[c.idx])
		c.idx++
	}
	return out
}
