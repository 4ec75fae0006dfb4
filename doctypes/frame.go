package doctypes

// SubDocumentID identifies a sub-document (header/footer/footnote/
// endnote/comment/text box) for recursion-guard and lookup purposes.
type SubDocumentID int

// FrameAnchor is what a frame's position is relative to (§4.6.3).
type FrameAnchor int

const (
	AnchorPage FrameAnchor = iota
	AnchorParagraph
	AnchorCharBaseline
	AnchorChar
)

// FrameXAlign / FrameYAlign are the alignment axes of a FramePosition.
// "Full" is replaced by the containing width/height when the Listener
// translates the position into emitted properties.
type FrameXAlign int

const (
	XAlignLeft FrameXAlign = iota
	XAlignCenter
	XAlignRight
	XAlignFull
)

type FrameYAlign int

const (
	YAlignTop FrameYAlign = iota
	YAlignMiddle
	YAlignBottom
	YAlignFull
)

// WrapMode is how surrounding text wraps around a frame.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapDynamic
	WrapRunThrough
)

// FramePosition carries everything the Listener needs to translate a
// parser's frame placement into emitted backend properties (§4.6.3).
type FramePosition struct {
	Anchor     FrameAnchor
	XAlign     FrameXAlign
	YAlign     FrameYAlign
	Origin     Vec2[float64] // points
	NaturalSize Vec2[float64] // points
	Wrap       WrapMode
	PageNumber int // only meaningful when Anchor == AnchorPage
}

// BlockType is the kind of content a Block carries.
type BlockType int

const (
	BlockText BlockType = iota
	BlockGraphic
	BlockEmpty
)

// Block is one node of the page frame tree (§3.8): a positioned
// container referencing raw content by FileBlockID, linked to siblings
// via Next.
//
// Invariant: a Block's ID must never equal its own Next (no
// self-reference); text blocks may be referenced either inline (from a
// token) or floating (from the page frame), never both at once in a
// single traversal.
type Block struct {
	ID          int
	Type        BlockType
	BoundingBox Box2[float64] // points
	BorderWidth Margins
	FileBlockID int
	Parent      int // -1 if none
	Next        int // -1 if none
}
