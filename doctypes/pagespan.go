package doctypes

// HeaderFooterOccurrence selects which pages a header/footer applies to.
type HeaderFooterOccurrence int

const (
	OccurrenceAll HeaderFooterOccurrence = iota
	OccurrenceOdd
	OccurrenceEven
	OccurrenceNever
)

// HeaderFooterKind distinguishes a header from a footer descriptor.
type HeaderFooterKind int

const (
	KindHeader HeaderFooterKind = iota
	KindFooter
)

// HeaderFooter is one header/footer descriptor attached to a PageSpan.
type HeaderFooter struct {
	Kind       HeaderFooterKind
	Occurrence HeaderFooterOccurrence
	SubDocID   SubDocumentID
}

// Margins holds the four page margins, in points.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Orientation is page orientation.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

// PageSpan is a run of pages sharing layout (§3.7).
//
// FormLength/FormWidth are approximate when headers/footers are folded
// into the figure by an upstream parser — this mirrors a known
// imprecision in the source formats' own page-height computation and is
// not something this library can correct without a layout engine.
type PageSpan struct {
	FormLength, FormWidth float64 // points
	Orientation           Orientation
	Margins               Margins
	HeadersFooters        []HeaderFooter
	PageNumberPosition    Vec2[float64]
	NumberingTypeOverride string
	Count                 int
}
