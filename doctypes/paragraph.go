package doctypes

// Unit tags used throughout the data model (§3.3, §6.1).
type Unit int

const (
	UnitPoint Unit = iota
	UnitInch
	UnitTwip
	UnitPercent
	UnitGeneric
)

// Justification enumerates paragraph alignment (§3.3).
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyFull
	JustifyFullAllLines
	JustifyDecimal
)

// TabAlignment enumerates tab stop alignment (§3.3).
type TabAlignment int

const (
	TabLeft TabAlignment = iota
	TabCenter
	TabRight
	TabDecimal
	TabBar
)

// Tab is one entry of a paragraph's ordered tab list.
type Tab struct {
	PositionInches float64
	Align          TabAlignment
	Leader         rune // 0 for none
	DecimalChar    rune
}

// BorderMask is a bitmask over the four paragraph/cell sides.
type BorderMask uint8

const (
	BorderLeft BorderMask = 1 << iota
	BorderRight
	BorderTop
	BorderBottom
)

// LineSpacing carries a value and the unit it's expressed in.
type LineSpacing struct {
	Value float64
	Unit  Unit // UnitPercent or UnitPoint
}

// Paragraph is the per-paragraph ruler (§3.3): margins in inches,
// spacing, justification, an ordered, strictly-increasing tab list, and
// an optional border mask.
//
// Invariant: tab positions strictly increasing; LineSpacing.Value >= 0.
type Paragraph struct {
	FirstLineIndent float64 // relative to Left
	Left            float64
	Right           float64

	LineSpacing LineSpacing
	Before      float64 // points
	After       float64 // points

	Justification Justification

	Tabs []Tab

	Borders BorderMask
}

// ValidTabs reports whether p.Tabs is strictly increasing by position,
// per §3.3's invariant.
func (p Paragraph) ValidTabs() bool {
	for i := 1; i < len(p.Tabs); i++ {
		if p.Tabs[i].PositionInches <= p.Tabs[i-1].PositionInches {
			return false
		}
	}
	return true
}

// ClampRightTabs clamps right-aligned tabs beyond maxWidth-10pt, per
// §4.6 set_tabs's max-width behavior. maxWidth is in points; tab
// positions are in inches, so the comparison converts.
func ClampRightTabs(tabs []Tab, maxWidthPoints float64) []Tab {
	const pointsPerInch = 72.0
	limit := (maxWidthPoints - 10) / pointsPerInch
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		if t.Align == TabRight && t.PositionInches > limit {
			t.PositionInches = limit
		}
		out[i] = t
	}
	return out
}
