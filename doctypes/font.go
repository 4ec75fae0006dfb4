package doctypes

import "github.com/bits-and-blooms/bitset"

// Style flag positions within Font.Style, per §3.2.
const (
	StyleBold = iota
	StyleItalic
	StyleUnderlineSingle
	StyleUnderlineDouble
	StyleStrikethrough
	StyleOutline
	StyleShadow
	StyleEmboss
	StyleEngrave
	StyleSuperscript
	StyleSubscript
	StyleHidden
	StyleAllCaps
	StyleSmallCaps
	StyleReverseVideo
	StyleBlink
	styleFlagCount
)

// Color is an RGB color value.
type Color struct {
	R, G, B uint8
}

// Font describes character-level formatting (§3.2): family, fractional
// point size, a bit-set of style flags, and a color.
//
// If ID is negative the font is "unset" and inherits from the enclosing
// scope; Size must be >= 0.
type Font struct {
	ID    int32
	Size  float64
	Style *bitset.BitSet
	Color Color
}

// NewFont returns an "unset" Font (ID < 0) with an empty style set,
// ready to have flags set via WithFlag.
func NewFont() Font {
	return Font{ID: -1, Style: bitset.New(styleFlagCount)}
}

// WithFlag returns a copy of f with the given style flag set to on.
func (f Font) WithFlag(flag uint, on bool) Font {
	if f.Style == nil {
		f.Style = bitset.New(styleFlagCount)
	} else {
		f.Style = f.Style.Clone()
	}
	if on {
		f.Style.Set(flag)
	} else {
		f.Style.Clear(flag)
	}
	return f
}

// HasFlag reports whether the given style flag is set.
func (f Font) HasFlag(flag uint) bool {
	return f.Style != nil && f.Style.Test(flag)
}

// IsUnset reports whether this font inherits from its enclosing scope.
func (f Font) IsUnset() bool { return f.ID < 0 }

// Equal reports whether two fonts carry the same id, size, flags and
// color — used to suppress no-op span boundaries (§8 boundary
// behaviors: "a font size change identical to the current size emits
// no span boundary").
func (f Font) Equal(o Font) bool {
	if f.ID != o.ID || f.Size != o.Size || f.Color != o.Color {
		return false
	}
	fEmpty := f.Style == nil || f.Style.None()
	oEmpty := o.Style == nil || o.Style.None()
	if fEmpty || oEmpty {
		return fEmpty == oEmpty
	}
	return f.Style.Equal(o.Style)
}
