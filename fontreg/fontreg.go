// Package fontreg maps legacy Mac system font IDs to names and target
// replacement fonts, and translates legacy 8-bit codepoints to Unicode
// per the current font's encoding (§4.4, §6.4).
package fontreg

import "golang.org/x/text/encoding/charmap"

// Registry is an owned value passed through the parser pipeline — the
// teacher's source uses a process-wide singleton for this; per the
// design notes this is deliberately NOT global state here.
type Registry struct {
	names map[int32]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[int32]string)}
}

// Register remembers a legacy-id -> legacy-name mapping. A later call
// with the same id overwrites the previous mapping.
func (r *Registry) Register(id int32, name string) {
	r.names[id] = name
}

// LookupName returns the legacy name registered for id, or "" if none.
func (r *Registry) LookupName(id int32) string {
	return r.names[id]
}

// targetFont is one entry of the legacy-family -> replacement-family
// table: some legacy families render a nominal 12pt glyph at 10pt in
// the replacement family, so a size delta travels with the name.
type targetFont struct {
	name      string
	sizeDelta float64
}

// targetFonts maps well-known legacy family names (looked up by their
// registered name, case-sensitively, as these were fixed system names)
// to a replacement family + additive size adjustment.
var targetFonts = map[string]targetFont{
	"Geneva":  {"Helvetica", 0},
	"Chicago": {"Helvetica", 0},
	"Monaco":  {"Courier New", 0},
	"New York": {"Times New Roman", 0},
	"Symbol":  {"Symbol", 0},
	"Zapf Dingbats": {"Wingdings", -2},
}

// TargetFont returns the back-end family name and additive size delta
// for the given legacy font id.
func (r *Registry) TargetFont(id int32) (name string, sizeDelta float64) {
	legacy := r.names[id]
	if t, ok := targetFonts[legacy]; ok {
		return t.name, t.sizeDelta
	}
	if legacy != "" {
		return legacy, 0
	}
	return "Helvetica", 0
}

// ToUnicode resolves codepoint through the font's family (by legacy id):
// Symbol and Dingbats fonts consult their own sub-range tables first;
// every other font falls back to the Mac-Roman table for bytes >= 0x80,
// and passes ASCII through unchanged.
func (r *Registry) ToUnicode(fontID int32, codepoint byte) rune {
	family := r.names[fontID]
	switch family {
	case "Symbol":
		if u, ok := symbolTable[codepoint]; ok {
			return u
		}
	case "Zapf Dingbats":
		if u, ok := dingbatsTable[codepoint]; ok {
			return u
		}
	}
	if codepoint < 0x80 {
		return rune(codepoint)
	}
	return decodeMacRoman(codepoint)
}

// decodeMacRoman uses golang.org/x/text's Macintosh charmap for the
// 0x80..0xFF range (§6.4); bytes below 0x80 are passed through by the
// caller before reaching here.
func decodeMacRoman(b byte) rune {
	r, ok := charmap.Macintosh.DecodeByte(b)
	if !ok {
		return rune(b)
	}
	return r
}
