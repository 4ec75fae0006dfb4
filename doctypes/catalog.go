package doctypes

import "fmt"

// FontCatalog is an ordered font catalog, id -> Font (§3.5).
type FontCatalog struct {
	entries []Font
}

func (c *FontCatalog) Add(f Font) int {
	c.entries = append(c.entries, f)
	return len(c.entries) - 1
}

func (c *FontCatalog) Get(id int) (Font, bool) {
	if id < 0 || id >= len(c.entries) {
		return Font{}, false
	}
	return c.entries[id], true
}

// ParagraphCatalog is an ordered paragraph catalog, id -> Paragraph.
type ParagraphCatalog struct {
	entries []Paragraph
}

func (c *ParagraphCatalog) Add(p Paragraph) int {
	c.entries = append(c.entries, p)
	return len(c.entries) - 1
}

func (c *ParagraphCatalog) Get(id int) (Paragraph, bool) {
	if id < 0 || id >= len(c.entries) {
		return Paragraph{}, false
	}
	return c.entries[id], true
}

// NamedStyle is one entry of the named style catalog: a DAG node with an
// optional parent (-1 for none).
type NamedStyle struct {
	Name       string
	FontID     int
	ParagraphID int
	ParentID   int // -1 if none
}

// StyleCatalog resolves named styles by walking the parent chain,
// detecting cycles per §3.5's invariant.
type StyleCatalog struct {
	byName map[string]NamedStyle
	order  []string
}

func NewStyleCatalog() *StyleCatalog {
	return &StyleCatalog{byName: make(map[string]NamedStyle)}
}

func (c *StyleCatalog) Add(s NamedStyle) {
	if _, exists := c.byName[s.Name]; !exists {
		c.order = append(c.order, s.Name)
	}
	c.byName[s.Name] = s
}

// ResolvedStyle is the flattened {font, paragraph} pair after walking
// parents with child values taking precedence (first non-default wins).
type ResolvedStyle struct {
	FontID      int
	ParagraphID int
}

// Resolve walks the parent chain from name to -1, returning the nearest
// ancestor's font/paragraph ids where a given style did not set its own
// (represented here by -1 entries which are skipped in favor of an
// ancestor's value). Returns an error if a cycle is detected.
func (c *StyleCatalog) Resolve(name string) (ResolvedStyle, error) {
	seen := make(map[string]bool)
	var result ResolvedStyle
	result.FontID, result.ParagraphID = -1, -1

	cur := name
	for cur != "" {
		if seen[cur] {
			return ResolvedStyle{}, fmt.Errorf("doctypes: style cycle detected at %q", cur)
		}
		seen[cur] = true
		style, ok := c.byName[cur]
		if !ok {
			break
		}
		if result.FontID < 0 && style.FontID >= 0 {
			result.FontID = style.FontID
		}
		if result.ParagraphID < 0 && style.ParagraphID >= 0 {
			result.ParagraphID = style.ParagraphID
		}
		if style.ParentID < 0 {
			break
		}
		if style.ParentID >= len(c.order) {
			break
		}
		cur = c.order[style.ParentID]
	}
	return result, nil
}
