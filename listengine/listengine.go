// Package listengine builds nested list numbering state across
// paragraphs: per-level kind, prefix/suffix, indentation, and the
// running counters that produce a bullet or number glyph (§4.5).
package listengine

import "strings"

// Kind is one level's numbering scheme.
type Kind int

const (
	KindArabic Kind = iota
	KindUpperAlpha
	KindLowerAlpha
	KindUpperRoman
	KindLowerRoman
	KindBullet
)

// Level is the static definition of one list level; counters are
// tracked separately in Engine so the same Level value can be reused
// across lists.
type Level struct {
	Kind            Kind
	Prefix          string
	Suffix          string
	LeftIndent      float64
	FirstLineIndent float64
	BulletChar      rune
	StartAt         int
}

// epsilon bounds the "positions changed" test in MustEmit (§4.5).
const epsilon = 0.01

type levelState struct {
	level   Level
	counter int
	refPos  float64
	beginPos float64
	known   bool
}

// List is one nested numbering tree, addressed by level depth starting
// at 1. Level 0 means "no list".
type List struct {
	id     int
	levels map[int]*levelState
}

// NewList returns an empty list with the given back-end id.
func NewList(id int) *List {
	return &List{id: id, levels: make(map[int]*levelState)}
}

func (l *List) ID() int { return l.id }

// Define installs or replaces the static definition for a level. The
// running counter resets to def.StartAt (or 1 if unset).
func (l *List) Define(n int, def Level) {
	start := def.StartAt
	if start == 0 {
		start = 1
	}
	l.levels[n] = &levelState{level: def, counter: start}
}

// SetLevel records the parser's reported ref/begin position for level
// n, at paragraph start. It does not itself advance the counter —
// that happens in Format.
func (l *List) SetLevel(n int, refPos, beginPos float64) {
	s := l.levels[n]
	if s == nil {
		s = &levelState{counter: 1}
		l.levels[n] = s
	}
	s.refPos, s.beginPos, s.known = refPos, beginPos, true
}

// MustEmit reports whether the back-end should receive a refreshed
// list-level declaration: true the first time a level is seen, or
// when its ref/begin position moved by more than epsilon.
func (l *List) MustEmit(n int, refPos, beginPos float64) bool {
	s := l.levels[n]
	if s == nil || !s.known {
		return true
	}
	return absf(s.refPos-refPos) > epsilon || absf(s.beginPos-beginPos) > epsilon
}

// Format produces the bullet/number glyph for the current counter at
// level n, then advances the counter. No other level is touched:
// deeper levels are reset by ResetBelow, and a level's own counter
// only resets when the level is (re)defined by the caller via Define,
// never implicitly here.
func (l *List) Format(n int) string {
	s := l.levels[n]
	if s == nil {
		return ""
	}
	glyph := formatCounter(s.level.Kind, s.counter, s.level.BulletChar)
	s.counter++
	var b strings.Builder
	b.WriteString(s.level.Prefix)
	b.WriteString(glyph)
	b.WriteString(s.level.Suffix)
	return b.String()
}

// ResetBelow resets the counters of every level strictly deeper than
// n to their StartAt, per "resetting occurs on level-decrement".
func (l *List) ResetBelow(n int) {
	for depth, s := range l.levels {
		if depth > n {
			start := s.level.StartAt
			if start == 0 {
				start = 1
			}
			s.counter = start
		}
	}
}

func (l *List) LevelDef(n int) (Level, bool) {
	s := l.levels[n]
	if s == nil {
		return Level{}, false
	}
	return s.level, true
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func formatCounter(kind Kind, counter int, bullet rune) string {
	switch kind {
	case KindArabic:
		return itoa(counter)
	case KindUpperAlpha:
		return alpha(counter, false)
	case KindLowerAlpha:
		return alpha(counter, true)
	case KindUpperRoman:
		return roman(counter, false)
	case KindLowerRoman:
		return roman(counter, true)
	case KindBullet:
		if bullet == 0 {
			bullet = '•'
		}
		return string(bullet)
	default:
		return itoa(counter)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// alpha renders counter (1-based) as a base-26 letter sequence (1=A,
// 26=Z, 27=AA, ...), matching spreadsheet-column-style numbering.
func alpha(counter int, lower bool) string {
	if counter < 1 {
		return ""
	}
	base := byte('A')
	if lower {
		base = 'a'
	}
	var out []byte
	for counter > 0 {
		counter--
		out = append([]byte{base + byte(counter%26)}, out...)
		counter /= 26
	}
	return string(out)
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(counter int, lower bool) string {
	if counter < 1 {
		return ""
	}
	var b strings.Builder
	for _, r := range romanTable {
		for counter >= r.value {
			b.WriteString(r.symbol)
			counter -= r.value
		}
	}
	s := b.String()
	if lower {
		s = strings.ToLower(s)
	}
	return s
}

// Engine owns every list known to the current document, keyed by its
// back-end id, plus the list most recently referenced by the parser
// (set_current_list in §4.6).
type Engine struct {
	lists   map[int]*List
	nextID  int
	current *List
}

func NewEngine() *Engine {
	return &Engine{lists: make(map[int]*List), nextID: 1}
}

// NewList allocates a fresh list with a unique id and makes it current.
func (e *Engine) NewList() *List {
	l := NewList(e.nextID)
	e.nextID++
	e.lists[l.id] = l
	e.current = l
	return l
}

// SetCurrent makes an existing list (by id) the one returned by
// Current. Unknown ids leave the current list unchanged.
func (e *Engine) SetCurrent(id int) {
	if l, ok := e.lists[id]; ok {
		e.current = l
	}
}

func (e *Engine) Current() *List { return e.current }

func (e *Engine) List(id int) (*List, bool) {
	l, ok := e.lists[id]
	return l, ok
}
