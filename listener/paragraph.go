package listener

import (
	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/listengine"
)

// openParagraph opens a plain paragraph using the pending properties,
// applying list-state transitions first (§4.6.4).
func (l *Listener) openParagraph() {
	l.changeList()
	if l.cur.currentListLevel > 0 {
		l.openListElement()
		return
	}
	props := l.paragraphProperties()
	l.cur.paragraphOpened = true
	l.cur.paragraphEmittedInSection = true
	l.sink.OpenParagraph(props, l.cur.pendingPara.tabs)
}

func (l *Listener) openListElement() {
	props := l.paragraphProperties()
	l.cur.listElementOpened = true
	l.cur.paragraphEmittedInSection = true
	l.sink.OpenListElement(props, l.cur.pendingPara.tabs)
}

// closeParagraphOrListElement closes whichever of the two is open,
// then resets paragraph-local state (the tab margin bucket resets at
// every paragraph end per §4.6.2).
func (l *Listener) closeParagraphOrListElement() {
	if l.cur.spanOpened {
		l.closeSpan()
	}
	if l.cur.paragraphOpened {
		l.cur.paragraphOpened = false
		l.sink.CloseParagraph()
	} else if l.cur.listElementOpened {
		l.cur.listElementOpened = false
		l.sink.CloseListElement()
	}
	l.resetParagraphState()
}

func (l *Listener) resetParagraphState() {
	just := l.cur.pendingPara.justification
	l.cur.pendingPara = newPendingParagraph()
	l.cur.pendingPara.justification = just
	l.cur.pendingPara.leftMargin.fromTabs = 0
	l.cur.pendingPara.rightMargin.fromTabs = 0
}

func (l *Listener) paragraphProperties() doctypes.Properties {
	p := l.cur.pendingPara
	props := doctypes.NewProperties()
	props.SetFloat("fo:margin-left", p.leftMargin.total(), doctypes.UnitInch)
	props.SetFloat("fo:margin-right", p.rightMargin.total(), doctypes.UnitInch)
	props.SetFloat("fo:text-indent", p.textIndent, doctypes.UnitInch)
	props.SetStr("fo:text-align", justificationName(p.justification))
	switch p.lineSpacing.Unit {
	case doctypes.UnitPercent:
		props.SetFloat("fo:line-height", p.lineSpacing.Value, doctypes.UnitPercent)
	default:
		props.SetFloat("fo:line-height", p.lineSpacing.Value, doctypes.UnitPoint)
	}
	if p.columnBreak {
		props.SetStr("fo:break-before", "column")
	}
	if p.pageBreak {
		props.SetStr("fo:break-before", "page")
	}
	return props
}

func justificationName(j doctypes.Justification) string {
	switch j {
	case doctypes.JustifyCenter:
		return "center"
	case doctypes.JustifyRight:
		return "end"
	case doctypes.JustifyFull, doctypes.JustifyFullAllLines:
		return "justify"
	default:
		return "start"
	}
}

// openSpan starts a new span carrying the pending font.
func (l *Listener) openSpan() {
	props := doctypes.NewProperties()
	f := l.cur.pendingFont
	if f.name != "" {
		props.SetStr("style:font-name", f.name)
	}
	if f.font.Size > 0 {
		props.SetFloat("fo:font-size", f.font.Size, doctypes.UnitPoint)
	}
	if f.font.HasFlag(doctypes.StyleBold) {
		props.SetStr("fo:font-weight", "bold")
	}
	if f.font.HasFlag(doctypes.StyleItalic) {
		props.SetStr("fo:font-style", "italic")
	}
	if f.language != "" {
		props.SetStr("fo:language", f.language)
	}
	l.cur.spanOpened = true
	l.sink.OpenSpan(props)
}

func (l *Listener) closeSpan() {
	l.flushText()
	l.cur.spanOpened = false
	l.sink.CloseSpan()
}

func (l *Listener) flushText() {
	if len(l.cur.textBuffer) == 0 {
		return
	}
	l.sink.InsertText(string(l.cur.textBuffer))
	l.cur.textBuffer = l.cur.textBuffer[:0]
}

// openPageSpan opens the next page span from the parser-supplied list.
// It panics if the list is exhausted, per §4.6.5's one named
// unrecoverable violation ("page list exhausted before
// _open_page_span").
func (l *Listener) openPageSpan() {
	if l.currentPage >= len(l.pages) {
		fatal("open_page_span", "page list exhausted")
	}
	span := l.pages[l.currentPage]
	l.currentPage++
	l.cur.pageSpanOpened = true
	l.cur.pageMarginLeft = span.Margins.Left
	l.cur.pageMarginRight = span.Margins.Right
	l.cur.pendingPara.leftMargin.renormalize(span.Margins.Left)
	l.cur.pendingPara.rightMargin.renormalize(span.Margins.Right)

	props := doctypes.NewProperties()
	props.SetFloat("fo:page-width", span.FormWidth, doctypes.UnitPoint)
	props.SetFloat("fo:page-height", span.FormLength, doctypes.UnitPoint)
	props.SetFloat("fo:margin-left", span.Margins.Left, doctypes.UnitPoint)
	props.SetFloat("fo:margin-right", span.Margins.Right, doctypes.UnitPoint)
	props.SetFloat("fo:margin-top", span.Margins.Top, doctypes.UnitPoint)
	props.SetFloat("fo:margin-bottom", span.Margins.Bottom, doctypes.UnitPoint)
	l.sink.OpenPageSpan(props)
}

func (l *Listener) closePageSpan() {
	l.cur.pageSpanOpened = false
	l.sink.ClosePageSpan()
}

// flushListState closes list levels down to target, used when a
// section closes (target 0) or the list level changes (§4.6.4).
func (l *Listener) flushListState(target int) {
	list := l.lists.Current()
	for l.cur.currentListLevel > target {
		if list != nil {
			if def, ok := list.LevelDef(l.cur.currentListLevel); ok && def.Kind == listengine.KindBullet {
				l.sink.CloseUnorderedListLevel()
			} else {
				l.sink.CloseOrderedListLevel()
			}
		} else {
			l.sink.CloseOrderedListLevel()
		}
		l.cur.currentListLevel--
	}
}

// changeList implements §4.6.4, invoked before every paragraph open.
func (l *Listener) changeList() {
	target := l.cur.pendingListLevel
	list := l.lists.Current()

	for l.cur.currentListLevel > target {
		l.flushListState(l.cur.currentListLevel - 1)
	}

	if target > 0 && list != nil {
		if l.cur.currentListLevel == target {
			def, _ := list.LevelDef(target)
			if list.MustEmit(target, 0, def.LeftIndent) {
				l.flushListState(target - 1)
			}
		}
		for l.cur.currentListLevel < target {
			l.cur.currentListLevel++
			def, ok := list.LevelDef(l.cur.currentListLevel)
			props := doctypes.NewProperties()
			if ok {
				props.SetFloat("text:space-before", def.LeftIndent, doctypes.UnitInch)
			}
			if ok && def.Kind == listengine.KindBullet {
				l.sink.OpenUnorderedListLevel(props)
			} else {
				l.sink.OpenOrderedListLevel(props)
			}
		}
	}
}
