package promptline

import (
	"strings"

	"github.com/muesli/termenv"
)

// Escaper transforms a raw control sequence before it is written, for example
// to mark it as zero-width for a particular shell. A nil Escaper leaves
// sequences unchanged.
type Escaper func(seq string) string

// attr identifies a Text node.
type attr int

// SGR parameters that end each attribute.
const (
	boldOff       = "22"
	underlineOff  = "24"
	italicOff     = "23"
	foregroundOff = "39"
	backgroundOff = "49"
)

const (
	attrLeaf attr = iota
	attrBold
	attrUnderline
	attrItalic
	attrForeground
	attrBackground
)

// Text is literal text wrapped in zero or more style attributes.
//
// Each wrapping method returns a new Text and leaves the receiver untouched,
// so values can be shared and composed fluently:
//
//	promptline.Plain("main").Bold().Foreground(promptline.Yellow)
//
// Rendering nests codes: the outermost wrapper's start code comes first and
// its end code last.
type Text struct {
	attr  attr
	text  string // leaf only
	color Color  // foreground and background only
	child *Text
}

// Plain returns unstyled text.
func Plain(s string) Text {
	return Text{attr: attrLeaf, text: s}
}

// Bold wraps t in bold.
func (t Text) Bold() Text { return t.wrap(attrBold, nil) }

// Underline wraps t in underline.
func (t Text) Underline() Text { return t.wrap(attrUnderline, nil) }

// Italic wraps t in italic.
func (t Text) Italic() Text { return t.wrap(attrItalic, nil) }

// Foreground wraps t in a foreground color. A nil color returns t unchanged.
func (t Text) Foreground(c Color) Text {
	if c == nil {
		return t
	}
	return t.wrap(attrForeground, c)
}

// Background wraps t in a background color. A nil color returns t unchanged.
func (t Text) Background(c Color) Text {
	if c == nil {
		return t
	}
	return t.wrap(attrBackground, c)
}

func (t Text) wrap(a attr, c Color) Text {
	child := t
	return Text{attr: a, color: c, child: &child}
}

// Content returns the literal text with all styling removed.
func (t Text) Content() string {
	for t.child != nil {
		t = *t.child
	}
	return t.text
}

// MapColors returns a copy of t with every color replaced by f(color).
// Wrappers for which f returns nil are dropped.
func (t Text) MapColors(f func(Color) Color) Text {
	if t.child == nil {
		return t
	}
	child := t.child.MapColors(f)
	switch t.attr {
	case attrForeground, attrBackground:
		c := f(t.color)
		if c == nil {
			return child
		}
		return child.wrap(t.attr, c)
	default:
		return child.wrap(t.attr, nil)
	}
}

// String renders t with raw escape sequences.
func (t Text) String() string {
	return t.Render(nil)
}

// Render returns t as text with ANSI SGR sequences, passing each sequence
// through escape. The literal text is written verbatim.
func (t Text) Render(escape Escaper) string {
	if escape == nil {
		escape = func(seq string) string { return seq }
	}
	var sb strings.Builder
	t.render(&sb, escape)
	return sb.String()
}

func (t Text) render(sb *strings.Builder, escape Escaper) {
	if t.child == nil {
		sb.WriteString(t.text)
		return
	}
	start, end := t.codes()
	sb.WriteString(escape(sgr(start)))
	t.child.render(sb, escape)
	sb.WriteString(escape(sgr(end)))
}

// codes returns the SGR start and end parameters of a wrapper node.
func (t Text) codes() (start, end string) {
	switch t.attr {
	case attrBold:
		return termenv.BoldSeq, boldOff
	case attrUnderline:
		return termenv.UnderlineSeq, underlineOff
	case attrItalic:
		return termenv.ItalicSeq, italicOff
	case attrForeground:
		return t.color.ForegroundCode(), foregroundOff
	case attrBackground:
		return t.color.BackgroundCode(), backgroundOff
	}
	return "", ""
}

func sgr(param string) string {
	return termenv.CSI + param + "m"
}
