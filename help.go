package clip

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column layout of the help document, in percent of the configured line
// width: the header splits program name and version 75/25, option lines
// split aliases and description 30/70.
const (
	headerNameShare     = 75
	headerVersionShare  = 25
	aliasColumnShare    = 30
	descriptionColShare = 70
)

// Help renders the help document for the current registration state.
// It is a pure function of that state: rendering twice on an unmutated
// parser yields byte-identical output, and rendering never parses or
// mutates anything.
func (p *Parser) Help() string {
	var doc strings.Builder

	rule := p.separator()

	if p.program != "" {
		doc.WriteString(rule + "\n")
		doc.WriteString(padRight(p.program, p.width*headerNameShare/100))
		doc.WriteString(padLeft(p.version, p.width*headerVersionShare/100))
		doc.WriteString("\n" + rule + "\n")
	}

	if p.description != "" {
		doc.WriteString(wrapText(p.description, p.width, ""))
		doc.WriteString("\n" + rule + "\n")
	}

	doc.WriteString("\n")

	aliasColumn := p.width * aliasColumnShare / 100
	descWidth := p.width * descriptionColShare / 100
	padding := strings.Repeat(" ", aliasColumn)

	for _, opt := range p.options {
		aliases := strings.Join(opt.aliases, ", ")
		if opt.mandatory {
			aliases = "*" + aliases
		}

		if len(opt.subs) > 0 {
			aliases += " {args...}"
		}

		doc.WriteString(padRight(aliases, aliasColumn))
		doc.WriteString(wrapText(opt.description, descWidth, padding))
		doc.WriteString("\n")

		if len(opt.subs) == 0 {
			continue
		}

		doc.WriteString(padding + "Arguments: \n")

		for _, sub := range opt.subs {
			doc.WriteString(padding + "{" + sub.ID + "} => ")
			doc.WriteString(wrapText(sub.Description, descWidth, padding))
			doc.WriteString("\n")
		}
	}

	return doc.String()
}

// WriteHelp writes the help document to the provided writer.
func (p *Parser) WriteHelp(writer io.Writer) {
	if writer == nil {
		return
	}

	io.WriteString(writer, p.Help())
}

func (p *Parser) separator() string {
	return strings.Repeat("-", p.width)
}

// wrapText wraps text to the given width: the longest prefix fitting the
// width is broken at its last space, or hard-broken at the width boundary
// when it contains none. Every line after the first is prefixed with pad,
// and the final remainder carries no trailing line break.
func wrapText(text string, width int, pad string) string {
	var wrapped strings.Builder

	remainder := []rune(text)
	linePad := ""

	for len(remainder) > width {
		cut, drop := width, 0
		if idx := lastSpace(remainder[:width]); idx >= 0 {
			cut, drop = idx, 1
		}

		wrapped.WriteString(linePad)
		wrapped.WriteString(string(remainder[:cut]))
		wrapped.WriteString("\n")

		remainder = remainder[cut+drop:]
		linePad = pad
	}

	wrapped.WriteString(linePad)
	wrapped.WriteString(string(remainder))

	return wrapped.String()
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}

	return -1
}

// padRight left-justifies a value within the given display width. Values
// already wider than the column are returned as-is, pushing the rest of
// the line right rather than truncating.
func padRight(value string, width int) string {
	if missing := width - runewidth.StringWidth(value); missing > 0 {
		return value + strings.Repeat(" ", missing)
	}

	return value
}

func padLeft(value string, width int) string {
	if missing := width - runewidth.StringWidth(value); missing > 0 {
		return strings.Repeat(" ", missing) + value
	}

	return value
}
