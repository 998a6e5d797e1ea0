package script

import (
	"strings"

	"github.com/slugline/slugline-go/lib/element"
	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

// TitlePageSeparator terminates the key:value preamble in the plain-text
// interchange form.
const TitlePageSeparator = "==="

// ExportText flattens a document to the plain-text interchange dialect:
// an optional title-page preamble, then one block per element with blank
// lines between blocks. Scene headings, character cues and transitions
// are uppercased, parentheticals wrapped.
//
// The plain-text form is lossy by design: manual-type flags, dual-dialogue
// links and revision colors have no representation in it and do not
// survive an export/import round trip.
func ExportText(ser scriptModel.Serialized) string {
	var b strings.Builder

	writeTitlePage(&b, ser.TitlePage)

	prev := element.General
	for i, line := range ser.Lines {
		if i > 0 && !continuesBlock(prev, line.Type) {
			b.WriteString("\n")
		}
		b.WriteString(element.Format(line.Type, line.Text))
		b.WriteString("\n")
		prev = line.Type
	}
	return b.String()
}

func writeTitlePage(b *strings.Builder, tp scriptModel.TitlePage) {
	entries := [][2]string{
		{"Title", tp.Title},
		{"Author", tp.Author},
		{"Contact", tp.Contact},
		{"Copyright", tp.Copyright},
		{"Draft", tp.Draft},
	}
	any := false
	for _, entry := range entries {
		if entry[1] == "" {
			continue
		}
		b.WriteString(entry[0])
		b.WriteString(": ")
		b.WriteString(entry[1])
		b.WriteString("\n")
		any = true
	}
	if any {
		b.WriteString(TitlePageSeparator)
		b.WriteString("\n\n")
	}
}

// continuesBlock reports whether a line of type cur extends the dialogue
// block opened by prev rather than starting a new block.
func continuesBlock(prev element.Type, cur element.Type) bool {
	if cur != element.Dialogue && cur != element.Parenthetical {
		return false
	}
	return prev == element.Character || prev == element.Dialogue || prev == element.Parenthetical
}
