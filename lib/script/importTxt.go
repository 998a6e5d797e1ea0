package script

import (
	"strings"

	"github.com/google/uuid"

	"github.com/slugline/slugline-go/lib/element"
	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

// ImportText reconstructs a document from the plain-text interchange
// dialect. Reconstruction is best effort: each non-blank body line is
// typed by the classifier against the previously imported line, so text
// the classifier misreads imports with the wrong type and line metadata
// lost on export stays lost.
func ImportText(text string) scriptModel.Serialized {
	lines := strings.Split(text, "\n")

	titlePage, bodyStart := parseTitlePage(lines)

	ser := scriptModel.Serialized{
		Settings:  scriptModel.Settings{Mode: scriptModel.ModeScreenplay},
		TitlePage: titlePage,
	}

	prev := element.General
	for _, raw := range lines[bodyStart:] {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		result := element.Classify(trimmed, prev)
		ser.Lines = append(ser.Lines, scriptModel.Line{
			Id:   uuid.NewString(),
			Type: result.Type,
			Text: trimmed,
		})
		prev = result.Type
	}

	if len(ser.Lines) == 0 {
		ser.Lines = []scriptModel.Line{{Id: uuid.NewString(), Type: element.Action}}
	}
	return ser
}

// parseTitlePage reads the key:value preamble when the separator line is
// present, and returns the index of the first body line. Without a
// separator the whole text is body.
func parseTitlePage(lines []string) (scriptModel.TitlePage, int) {
	var tp scriptModel.TitlePage

	separator := -1
	for i, raw := range lines {
		if strings.TrimSpace(raw) == TitlePageSeparator {
			separator = i
			break
		}
	}
	if separator < 0 {
		return tp, 0
	}

	for _, raw := range lines[:separator] {
		key, value, found := strings.Cut(raw, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			tp.Title = value
		case "author":
			tp.Author = value
		case "contact":
			tp.Contact = value
		case "copyright":
			tp.Copyright = value
		case "draft":
			tp.Draft = value
		}
	}
	return tp, separator + 1
}
