package script

import (
	"github.com/google/uuid"

	"github.com/slugline/slugline-go/lib/element"
	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

// applyThreshold is the confidence above which a classifier verdict
// replaces a line's type. At or below it the existing type is kept.
const applyThreshold = 0.8

// Document is the in-memory working copy of one script. It exclusively
// owns its ordered line sequence; every mutation happens through its
// methods. Mutating operations on ids that no longer exist are silent
// no-ops so that stale UI events cannot crash the model.
type Document struct {
	Id        string
	lines     []*scriptModel.Line
	Settings  scriptModel.Settings
	TitlePage scriptModel.TitlePage
}

// NewDocument creates a document holding a single empty action line. A
// document never has fewer lines than that.
func NewDocument(id string) *Document {
	return &Document{
		Id: id,
		lines: []*scriptModel.Line{{
			Id:   uuid.NewString(),
			Type: element.Action,
		}},
		Settings: scriptModel.Settings{Mode: scriptModel.ModeScreenplay},
	}
}

// FromSerialized rebuilds a document from its wire form, for example the
// content of a restored snapshot. An empty line list gets the mandatory
// initial line.
func FromSerialized(id string, ser scriptModel.Serialized) *Document {
	doc := &Document{
		Id:        id,
		Settings:  ser.Settings,
		TitlePage: ser.TitlePage,
	}
	for _, line := range ser.Lines {
		copied := line
		doc.lines = append(doc.lines, &copied)
	}
	if len(doc.lines) == 0 {
		doc.lines = []*scriptModel.Line{{Id: uuid.NewString(), Type: element.Action}}
	}
	return doc
}

// Serialize captures the document as an immutable value. Metrics, export
// and the revision store all work from this, never from the live line
// slice.
func (d *Document) Serialize() scriptModel.Serialized {
	ser := scriptModel.Serialized{
		Lines:     make([]scriptModel.Line, 0, len(d.lines)),
		Settings:  d.Settings,
		TitlePage: d.TitlePage,
	}
	for _, line := range d.lines {
		ser.Lines = append(ser.Lines, *line)
	}
	return ser
}

// LineCount reports the number of lines; it is always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns a copy of the line with the given id.
func (d *Document) Line(lineId string) (scriptModel.Line, bool) {
	idx := d.indexOf(lineId)
	if idx < 0 {
		return scriptModel.Line{}, false
	}
	return *d.lines[idx], true
}

func (d *Document) indexOf(lineId string) int {
	for i, line := range d.lines {
		if line.Id == lineId {
			return i
		}
	}
	return -1
}

// InsertAfter creates an empty line of the given type after the line with
// afterId and returns the new line's id. An empty or unknown afterId
// appends at the end. An invalid type falls back to action.
func (d *Document) InsertAfter(afterId string, t element.Type) string {
	if !element.IsValid(t) {
		t = element.Action
	}
	newLine := &scriptModel.Line{
		Id:   uuid.NewString(),
		Type: t,
	}
	idx := d.indexOf(afterId)
	if idx < 0 {
		d.lines = append(d.lines, newLine)
		return newLine.Id
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[idx+2:], d.lines[idx+1:])
	d.lines[idx+1] = newLine
	return newLine.Id
}

// UpdateText replaces the line's text and, unless the type was set
// manually, reclassifies it against the previous line's type. The verdict
// only sticks when the classifier is confident enough.
func (d *Document) UpdateText(lineId string, text string) {
	idx := d.indexOf(lineId)
	if idx < 0 {
		return
	}
	line := d.lines[idx]
	line.Text = text
	if line.Meta.ManualType {
		return
	}
	prev := element.General
	if idx > 0 {
		prev = d.lines[idx-1].Type
	}
	result := element.Classify(text, prev)
	if result.Confidence > applyThreshold {
		line.Type = result.Type
	}
}

// SetType overrides the line's type and pins it against reclassification.
func (d *Document) SetType(lineId string, t element.Type) {
	idx := d.indexOf(lineId)
	if idx < 0 || !element.IsValid(t) {
		return
	}
	d.lines[idx].Type = t
	d.lines[idx].Meta.ManualType = true
}

// CycleType advances the line's type through the cycle vocabulary,
// wrapping at the end, and pins the result.
func (d *Document) CycleType(lineId string, reverse bool) {
	idx := d.indexOf(lineId)
	if idx < 0 {
		return
	}
	d.lines[idx].Type = element.Cycle(d.lines[idx].Type, reverse)
	d.lines[idx].Meta.ManualType = true
}

// DeleteLine removes the line. Deleting the sole remaining line is a
// no-op; a document is never empty.
func (d *Document) DeleteLine(lineId string) {
	if len(d.lines) <= 1 {
		return
	}
	idx := d.indexOf(lineId)
	if idx < 0 {
		return
	}
	d.lines = append(d.lines[:idx], d.lines[idx+1:]...)
}

// MergeWithPrevious appends the line's text to its predecessor, separated
// by a single space, and removes the line. Backspace at start-of-line
// maps to this. No-op on the first line.
func (d *Document) MergeWithPrevious(lineId string) {
	idx := d.indexOf(lineId)
	if idx <= 0 {
		return
	}
	prev := d.lines[idx-1]
	cur := d.lines[idx]
	if cur.Text != "" {
		if prev.Text != "" {
			prev.Text += " "
		}
		prev.Text += cur.Text
	}
	d.lines = append(d.lines[:idx], d.lines[idx+1:]...)
}
