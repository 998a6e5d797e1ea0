package script

import (
	"time"

	"github.com/slugline/slugline-go/lib/element"
)

// LineMeta carries the per-line flags that are not part of the visible
// text. Optional fields are pointers so the serialized form distinguishes
// "absent" from zero.
type LineMeta struct {
	ManualType        bool         `json:"manualType,omitempty"`
	DualId            *string      `json:"dualId,omitempty"`
	DualPosition      DualPosition `json:"dualPosition,omitempty"`
	RevisionColor     *string      `json:"revisionColor,omitempty"`
	RevisionTimestamp *time.Time   `json:"revisionTimestamp,omitempty"`
}

type DualPosition string

const (
	DualNone  DualPosition = ""
	DualLeft  DualPosition = "left"
	DualRight DualPosition = "right"
)

// Line is one addressable unit of screenplay content. Its Id is stable
// across edits and reorders; position in the document is never identity.
type Line struct {
	Id   string       `json:"id"`
	Type element.Type `json:"type"`
	Text string       `json:"text"`
	Meta LineMeta     `json:"meta"`
}

// Settings holds display/formatting options. The engine carries it through
// serialization untouched.
type Settings struct {
	Mode        Mode   `json:"mode"`
	Font        string `json:"font,omitempty"`
	PaperSize   string `json:"paperSize,omitempty"`
	LineSpacing string `json:"lineSpacing,omitempty"`
}

// Mode selects the production format, which changes the runtime estimate.
type Mode string

const (
	ModeScreenplay  Mode = "screenplay"
	ModeStagePlay   Mode = "stageplay"
	ModeMultiColumn Mode = "multicolumn"
)

// TitlePage is the key metadata shown before page one.
type TitlePage struct {
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Contact   string `json:"contact,omitempty"`
	Copyright string `json:"copyright,omitempty"`
	Draft     string `json:"draft,omitempty"`
}

// Serialized is the lossless wire form of a document: the ordered line
// records plus the opaque settings and title page. It is what snapshots
// capture and what restore hands back.
type Serialized struct {
	Lines     []Line    `json:"lines"`
	Settings  Settings  `json:"settings"`
	TitlePage TitlePage `json:"titlePage"`
}
