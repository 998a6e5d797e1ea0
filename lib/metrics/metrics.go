// Package metrics derives production numbers from a document snapshot.
// Every value is recomputed from scratch on demand; nothing here holds
// state. The constants are fixed policy shared with existing exports and
// must not drift.
package metrics

import (
	"math"
	"strings"

	"github.com/slugline/slugline-go/lib/element"
	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

const (
	// linesPerPage is the weighted line budget of one formatted page.
	linesPerPage = 55
	// charsPerWrappedLine approximates where a line of body text wraps.
	charsPerWrappedLine = 60
	// wordsPerMinuteMultiColumn converts AV-script words to runtime.
	wordsPerMinuteMultiColumn = 250
	// stagePlayMinutesPerPage reflects the slower pacing of stage reads.
	stagePlayMinutesPerPage = 1.5
)

// Metrics is the derived production summary of one document snapshot.
type Metrics struct {
	WordCount               int     `json:"wordCount"`
	SceneCount              int     `json:"sceneCount"`
	PageCount               int     `json:"pageCount"`
	EstimatedRuntimeMinutes float64 `json:"estimatedRuntimeMinutes"`
}

// Estimate computes word count, scene count, page count and estimated
// runtime for the snapshot. The runtime rule depends on the document
// mode: one minute per page for screenplays, pages times 1.5 for stage
// plays, and words over 250 (rounded up) for multi-column AV scripts.
func Estimate(ser scriptModel.Serialized) Metrics {
	var m Metrics
	weighted := 0
	for _, line := range ser.Lines {
		m.WordCount += len(strings.Fields(line.Text))
		if line.Type == element.Scene {
			m.SceneCount++
		}
		weighted += weightedLines(line)
	}
	m.PageCount = int(math.Ceil(float64(weighted) / linesPerPage))
	m.EstimatedRuntimeMinutes = runtime(ser.Settings.Mode, m)
	return m
}

// weightedLines is the page-space cost of one line. Character cues and
// parentheticals are narrow enough never to wrap; scene headings, action
// and transitions carry a blank spacing line.
func weightedLines(line scriptModel.Line) int {
	if line.Type == element.Character || line.Type == element.Parenthetical {
		return 1
	}
	wrapped := int(math.Ceil(float64(len(line.Text)) / charsPerWrappedLine))
	if wrapped < 1 {
		wrapped = 1
	}
	switch line.Type {
	case element.Scene, element.Action, element.Transition:
		return wrapped + 1
	default:
		return wrapped
	}
}

func runtime(mode scriptModel.Mode, m Metrics) float64 {
	switch mode {
	case scriptModel.ModeStagePlay:
		return float64(m.PageCount) * stagePlayMinutesPerPage
	case scriptModel.ModeMultiColumn:
		return math.Ceil(float64(m.WordCount) / wordsPerMinuteMultiColumn)
	default:
		return float64(m.PageCount)
	}
}
