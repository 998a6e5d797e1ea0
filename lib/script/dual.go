package script

import (
	"github.com/google/uuid"

	"github.com/slugline/slugline-go/lib/element"
	"github.com/slugline/slugline-go/lib/exception"
	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

// ToggleDual links the target line's dialogue block with the next
// character block as simultaneous speech, or dissolves the group the line
// already belongs to. An unknown line id is a no-op. When no partner
// block can be found the document is left untouched and
// InvalidDualTargetError is returned so callers can surface it.
func (d *Document) ToggleDual(lineId string) error {
	idx := d.indexOf(lineId)
	if idx < 0 {
		return nil
	}

	if dualId := d.lines[idx].Meta.DualId; dualId != nil {
		d.dissolveDual(*dualId)
		return nil
	}

	leftStart := d.blockStart(idx)
	if leftStart < 0 {
		return exception.NewInvalidDualTargetError(lineId)
	}
	leftEnd := d.blockEnd(leftStart)

	rightStart := -1
	for i := leftEnd + 1; i < len(d.lines); i++ {
		t := d.lines[i].Type
		if t == element.Character {
			rightStart = i
			break
		}
		if t == element.Scene || t == element.Action {
			break
		}
	}
	if rightStart < 0 {
		return exception.NewInvalidDualTargetError(lineId)
	}
	rightEnd := d.blockEnd(rightStart)

	dualId := uuid.NewString()
	for i := leftStart; i <= leftEnd; i++ {
		d.lines[i].Meta.DualId = &dualId
		d.lines[i].Meta.DualPosition = scriptModel.DualLeft
	}
	for i := rightStart; i <= rightEnd; i++ {
		d.lines[i].Meta.DualId = &dualId
		d.lines[i].Meta.DualPosition = scriptModel.DualRight
	}
	return nil
}

func (d *Document) dissolveDual(dualId string) {
	for _, line := range d.lines {
		if line.Meta.DualId != nil && *line.Meta.DualId == dualId {
			line.Meta.DualId = nil
			line.Meta.DualPosition = scriptModel.DualNone
		}
	}
}

// blockStart walks backward from idx to the character line that opens the
// enclosing dialogue block. Only dialogue and parenthetical lines may sit
// between the target and its cue; anything else means the target has no
// block, and -1 is returned.
func (d *Document) blockStart(idx int) int {
	for i := idx; i >= 0; i-- {
		switch d.lines[i].Type {
		case element.Character:
			return i
		case element.Dialogue, element.Parenthetical:
			continue
		default:
			return -1
		}
	}
	return -1
}

// blockEnd extends a block opened at start through the dialogue and
// parenthetical lines that follow it.
func (d *Document) blockEnd(start int) int {
	end := start
	for i := start + 1; i < len(d.lines); i++ {
		t := d.lines[i].Type
		if t != element.Dialogue && t != element.Parenthetical {
			break
		}
		end = i
	}
	return end
}
