package element

// Type is the screenplay-formatting category of a single line.
type Type string

const (
	Scene         Type = "scene"
	Action        Type = "action"
	Character     Type = "character"
	Dialogue      Type = "dialogue"
	Parenthetical Type = "parenthetical"
	Transition    Type = "transition"
	Shot          Type = "shot"
	Montage       Type = "montage"
	Intercut      Type = "intercut"
	General       Type = "general"
)

// CycleOrder is the vocabulary Tab-cycling moves through, in order.
var CycleOrder = []Type{Scene, Action, Character, Dialogue, Parenthetical, Transition, Shot}

func IsValid(t Type) bool {
	switch t {
	case Scene, Action, Character, Dialogue, Parenthetical, Transition, Shot, Montage, Intercut, General:
		return true
	}
	return false
}

// Cycle returns the type that follows t in CycleOrder, wrapping around.
// Types outside the cycle vocabulary start the cycle at its first entry.
func Cycle(t Type, reverse bool) Type {
	for i, candidate := range CycleOrder {
		if candidate != t {
			continue
		}
		if reverse {
			return CycleOrder[(i+len(CycleOrder)-1)%len(CycleOrder)]
		}
		return CycleOrder[(i+1)%len(CycleOrder)]
	}
	return CycleOrder[0]
}

// NextTypeAfter decides the type of a freshly committed line. A double
// Enter on an empty dialogue line drops the writer back to action.
func NextTypeAfter(t Type, doubleEnter bool) Type {
	switch t {
	case Character:
		return Dialogue
	case Parenthetical:
		return Dialogue
	case Dialogue:
		if doubleEnter {
			return Action
		}
		return Dialogue
	case Transition:
		return Scene
	default:
		return Action
	}
}
