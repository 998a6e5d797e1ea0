package element

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name           string
		text           string
		prev           Type
		wantType       Type
		wantConfidence float64
	}{
		{"empty text", "", Action, General, 1.0},
		{"whitespace only", "   \t ", Action, General, 1.0},
		{"interior scene", "INT. OFFICE - DAY", Action, Scene, 0.95},
		{"exterior scene", "EXT. STREET - NIGHT", Dialogue, Scene, 0.95},
		{"combined scene", "INT/EXT CAR - CONTINUOUS", Action, Scene, 0.95},
		{"lowercase scene", "int. office - day", Action, Scene, 0.95},
		{"fade out", "FADE OUT.", Action, Transition, 0.90},
		{"cut to", "CUT TO:", Scene, Transition, 0.90},
		{"dissolve", "DISSOLVE TO:", Action, Transition, 0.90},
		{"parenthetical", "(beat)", Character, Parenthetical, 0.85},
		{"long parenthetical is not one", "(this parenthetical has gone on for far too long to qualify)", Character, Dialogue, 0.70},
		{"character cue", "JOHN", Action, Character, 0.80},
		{"character with number", "COP #2", Scene, Character, 0.80},
		{"no cue after cue", "MARY", Character, Dialogue, 0.70},
		{"no cue after dialogue", "NO!", Dialogue, Dialogue, 0.70},
		{"shot over thirty chars", "CLOSE ON THE DETECTIVE'S TREMBLING HANDS", Action, Shot, 0.75},
		{"montage", "MONTAGE - JOHN TRAINS FOR THE FIGHT", Action, Montage, 0.90},
		{"intercut", "INTERCUT - PHONE CONVERSATION", Action, Intercut, 0.90},
		{"dialogue after character", "I can't do this anymore.", Character, Dialogue, 0.70},
		{"dialogue after parenthetical", "But I will.", Parenthetical, Dialogue, 0.70},
		{"dialogue continuation", "And another thing.", Dialogue, Dialogue, 0.70},
		{"plain action", "John walks to the window and stares out.", Action, Action, 0.60},
		{"action after scene", "The room is empty.", Scene, Action, 0.60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.text, tc.prev)
			if got.Type != tc.wantType {
				t.Errorf("type: got %q, want %q", got.Type, tc.wantType)
			}
			if math.Abs(got.Confidence-tc.wantConfidence) > 1e-9 {
				t.Errorf("confidence: got %v, want %v", got.Confidence, tc.wantConfidence)
			}
		})
	}
}

func TestClassifyCharacterBeatsShot(t *testing.T) {
	// A short all-caps framing term is still a character cue by rule
	// order; only terms too long for a cue fall through to shot.
	got := Classify("CLOSE ON JOHN", Action)
	if got.Type != Character {
		t.Errorf("got %q, want %q", got.Type, Character)
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		t    Type
		text string
		want string
	}{
		{"scene uppercased", Scene, "int. office - day", "INT. OFFICE - DAY"},
		{"character uppercased", Character, "john", "JOHN"},
		{"transition uppercased", Transition, "cut to:", "CUT TO:"},
		{"parenthetical wrapped", Parenthetical, "beat", "(beat)"},
		{"parenthetical already wrapped", Parenthetical, "(beat)", "(beat)"},
		{"parenthetical half wrapped", Parenthetical, "(beat", "(beat)"},
		{"action untouched", Action, "John Walks.", "John Walks."},
		{"dialogue untouched", Dialogue, "Hello there.", "Hello there."},
		{"empty parenthetical untouched", Parenthetical, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.t, tc.text); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCycleWrapsAfterFullLap(t *testing.T) {
	for _, start := range CycleOrder {
		current := start
		for i := 0; i < len(CycleOrder); i++ {
			current = Cycle(current, false)
		}
		if current != start {
			t.Errorf("cycling %d times from %q ended at %q", len(CycleOrder), start, current)
		}
	}
}

func TestCycleReverse(t *testing.T) {
	if got := Cycle(Scene, true); got != Shot {
		t.Errorf("got %q, want %q", got, Shot)
	}
	if got := Cycle(Cycle(Action, false), true); got != Action {
		t.Errorf("forward then reverse from action ended at %q", got)
	}
}

func TestNextTypeAfter(t *testing.T) {
	testCases := []struct {
		name        string
		t           Type
		doubleEnter bool
		want        Type
	}{
		{"after character comes dialogue", Character, false, Dialogue},
		{"after parenthetical comes dialogue", Parenthetical, false, Dialogue},
		{"dialogue continues", Dialogue, false, Dialogue},
		{"double enter ends dialogue", Dialogue, true, Action},
		{"after transition comes scene", Transition, false, Scene},
		{"after scene comes action", Scene, false, Action},
		{"after action comes action", Action, false, Action},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextTypeAfter(tc.t, tc.doubleEnter); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
