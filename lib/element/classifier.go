package element

import (
	"regexp"
	"strings"
	"unicode"
)

// Result is a classification verdict. Confidence is the classifier's own
// certainty in [0,1]; callers decide what to do with a weak verdict.
type Result struct {
	Type       Type
	Confidence float64
}

var (
	sceneRegex    = regexp.MustCompile(`(?i)^(INT|EXT|INT/EXT)\.?\s+.+\s*[-–]\s*.+$`)
	montageRegex  = regexp.MustCompile(`(?i)^MONTAGE\s*[-–]\s*.+$`)
	intercutRegex = regexp.MustCompile(`(?i)^INTERCUT\s*[-–]\s*.+$`)
)

var transitionVocab = []string{
	"CUT TO:",
	"CUT TO BLACK.",
	"FADE IN:",
	"FADE OUT.",
	"FADE TO BLACK.",
	"DISSOLVE TO:",
	"SMASH CUT TO:",
	"MATCH CUT TO:",
	"JUMP CUT TO:",
	"TIME CUT:",
	"WIPE TO:",
}

var shotVocab = []string{
	"CLOSE ON",
	"CLOSE UP",
	"EXTREME CLOSE UP",
	"WIDE SHOT",
	"WIDE ON",
	"ANGLE ON",
	"AERIAL SHOT",
	"TRACKING SHOT",
	"ESTABLISHING SHOT",
	"POV",
	"INSERT",
}

const characterMaxLen = 30

// Classify infers the element type of free-form text given the previous
// line's type. Rules are tried in a fixed order, first match wins. The
// result is advisory; the confidence threshold that decides whether it is
// applied belongs to the document model, not here.
func Classify(text string, prev Type) Result {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Result{Type: General, Confidence: 1.0}
	}
	if sceneRegex.MatchString(trimmed) {
		return Result{Type: Scene, Confidence: 0.95}
	}
	if isTransition(trimmed) {
		return Result{Type: Transition, Confidence: 0.90}
	}
	if isParenthetical(trimmed) {
		return Result{Type: Parenthetical, Confidence: 0.85}
	}
	if isCharacter(trimmed, prev) {
		return Result{Type: Character, Confidence: 0.80}
	}
	if isShot(trimmed) {
		return Result{Type: Shot, Confidence: 0.75}
	}
	if montageRegex.MatchString(trimmed) {
		return Result{Type: Montage, Confidence: 0.90}
	}
	if intercutRegex.MatchString(trimmed) {
		return Result{Type: Intercut, Confidence: 0.90}
	}
	if prev == Character || prev == Parenthetical || prev == Dialogue {
		return Result{Type: Dialogue, Confidence: 0.70}
	}
	return Result{Type: Action, Confidence: 0.60}
}

func isTransition(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, phrase := range transitionVocab {
		if upper == phrase {
			return true
		}
	}
	return false
}

func isParenthetical(trimmed string) bool {
	return len(trimmed) <= characterMaxLen &&
		strings.HasPrefix(trimmed, "(") &&
		strings.HasSuffix(trimmed, ")")
}

// isCharacter accepts short all-caps cue lines. The previous-line guard
// keeps dialogue that happens to be shouted ("NO!") from starting a new cue
// right after a cue or speech.
func isCharacter(trimmed string, prev Type) bool {
	if len(trimmed) > characterMaxLen {
		return false
	}
	if prev == Character || prev == Dialogue {
		return false
	}
	if strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, ".") {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isShot(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, term := range shotVocab {
		if upper == term || strings.HasPrefix(upper, term+" ") {
			return true
		}
	}
	return false
}
