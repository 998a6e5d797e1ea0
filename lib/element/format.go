package element

import "strings"

// Format normalizes text for display or save according to its element
// type. It is applied on commit, not on every keystroke.
func Format(t Type, text string) string {
	switch t {
	case Scene, Character, Transition:
		return strings.ToUpper(text)
	case Parenthetical:
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return text
		}
		if !strings.HasPrefix(trimmed, "(") {
			trimmed = "(" + trimmed
		}
		if !strings.HasSuffix(trimmed, ")") {
			trimmed = trimmed + ")"
		}
		return trimmed
	default:
		return text
	}
}
