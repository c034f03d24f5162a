package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 1-10 readiness score.
// Example: "███████░░░ 7/10"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(float64(score) / 10.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/10", score)))
}

// ConfidenceBadge returns a styled label for a framework confidence tier.
func ConfidenceBadge(confidence string) string {
	switch confidence {
	case "very_high", "high":
		return StyleSuccess.Render(confidence)
	case "medium":
		return StyleWarning.Render(confidence)
	default:
		return StyleMuted.Render(confidence)
	}
}

// sectionWidth is the horizontal rule length, adjustable via SetWidth.
var sectionWidth = 66

// SetWidth adjusts rendering to the configured terminal width.
func SetWidth(w int) {
	if w >= 40 {
		sectionWidth = w - 14
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", sectionWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
