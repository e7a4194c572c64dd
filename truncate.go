package kibana

import "math"

const (
	// ellipsis is appended to every truncated label.
	ellipsis = "..."

	// ellipsisReserve is the number of characters deducted from the
	// fitting length to leave room for the ellipsis.
	ellipsisReserve = 4
)

// TruncateLabel shortens text so its estimated rendered width fits within
// a pixel budget. renderedWidth is the measured width of the full text;
// the per-character width is approximated uniformly from it rather than
// per glyph. Text that already fits is returned unchanged, which makes
// truncation idempotent.
//
// Trailing spaces, hyphens, and commas before the cut are trimmed so the
// ellipsis never follows dangling punctuation. For very small budgets the
// result can degenerate to just "..."; that is an accepted outcome, not
// an error.
func TruncateLabel(text string, renderedWidth, budget float64) string {
	runes := []rune(text)
	if len(runes) == 0 || renderedWidth <= budget {
		return text
	}

	pxPerChar := renderedWidth / float64(len(runes))
	end := int(math.Floor(budget/pxPerChar)) - ellipsisReserve
	if end > len(runes) {
		end = len(runes)
	}
	for end > 0 {
		switch runes[end-1] {
		case ' ', '-', ',':
			end--
		default:
			return string(runes[:end]) + ellipsis
		}
	}
	return ellipsis
}
