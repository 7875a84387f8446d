package formatter

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/supervity/supervity/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// PlainOutput reports whether styling should be suppressed: either stdout is
// not a terminal, or NO_COLOR is set.
func PlainOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// BucketStyle returns the style for an urgency bucket.
func BucketStyle(bucket domain.UrgencyBucket) lipgloss.Style {
	switch bucket {
	case domain.BucketOverdue:
		return StyleRed
	case domain.BucketUrgent:
		return StyleYellow
	case domain.BucketUpcoming:
		return StyleBlue
	default:
		return StyleDim
	}
}

// BucketIndicator returns a colored bucket marker such as "● OVERDUE".
func BucketIndicator(bucket domain.UrgencyBucket, plain bool) string {
	label := "● " + string(bucket)
	switch bucket {
	case domain.BucketOverdue:
		label = "● OVERDUE"
	case domain.BucketUrgent:
		label = "● URGENT"
	case domain.BucketUpcoming:
		label = "● UPCOMING"
	case domain.BucketFuture:
		label = "● FUTURE"
	}
	if plain {
		return label
	}
	return BucketStyle(bucket).Render(label)
}
