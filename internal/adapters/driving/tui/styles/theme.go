// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Theme is the palette. Each colour carries a light and a dark variant and
// lipgloss picks one from the terminal background.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return    lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   adaptive("#6D28D9", "#A78BFA"),
		Secondary: adaptive("#0E7490", "#22D3EE"),
		Accent:    adaptive("#C2410C", "#FDBA74"),
		Text:      adaptive("#1F2937", "#E5E7EB"),
		Subtle:    adaptive("#6B7280", "#9CA3AF"),
		Surface:   adaptive("#F3F4F6", "#1F2937"),
		Border:    adaptive("#D1D5DB", "#4B5563"),
		Success:   adaptive("#15803D", "#86EFAC"),
		Warning:   adaptive("#A16207", "#FDE68A"),
		Error:     adaptive("#B91C1C", "#FCA5A5"),
	}
}

// Styles are the rendered styles shared by every view.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	// One style per node kind. Formula and definition nodes share AccentNode.
	MainNode     lipgloss.Style
	TopicNode    lipgloss.Style
	SubtopicNode lipgloss.Style
	DetailNode   lipgloss.Style
	AccentNode   lipgloss.Style

	// Relation renders edge labels.
	Relation lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	boxed := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Subtle),
		Selected: fg(theme.Primary).Bold(true).Background(theme.Surface).Padding(0, 1),
		Help:     fg(theme.Subtle).Italic(true),

		Error:   fg(theme.Error).Bold(true),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: boxed.Padding(0, 1),
		StatusBar:  fg(theme.Subtle).Background(theme.Surface).Padding(0, 1),
		Border:     boxed,

		MainNode:     fg(theme.Primary).Bold(true).Underline(true),
		TopicNode:    fg(theme.Secondary).Bold(true),
		SubtopicNode: fg(theme.Text),
		DetailNode:   fg(theme.Subtle),
		AccentNode:   fg(theme.Accent).Italic(true),

		Relation: fg(theme.Subtle).Italic(true),
	}
}

// DefaultStyles is NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Node returns the style for a node kind.
func (s *Styles) Node(kind domain.NodeKind) lipgloss.Style {
	switch kind {
	case domain.NodeKindMain:
		return s.MainNode
	case domain.NodeKindTopic:
		return s.TopicNode
	case domain.NodeKindDetail:
		return s.DetailNode
	case domain.NodeKindFormula, domain.NodeKindDefinition:
		return s.AccentNode
	default:
		return s.SubtopicNode
	}
}
