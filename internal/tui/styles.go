package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/luishram/tablero/internal/config"
	"github.com/luishram/tablero/internal/models"
)

// Styles holds the lipgloss styles derived from the theme
type Styles struct {
	Title          lipgloss.Style
	Subtle         lipgloss.Style
	Column         lipgloss.Style
	ColumnHeader   lipgloss.Style
	Card           lipgloss.Style
	SelectedCard   lipgloss.Style
	SelectedColumn lipgloss.Style
	StatusBar      lipgloss.Style
	ErrorText      lipgloss.Style
}

// NewStyles builds the style set from a theme
func NewStyles(theme config.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.ColumnBorder)).
			Padding(0, 1),
		SelectedColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		ColumnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.CardBorder)).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

// cardColorDot maps the palette to terminal colors for the card marker
var cardColorDot = map[string]lipgloss.Color{
	models.ColorRed:    lipgloss.Color("196"),
	models.ColorOrange: lipgloss.Color("208"),
	models.ColorYellow: lipgloss.Color("220"),
	models.ColorGreen:  lipgloss.Color("76"),
	models.ColorBlue:   lipgloss.Color("33"),
	models.ColorPurple: lipgloss.Color("135"),
	models.ColorGray:   lipgloss.Color("245"),
}
