package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luishram/tablero/internal/models"
)

// columnWidth is the render width of one board column
const columnWidth = 28

// View renders the current screen
func (m Model) View() string {
	var body string
	switch m.state {
	case viewBoardList:
		body = m.viewBoardList()
	case viewBoard:
		body = m.viewBoard()
	case viewCardDetail:
		body = m.viewCardDetail()
	case viewSearch:
		body = m.viewSearch()
	}

	return body + "\n" + m.viewStatusBar()
}

func (m Model) viewBoardList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Boards"))
	b.WriteString("\n\n")

	if len(m.boards) == 0 && !m.loading {
		b.WriteString(m.styles.Subtle.Render("No boards yet. Create one through the API."))
		b.WriteString("\n")
		return b.String()
	}

	for i, board := range m.boards {
		cursor := "  "
		line := fmt.Sprintf("%s (%d columns, %d cards)", board.Name, board.ColumnCount, board.CardCount)
		if i == m.boardCursor {
			cursor = "> "
			line = m.styles.ColumnHeader.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) viewBoard() string {
	if m.board == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.board.Name))
	b.WriteString("\n")

	rendered := make([]string, 0, len(m.board.Columns))
	for i, col := range m.board.Columns {
		rendered = append(rendered, m.renderColumn(col, i == m.colCursor))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	return b.String()
}

func (m Model) renderColumn(col *models.ColumnWithCards, selected bool) string {
	var b strings.Builder
	b.WriteString(m.styles.ColumnHeader.Render(
		fmt.Sprintf("%s (%d)", col.Name, len(col.Cards))))
	b.WriteString("\n")

	if len(col.Cards) == 0 {
		b.WriteString(m.styles.Subtle.Render("empty"))
	}
	for i, card := range col.Cards {
		style := m.styles.Card
		if selected && i == m.cardCursor {
			style = m.styles.SelectedCard
		}
		b.WriteString(style.Width(columnWidth - 4).Render(m.renderCardLine(card)))
		b.WriteString("\n")
	}

	colStyle := m.styles.Column
	if selected {
		colStyle = m.styles.SelectedColumn
	}
	return colStyle.Width(columnWidth).Render(b.String())
}

func (m Model) renderCardLine(card *models.Card) string {
	title := card.Title
	if card.Color != nil {
		if dot, ok := cardColorDot[*card.Color]; ok {
			marker := lipgloss.NewStyle().Foreground(dot).Render("●")
			title = marker + " " + title
		}
	}
	return title
}

func (m Model) viewCardDetail() string {
	if m.detail == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.detail.Title))
	b.WriteString("\n\n")

	if m.detail.Color != nil {
		b.WriteString(m.styles.Subtle.Render("color: " + *m.detail.Color))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Subtle.Render(
		"created " + m.detail.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")

	if m.detailRendered != "" {
		b.WriteString(m.detailRendered)
	} else if m.detail.Description != nil {
		b.WriteString(*m.detail.Description)
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Subtle.Render("No description."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.results != nil && len(m.results) == 0 {
		b.WriteString(m.styles.Subtle.Render("No matches."))
		b.WriteString("\n")
	}
	for _, card := range m.results {
		b.WriteString("  " + m.renderCardLine(card) + "\n")
	}
	return b.String()
}

func (m Model) viewStatusBar() string {
	if m.err != nil {
		return m.styles.ErrorText.Render("error: " + m.err.Error())
	}
	if m.loading {
		return m.spinner.View() + m.styles.StatusBar.Render(" loading...")
	}

	switch m.state {
	case viewBoardList:
		return m.styles.StatusBar.Render("j/k: navigate • enter: open • r: reload • q: quit")
	case viewBoard:
		return m.styles.StatusBar.Render("hjkl: navigate • HJKL: move card • enter: detail • /: search • x: archive • b: boards • q: quit")
	case viewCardDetail:
		return m.styles.StatusBar.Render("esc: back")
	case viewSearch:
		return m.styles.StatusBar.Render("enter: search • esc: back to board")
	}
	return ""
}
