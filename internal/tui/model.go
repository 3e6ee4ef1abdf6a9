// Package tui implements the terminal client for a tablero server.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/luishram/tablero/internal/apiclient"
	"github.com/luishram/tablero/internal/config"
	"github.com/luishram/tablero/internal/models"
)

// viewState identifies which screen the client is showing
type viewState int

const (
	viewBoardList viewState = iota
	viewBoard
	viewCardDetail
	viewSearch
)

// Model represents the application state for the TUI
type Model struct {
	client *apiclient.Client
	styles Styles

	state   viewState
	loading bool
	err     error

	// Board list
	boards      []*models.BoardSummary
	boardCursor int

	// Open board
	board      *models.BoardDetail
	colCursor  int
	cardCursor int

	// Card detail (glamour-rendered markdown)
	detail         *models.Card
	detailRendered string

	// Search
	search  textinput.Model
	results []*models.Card

	spinner spinner.Model
	width   int
	height  int
}

// InitialModel creates the TUI model pointed at the given server
func InitialModel(client *apiclient.Client, cfg *config.ClientConfig) Model {
	search := textinput.New()
	search.Placeholder = "search cards..."
	search.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:  client,
		styles:  NewStyles(cfg.Theme),
		state:   viewBoardList,
		loading: true,
		search:  search,
		spinner: sp,
	}
}

// Init starts the first load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadBoardsCmd(m.client))
}

// selectedColumn returns the column under the cursor, or nil
func (m *Model) selectedColumn() *models.ColumnWithCards {
	if m.board == nil || m.colCursor >= len(m.board.Columns) {
		return nil
	}
	return m.board.Columns[m.colCursor]
}

// selectedCard returns the card under the cursor, or nil
func (m *Model) selectedCard() *models.Card {
	col := m.selectedColumn()
	if col == nil || m.cardCursor >= len(col.Cards) {
		return nil
	}
	return col.Cards[m.cardCursor]
}

// clampCursors keeps the cursors valid after a reload
func (m *Model) clampCursors() {
	if m.board == nil {
		m.colCursor, m.cardCursor = 0, 0
		return
	}
	if m.colCursor >= len(m.board.Columns) {
		m.colCursor = max(0, len(m.board.Columns)-1)
	}
	if col := m.selectedColumn(); col != nil && m.cardCursor >= len(col.Cards) {
		m.cardCursor = max(0, len(col.Cards)-1)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
