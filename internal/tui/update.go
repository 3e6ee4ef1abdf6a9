package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes messages to the handler for the current view
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.boards = msg.boards
		if m.boardCursor >= len(m.boards) {
			m.boardCursor = max(0, len(m.boards)-1)
		}
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.board = msg.board
		m.state = viewBoard
		m.clampCursors()
		return m, nil

	case cardDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.detail = msg.card
		m.detailRendered = msg.rendered
		m.state = viewCardDetail
		return m, nil

	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.results = msg.results
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m, loadBoardCmd(m.client, msg.boardID)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode owns the keyboard while active
	if m.state == viewSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.state == viewCardDetail {
			m.state = viewBoard
			return m, nil
		}
		return m, tea.Quit
	}

	switch m.state {
	case viewBoardList:
		return m.handleBoardListKey(msg)
	case viewBoard:
		return m.handleBoardKey(msg)
	case viewCardDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleBoardListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.boardCursor < len(m.boards)-1 {
			m.boardCursor++
		}
	case "k", "up":
		if m.boardCursor > 0 {
			m.boardCursor--
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, loadBoardsCmd(m.client))
	case "enter":
		if m.boardCursor < len(m.boards) {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, loadBoardCmd(m.client, m.boards[m.boardCursor].ID))
		}
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc":
		m.state = viewBoardList
		m.board = nil
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, loadBoardsCmd(m.client))

	case "h", "left":
		if m.colCursor > 0 {
			m.colCursor--
			m.clampCursors()
		}
	case "l", "right":
		if m.board != nil && m.colCursor < len(m.board.Columns)-1 {
			m.colCursor++
			m.clampCursors()
		}
	case "j", "down":
		if col := m.selectedColumn(); col != nil && m.cardCursor < len(col.Cards)-1 {
			m.cardCursor++
		}
	case "k", "up":
		if m.cardCursor > 0 {
			m.cardCursor--
		}

	case "J":
		// Move the selected card down one slot
		if card := m.selectedCard(); card != nil {
			col := m.selectedColumn()
			if m.cardCursor < len(col.Cards)-1 {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick,
					moveCardCmd(m.client, m.board.ID, card.ID, col.ID, m.cardCursor+1))
			}
		}
	case "K":
		// Move the selected card up one slot
		if card := m.selectedCard(); card != nil && m.cardCursor > 0 {
			col := m.selectedColumn()
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				moveCardCmd(m.client, m.board.ID, card.ID, col.ID, m.cardCursor-1))
		}
	case "H":
		// Move the selected card to the previous column
		if card := m.selectedCard(); card != nil && m.colCursor > 0 {
			target := m.board.Columns[m.colCursor-1]
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				moveCardCmd(m.client, m.board.ID, card.ID, target.ID, len(target.Cards)))
		}
	case "L":
		// Move the selected card to the next column
		if card := m.selectedCard(); card != nil && m.colCursor < len(m.board.Columns)-1 {
			target := m.board.Columns[m.colCursor+1]
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				moveCardCmd(m.client, m.board.ID, card.ID, target.ID, len(target.Cards)))
		}

	case "x":
		if card := m.selectedCard(); card != nil {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, archiveCardCmd(m.client, m.board.ID, card.ID))
		}

	case "/":
		m.state = viewSearch
		m.results = nil
		m.search.SetValue("")
		return m, m.search.Focus()

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, loadBoardCmd(m.client, m.board.ID))

	case "enter":
		if card := m.selectedCard(); card != nil {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, loadCardDetailCmd(m.client, card.ID, m.width))
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.state = viewBoard
		m.detail = nil
		m.detailRendered = ""
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = viewBoard
		m.search.Blur()
		m.results = nil
		return m, nil
	case "enter":
		if m.board != nil {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick,
				searchCmd(m.client, m.board.ID, m.search.Value()))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}
