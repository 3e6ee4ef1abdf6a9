package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/luishram/tablero/internal/apiclient"
	"github.com/luishram/tablero/internal/models"
)

// requestTimeout bounds every API call made by the client
const requestTimeout = 10 * time.Second

// Messages produced by the API commands
type (
	boardsLoadedMsg struct {
		boards []*models.BoardSummary
		err    error
	}

	boardLoadedMsg struct {
		board *models.BoardDetail
		err   error
	}

	cardDetailMsg struct {
		card     *models.Card
		rendered string
		err      error
	}

	searchDoneMsg struct {
		results []*models.Card
		err     error
	}

	// actionDoneMsg follows a mutation; the board is reloaded on success
	actionDoneMsg struct {
		boardID int
		err     error
	}
)

func loadBoardsCmd(client *apiclient.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		boards, err := client.ListBoards(ctx)
		return boardsLoadedMsg{boards: boards, err: err}
	}
}

func loadBoardCmd(client *apiclient.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		board, err := client.GetBoard(ctx, id)
		return boardLoadedMsg{board: board, err: err}
	}
}

func loadCardDetailCmd(client *apiclient.Client, id, width int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		card, err := client.GetCard(ctx, id)
		if err != nil {
			return cardDetailMsg{err: err}
		}

		rendered := ""
		if card.Description != nil {
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(max(40, width-8)),
			)
			if err == nil {
				if out, renderErr := r.Render(*card.Description); renderErr == nil {
					rendered = out
				}
			}
		}
		return cardDetailMsg{card: card, rendered: rendered}
	}
}

func searchCmd(client *apiclient.Client, boardID int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		results, err := client.SearchCards(ctx, boardID, query, "")
		return searchDoneMsg{results: results, err: err}
	}
}

func moveCardCmd(client *apiclient.Client, boardID, cardID, columnID, index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.MoveCard(ctx, cardID, columnID, index)
		return actionDoneMsg{boardID: boardID, err: err}
	}
}

func archiveCardCmd(client *apiclient.Client, boardID, cardID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.ArchiveCard(ctx, cardID)
		return actionDoneMsg{boardID: boardID, err: err}
	}
}
