package games

import (
	"errors"
	"net/http"
	"strconv"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"

	"github.com/go-chi/chi/v5"
)

func (m *GameRoutesManager) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := m.gameService.ListGames(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to list games", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.GameListResponse{
		Success: true,
		Games:   games,
	})
}

func (m *GameRoutesManager) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		lib.WriteJSON(w, http.StatusNotFound, structs.ErrorResponse{Error: "Game not found"})
		return
	}

	game, err := m.gameService.GetGameByID(r.Context(), id)
	if errors.Is(err, lib.ErrNotFound) {
		lib.WriteJSON(w, http.StatusNotFound, structs.ErrorResponse{Error: "Game not found"})
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to fetch game", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.GameResponse{
		Success: true,
		Game:    game,
	})
}

func (m *GameRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := m.gameService.ListCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to list categories", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.CategoryListResponse{
		Success:    true,
		Categories: categories,
	})
}
