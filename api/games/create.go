package games

import (
	"errors"
	"net/http"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
)

func (m *GameRoutesManager) CreateGame(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.GameRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			lib.WriteJSON(w, http.StatusBadRequest, ve)
			return
		}
		lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "Invalid request body"})
		return
	}

	game, err := m.gameService.CreateGame(r.Context(), req)
	if err != nil {
		handling.HandleError(err, "Failed to create game", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusCreated, structs.GameResponse{
		Success: true,
		Game:    game,
		Message: "Game created successfully",
	})
}
