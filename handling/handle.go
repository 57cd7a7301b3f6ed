package handling

import (
	"net/http"

	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleError logs a storage-layer failure and answers with the underlying
// message, matching the contract the frontend already depends on.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg))

	lib.WriteJSON(w, http.StatusInternalServerError, structs.ErrorResponse{Error: err.Error()})
}
