package lib

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as a JSON response. Encoding failures after the header
// has been sent cannot be reported to the client; they are ignored here and
// surface in the request log as a short write.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
