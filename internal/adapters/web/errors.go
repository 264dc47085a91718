package web

import (
	"encoding/json"
	"net/http"
)

// apiError is the envelope every failing endpoint returns. The request id
// lets a client quote an error that the logs can be matched against.
type apiError struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError emits the error envelope with the given status.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiError{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	})
}

// writeJSON emits v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. A malformed body answers 400
// with the decode failure folded into the envelope; the caller just returns.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
