// internal/app/system/httpjson/httpjson.go

// Package httpjson shapes every API response. Success bodies carry the
// payload under "data" plus the refreshed-token message echoed from the auth
// manager; failure bodies carry a single "error" string. Status mapping:
// 401 for authorization failures (the auth cause verbatim), 400 for
// missing/invalid input and not-found entities, 500 for unexpected storage
// failures.
package httpjson

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type envelope struct {
	Data                  interface{} `json:"data"`
	RefreshedTokenMessage string      `json:"refreshedTokenMessage,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Data writes a success envelope. refreshed is the auth manager's
// refreshed-token message and is omitted when empty.
func Data(w http.ResponseWriter, status int, data interface{}, refreshed string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data, RefreshedTokenMessage: refreshed})
}

// Error writes a failure body with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// Internal logs an unexpected error and writes it out as a 500. The
// underlying message goes in the body, matching the error contract.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, err.Error())
}

// Decode reads the request body into dst. Unknown fields are tolerated;
// malformed JSON is not.
func Decode(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
