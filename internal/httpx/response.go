// Package httpx holds the JSON envelope shared by every endpoint:
//
//	{"success": bool, "message": string, ...payload, "error": string}
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Payload is merged into the top level of the response envelope.
type Payload map[string]any

// ErrInvalidBody reports a request body that could not be decoded.
var ErrInvalidBody = errors.New("invalid request body")

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a successful envelope.
func OK(w http.ResponseWriter, status int, message string, payload Payload) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	body["message"] = message
	WriteJSON(w, status, body)
}

// Fail writes a failed envelope. err may be nil when the message alone
// describes the failure.
func Fail(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]any{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	WriteJSON(w, status, body)
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return ErrInvalidBody
	}
	return nil
}
