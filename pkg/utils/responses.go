package utils

import (
	"encoding/json"
	"net/http"

	"lotr-api/pkg/apperr"
)

// Response is the uniform envelope for every endpoint.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ResponseJSON writes a JSON body with the given status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// returns 200 OK with a message instead of a payload
func ResponseMessage(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// ------------- Error responses -------------

// ResponseError converts any error into the error envelope. Unknown
// errors become a generic 500 without leaking internals.
func ResponseError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	ResponseJSON(w, appErr.Status, Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// ResponseValidation returns 400 with a field -> message details map.
func ResponseValidation(w http.ResponseWriter, message string, details map[string]string) {
	converted := make(map[string]any, len(details))
	for field, msg := range details {
		converted[field] = msg
	}
	if len(converted) == 0 {
		converted = nil
	}
	ResponseError(w, apperr.Validation(message, converted))
}
