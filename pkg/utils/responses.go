package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// ResponseError writes the error body shape shared by every endpoint.
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, map[string]string{"error": message})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter) {
	ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
