package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"microblog/app/repositories"
	"microblog/app/services"
)

// sendJSON writes data as a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes a JSON error body with the given status
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError translates service and repository errors into the API's
// JSON error responses. notFoundMsg names the resource for the 404 case;
// internals are never leaked into the body.
func sendServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verr.Fields})
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repositories.ErrConflict):
		sendError(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		sendError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		sendError(w, http.StatusInternalServerError, "An error occurred")
	}
}
