package controllers

import (
	"encoding/json"
	"net/http"

	"microblog/app/services"
)

// AuthController handles registration and login
type AuthController struct {
	auth   *services.AuthService
	tokens *services.TokenService
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, tokens *services.TokenService) *AuthController {
	return &AuthController{auth: auth, tokens: tokens}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if _, err := ac.auth.Register(payload.Username, payload.Password); err != nil {
		sendServiceError(w, err, "User not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles POST /api/login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	userID, err := ac.auth.VerifyCredentials(payload.Username, payload.Password)
	if err != nil {
		sendServiceError(w, err, "User not found")
		return
	}

	token, err := ac.tokens.Issue(userID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "An error occurred")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
