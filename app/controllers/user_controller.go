package controllers

import (
	"net/http"
	"strconv"

	"microblog/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user profiles and feeds
type UserController struct {
	posts *services.PostService
}

// NewUserController creates a new UserController
func NewUserController(posts *services.PostService) *UserController {
	return &UserController{posts: posts}
}

// Show handles GET /api/users/{userId}
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := uc.posts.GetUser(userID)
	if err != nil {
		sendServiceError(w, err, "User not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Feed handles GET /api/users/{userId}/feed
func (uc *UserController) Feed(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	feed, err := uc.posts.GetUserFeed(userID)
	if err != nil {
		sendServiceError(w, err, "User not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"feed": feed})
}
