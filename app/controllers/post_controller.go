package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"microblog/app/middleware"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts and likes
type PostController struct {
	posts *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

type postPayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Create handles POST /api/posts
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.posts.CreatePost(payload.Title, payload.Content, payload.Tags, userID)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully",
		"post":    post,
	})
}

// Update handles PUT /api/posts/{postId}. Ownership has already been checked
// by the Owner middleware.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.posts.UpdatePost(postID, payload.Title, payload.Content)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// Delete handles DELETE /api/posts/{postId}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.posts.DeletePost(postID)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post deleted successfully",
		"post":    post,
	})
}

// Like handles POST /api/posts/{postId}/like
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.posts.LikePost(postID, userID)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post liked successfully",
		"post":    post,
	})
}

// Unlike handles DELETE /api/posts/{postId}/like
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.posts.UnlikePost(postID, userID)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post unliked successfully",
		"post":    post,
	})
}
