package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"microblog/app/middleware"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments embedded in posts
type CommentController struct {
	posts *services.PostService
}

// NewCommentController creates a new CommentController
func NewCommentController(posts *services.PostService) *CommentController {
	return &CommentController{posts: posts}
}

type commentPayload struct {
	Body string `json:"body"`
}

// Create handles POST /api/posts/{postId}/comments
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
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

	var payload commentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.posts.AddComment(postID, payload.Body, userID)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// Update handles PUT /api/posts/{postId}/comments/{commentId}. The comment's
// author is matched as part of the store lookup, so a caller editing someone
// else's comment sees the same 404 as a missing comment.
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	commentID, err := strconv.Atoi(vars["commentId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	var payload commentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := cc.posts.UpdateComment(postID, commentID, userID, payload.Body)
	if err != nil {
		sendServiceError(w, err, "Post or comment not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment updated successfully",
		"post":    post,
	})
}

// Delete handles DELETE /api/posts/{postId}/comments/{commentId}
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	commentID, err := strconv.Atoi(vars["commentId"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	post, err := cc.posts.DeleteComment(postID, commentID, userID)
	if err != nil {
		sendServiceError(w, err, "Post or comment not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment deleted successfully",
		"post":    post,
	})
}
