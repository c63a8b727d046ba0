package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"microblog/app/repositories"
	"microblog/app/services"

	"github.com/gorilla/mux"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user's ID stored in the request context
// by RequireAuth.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// Auth verifies bearer tokens and injects the caller's identity into the
// request context.
type Auth struct {
	tokens *services.TokenService
}

// NewAuth creates a new Auth middleware
func NewAuth(tokens *services.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth extracts a bearer token from the Authorization header and
// verifies it. Requests without a token are rejected with 401 Unauthorized;
// requests with a bad token with 401 Invalid token.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := a.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Owner checks that the authenticated caller is the author of the post named
// in the route. Runs after RequireAuth on routes that mutate a whole post.
type Owner struct {
	posts repositories.PostRepository
}

// NewOwner creates a new Owner middleware
func NewOwner(posts repositories.PostRepository) *Owner {
	return &Owner{posts: posts}
}

// RequireOwner fetches the post from the route's postId and rejects the
// request with 404 when the post is absent or 403 when the caller is not its
// author.
func (o *Owner) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		postID, err := strconv.Atoi(mux.Vars(r)["postId"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		post, err := o.posts.GetByID(postID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Post not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "An error occurred")
			return
		}

		if post.AuthorID != userID {
			writeError(w, http.StatusForbidden, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
