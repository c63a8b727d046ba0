package routes

import (
	"net/http"

	"microblog/app/controllers"
	"microblog/app/middleware"
	"microblog/app/repositories"
	"microblog/app/services"
	"microblog/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services, controllers, and middleware into the
// application router. All cross-cutting middleware is installed here, before
// the server ever starts accepting connections.
func Setup(db *badger.DB, cfg config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	postService := services.NewPostService(postRepo, userRepo)

	authController := controllers.NewAuthController(authService, tokenService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(postService)
	userController := controllers.NewUserController(postService)

	auth := middleware.NewAuth(tokenService)
	owner := middleware.NewOwner(postRepo)

	api := router.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/register", authController.Register).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")
	api.HandleFunc("/users/{userId:[0-9]+}", userController.Show).Methods("GET")
	api.HandleFunc("/users/{userId:[0-9]+}/feed", userController.Feed).Methods("GET")

	// Authenticated endpoints
	api.Handle("/posts", auth.RequireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	api.Handle("/posts/{postId:[0-9]+}/comments", auth.RequireAuth(http.HandlerFunc(commentController.Create))).Methods("POST")
	api.Handle("/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Update))).Methods("PUT")
	api.Handle("/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Delete))).Methods("DELETE")
	api.Handle("/posts/{postId:[0-9]+}/like", auth.RequireAuth(http.HandlerFunc(postController.Like))).Methods("POST")
	api.Handle("/posts/{postId:[0-9]+}/like", auth.RequireAuth(http.HandlerFunc(postController.Unlike))).Methods("DELETE")

	// Author-only endpoints
	api.Handle("/posts/{postId:[0-9]+}", auth.RequireAuth(owner.RequireOwner(http.HandlerFunc(postController.Update)))).Methods("PUT")
	api.Handle("/posts/{postId:[0-9]+}", auth.RequireAuth(owner.RequireOwner(http.HandlerFunc(postController.Delete)))).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
