package routes

import (
	"net/http"

	"connectly/app/auth"
	"connectly/app/config"
	"connectly/app/controllers"
	"connectly/app/logging"
	"connectly/app/middleware"
	"connectly/app/repositories"
	"connectly/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers over the given
// Badger DB and returns the router.
func SetupRoutes(db *badger.DB, log *logging.Sink, settings *config.Settings) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)

	policy := auth.NewPolicy()
	userService := services.NewUserService(userRepo, postRepo, commentRepo, sessionRepo, policy, log)
	postService := services.NewPostService(postRepo, commentRepo, policy, log)
	commentService := services.NewCommentService(commentRepo, postRepo, policy, log)
	authService := services.NewAuthService(userRepo, sessionRepo, log)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	authController := controllers.NewAuthController(authService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log, settings))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Authenticate(authService))

	// Auth endpoints
	router.HandleFunc("/auth/login/", authController.Login).Methods("POST")
	router.HandleFunc("/auth/logout/", authController.Logout).Methods("POST")

	// User endpoints
	router.HandleFunc("/users/", userController.Index).Methods("GET")
	router.HandleFunc("/users/create/", userController.Create).Methods("POST")
	router.HandleFunc("/users/update/{id:[0-9]+}/", userController.Update).Methods("PUT")
	router.HandleFunc("/users/delete/{id:[0-9]+}/", userController.Delete).Methods("DELETE")

	// Post endpoints
	router.HandleFunc("/posts/", postController.Index).Methods("GET")
	router.HandleFunc("/posts/", postController.Create).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/", postController.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/", postController.Edit).Methods("PUT")
	router.HandleFunc("/posts/{id:[0-9]+}/", postController.Delete).Methods("DELETE")

	// Comment endpoints
	router.HandleFunc("/comments/", commentController.Index).Methods("GET")
	router.HandleFunc("/comments/", commentController.Create).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
