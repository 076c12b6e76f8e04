package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/cmd/app"
	"devconnect/internal/config"
	handlers "devconnect/internal/handler"
	"devconnect/internal/logger"
	"devconnect/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	slogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	auth := middleware.Auth(services.Auth)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// users
	api.HandleFunc("/users", handler.Register).Methods(http.MethodPost)
	api.Handle("/users/avatar", auth(http.HandlerFunc(handler.UploadAvatar))).Methods(http.MethodPost)

	// auth
	api.HandleFunc("/auth", handler.Login).Methods(http.MethodPost)
	api.Handle("/auth", auth(http.HandlerFunc(handler.GetCurrentUser))).Methods(http.MethodGet)

	// profiles
	api.Handle("/profile/me", auth(http.HandlerFunc(handler.GetMyProfile))).Methods(http.MethodGet)
	api.Handle("/profile", auth(http.HandlerFunc(handler.UpsertProfile))).Methods(http.MethodPost)
	api.HandleFunc("/profile", handler.GetProfiles).Methods(http.MethodGet)
	api.Handle("/profile", auth(http.HandlerFunc(handler.DeleteAccount))).Methods(http.MethodDelete)
	api.HandleFunc("/profile/user/{user_id}", handler.GetProfileByUserID).Methods(http.MethodGet)
	api.Handle("/profile/experience", auth(http.HandlerFunc(handler.AddExperience))).Methods(http.MethodPut)
	api.Handle("/profile/experience/{experience_id}", auth(http.HandlerFunc(handler.DeleteExperience))).Methods(http.MethodDelete)

	// posts
	api.Handle("/posts", auth(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	api.Handle("/posts", auth(http.HandlerFunc(handler.GetPosts))).Methods(http.MethodGet)
	api.Handle("/posts/likes/{id}", auth(http.HandlerFunc(handler.LikePost))).Methods(http.MethodPut)
	api.Handle("/posts/likes/{id}", auth(http.HandlerFunc(handler.UnlikePost))).Methods(http.MethodDelete)
	api.Handle("/posts/comment/{id}", auth(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	api.Handle("/posts/comment/{id}/{comment_id}", auth(http.HandlerFunc(handler.DeleteComment))).Methods(http.MethodDelete)
	api.Handle("/posts/{id}", auth(http.HandlerFunc(handler.GetPost))).Methods(http.MethodGet)
	api.Handle("/posts/{id}", auth(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.CORS,
		middleware.RequestLogging(slogger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	slogger.Info("server starting", "addr", addr, "database", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
