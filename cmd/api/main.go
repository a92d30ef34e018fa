package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"redditstage/cmd/app"
	"redditstage/internal/config"
	handlers "redditstage/internal/handler"
	"redditstage/internal/middleware"
	"redditstage/internal/staging"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	// Create the staging, published and discarded areas on startup.
	for _, dir := range []string{
		cfg.Areas.Images,
		cfg.Areas.Videos,
		cfg.Areas.UploadedImages,
		cfg.Areas.UploadedVideos,
		cfg.Areas.Deleted,
	} {
		if err := staging.EnsureDir(dir); err != nil {
			log.Printf("Warning: failed to create %s: %v", dir, err)
		}
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/images/{filename}", handler.ServeImage).Methods(http.MethodGet)
	router.HandleFunc("/videos/{filename}", handler.ServeVideo).Methods(http.MethodGet)

	router.HandleFunc("/api/accounts", handler.GetAccounts).Methods(http.MethodGet)
	router.HandleFunc("/api/flairs", handler.GetFlairs).Methods(http.MethodGet)

	router.HandleFunc("/api/posts/pending", handler.GetPendingPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/upload", handler.UploadPost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/upload_video", handler.UploadVideoPost).Methods(http.MethodPost)

	router.HandleFunc("/api/files/delete", handler.DeleteFile).Methods(http.MethodPost)

	router.HandleFunc("/api/users", handler.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/users/add", handler.AddUser).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
