package app

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/storage"
)

// App wires the process dependencies: database, object storage,
// repositories and services are constructed once here and injected
// downstream.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
