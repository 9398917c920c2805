package app

import (
	"log"

	"aigallery/internal/config"
	"aigallery/internal/database"
	"aigallery/internal/repository"
	"aigallery/internal/service"
	"aigallery/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, services, minioClient
}
