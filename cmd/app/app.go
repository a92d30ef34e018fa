package app

import (
	"log"

	"redditstage/internal/config"
	"redditstage/internal/database"
	"redditstage/internal/reddit"
	"redditstage/internal/repository"
	"redditstage/internal/service"
	"redditstage/internal/storage"
	"redditstage/internal/transcode"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// optional published-files archive
	var archiver storage.Archiver
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		archiver = minioClient
	}

	redditClient := reddit.NewClient(cfg.RedditTimeout)

	transcoder := transcode.NewFFmpeg(
		transcode.WithBinary(cfg.FFmpegPath),
		transcode.WithTimeout(cfg.TranscodeTimeout),
	)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, redditClient, transcoder, archiver)

	return db, repo, services
}
