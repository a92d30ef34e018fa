package service

import (
	"redditstage/internal/config"
	"redditstage/internal/reddit"
	"redditstage/internal/repository"
	"redditstage/internal/staging"
	"redditstage/internal/storage"
	"redditstage/internal/transcode"
)

// Media type values as they appear on the wire.
const (
	TypeImages = "images"
	TypeVideos = "videos"
)

type Service struct {
	Catalog CatalogService
	Files   FilesService
	Publish PublishService
}

func NewService(repo *repository.Repository, cfg *config.Config, sessions reddit.SessionFactory,
	transcoder transcode.Transcoder, archiver storage.Archiver) *Service {

	// One mover shared by discard and publish: its per-area locks are
	// the serialization point for all staging mutations.
	mover := staging.NewMover()

	return &Service{
		Catalog: NewCatalogService(repo.User, cfg.Areas),
		Files:   NewFilesService(mover, cfg.Areas),
		Publish: NewPublishService(repo.User, repo.Account, sessions, transcoder, mover, archiver, cfg.Areas),
	}
}

// normalizeMediaType accepts both the plural wire values and the
// singular ones the delete endpoint historically used.
func normalizeMediaType(mediaType string) (string, bool) {
	switch mediaType {
	case TypeImages, "image":
		return TypeImages, true
	case TypeVideos, "video":
		return TypeVideos, true
	default:
		return "", false
	}
}

func stagingDir(areas config.Areas, mediaType string) (string, bool) {
	switch mediaType {
	case TypeImages:
		return areas.Images, true
	case TypeVideos:
		return areas.Videos, true
	default:
		return "", false
	}
}

func publishedDir(areas config.Areas, mediaType string) (string, bool) {
	switch mediaType {
	case TypeImages:
		return areas.UploadedImages, true
	case TypeVideos:
		return areas.UploadedVideos, true
	default:
		return "", false
	}
}
