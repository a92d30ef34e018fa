package service

import (
	"context"
	"fmt"
	"log"

	"redditstage/internal/config"
	"redditstage/internal/staging"
)

type FilesService interface {
	Discard(ctx context.Context, filename, mediaType string) error
}

type filesService struct {
	mover *staging.Mover
	areas config.Areas
}

func NewFilesService(mover *staging.Mover, areas config.Areas) FilesService {
	return &filesService{mover: mover, areas: areas}
}

// Discard moves a pending file into the discarded area. Discarding a
// file that is already gone returns ErrNotFound, so retries are
// harmless.
func (f *filesService) Discard(ctx context.Context, filename, mediaType string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidRequest)
	}

	normalized, ok := normalizeMediaType(mediaType)
	if !ok {
		return fmt.Errorf("%w: invalid file type %q", ErrInvalidRequest, mediaType)
	}
	dir, _ := stagingDir(f.areas, normalized)

	return f.mover.WithLock(dir, func() error {
		moved, err := f.mover.Move(filename, dir, f.areas.Deleted)
		if err != nil {
			return fmt.Errorf("failed to discard file: %w", err)
		}
		if !moved {
			return fmt.Errorf("%w: %s", ErrNotFound, filename)
		}

		log.Printf(">> Moved %s to %s", filename, f.areas.Deleted)
		return nil
	})
}
