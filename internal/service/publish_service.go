package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"redditstage/internal/config"
	"redditstage/internal/models"
	"redditstage/internal/reddit"
	"redditstage/internal/repository"
	"redditstage/internal/staging"
	"redditstage/internal/storage"
	"redditstage/internal/transcode"
)

type PublishImagesRequest struct {
	AccountUsername string
	Username        string
	Caption         string
	FlairID         string
	Files           []string
}

type PublishVideoRequest struct {
	AccountUsername string
	Username        string
	Caption         string
	FlairID         string
	File            string
}

type PublishService interface {
	PublishImages(ctx context.Context, req PublishImagesRequest) (*models.PublishResult, error)
	PublishVideo(ctx context.Context, req PublishVideoRequest) (*models.PublishResult, error)
	ListFlairs(ctx context.Context, accountUsername string) ([]models.Flair, error)
}

type publishService struct {
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	sessions    reddit.SessionFactory
	transcoder  transcode.Transcoder
	mover       *staging.Mover
	archiver    storage.Archiver
	areas       config.Areas
}

func NewPublishService(userRepo repository.UserRepository, accountRepo repository.AccountRepository,
	sessions reddit.SessionFactory, transcoder transcode.Transcoder, mover *staging.Mover,
	archiver storage.Archiver, areas config.Areas) PublishService {

	return &publishService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		sessions:    sessions,
		transcoder:  transcoder,
		mover:       mover,
		archiver:    archiver,
		areas:       areas,
	}
}

var markupPattern = regexp.MustCompile(`<[^<]+?>`)

// buildTitle is the owner's quoted display name, optionally extended
// with the caption after markup tags are stripped.
func (p *publishService) buildTitle(ctx context.Context, username, caption string) string {
	name := username
	if userMap, err := p.userRepo.UserMap(ctx); err == nil {
		if display, ok := userMap[username]; ok {
			name = display
		}
	}

	title := `"` + name + `"`
	if caption != "" {
		title += " - " + markupPattern.ReplaceAllString(caption, "")
	}
	return title
}

func (p *publishService) resolveSession(ctx context.Context, accountUsername string) (reddit.Session, error) {
	account, err := p.accountRepo.GetByUsername(ctx, accountUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountUnavailable, err)
	}
	return p.sessions.NewSession(account), nil
}

// PublishImages submits one owner's staged images as a single post or
// a gallery, then moves them to the published area. Local state is
// all-or-nothing with respect to platform failure: nothing is moved
// unless the submission (flair included) succeeded first.
func (p *publishService) PublishImages(ctx context.Context, req PublishImagesRequest) (*models.PublishResult, error) {
	if req.AccountUsername == "" || req.Username == "" || req.FlairID == "" || len(req.Files) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}

	session, err := p.resolveSession(ctx, req.AccountUsername)
	if err != nil {
		return nil, err
	}

	title := p.buildTitle(ctx, req.Username, req.Caption)

	var result *models.PublishResult
	err = p.mover.WithLock(p.areas.Images, func() error {
		// Re-validate against the live directory: entries that vanished
		// since the listing are dropped, not failed.
		validFiles := []string{}
		for _, filename := range req.Files {
			if staging.Exists(p.areas.Images, filename) {
				validFiles = append(validFiles, filename)
			} else {
				log.Printf("!! Skipping non-existent file: %s", filename)
			}
		}
		if len(validFiles) == 0 {
			return fmt.Errorf("%w", ErrNoValidFiles)
		}

		var submission *reddit.Submission
		var submitErr error
		if len(validFiles) == 1 {
			log.Printf(">> Uploading single image for %s with title: %s", req.Username, title)
			submission, submitErr = session.SubmitImage(ctx, title, filepath.Join(p.areas.Images, validFiles[0]))
		} else {
			log.Printf(">> Uploading gallery of %d images for %s with title: %s", len(validFiles), req.Username, title)
			paths := make([]string, len(validFiles))
			for i, filename := range validFiles {
				paths[i] = filepath.Join(p.areas.Images, filename)
			}
			submission, submitErr = session.SubmitGallery(ctx, title, paths)
		}
		if submitErr != nil {
			return fmt.Errorf("%w: %v", ErrPlatformRejected, submitErr)
		}

		if err := session.SelectFlair(ctx, submission.Fullname, req.FlairID); err != nil {
			return fmt.Errorf("%w: %v", ErrPlatformRejected, err)
		}
		log.Printf(">> Successfully posted for %s", req.Username)

		result = &models.PublishResult{
			Permalink:  submission.Permalink,
			MovedFiles: p.moveToPublished(ctx, TypeImages, validFiles),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// PublishVideo normalizes the single staged video with ffmpeg, submits
// the derivative, then moves the original. The derivative is removed
// on every exit path.
func (p *publishService) PublishVideo(ctx context.Context, req PublishVideoRequest) (*models.PublishResult, error) {
	if req.AccountUsername == "" || req.Username == "" || req.FlairID == "" || req.File == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}

	session, err := p.resolveSession(ctx, req.AccountUsername)
	if err != nil {
		return nil, err
	}

	title := p.buildTitle(ctx, req.Username, req.Caption)

	var result *models.PublishResult
	err = p.mover.WithLock(p.areas.Videos, func() error {
		if !staging.Exists(p.areas.Videos, req.File) {
			return fmt.Errorf("%w: video not found on server", ErrNoValidFiles)
		}

		videoPath := filepath.Join(p.areas.Videos, req.File)

		defer func() {
			tempPath := transcode.TempPath(videoPath)
			if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: failed to remove temp video %s: %v", tempPath, err)
			}
		}()

		tempPath, err := p.transcoder.Normalize(ctx, videoPath)
		if err != nil {
			return err
		}

		log.Printf(">> Uploading processed video for %s with title: %s", req.Username, title)
		submission, err := session.SubmitVideo(ctx, title, tempPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPlatformRejected, err)
		}

		if err := session.SelectFlair(ctx, submission.Fullname, req.FlairID); err != nil {
			return fmt.Errorf("%w: %v", ErrPlatformRejected, err)
		}
		log.Printf(">> Successfully posted video for %s", req.Username)

		result = &models.PublishResult{
			Permalink:  submission.Permalink,
			MovedFiles: p.moveToPublished(ctx, TypeVideos, []string{req.File}),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// moveToPublished claims the submitted files. The platform call has
// already succeeded here, so a failed move is logged and the file left
// pending rather than failing the publish: it will reappear in a
// future listing instead of being silently lost.
func (p *publishService) moveToPublished(ctx context.Context, mediaType string, files []string) []string {
	from, _ := stagingDir(p.areas, mediaType)
	to, _ := publishedDir(p.areas, mediaType)

	moved := []string{}
	for _, filename := range files {
		ok, err := p.mover.Move(filename, from, to)
		if err != nil || !ok {
			log.Printf("!! Failed to move %s to %s after successful submission: moved=%v err=%v",
				filename, to, ok, err)
			continue
		}
		moved = append(moved, filename)

		if p.archiver != nil {
			if err := p.archiver.ArchivePublished(ctx, mediaType, filename, filepath.Join(to, filename)); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
	}

	if len(moved) > 0 {
		log.Printf(">> Moved %d files to %s", len(moved), to)
	}
	return moved
}

// ListFlairs returns the link flair templates of the subreddit the
// account posts to.
func (p *publishService) ListFlairs(ctx context.Context, accountUsername string) ([]models.Flair, error) {
	if accountUsername == "" {
		return nil, fmt.Errorf("%w: account username is required", ErrInvalidRequest)
	}

	session, err := p.resolveSession(ctx, accountUsername)
	if err != nil {
		return nil, err
	}

	flairs, err := session.LinkFlairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatformRejected, err)
	}
	return flairs, nil
}
