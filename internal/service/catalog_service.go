package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"redditstage/internal/config"
	"redditstage/internal/models"
	"redditstage/internal/repository"
	"redditstage/internal/staging"
)

type CatalogService interface {
	ListPending(ctx context.Context, mediaType string) ([]models.CandidatePost, error)
}

type catalogService struct {
	userRepo repository.UserRepository
	areas    config.Areas
}

func NewCatalogService(userRepo repository.UserRepository, areas config.Areas) CatalogService {
	return &catalogService{userRepo: userRepo, areas: areas}
}

// ListPending reads the staging area and groups its files into one
// candidate post per owner, ordered alphabetically by handle. The
// listing is best-effort by design: malformed filenames, unknown
// handles and even a failed registry read degrade to a shorter (or
// empty) result, never an error. Only an unknown media type fails.
func (c *catalogService) ListPending(ctx context.Context, mediaType string) ([]models.CandidatePost, error) {
	dir, ok := stagingDir(c.areas, mediaType)
	if !ok {
		return nil, fmt.Errorf("%w: invalid post type %q", ErrInvalidRequest, mediaType)
	}

	if err := staging.EnsureDir(dir); err != nil {
		log.Printf("Warning: failed to create staging area %s: %v", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Warning: failed to read staging area %s: %v", dir, err)
		return []models.CandidatePost{}, nil
	}

	userMap, err := c.userRepo.UserMap(ctx)
	if err != nil {
		log.Printf("Warning: failed to load user registry: %v", err)
		return []models.CandidatePost{}, nil
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesClass(entry.Name(), mediaType) {
			filenames = append(filenames, entry.Name())
		}
	}
	// The lexicographic order is the pagination contract: grouping
	// below preserves first-seen order, which makes posts alphabetical
	// by handle.
	sort.Strings(filenames)

	posts := []models.CandidatePost{}
	indexByUser := map[string]int{}

	for _, filename := range filenames {
		username, ok := ParseOwnerToken(filename)
		if !ok {
			log.Printf(">> Skipping file due to missing timestamp marker: %s", filename)
			continue
		}

		name, known := userMap[username]
		if !known {
			log.Printf(">> Skipping file due to unknown user: %s", filename)
			continue
		}

		idx, seen := indexByUser[username]
		if !seen {
			posts = append(posts, models.CandidatePost{
				Username:     username,
				Name:         name,
				TitlePreview: `"` + name + `"`,
			})
			idx = len(posts) - 1
			indexByUser[username] = idx
		}

		posts[idx].Files = append(posts[idx].Files, filename)
		posts[idx].FileCount++
	}

	return posts, nil
}

// Paginate slices posts into the half-open page window and reports
// whether more pages follow. Out-of-range pages yield an empty slice,
// never an error; page and limit below 1 fall back to 1 and 10.
func Paginate(posts []models.CandidatePost, page, limit int) ([]models.CandidatePost, bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit

	if start >= len(posts) {
		return []models.CandidatePost{}, false
	}
	if end > len(posts) {
		end = len(posts)
	}

	return posts[start:end], len(posts) > end
}
