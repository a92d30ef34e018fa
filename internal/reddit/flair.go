package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"redditstage/internal/models"
)

// SelectFlair attaches a flair template to an existing submission.
func (s *session) SelectFlair(ctx context.Context, fullname, flairID string) error {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("link", fullname)
	form.Set("flair_template_id", flairID)

	_, err := s.postForm(ctx, "/r/"+url.PathEscape(s.account.Subreddit)+"/api/selectflair", form)
	if err != nil {
		return fmt.Errorf("failed to select flair: %w", err)
	}
	return nil
}

// LinkFlairs lists the link flair templates of the target subreddit.
func (s *session) LinkFlairs(ctx context.Context) ([]models.Flair, error) {
	body, err := s.do(ctx, http.MethodGet,
		"/r/"+url.PathEscape(s.account.Subreddit)+"/api/link_flair_v2.json", nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flairs: %w", err)
	}

	var flairs []models.Flair
	if err := json.Unmarshal(body, &flairs); err != nil {
		return nil, fmt.Errorf("failed to decode flairs: %w", err)
	}

	return flairs, nil
}
