// Package reddit implements the two platform calls the pipeline needs:
// submitting media (single image, gallery or video) to a subreddit and
// attaching a link flair to the created submission.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"redditstage/internal/models"
)

const (
	defaultAuthURL = "https://www.reddit.com"
	defaultAPIURL  = "https://oauth.reddit.com"
)

// Submission identifies a created post.
type Submission struct {
	Fullname  string
	Permalink string
}

// Session is an authenticated handle for one account.
type Session interface {
	SubmitImage(ctx context.Context, title, imagePath string) (*Submission, error)
	SubmitGallery(ctx context.Context, title string, imagePaths []string) (*Submission, error)
	SubmitVideo(ctx context.Context, title, videoPath string) (*Submission, error)
	SelectFlair(ctx context.Context, fullname, flairID string) error
	LinkFlairs(ctx context.Context) ([]models.Flair, error)
}

// SessionFactory builds sessions from immutable account snapshots. The
// factory is cheap and stateless; connection and timeout configuration
// live in the shared http.Client.
type SessionFactory interface {
	NewSession(account *models.Account) Session
}

type Option func(*Client)

// WithBaseURLs overrides the reddit endpoints, used by tests.
func WithBaseURLs(authURL, apiURL string) Option {
	return func(c *Client) {
		c.authURL = strings.TrimSuffix(authURL, "/")
		c.apiURL = strings.TrimSuffix(apiURL, "/")
	}
}

type Client struct {
	httpClient *http.Client
	authURL    string
	apiURL     string
}

func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		authURL:    defaultAuthURL,
		apiURL:     defaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) NewSession(account *models.Account) Session {
	return &session{client: c, account: account}
}

type session struct {
	client  *Client
	account *models.Account

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken fetches (and caches) an OAuth token via the password
// grant, the same auth scheme the script-type reddit app uses.
func (s *session) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", s.account.Username)
	form.Set("password", s.account.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.client.authURL+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.account.ClientID, s.account.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.account.UserAgent)

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access token: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("access token request failed: %s: %s", resp.Status, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode access token: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("access token missing in response: %s", body)
	}

	s.token = token.AccessToken
	// Refresh one minute before the advertised expiry.
	s.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)

	return s.token, nil
}

// do performs an authenticated request against the API host and
// returns the raw body, surfacing non-2xx responses with their body so
// operators see what reddit rejected.
func (s *session) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", s.account.UserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("reddit returned %s: %s", resp.Status, respBody)
	}

	return respBody, nil
}

func (s *session) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return s.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded")
}

var _ SessionFactory = (*Client)(nil)
