package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type submitResponse struct {
	JSON struct {
		Errors [][]interface{} `json:"errors"`
		Data   struct {
			URL  string `json:"url"`
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	} `json:"json"`
}

type leaseResponse struct {
	Args struct {
		Action string `json:"action"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"args"`
	Asset struct {
		AssetID string `json:"asset_id"`
	} `json:"asset"`
}

var commentsIDPattern = regexp.MustCompile(`/comments/([a-z0-9]+)`)

// uploadMedia asks reddit for an upload lease and pushes the file to
// the leased bucket. Returns the asset id (galleries reference it) and
// the asset URL (single submissions reference it).
func (s *session) uploadMedia(ctx context.Context, filePath string) (assetID, assetURL string, err error) {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filePath)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	form := url.Values{}
	form.Set("filepath", filepath.Base(filePath))
	form.Set("mimetype", mimeType)

	body, err := s.postForm(ctx, "/api/media/asset.json", form)
	if err != nil {
		return "", "", fmt.Errorf("media lease request failed: %w", err)
	}

	var lease leaseResponse
	if err := json.Unmarshal(body, &lease); err != nil {
		return "", "", fmt.Errorf("failed to decode media lease: %w", err)
	}
	if lease.Args.Action == "" {
		return "", "", fmt.Errorf("media lease missing upload action: %s", body)
	}

	uploadURL := lease.Args.Action
	if strings.HasPrefix(uploadURL, "//") {
		uploadURL = "https:" + uploadURL
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	var key string
	for _, field := range lease.Args.Fields {
		if field.Name == "key" {
			key = field.Value
		}
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return "", "", err
		}
	}

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", "", err
	}
	file, err := os.Open(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		file.Close()
		return "", "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	file.Close()
	if err := writer.Close(); err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("media upload failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("media upload returned %s", resp.Status)
	}

	return lease.Asset.AssetID, uploadURL + "/" + key, nil
}

// submit posts /api/submit with the given kind and media URL and
// resolves the created submission.
func (s *session) submit(ctx context.Context, kind, title, mediaURL string) (*Submission, error) {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("sr", s.account.Subreddit)
	form.Set("kind", kind)
	form.Set("title", title)
	form.Set("url", mediaURL)
	form.Set("sendreplies", "false")

	body, err := s.postForm(ctx, "/api/submit", form)
	if err != nil {
		return nil, err
	}

	return s.resolveSubmission(ctx, body)
}

func (s *session) SubmitImage(ctx context.Context, title, imagePath string) (*Submission, error) {
	_, assetURL, err := s.uploadMedia(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, "image", title, assetURL)
}

func (s *session) SubmitVideo(ctx context.Context, title, videoPath string) (*Submission, error) {
	_, assetURL, err := s.uploadMedia(ctx, videoPath)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, "video", title, assetURL)
}

func (s *session) SubmitGallery(ctx context.Context, title string, imagePaths []string) (*Submission, error) {
	items := make([]map[string]string, 0, len(imagePaths))
	for _, imagePath := range imagePaths {
		assetID, _, err := s.uploadMedia(ctx, imagePath)
		if err != nil {
			return nil, err
		}
		items = append(items, map[string]string{
			"media_id":     assetID,
			"caption":      "",
			"outbound_url": "",
		})
	}

	payload, err := json.Marshal(map[string]interface{}{
		"api_type":    "json",
		"sr":          s.account.Subreddit,
		"title":       title,
		"items":       items,
		"sendreplies": false,
	})
	if err != nil {
		return nil, err
	}

	body, err := s.do(ctx, http.MethodPost, "/api/submit_gallery_post.json",
		bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}

	return s.resolveSubmission(ctx, body)
}

// resolveSubmission extracts the fullname and permalink of the created
// post. Media submissions are processed asynchronously and may omit
// the name, in which case the account's newest submission is fetched.
func (s *session) resolveSubmission(ctx context.Context, body []byte) (*Submission, error) {
	var parsed submitResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode submit response: %w", err)
	}
	if len(parsed.JSON.Errors) > 0 {
		return nil, fmt.Errorf("reddit rejected the submission: %v", parsed.JSON.Errors)
	}

	sub := &Submission{
		Fullname:  parsed.JSON.Data.Name,
		Permalink: parsed.JSON.Data.URL,
	}
	if sub.Fullname == "" && parsed.JSON.Data.ID != "" {
		sub.Fullname = "t3_" + parsed.JSON.Data.ID
	}
	if sub.Fullname == "" && sub.Permalink != "" {
		if match := commentsIDPattern.FindStringSubmatch(sub.Permalink); match != nil {
			sub.Fullname = "t3_" + match[1]
		}
	}
	if sub.Fullname == "" {
		return s.newestSubmission(ctx)
	}
	return sub, nil
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				Name      string `json:"name"`
				Permalink string `json:"permalink"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (s *session) newestSubmission(ctx context.Context) (*Submission, error) {
	body, err := s.do(ctx, http.MethodGet,
		"/user/"+url.PathEscape(s.account.Username)+"/submitted.json?limit=1&sort=new", nil, "")
	if err != nil {
		return nil, err
	}

	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode submitted listing: %w", err)
	}
	if len(listing.Data.Children) == 0 {
		return nil, fmt.Errorf("submission did not return a valid post")
	}

	newest := listing.Data.Children[0].Data
	return &Submission{
		Fullname:  newest.Name,
		Permalink: "https://www.reddit.com" + newest.Permalink,
	}, nil
}
