package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"pathwise-core/internal/domain/entity"
)

const (
	youtubeHTTPTimeout = 15 * time.Second
	youtubeMaxResults  = 10
	youtubeWatchURL    = "https://www.youtube.com/watch?v="
)

// YouTubeSearch queries the YouTube Data API v3 search endpoint.
type YouTubeSearch struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

func NewYouTubeSearch(baseURL, apiKey string) *YouTubeSearch {
	return &YouTubeSearch{
		client:  &http.Client{Timeout: youtubeHTTPTimeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Search returns an empty slice when nothing matches.
func (y *YouTubeSearch) Search(ctx context.Context, topic string) ([]entity.Candidate, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("q", topic+" tutorial")
	q.Set("maxResults", strconv.Itoa(youtubeMaxResults))
	q.Set("key", y.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build youtube request: %w", err)
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search status %d: %w", resp.StatusCode, entity.ErrUpstreamUnavailable)
	}

	var body youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}

	out := make([]entity.Candidate, 0, len(body.Items))
	for _, it := range body.Items {
		if it.ID.VideoID == "" {
			continue
		}
		out = append(out, entity.Candidate{
			Title:       it.Snippet.Title,
			Description: it.Snippet.Description,
			URL:         youtubeWatchURL + it.ID.VideoID,
		})
	}
	return out, nil
}
