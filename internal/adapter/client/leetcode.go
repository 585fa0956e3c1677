package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"pathwise-core/internal/domain/entity"
)

const (
	leetcodeHTTPTimeout = 15 * time.Second
	leetcodePageSize    = 20
	leetcodeProblemURL  = "https://leetcode.com/problems/"
)

const leetcodeQuery = `query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(categorySlug: $categorySlug, limit: $limit, skip: $skip, filters: $filters) {
    questions: data {
      title
      titleSlug
      difficulty
      acRate
      paidOnly: isPaidOnly
    }
  }
}`

// LeetCodeSearch lists practice problems matching a topic through the public
// GraphQL endpoint.
type LeetCodeSearch struct {
	client  *http.Client
	baseURL string
}

type leetcodeRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type leetcodeResponse struct {
	Data struct {
		List struct {
			Questions []struct {
				Title      string  `json:"title"`
				TitleSlug  string  `json:"titleSlug"`
				Difficulty string  `json:"difficulty"`
				AcRate     float64 `json:"acRate"`
				PaidOnly   bool    `json:"paidOnly"`
			} `json:"questions"`
		} `json:"problemsetQuestionList"`
	} `json:"data"`
}

func NewLeetCodeSearch(baseURL string) *LeetCodeSearch {
	return &LeetCodeSearch{
		client:  &http.Client{Timeout: leetcodeHTTPTimeout},
		baseURL: baseURL,
	}
}

func (l *LeetCodeSearch) Search(ctx context.Context, topic string) ([]entity.Candidate, error) {
	payload, err := json.Marshal(leetcodeRequest{
		Query: leetcodeQuery,
		Variables: map[string]any{
			"categorySlug": "",
			"skip":         0,
			"limit":        leetcodePageSize,
			"filters":      map[string]any{"searchKeywords": topic},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode leetcode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build leetcode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode search: %w: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leetcode search status %d: %w", resp.StatusCode, entity.ErrUpstreamUnavailable)
	}

	var body leetcodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode leetcode response: %w", err)
	}

	qs := body.Data.List.Questions
	out := make([]entity.Candidate, 0, len(qs))
	for _, q := range qs {
		if q.PaidOnly {
			continue
		}
		out = append(out, entity.Candidate{
			Title:          q.Title,
			URL:            leetcodeProblemURL + q.TitleSlug + "/",
			Difficulty:     q.Difficulty,
			AcceptanceRate: q.AcRate,
			Description:    fmt.Sprintf("%s problem, %.1f%% acceptance", q.Difficulty, q.AcRate),
		})
	}
	return out, nil
}
