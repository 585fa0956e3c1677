package entity

// Platform identifiers accepted by the recommendation endpoint.
const (
	PlatformLeetCode   = "leetcode"
	PlatformCodeforces = "codeforces"
	PlatformCoursera   = "coursera"
	PlatformUdemy      = "udemy"
	PlatformYouTube    = "youtube"
)

type RecommendationRequest struct {
	UserID       string `json:"user_id" validate:"required,max=128"`
	Platform     string `json:"platform" validate:"required,max=32"`
	ActivityType string `json:"activity_type" validate:"max=64"`
	Topic        string `json:"topic" validate:"max=256"`
	Difficulty   string `json:"difficulty" validate:"max=32"`
	Description  string `json:"description" validate:"max=8000"`
}

// CacheKey joins platform, activity type and topic with hyphens. Components
// are not escaped, so the result is an opaque string.
func (r RecommendationRequest) CacheKey() string {
	return r.Platform + "-" + r.ActivityType + "-" + r.Topic
}

type AIResponse struct {
	Content  string         `json:"content"`
	Model    string         `json:"model"` // Which model actually answered?
	Metadata map[string]any `json:"metadata,omitempty"`
}

type AnalysisResponse struct {
	Recommendation string `json:"recommendation"`
}
