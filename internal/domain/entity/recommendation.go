package entity

// Candidate is a raw resource produced by a provider adapter or synthesised
// by a course template. Never persisted.
type Candidate struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Description    string  `json:"description,omitempty"`
	Difficulty     string  `json:"difficulty,omitempty"`
	AcceptanceRate float64 `json:"acceptanceRate,omitempty"`
}

type Recommendation struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// RecommendationResult is the unit stored in the response cache and returned
// to the caller.
type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
}

func EmptyResult() *RecommendationResult {
	return &RecommendationResult{Recommendations: []Recommendation{}}
}

// FromCandidates converts the first n candidates into recommendations
// without reordering them.
func FromCandidates(cands []Candidate, n int) *RecommendationResult {
	if n > len(cands) {
		n = len(cands)
	}
	recs := make([]Recommendation, 0, n)
	for _, c := range cands[:n] {
		recs = append(recs, Recommendation{Title: c.Title, URL: c.URL, Description: c.Description})
	}
	return &RecommendationResult{Recommendations: recs}
}
