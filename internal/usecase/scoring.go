package usecase

import (
	"sort"
	"strings"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/domain/repository"
)

const (
	exactTopicBonus = 5
	relatedBonus    = 3
	dominantBonus   = 2
)

var levelBonus = []struct {
	term  string
	bonus int
}{
	{"beginner", 1},
	{"intermediate", 2},
	{"advanced", 3},
}

type ScoredCandidate struct {
	entity.Candidate
	Score int
}

// Scorer is a deterministic heuristic relevance scorer over candidate titles.
type Scorer struct {
	graph repository.TopicGraph
}

func NewScorer(graph repository.TopicGraph) *Scorer {
	return &Scorer{graph: graph}
}

// Score matches lowercase substrings of title against the topic, its related
// terms, the caller's dominant topics and the level keywords.
func (s *Scorer) Score(title, topic string, dominant []string) int {
	t := strings.ToLower(title)
	topic = entity.NormalizeTopic(topic)
	score := 0

	if topic != "" && strings.Contains(t, topic) {
		score += exactTopicBonus
	}
	for _, rel := range s.graph.Related(topic) {
		if rel = strings.ToLower(rel); rel != "" && strings.Contains(t, rel) {
			score += relatedBonus
		}
	}
	for _, d := range dominant {
		if d = strings.ToLower(d); d != "" && strings.Contains(t, d) {
			score += dominantBonus
		}
	}
	for _, lvl := range levelBonus {
		if strings.Contains(t, lvl.term) {
			score += lvl.bonus
		}
	}
	return score
}

// Rank scores candidates, orders them by score descending keeping input order
// among equals, and keeps at most limit.
func (s *Scorer) Rank(cands []entity.Candidate, topic string, dominant []string, limit int) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(cands))
	for _, c := range cands {
		scored = append(scored, ScoredCandidate{Candidate: c, Score: s.Score(c.Title, topic, dominant)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
