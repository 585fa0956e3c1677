package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/metrics"
)

const courseLimit = 5

// courseCatalog describes how one catalog names and links its courses.
// Templates take the topic and two related terms, in that order.
type courseCatalog struct {
	searchURL string
	templates []string
	fillers   [2]string
}

var courseCatalogs = map[string]courseCatalog{
	entity.PlatformCoursera: {
		searchURL: "https://www.coursera.org/search?query=",
		templates: []string{
			"Introduction to %[1]s for Beginners",
			"%[1]s Specialization: Intermediate Concepts",
			"Advanced %[1]s",
			"Applied %[1]s with %[2]s",
			"%[1]s Fundamentals",
			"%[1]s Capstone: Advanced Projects in %[3]s",
		},
		fillers: [2]string{"Real-World Projects", "Industry Case Studies"},
	},
	entity.PlatformUdemy: {
		searchURL: "https://www.udemy.com/courses/search/?q=",
		templates: []string{
			"The Complete %[1]s Bootcamp",
			"%[1]s Bootcamp for Beginners: Zero to Hero",
			"%[1]s Masterclass: Intermediate to Advanced",
			"Hands-On %[1]s and %[2]s Bootcamp",
			"%[1]s Interview Prep Bootcamp",
			"Advanced %[1]s Bootcamp: %[3]s in Practice",
		},
		fillers: [2]string{"Portfolio Projects", "Job-Ready Skills"},
	},
}

// courseCandidates expands the catalog templates for topic.
func (u *Orchestrator) courseCandidates(cat courseCatalog, topic string) []entity.Candidate {
	rel := u.scorer.graph.Related(topic)
	terms := cat.fillers
	for i := 0; i < len(terms) && i < len(rel); i++ {
		terms[i] = rel[i]
	}

	link := cat.searchURL + url.QueryEscape(topic)
	out := make([]entity.Candidate, 0, len(cat.templates))
	for _, tpl := range cat.templates {
		out = append(out, entity.Candidate{
			Title: fmt.Sprintf(tpl, topic, terms[0], terms[1]),
			URL:   link,
		})
	}
	return out
}

func (u *Orchestrator) recommendCourses(_ context.Context, req entity.RecommendationRequest, snap *ProfileSnapshot) (*entity.RecommendationResult, bool, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, false, fmt.Errorf("%s needs a topic: %w", req.Platform, entity.ErrInvalidRequest)
	}
	cat := courseCatalogs[req.Platform]

	ranked := u.scorer.Rank(u.courseCandidates(cat, topic), topic, snap.Dominant, courseLimit)
	recs := make([]entity.Recommendation, 0, len(ranked))
	for _, c := range ranked {
		recs = append(recs, entity.Recommendation{
			Title:       c.Title,
			URL:         c.URL,
			Description: courseReason(topic, c.Score, snap.Dominant),
		})
	}

	metrics.RecordRecommendation(req.Platform, "ranked")
	return &entity.RecommendationResult{Recommendations: recs}, false, nil
}

func courseReason(topic string, score int, dominant []string) string {
	reason := fmt.Sprintf("Relevance score %d for %s", score, topic)
	if len(dominant) > 0 {
		reason += ", aligned with your interests in " + strings.Join(dominant, ", ")
	}
	return reason
}
