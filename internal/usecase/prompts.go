package usecase

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"pathwise-core/internal/domain/entity"
)

func candidatesJSON(cands []entity.Candidate) string {
	b, err := json.Marshal(cands)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func interestsLine(summary string) string {
	if summary == "" {
		return "The learner has no recorded interests yet."
	}
	return "The learner's weighted interests: " + summary + "."
}

func videoRankingPrompt(topic, summary string, videos []entity.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are ranking learning videos about %q.\n", topic)
	b.WriteString(interestsLine(summary))
	b.WriteString("\nCandidate videos (JSON):\n")
	b.WriteString(candidatesJSON(videos))
	b.WriteString("\n\nPick the most useful videos for this learner, best first. ")
	b.WriteString(`Respond ONLY with a JSON array of objects {"title": string, "url": string, "reason": string}. `)
	b.WriteString("Use titles and urls exactly as given.")
	return b.String()
}

func problemPrompt(req entity.RecommendationRequest, summary string, problems []entity.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A learner is practising %q", req.Topic)
	if req.Difficulty != "" {
		fmt.Fprintf(&b, " at %s difficulty", req.Difficulty)
	}
	b.WriteString(".\nThe problem they are working on:\n")
	b.WriteString(req.Description)
	b.WriteString("\n")
	b.WriteString(interestsLine(summary))
	b.WriteString("\nCandidate practice problems (JSON):\n")
	b.WriteString(candidatesJSON(problems))
	b.WriteString("\n\nRespond ONLY with a JSON object:\n")
	b.WriteString(`{"similarProblems": [{"title": string, "url": string, "reason": string}], `)
	b.WriteString(`"hints": [string], "solutionOutline": string}`)
	b.WriteString("\nList similar problems most relevant first. Hints must not reveal the full solution.")
	return b.String()
}

func analysisPrompt(payload map[string]any) string {
	ctxJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		ctxJSON = []byte("{}")
	}
	return "You are a study coach. Based on the learner context below, recommend what to study next " +
		"and why, in a short paragraph.\n\nContext:\n" + string(ctxJSON)
}
