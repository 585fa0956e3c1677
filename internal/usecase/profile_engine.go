package usecase

import (
	"context"
	"fmt"
	"strings"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/domain/repository"
)

const (
	// DecayFactor is applied to every weight on every request.
	DecayFactor = 0.98
	// ReinforceIncrement is added to the current topic after decay.
	ReinforceIncrement = 1.0
	// TopTopics bounds the summary and the dominant topic list.
	TopTopics = 5
)

// ProfileSnapshot is the state of a profile right after this request's update.
type ProfileSnapshot struct {
	Profile  *entity.UserProfile
	Summary  string
	Dominant []string
}

// ProfileEngine decays and reinforces user interest weights.
type ProfileEngine struct {
	store repository.ProfileStore
}

func NewProfileEngine(store repository.ProfileStore) *ProfileEngine {
	return &ProfileEngine{store: store}
}

// Update loads the profile, decays every weight, reinforces topic when it is
// not blank and saves the result. The save happens even without a topic so
// decay accumulates across requests.
func (e *ProfileEngine) Update(ctx context.Context, userID, topic string) (*ProfileSnapshot, error) {
	p, err := e.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p.Decay(DecayFactor)
	p.Reinforce(topic, ReinforceIncrement)

	if err := e.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return &ProfileSnapshot{
		Profile:  p,
		Summary:  Summarize(p),
		Dominant: DominantTopics(p),
	}, nil
}

// Summarize renders the top topics as "topic (weight: W)" pairs. An empty
// profile yields "".
func Summarize(p *entity.UserProfile) string {
	top := p.Top(TopTopics)
	parts := make([]string, 0, len(top))
	for _, tw := range top {
		parts = append(parts, fmt.Sprintf("%s (weight: %.2f)", tw.Topic, tw.Weight))
	}
	return strings.Join(parts, ", ")
}

// DominantTopics returns the top topic names, lowercased.
func DominantTopics(p *entity.UserProfile) []string {
	top := p.Top(TopTopics)
	out := make([]string, 0, len(top))
	for _, tw := range top {
		out = append(out, strings.ToLower(tw.Topic))
	}
	return out
}
