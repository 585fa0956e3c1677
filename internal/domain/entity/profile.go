package entity

import (
	"sort"
	"strings"
	"time"
)

// UserProfile holds one user's weighted interests.
// key: normalized topic, value: non-negative affinity weight
type UserProfile struct {
	UserID          string             `json:"user_id"`
	WeightedProfile map[string]float64 `json:"weighted_profile"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type TopicWeight struct {
	Topic  string
	Weight float64
}

func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		WeightedProfile: make(map[string]float64),
	}
}

// NormalizeTopic lowercases and trims a topic.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Decay multiplies every weight by factor.
func (p *UserProfile) Decay(factor float64) {
	for topic, w := range p.WeightedProfile {
		p.WeightedProfile[topic] = w * factor
	}
}

// Reinforce adds inc to the normalized topic. Blank topics are ignored.
func (p *UserProfile) Reinforce(topic string, inc float64) {
	t := NormalizeTopic(topic)
	if t == "" {
		return
	}
	if p.WeightedProfile == nil {
		p.WeightedProfile = make(map[string]float64)
	}
	p.WeightedProfile[t] += inc
}

// Top returns up to n topics ordered by weight descending, ties by name.
func (p *UserProfile) Top(n int) []TopicWeight {
	out := make([]TopicWeight, 0, len(p.WeightedProfile))
	for t, w := range p.WeightedProfile {
		out = append(out, TopicWeight{Topic: t, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Topic < out[j].Topic
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
