package store

import (
	"golang.org/x/sync/singleflight"

	"pathwise-core/internal/domain/entity"
)

// InflightGroup holds at most one running computation per key. The key is
// forgotten as soon as the computation returns, success or failure.
type InflightGroup struct {
	group singleflight.Group
}

func NewInflightGroup() *InflightGroup {
	return &InflightGroup{}
}

func (g *InflightGroup) Do(key string, fn func() (*entity.RecommendationResult, error)) (*entity.RecommendationResult, bool, error) {
	// fn runs on the leader's goroutine only.
	led := false
	v, err, _ := g.group.Do(key, func() (any, error) {
		led = true
		return fn()
	})
	if err != nil {
		return nil, !led, err
	}
	res, _ := v.(*entity.RecommendationResult)
	return res, !led, nil
}
