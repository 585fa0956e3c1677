package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"pathwise-core/internal/adapter/store"
	"pathwise-core/internal/domain/entity"
)

type memProfileStore struct {
	mu       sync.Mutex
	profiles map[string]map[string]float64
	saves    int
	saveErr  error
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]map[string]float64)}
}

func (m *memProfileStore) Load(_ context.Context, userID string) (*entity.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := entity.NewUserProfile(userID)
	for k, v := range m.profiles[userID] {
		p.WeightedProfile[k] = v
	}
	return p, nil
}

func (m *memProfileStore) Save(_ context.Context, p *entity.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := make(map[string]float64, len(p.WeightedProfile))
	for k, v := range p.WeightedProfile {
		cp[k] = v
	}
	m.profiles[p.UserID] = cp
	return nil
}

func (m *memProfileStore) weights(userID string) map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[userID]
}

type aiStep struct {
	content string
	err     error
}

// scriptedAI replays steps in order and repeats the last one when exhausted.
type scriptedAI struct {
	mu      sync.Mutex
	steps   []aiStep
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	prompts []string
}

func newScriptedAI(steps ...aiStep) *scriptedAI {
	return &scriptedAI{steps: steps}
}

func (s *scriptedAI) Generate(_ context.Context, prompt string) (*entity.AIResponse, error) {
	n := int(s.calls.Add(1))
	if n == 1 && s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.steps) == 0 {
		return nil, errors.New("no scripted answer")
	}
	idx := n - 1
	if idx >= len(s.steps) {
		idx = len(s.steps) - 1
	}
	st := s.steps[idx]
	if st.err != nil {
		return nil, st.err
	}
	return &entity.AIResponse{Content: st.content, Model: "fake"}, nil
}

type fakeSearch struct {
	cands []entity.Candidate
	err   error
	calls atomic.Int32
}

func (f *fakeSearch) Search(context.Context, string) ([]entity.Candidate, error) {
	f.calls.Add(1)
	return f.cands, f.err
}

func candidates(n int, prefix string) []entity.Candidate {
	out := make([]entity.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Candidate{
			Title: prefix + " " + string(rune('A'+i)),
			URL:   "https://example.com/" + prefix + "/" + string(rune('a'+i)),
		})
	}
	return out
}

var (
	errRateLimited = entity.ErrRateLimited
	errUnavailable = entity.ErrUpstreamUnavailable
)

func testGraph() *store.StaticTopicGraph {
	return store.NewStaticTopicGraph(store.DefaultTopicRelations)
}
