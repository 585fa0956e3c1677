package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"pathwise-core/internal/domain/entity"
)

type ProfileEngineSuite struct {
	suite.Suite
	store  *memProfileStore
	engine *ProfileEngine
	ctx    context.Context
}

func (s *ProfileEngineSuite) SetupTest() {
	s.store = newMemProfileStore()
	s.engine = NewProfileEngine(s.store)
	s.ctx = context.Background()
}

func TestProfileEngineSuite(t *testing.T) {
	suite.Run(t, new(ProfileEngineSuite))
}

func (s *ProfileEngineSuite) TestNewTopicStartsAtOne() {
	snap, err := s.engine.Update(s.ctx, "u1", "  Graphs ")
	s.Require().NoError(err)

	s.InDelta(1.0, snap.Profile.WeightedProfile["graphs"], 1e-12)
	s.Equal([]string{"graphs"}, snap.Dominant)
}

func (s *ProfileEngineSuite) TestDecayPrecedesReinforcement() {
	s.store.profiles["u1"] = map[string]float64{"go": 1.0, "python": 2.0}

	snap, err := s.engine.Update(s.ctx, "u1", "python")
	s.Require().NoError(err)

	s.InDelta(0.98, snap.Profile.WeightedProfile["go"], 1e-12)
	// 2.0*0.98 + 1, the increment itself is not decayed
	s.InDelta(2.96, snap.Profile.WeightedProfile["python"], 1e-12)
}

func (s *ProfileEngineSuite) TestDecayOnlyRequestsShrinkGeometrically() {
	s.store.profiles["u1"] = map[string]float64{"go": 1.0, "sql": 3.0}

	prevGo, prevSQL := 1.0, 3.0
	for i := 1; i <= 200; i++ {
		_, err := s.engine.Update(s.ctx, "u1", "")
		s.Require().NoError(err)

		w := s.store.weights("u1")
		s.InDelta(prevGo*DecayFactor, w["go"], 1e-15)
		s.InDelta(prevSQL*DecayFactor, w["sql"], 1e-15)
		s.Less(w["go"], prevGo)
		s.Greater(w["go"], 0.0)
		prevGo, prevSQL = w["go"], w["sql"]
	}
	s.InDelta(math.Pow(DecayFactor, 200), prevGo, 1e-12)
	s.Equal(200, s.store.saves, "profile is saved even without a topic")
}

func (s *ProfileEngineSuite) TestBlankTopicDoesNotCreateEntry() {
	snap, err := s.engine.Update(s.ctx, "u1", "   ")
	s.Require().NoError(err)

	s.Empty(snap.Profile.WeightedProfile)
	s.Equal("", snap.Summary)
	s.Empty(snap.Dominant)
	s.Equal(1, s.store.saves)
}

func (s *ProfileEngineSuite) TestSaveFailurePropagates() {
	s.store.saveErr = errors.New("redis down")

	_, err := s.engine.Update(s.ctx, "u1", "go")
	s.Error(err)
	s.Contains(err.Error(), "save profile")
}

func (s *ProfileEngineSuite) TestSummaryKeepsTopFiveByWeight() {
	p := entity.NewUserProfile("u1")
	p.WeightedProfile = map[string]float64{
		"a": 1, "b": 6, "c": 3, "d": 5, "e": 2, "f": 4, "g": 0.5,
	}

	s.Equal("b (weight: 6.00), d (weight: 5.00), f (weight: 4.00), c (weight: 3.00), e (weight: 2.00)", Summarize(p))
	s.Equal([]string{"b", "d", "f", "c", "e"}, DominantTopics(p))
}

func (s *ProfileEngineSuite) TestTiesAreOrderedStably() {
	p := entity.NewUserProfile("u1")
	p.WeightedProfile = map[string]float64{"zeta": 1, "alpha": 1, "mid": 1}

	for i := 0; i < 10; i++ {
		s.Equal([]string{"alpha", "mid", "zeta"}, DominantTopics(p))
	}
}
