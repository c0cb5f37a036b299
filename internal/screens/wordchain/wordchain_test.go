package wordchain

import (
	"context"
	"testing"

	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/store"
	chain "github.com/karandv/lingua/internal/wordchain"
)

type fakeEventRepo struct {
	rounds []store.RoundEventData
}

func (f *fakeEventRepo) AppendMission(_ context.Context, _ store.MissionEventData) error { return nil }
func (f *fakeEventRepo) AppendQuiz(_ context.Context, _ store.QuizEventData) error      { return nil }
func (f *fakeEventRepo) AppendRound(_ context.Context, data store.RoundEventData) error {
	f.rounds = append(f.rounds, data)
	return nil
}
func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (f *fakeEventRepo) QuizStats(_ context.Context) ([]store.QuizStat, error) { return nil, nil }
func (f *fakeEventRepo) RoundStats(_ context.Context) (store.RoundStat, error) {
	return store.RoundStat{}, nil
}

// violatingWord returns a word that breaks the chain rule for the round.
func violatingWord(r *chain.Round) string {
	if r.RequiredLetter() == "Z" {
		return "apple"
	}
	return "zebra"
}

func TestStaleTickIgnoredAfterRestart(t *testing.T) {
	events := &fakeEventRepo{}
	tracker := progress.NewTracker(nil, events)
	s := New(tracker, chain.NewLocalReferee(nil), events)
	oldGen := s.gen

	// End the round locally, then restart before the in-flight tick
	// from the first round fires.
	if s.round.Submit(violatingWord(s.round)) {
		t.Fatal("chain violation should not reach the referee")
	}
	if !s.round.Over {
		t.Fatal("round should be over after a chain violation")
	}
	s.recordRoundEnd()

	s.startRound()
	if s.gen == oldGen {
		t.Fatal("restart should advance the tick generation")
	}

	// The stale tick must not touch the new round's clock.
	_, cmd := s.Update(tickMsg{gen: oldGen})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if s.round.SecondsLeft != chain.TurnSeconds {
		t.Errorf("seconds left = %d, want untouched %d", s.round.SecondsLeft, chain.TurnSeconds)
	}

	// The current generation still drives the countdown.
	_, cmd = s.Update(tickMsg{gen: s.gen})
	if cmd == nil {
		t.Error("live tick should reschedule")
	}
	if s.round.SecondsLeft != chain.TurnSeconds-1 {
		t.Errorf("seconds left = %d, want %d", s.round.SecondsLeft, chain.TurnSeconds-1)
	}
}
