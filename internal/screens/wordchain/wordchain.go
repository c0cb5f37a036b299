package wordchain

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/router"
	"github.com/karandv/lingua/internal/screen"
	"github.com/karandv/lingua/internal/store"
	"github.com/karandv/lingua/internal/ui/components"
	"github.com/karandv/lingua/internal/ui/layout"
	chain "github.com/karandv/lingua/internal/wordchain"
)

// GameScreen runs one word-chain round against the referee.
type GameScreen struct {
	tracker   *progress.Tracker
	referee   chain.Referee
	eventRepo store.EventRepo

	round    *chain.Round
	input    components.TextInput
	rng      *rand.Rand
	gen      int
	xpEarned int
	recorded bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a word-chain screen and opens the first round.
func New(tracker *progress.Tracker, referee chain.Referee, eventRepo store.EventRepo) *GameScreen {
	s := &GameScreen{
		tracker:   tracker,
		referee:   referee,
		eventRepo: eventRepo,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.startRound()
	return s
}

func (s *GameScreen) startRound() {
	s.round = chain.NewRound(s.rng)
	s.input = components.NewTextInput("Type a word...", false, 24)
	s.gen++
	s.xpEarned = 0
	s.recorded = false
}

func (s *GameScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), tickCmd(s.gen))
}

func (s *GameScreen) Title() string {
	return "Word Chain"
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.round.Over {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit word"},
		{Key: "Esc", Description: "Give up"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// A round that ended between ticks leaves one tick in flight.
		// Dropping stale generations keeps a restarted round on a
		// single clock.
		if msg.gen != s.gen {
			return s, nil
		}
		if s.round.Tick() {
			s.recordRoundEnd()
		}
		if s.round.Over {
			return s, nil
		}
		return s, tickCmd(s.gen)

	case verdictMsg:
		res := s.round.Resolve(msg.verdict, msg.err)
		if res.XP > 0 {
			s.xpEarned += res.XP
			s.tracker.GrantXP(context.Background(), res.XP)
		}
		if s.round.Over {
			s.recordRoundEnd()
			return s, nil
		}
		s.input = components.NewTextInput("Type a word...", false, 24)
		return s, s.input.Init()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.round.Over && !s.round.Suspended {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.round.Over {
		switch key {
		case "enter":
			s.startRound()
			return s, tea.Batch(s.input.Init(), tickCmd(s.gen))
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.round.Suspended {
		return s, nil
	}

	if key == "enter" {
		word := s.input.Value()
		if s.round.Submit(word) {
			return s, s.judgeCmd()
		}
		if s.round.Over {
			s.recordRoundEnd()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// judgeCmd consults the referee off the update loop.
func (s *GameScreen) judgeCmd() tea.Cmd {
	referee := s.referee
	history := s.round.RecentWords()
	candidate := s.round.Pending()
	return func() tea.Msg {
		v, err := referee.Judge(context.Background(), history, candidate)
		return verdictMsg{verdict: v, err: err}
	}
}

func (s *GameScreen) recordRoundEnd() {
	if s.recorded {
		return
	}
	s.recorded = true

	_ = s.eventRepo.AppendRound(context.Background(), store.RoundEventData{
		RoundID:   s.round.ID,
		Turns:     len(s.round.Turns),
		Score:     s.round.Score,
		Outcome:   s.round.Outcome,
		XPAwarded: s.xpEarned,
	})
}

// tickMsg drives the countdown once a second. gen identifies the round
// the tick was scheduled for.
type tickMsg struct {
	gen int
}

// verdictMsg carries the referee's ruling back to the update loop.
type verdictMsg struct {
	verdict chain.Verdict
	err     error
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
