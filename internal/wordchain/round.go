package wordchain

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const (
	// TurnSeconds is the time the learner has to answer each turn.
	TurnSeconds = 20
	// HistoryWindow caps how many recent words a referee is shown.
	HistoryWindow = 15

	// TurnXP is awarded for every accepted word, StreakXP on top of it
	// for every fifth consecutive accepted word, and WinXP when the
	// opponent concedes.
	TurnXP   = 10
	StreakXP = 50
	WinXP    = 200
)

// Player identifies who played a turn.
type Player string

const (
	PlayerLearner  Player = "learner"
	PlayerOpponent Player = "opponent"
)

// Round outcomes, recorded when a round ends.
const (
	OutcomeChain      = "chain"
	OutcomeDuplicate  = "duplicate"
	OutcomeRejected   = "rejected"
	OutcomeTimeout    = "timeout"
	OutcomeConcession = "concession"
	OutcomeConnection = "connection"
)

// Turn is one played word. Definition is set only for opponent turns.
type Turn struct {
	Word       string
	Player     Player
	Definition string
}

// Result reports what a resolved submission earned.
type Result struct {
	XP int
}

// Round is the state of one word-chain game. The timer is driven
// externally through Tick so the caller owns the cadence.
type Round struct {
	ID          string
	Turns       []Turn
	Score       int
	SecondsLeft int
	Suspended   bool
	Over        bool
	Won         bool
	Outcome     string
	Reason      string

	streak  int
	pending string
}

// NewRound opens a game with a random word from the opponent's
// vocabulary.
func NewRound(rng *rand.Rand) *Round {
	word, def := RandomEntry(rng)
	return &Round{
		ID:          uuid.NewString(),
		Turns:       []Turn{{Word: word, Player: PlayerOpponent, Definition: def}},
		SecondsLeft: TurnSeconds,
	}
}

// LastWord returns the most recently played word.
func (r *Round) LastWord() string {
	return r.Turns[len(r.Turns)-1].Word
}

// RequiredLetter is the letter the next word must start with.
func (r *Round) RequiredLetter() string {
	last := r.LastWord()
	return last[len(last)-1:]
}

// RecentWords returns up to HistoryWindow of the latest played words,
// oldest first.
func (r *Round) RecentWords() []string {
	start := 0
	if len(r.Turns) > HistoryWindow {
		start = len(r.Turns) - HistoryWindow
	}
	words := make([]string, 0, len(r.Turns)-start)
	for _, t := range r.Turns[start:] {
		words = append(words, t.Word)
	}
	return words
}

// Pending returns the normalized candidate awaiting a verdict, or ""
// when none is in flight.
func (r *Round) Pending() string {
	return r.pending
}

// Submit checks a candidate against the rules that need no referee.
// A chain or duplicate violation ends the round immediately. Otherwise
// the round suspends and Submit returns true; the caller must obtain a
// Verdict and pass it to Resolve.
func (r *Round) Submit(word string) bool {
	if r.Over || r.Suspended {
		return false
	}
	candidate := strings.ToUpper(strings.TrimSpace(word))
	if candidate == "" {
		return false
	}
	if !strings.HasPrefix(candidate, r.RequiredLetter()) {
		r.end(OutcomeChain, fmt.Sprintf("Word must start with '%s'!", r.RequiredLetter()))
		return false
	}
	for _, t := range r.Turns {
		if t.Word == candidate {
			r.end(OutcomeDuplicate, "Word already used!")
			return false
		}
	}
	r.pending = candidate
	r.Suspended = true
	return true
}

// Resolve applies a referee's verdict to the suspended candidate. Any
// referee error ends the round rather than letting an unjudged word
// stand.
func (r *Round) Resolve(v Verdict, err error) Result {
	if !r.Suspended {
		return Result{}
	}
	candidate := r.pending
	r.pending = ""
	r.Suspended = false

	if err != nil {
		r.end(OutcomeConnection, "Connection lost! Game over.")
		return Result{}
	}
	if !v.Valid {
		reason := v.Reason
		if reason == "" {
			reason = "Word rejected!"
		}
		r.end(OutcomeRejected, reason)
		return Result{}
	}

	r.Turns = append(r.Turns, Turn{Word: candidate, Player: PlayerLearner})

	// A valid word with no comeback is the opponent conceding. The win
	// bonus stands alone; the closing word earns no per-turn XP and no
	// score point.
	if v.OpponentWord == "" {
		reason := v.Reason
		if reason == "" {
			reason = "I'm out of words! You win!"
		}
		r.end(OutcomeConcession, reason)
		r.Won = true
		return Result{XP: WinXP}
	}

	r.Score++
	r.streak++
	xp := TurnXP
	if r.streak%5 == 0 {
		xp += StreakXP
	}

	r.Turns = append(r.Turns, Turn{
		Word:       strings.ToUpper(strings.TrimSpace(v.OpponentWord)),
		Player:     PlayerOpponent,
		Definition: v.OpponentDefinition,
	})
	r.SecondsLeft = TurnSeconds
	return Result{XP: xp}
}

// Tick advances the countdown by one second. It reports whether the
// timer just expired. The clock is frozen while a verdict is in flight
// and after the round ends.
func (r *Round) Tick() bool {
	if r.Over || r.Suspended {
		return false
	}
	r.SecondsLeft--
	if r.SecondsLeft <= 0 {
		r.SecondsLeft = 0
		r.end(OutcomeTimeout, "Time's up!")
		return true
	}
	return false
}

// SubmitWith runs a full turn against a referee in one call.
func (r *Round) SubmitWith(ctx context.Context, referee Referee, word string) Result {
	if !r.Submit(word) {
		return Result{}
	}
	v, err := referee.Judge(ctx, r.RecentWords(), r.Pending())
	return r.Resolve(v, err)
}

func (r *Round) end(outcome, reason string) {
	r.Over = true
	r.Outcome = outcome
	r.Reason = reason
	r.streak = 0
}
