package wordchain

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReferee returns a fixed verdict and records whether it was asked.
type stubReferee struct {
	verdict Verdict
	err     error
	called  bool
}

func (s *stubReferee) Judge(_ context.Context, _ []string, _ string) (Verdict, error) {
	s.called = true
	return s.verdict, s.err
}

func testRound(opening string) *Round {
	return &Round{
		ID:          "round-1",
		Turns:       []Turn{{Word: opening, Player: PlayerOpponent, Definition: botVocabulary[opening]}},
		SecondsLeft: TurnSeconds,
	}
}

// playTurn submits word and resolves it with the opponent answering
// oppWord, returning the earned XP.
func playTurn(t *testing.T, r *Round, word, oppWord string) int {
	t.Helper()
	require.True(t, r.Submit(word), "submit %q", word)
	res := r.Resolve(Verdict{Valid: true, OpponentWord: oppWord, OpponentDefinition: botVocabulary[oppWord]}, nil)
	require.False(t, r.Over)
	return res.XP
}

func TestNewRoundOpensWithVocabularyWord(t *testing.T) {
	r := NewRound(rand.New(rand.NewSource(7)))

	require.Len(t, r.Turns, 1)
	assert.Equal(t, PlayerOpponent, r.Turns[0].Player)
	assert.True(t, Known(r.Turns[0].Word))
	assert.NotEmpty(t, r.Turns[0].Definition)
	assert.Equal(t, TurnSeconds, r.SecondsLeft)
	assert.NotEmpty(t, r.ID)
}

func TestChainViolationEndsRoundWithoutReferee(t *testing.T) {
	r := testRound("CAT")
	ref := &stubReferee{}

	res := r.SubmitWith(context.Background(), ref, "APPLE")

	assert.False(t, ref.called)
	assert.Zero(t, res.XP)
	assert.True(t, r.Over)
	assert.False(t, r.Won)
	assert.Equal(t, OutcomeChain, r.Outcome)
	assert.Equal(t, "Word must start with 'T'!", r.Reason)
}

func TestDuplicateEndsRoundAnyCase(t *testing.T) {
	r := testRound("CAT")
	playTurn(t, r, "tiger", "RABBIT")
	ref := &stubReferee{}

	r.SubmitWith(context.Background(), ref, "Tiger")

	assert.False(t, ref.called)
	assert.True(t, r.Over)
	assert.Equal(t, OutcomeDuplicate, r.Outcome)
}

func TestEmptySubmissionIgnored(t *testing.T) {
	r := testRound("CAT")

	assert.False(t, r.Submit("   "))
	assert.False(t, r.Over)
	assert.False(t, r.Suspended)
}

func TestValidTurnAwardsXPAndResetsClock(t *testing.T) {
	r := testRound("APPLE")
	for i := 0; i < 6; i++ {
		r.Tick()
	}

	require.True(t, r.Submit("elephant"))
	assert.True(t, r.Suspended)
	assert.Equal(t, "ELEPHANT", r.Pending())

	res := r.Resolve(Verdict{Valid: true, OpponentWord: "TIGER", OpponentDefinition: "A big cat."}, nil)

	assert.Equal(t, TurnXP, res.XP)
	assert.Equal(t, 1, r.Score)
	assert.False(t, r.Suspended)
	assert.Equal(t, TurnSeconds, r.SecondsLeft)
	require.Len(t, r.Turns, 3)
	assert.Equal(t, Turn{Word: "ELEPHANT", Player: PlayerLearner}, r.Turns[1])
	assert.Equal(t, "TIGER", r.Turns[2].Word)
	assert.Equal(t, PlayerOpponent, r.Turns[2].Player)
}

func TestStreakBonusEveryFifthWord(t *testing.T) {
	r := testRound("APPLE")

	assert.Equal(t, TurnXP, playTurn(t, r, "EGG", "GOLD"))
	assert.Equal(t, TurnXP, playTurn(t, r, "DOG", "GREEN"))
	assert.Equal(t, TurnXP, playTurn(t, r, "NET", "TEA"))
	assert.Equal(t, TurnXP, playTurn(t, r, "ANT", "TOY"))
	assert.Equal(t, TurnXP+StreakXP, playTurn(t, r, "YES", "SUN"))
	assert.Equal(t, 5, r.Score)
}

func TestConcessionAwardsWinBonus(t *testing.T) {
	r := testRound("CAT")
	require.True(t, r.Submit("TEN"))

	res := r.Resolve(Verdict{Valid: true, Reason: "I'm out of words! You win!"}, nil)

	// The win bonus stands alone: no per-turn XP, no score point for
	// the closing word.
	assert.Equal(t, WinXP, res.XP)
	assert.Zero(t, r.Score)
	assert.True(t, r.Over)
	assert.True(t, r.Won)
	assert.Equal(t, OutcomeConcession, r.Outcome)
	assert.Equal(t, "I'm out of words! You win!", r.Reason)
	assert.Equal(t, "TEN", r.LastWord())
}

func TestRejectedVerdictEndsRound(t *testing.T) {
	r := testRound("CAT")
	require.True(t, r.Submit("TXQ"))

	res := r.Resolve(Verdict{Reason: "That's not a word I recognize!"}, nil)

	assert.Zero(t, res.XP)
	assert.True(t, r.Over)
	assert.False(t, r.Won)
	assert.Equal(t, OutcomeRejected, r.Outcome)
	assert.Equal(t, "That's not a word I recognize!", r.Reason)
	assert.Len(t, r.Turns, 1)
}

func TestRefereeErrorFailsClosed(t *testing.T) {
	r := testRound("CAT")
	ref := &stubReferee{err: errors.New("dial tcp: timeout")}

	res := r.SubmitWith(context.Background(), ref, "TEN")

	assert.True(t, ref.called)
	assert.Zero(t, res.XP)
	assert.True(t, r.Over)
	assert.Equal(t, OutcomeConnection, r.Outcome)
	assert.Len(t, r.Turns, 1)
}

func TestTimerExpiresExactlyOnce(t *testing.T) {
	r := testRound("CAT")

	for i := 0; i < TurnSeconds-1; i++ {
		assert.False(t, r.Tick())
	}
	assert.Equal(t, 1, r.SecondsLeft)

	assert.True(t, r.Tick())
	assert.True(t, r.Over)
	assert.Equal(t, OutcomeTimeout, r.Outcome)
	assert.Equal(t, "Time's up!", r.Reason)

	assert.False(t, r.Tick())
	assert.Equal(t, 0, r.SecondsLeft)
}

func TestTickFrozenWhileSuspended(t *testing.T) {
	r := testRound("CAT")
	require.True(t, r.Submit("TEN"))

	for i := 0; i < TurnSeconds*2; i++ {
		assert.False(t, r.Tick())
	}
	assert.Equal(t, TurnSeconds, r.SecondsLeft)
	assert.False(t, r.Over)
}

func TestSubmitIgnoredAfterRoundEnds(t *testing.T) {
	r := testRound("CAT")
	for i := 0; i < TurnSeconds; i++ {
		r.Tick()
	}
	require.True(t, r.Over)

	assert.False(t, r.Submit("TEN"))
	assert.Equal(t, OutcomeTimeout, r.Outcome)
}

func TestRecentWordsWindow(t *testing.T) {
	r := testRound("CAT")
	for i := 0; i < 20; i++ {
		r.Turns = append(r.Turns, Turn{Word: fmt.Sprintf("WORD%d", i), Player: PlayerLearner})
	}

	words := r.RecentWords()

	require.Len(t, words, HistoryWindow)
	assert.Equal(t, "WORD5", words[0])
	assert.Equal(t, "WORD19", words[len(words)-1])
}

func TestLocalRefereeRejectsUnknownWord(t *testing.T) {
	ref := NewLocalReferee(rand.New(rand.NewSource(1)))

	v, err := ref.Judge(context.Background(), []string{"CAT"}, "TXQZB")

	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.NotEmpty(t, v.Reason)
}

func TestLocalRefereeChainsWithFreshWord(t *testing.T) {
	ref := NewLocalReferee(rand.New(rand.NewSource(1)))
	history := []string{"APPLE", "EGG", "GOAT"}

	v, err := ref.Judge(context.Background(), history, "TEN")

	require.NoError(t, err)
	assert.True(t, v.Valid)
	require.NotEmpty(t, v.OpponentWord)
	assert.Equal(t, "N", v.OpponentWord[:1])
	assert.NotEmpty(t, v.OpponentDefinition)
	assert.NotContains(t, history, v.OpponentWord)
	assert.NotEqual(t, "TEN", v.OpponentWord)
}

func TestLocalRefereeConcedesWhenExhausted(t *testing.T) {
	ref := NewLocalReferee(rand.New(rand.NewSource(1)))
	// Every opponent word starting with N is already on the board.
	history := []string{"NET", "NINE", "NIGHT", "NOSE", "NEW", "NAME", "NEST"}

	v, err := ref.Judge(context.Background(), history, "SUN")

	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Empty(t, v.OpponentWord)
	assert.Equal(t, "I'm out of words! You win!", v.Reason)
}
