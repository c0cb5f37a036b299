package wordchain

import (
	"context"
	"math/rand"
	"time"
)

// Verdict is a referee's ruling on a candidate word. When Valid is true
// and OpponentWord is empty, the referee concedes and the learner wins.
type Verdict struct {
	Valid              bool
	Reason             string
	OpponentWord       string
	OpponentDefinition string
}

// Referee judges a candidate word against the recent round history and,
// when the word stands, answers with the opponent's next play.
type Referee interface {
	Judge(ctx context.Context, history []string, candidate string) (Verdict, error)
}

// LocalReferee rules using the built-in dictionary. It never returns an
// error, which makes it a safe fallback when no model provider is
// configured.
type LocalReferee struct {
	rng *rand.Rand
}

// NewLocalReferee builds a dictionary referee. A nil rng gets a
// time-seeded one.
func NewLocalReferee(rng *rand.Rand) *LocalReferee {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LocalReferee{rng: rng}
}

func (r *LocalReferee) Judge(_ context.Context, history []string, candidate string) (Verdict, error) {
	if !Known(candidate) {
		return Verdict{Reason: "That's not a word I recognize!"}, nil
	}

	used := make(map[string]bool, len(history)+1)
	for _, w := range history {
		used[w] = true
	}
	used[candidate] = true

	letter := candidate[len(candidate)-1:]
	candidates := opponentCandidates(letter, used)
	if len(candidates) == 0 {
		return Verdict{Valid: true, Reason: "I'm out of words! You win!"}, nil
	}

	word := candidates[r.rng.Intn(len(candidates))]
	return Verdict{
		Valid:              true,
		OpponentWord:       word,
		OpponentDefinition: botVocabulary[word],
	}, nil
}
