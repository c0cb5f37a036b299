package quiz

import (
	"math/rand"
	"time"
)

// Phase is the session's position in the grading flow.
type Phase string

const (
	// PhaseAnswering means the current question accepts input.
	PhaseAnswering Phase = "answering"

	// PhaseExplaining means the current question resolved and its
	// explanation is showing. Input other than Next is ignored.
	PhaseExplaining Phase = "explaining"

	// PhaseComplete means every question in the pass resolved.
	PhaseComplete Phase = "complete"

	// PhaseEmpty means the session was built from an empty batch.
	PhaseEmpty Phase = "empty"
)

// CardSide distinguishes the two halves of a matching board.
type CardSide string

const (
	SideTerm       CardSide = "term"
	SideDefinition CardSide = "definition"
)

// Card is one tile on a matching board.
type Card struct {
	ID      int
	Text    string
	Side    CardSide
	Matched bool
}

// MatchOutcome describes the effect of a card selection.
type MatchOutcome int

const (
	// MatchIgnored: selection had no effect (already matched, wrong phase).
	MatchIgnored MatchOutcome = iota
	// MatchSelected: first card of a prospective pair selected.
	MatchSelected
	// MatchDeselected: the selected card was tapped again.
	MatchDeselected
	// MatchPaired: a valid pair locked in.
	MatchPaired
	// MatchMismatch: invalid pair, both cards released.
	MatchMismatch
	// MatchCompleted: the pair locked in and the board is finished.
	MatchCompleted
)

// Session grades one quiz batch. Score counts questions answered
// correctly on the first attempt within the pass; each question lands in
// the mistake set at most once per pass. Retry passes rebuild the
// session from the original batch rather than patching state.
//
// Session is a pure state machine with no I/O; the TUI layer drives it
// and persists outcomes.
type Session struct {
	original []Question
	active   []Question
	pos      int
	score    int
	phase    Phase

	mistakes   []string
	mistakeSet map[string]bool

	lastCorrect bool

	// Scramble: indexes into ShuffledWords, in pick order.
	picked []int

	// Matching board.
	cards        []Card
	selectedCard int
	matchedPairs int
	missedHere   bool

	rng *rand.Rand
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand overrides the shuffle source, for tests.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// NewSession builds a session over a question batch. An empty batch
// yields a session in PhaseEmpty.
func NewSession(questions []Question, opts ...SessionOption) *Session {
	s := &Session{
		original: append([]Question(nil), questions...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startPass(s.original)
	return s
}

func (s *Session) startPass(questions []Question) {
	s.active = append([]Question(nil), questions...)
	s.pos = 0
	s.score = 0
	s.mistakes = nil
	s.mistakeSet = make(map[string]bool)
	if len(s.active) == 0 {
		s.phase = PhaseEmpty
		return
	}
	s.phase = PhaseAnswering
	s.enterQuestion()
}

// enterQuestion resets per-question transient state.
func (s *Session) enterQuestion() {
	s.picked = nil
	s.cards = nil
	s.selectedCard = -1
	s.matchedPairs = 0
	s.missedHere = false

	q := s.Current()
	if q != nil && q.Kind == KindMatching {
		s.buildBoard(q)
	}
}

func (s *Session) buildBoard(q *Question) {
	s.cards = make([]Card, 0, 2*len(q.Pairs))
	for _, p := range q.Pairs {
		s.cards = append(s.cards,
			Card{Text: p.Term, Side: SideTerm},
			Card{Text: p.Definition, Side: SideDefinition},
		)
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	for i := range s.cards {
		s.cards[i].ID = i
	}
}

// Current returns the question being graded, or nil outside a pass.
func (s *Session) Current() *Question {
	if s.phase != PhaseAnswering && s.phase != PhaseExplaining {
		return nil
	}
	return &s.active[s.pos]
}

// Phase returns the session phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns first-attempt-correct answers in the current pass.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the current pass.
func (s *Session) Total() int { return len(s.active) }

// Position returns the zero-based index of the current question.
func (s *Session) Position() int { return s.pos }

// LastCorrect reports whether the question that just resolved was
// answered correctly. Meaningful only in PhaseExplaining.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// Mistakes returns the IDs missed this pass, in the order recorded.
func (s *Session) Mistakes() []string {
	return append([]string(nil), s.mistakes...)
}

func (s *Session) recordMistake(q *Question) {
	s.missedHere = true
	if s.mistakeSet[q.ID] {
		return
	}
	s.mistakeSet[q.ID] = true
	s.mistakes = append(s.mistakes, q.ID)
}

func (s *Session) resolve(correct bool) {
	if correct {
		s.score++
	}
	s.lastCorrect = correct
	s.phase = PhaseExplaining
}

// AnswerChoice grades a multiple-choice selection by option value.
// There is no second attempt: a wrong choice resolves the question with
// the correct answer revealed. Submissions after the question resolved
// are no-ops (ok = false).
func (s *Session) AnswerChoice(option string) (correct, ok bool) {
	q := s.Current()
	if s.phase != PhaseAnswering || q == nil || q.Kind != KindMultipleChoice {
		return false, false
	}
	correct = option == q.CorrectAnswer
	if !correct {
		s.recordMistake(q)
	}
	s.resolve(correct)
	return correct, true
}

// PickWord moves bank word i into the next answer slot. Duplicate words
// are distinct slots; each bank index can be used once.
func (s *Session) PickWord(i int) bool {
	q := s.Current()
	if s.phase != PhaseAnswering || q == nil || q.Kind != KindScramble {
		return false
	}
	if i < 0 || i >= len(q.ShuffledWords) {
		return false
	}
	for _, p := range s.picked {
		if p == i {
			return false
		}
	}
	s.picked = append(s.picked, i)
	return true
}

// UnpickWord removes answer slot j, returning its word to the bank.
func (s *Session) UnpickWord(j int) bool {
	q := s.Current()
	if s.phase != PhaseAnswering || q == nil || q.Kind != KindScramble {
		return false
	}
	if j < 0 || j >= len(s.picked) {
		return false
	}
	s.picked = append(s.picked[:j], s.picked[j+1:]...)
	return true
}

// Assembled returns the answer slots in order.
func (s *Session) Assembled() []string {
	q := s.Current()
	if q == nil || q.Kind != KindScramble {
		return nil
	}
	out := make([]string, 0, len(s.picked))
	for _, i := range s.picked {
		out = append(out, q.ShuffledWords[i])
	}
	return out
}

// BankUsed reports whether bank index i sits in an answer slot.
func (s *Session) BankUsed(i int) bool {
	for _, p := range s.picked {
		if p == i {
			return true
		}
	}
	return false
}

// SubmitScramble grades the assembled sentence. Grading happens only on
// explicit submission; rearranging never grades. Correct means exact
// token-order equality with the target.
func (s *Session) SubmitScramble() (correct, ok bool) {
	q := s.Current()
	if s.phase != PhaseAnswering || q == nil || q.Kind != KindScramble {
		return false, false
	}
	assembled := s.Assembled()
	correct = len(assembled) == len(q.TargetWords)
	if correct {
		for i, w := range assembled {
			if w != q.TargetWords[i] {
				correct = false
				break
			}
		}
	}
	if !correct {
		s.recordMistake(q)
	}
	s.resolve(correct)
	return correct, true
}

// Cards returns the matching board.
func (s *Session) Cards() []Card { return s.cards }

// SelectedCard returns the ID of the pending selection, or -1.
func (s *Session) SelectedCard() int { return s.selectedCard }

// SelectCard handles one tap on a matching board. The second selection
// forms a pair: valid pairs lock in, invalid pairs release both cards
// and record the question in the mistake set (at most once for the
// whole board). Validity is by text, so when two pairs share a
// definition either definition card accepts either term. The question
// resolves when every pair is matched, counting toward the score only
// if the board produced no mismatch.
func (s *Session) SelectCard(cardID int) MatchOutcome {
	q := s.Current()
	if s.phase != PhaseAnswering || q == nil || q.Kind != KindMatching {
		return MatchIgnored
	}
	if cardID < 0 || cardID >= len(s.cards) || s.cards[cardID].Matched {
		return MatchIgnored
	}

	if s.selectedCard == -1 {
		s.selectedCard = cardID
		return MatchSelected
	}
	if s.selectedCard == cardID {
		s.selectedCard = -1
		return MatchDeselected
	}

	first := &s.cards[s.selectedCard]
	second := &s.cards[cardID]
	s.selectedCard = -1

	if first.Side == second.Side || !pairedInList(q.Pairs, first, second) {
		s.recordMistake(q)
		return MatchMismatch
	}

	first.Matched = true
	second.Matched = true
	s.matchedPairs++
	if s.matchedPairs == len(q.Pairs) {
		s.resolve(!s.missedHere)
		return MatchCompleted
	}
	return MatchPaired
}

// pairedInList reports whether the two cards read as an authored
// term/definition pairing. The caller guarantees opposite sides.
func pairedInList(pairs []Pair, a, b *Card) bool {
	term, def := a, b
	if term.Side == SideDefinition {
		term, def = b, a
	}
	for _, p := range pairs {
		if p.Term == term.Text && p.Definition == def.Text {
			return true
		}
	}
	return false
}

// Next advances past a resolved question. From the last question it
// completes the pass.
func (s *Session) Next() bool {
	if s.phase != PhaseExplaining {
		return false
	}
	s.pos++
	if s.pos >= len(s.active) {
		s.phase = PhaseComplete
		return true
	}
	s.phase = PhaseAnswering
	s.enterQuestion()
	return true
}

// SmartRetry starts a pass over just the questions missed in the pass
// that just completed, preserving their original batch order. Score and
// mistakes reset; repeated retries narrow to the latest pass's misses.
func (s *Session) SmartRetry() bool {
	if s.phase != PhaseComplete || len(s.mistakes) == 0 {
		return false
	}
	missed := s.mistakeSet
	var subset []Question
	for _, q := range s.original {
		if missed[q.ID] {
			subset = append(subset, q)
		}
	}
	s.startPass(subset)
	return true
}

// FullReset starts a fresh pass over the entire original batch.
func (s *Session) FullReset() bool {
	if s.phase != PhaseComplete {
		return false
	}
	s.startPass(s.original)
	return true
}
