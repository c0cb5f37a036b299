package quiz

import (
	"math/rand"
	"testing"
)

func mcQuestion(id, prompt, correct string, options ...string) Question {
	return Question{
		ID: id, Kind: KindMultipleChoice, Prompt: prompt,
		Options: options, CorrectAnswer: correct,
		Explanation: "because",
	}
}

func scrambleQuestion(id string, target, shuffled []string) Question {
	return Question{
		ID: id, Kind: KindScramble, Prompt: "Build the sentence",
		SourceSentence: "source", TargetWords: target, ShuffledWords: shuffled,
		Explanation: "word order",
	}
}

func matchingQuestion(id string, pairs ...Pair) Question {
	return Question{
		ID: id, Kind: KindMatching, Prompt: "Match the words",
		Pairs: pairs, Explanation: "vocabulary",
	}
}

func testSession(questions ...Question) *Session {
	return NewSession(questions, WithRand(rand.New(rand.NewSource(1))))
}

func TestEmptyBatch(t *testing.T) {
	s := testSession()
	if s.Phase() != PhaseEmpty {
		t.Fatalf("phase = %v, want empty", s.Phase())
	}
	if s.Current() != nil {
		t.Error("no current question in an empty session")
	}
	if _, ok := s.AnswerChoice("x"); ok {
		t.Error("answering an empty session should be a no-op")
	}
}

func TestMultipleChoiceCorrect(t *testing.T) {
	s := testSession(mcQuestion("q1", "hello?", "hola", "hola", "adios"))

	correct, ok := s.AnswerChoice("hola")
	if !ok || !correct {
		t.Fatalf("answer = (%v, %v), want correct", correct, ok)
	}
	if s.Phase() != PhaseExplaining {
		t.Errorf("phase = %v, want explaining", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if len(s.Mistakes()) != 0 {
		t.Errorf("mistakes = %v, want none", s.Mistakes())
	}
}

func TestMultipleChoiceWrongIsTerminal(t *testing.T) {
	s := testSession(mcQuestion("q1", "hello?", "hola", "hola", "adios"))

	correct, ok := s.AnswerChoice("adios")
	if !ok || correct {
		t.Fatalf("answer = (%v, %v), want graded incorrect", correct, ok)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	if got := s.Mistakes(); len(got) != 1 || got[0] != "q1" {
		t.Errorf("mistakes = %v, want [q1]", got)
	}

	// No second attempt: the right answer afterwards changes nothing.
	if _, ok := s.AnswerChoice("hola"); ok {
		t.Error("resolved question should ignore further submissions")
	}
	if s.Score() != 0 || len(s.Mistakes()) != 1 {
		t.Error("duplicate submission mutated state")
	}
}

func TestScrambleAssemblyAndSubmit(t *testing.T) {
	target := []string{"yo", "quiero", "cafe"}
	s := testSession(scrambleQuestion("q1", target, []string{"cafe", "yo", "quiero"}))

	// Assemble in the wrong order, then fix it. Rearranging never grades.
	s.PickWord(0) // cafe
	s.PickWord(1) // yo
	if s.Phase() != PhaseAnswering {
		t.Fatal("picking words must not grade")
	}
	s.UnpickWord(0) // remove cafe
	s.PickWord(2)   // quiero
	s.PickWord(0)   // cafe

	got := s.Assembled()
	want := []string{"yo", "quiero", "cafe"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("assembled = %v, want %v", got, want)
		}
	}

	correct, ok := s.SubmitScramble()
	if !ok || !correct {
		t.Fatalf("submit = (%v, %v), want correct", correct, ok)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestScrambleTargetOrderIsAlwaysCorrect(t *testing.T) {
	// The grading invariant: picking bank words in target order always
	// grades correct, duplicates included.
	target := []string{"the", "dog", "bit", "the", "man"}
	shuffled := []string{"man", "the", "bit", "dog", "the"}
	s := testSession(scrambleQuestion("q1", target, shuffled))

	// Greedily pick each target word from unused bank slots.
	for _, w := range target {
		found := false
		for i, b := range shuffled {
			if b == w && !s.BankUsed(i) {
				s.PickWord(i)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("bank missing %q", w)
		}
	}

	correct, ok := s.SubmitScramble()
	if !ok || !correct {
		t.Fatalf("submit = (%v, %v), want correct", correct, ok)
	}
}

func TestScrambleWrongOrder(t *testing.T) {
	s := testSession(scrambleQuestion("q1", []string{"a", "b"}, []string{"a", "b"}))
	s.PickWord(1)
	s.PickWord(0)
	correct, ok := s.SubmitScramble()
	if !ok || correct {
		t.Fatalf("submit = (%v, %v), want incorrect", correct, ok)
	}
	if got := s.Mistakes(); len(got) != 1 || got[0] != "q1" {
		t.Errorf("mistakes = %v, want [q1]", got)
	}
}

func TestScrambleIncompleteSubmission(t *testing.T) {
	s := testSession(scrambleQuestion("q1", []string{"a", "b"}, []string{"b", "a"}))
	s.PickWord(1)
	correct, ok := s.SubmitScramble()
	if !ok || correct {
		t.Fatalf("submit = (%v, %v), want graded incorrect", correct, ok)
	}
}

func findCard(t *testing.T, s *Session, text string) int {
	t.Helper()
	for _, c := range s.Cards() {
		if c.Text == text && !c.Matched {
			return c.ID
		}
	}
	t.Fatalf("card %q not found", text)
	return -1
}

func TestMatchingAllPairs(t *testing.T) {
	s := testSession(matchingQuestion("q1",
		Pair{Term: "gato", Definition: "cat"},
		Pair{Term: "perro", Definition: "dog"},
	))

	if out := s.SelectCard(findCard(t, s, "gato")); out != MatchSelected {
		t.Fatalf("first tap = %v, want selected", out)
	}
	if out := s.SelectCard(findCard(t, s, "cat")); out != MatchPaired {
		t.Fatalf("pair = %v, want paired", out)
	}

	// Definition first is just as valid.
	s.SelectCard(findCard(t, s, "dog"))
	if out := s.SelectCard(findCard(t, s, "perro")); out != MatchCompleted {
		t.Fatalf("final pair = %v, want completed", out)
	}

	if s.Phase() != PhaseExplaining {
		t.Errorf("phase = %v, want explaining", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if len(s.Mistakes()) != 0 {
		t.Errorf("mistakes = %v, want none", s.Mistakes())
	}
}

func TestMatchingMismatchRecordsQuestionOnce(t *testing.T) {
	s := testSession(matchingQuestion("q1",
		Pair{Term: "gato", Definition: "cat"},
		Pair{Term: "perro", Definition: "dog"},
	))

	// Two mismatches: the question lands in the mistake set once.
	s.SelectCard(findCard(t, s, "gato"))
	if out := s.SelectCard(findCard(t, s, "dog")); out != MatchMismatch {
		t.Fatalf("mismatch = %v", out)
	}
	s.SelectCard(findCard(t, s, "perro"))
	if out := s.SelectCard(findCard(t, s, "cat")); out != MatchMismatch {
		t.Fatalf("mismatch = %v", out)
	}
	if got := s.Mistakes(); len(got) != 1 || got[0] != "q1" {
		t.Fatalf("mistakes = %v, want [q1] exactly once", got)
	}

	// Finishing the board resolves the question, but not into the score.
	s.SelectCard(findCard(t, s, "gato"))
	s.SelectCard(findCard(t, s, "cat"))
	s.SelectCard(findCard(t, s, "perro"))
	if out := s.SelectCard(findCard(t, s, "dog")); out != MatchCompleted {
		t.Fatalf("completion = %v", out)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0 after a mismatch", s.Score())
	}
}

func TestMatchingDuplicateDefinitionAcceptsEitherCard(t *testing.T) {
	s := testSession(matchingQuestion("q1",
		Pair{Term: "big", Definition: "large in size"},
		Pair{Term: "huge", Definition: "large in size"},
	))

	// Both definition cards carry the same text, so either one pairs
	// with either term.
	var defs []int
	for _, c := range s.Cards() {
		if c.Side == SideDefinition {
			defs = append(defs, c.ID)
		}
	}
	if len(defs) != 2 {
		t.Fatalf("definition cards = %d, want 2", len(defs))
	}

	s.SelectCard(findCard(t, s, "big"))
	if out := s.SelectCard(defs[0]); out != MatchPaired {
		t.Fatalf("first pairing = %v, want paired", out)
	}
	s.SelectCard(findCard(t, s, "huge"))
	if out := s.SelectCard(defs[1]); out != MatchCompleted {
		t.Fatalf("second pairing = %v, want completed", out)
	}

	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if len(s.Mistakes()) != 0 {
		t.Errorf("mistakes = %v, want none", s.Mistakes())
	}
}

func TestMatchingDeselect(t *testing.T) {
	s := testSession(matchingQuestion("q1", Pair{Term: "gato", Definition: "cat"}))
	id := findCard(t, s, "gato")
	s.SelectCard(id)
	if out := s.SelectCard(id); out != MatchDeselected {
		t.Fatalf("second tap = %v, want deselected", out)
	}
	if s.SelectedCard() != -1 {
		t.Error("selection should be cleared")
	}
}

func completeBatch(t *testing.T, s *Session, answers map[string]string) {
	t.Helper()
	for s.Phase() == PhaseAnswering {
		q := s.Current()
		if q.Kind != KindMultipleChoice {
			t.Fatalf("helper only drives multiple choice, got %v", q.Kind)
		}
		if _, ok := s.AnswerChoice(answers[q.ID]); !ok {
			t.Fatalf("answer %s rejected", q.ID)
		}
		s.Next()
	}
}

func TestSmartRetryReplaysOnlyMisses(t *testing.T) {
	s := testSession(
		mcQuestion("q1", "1?", "a", "a", "b"),
		mcQuestion("q2", "2?", "a", "a", "b"),
		mcQuestion("q3", "3?", "a", "a", "b"),
	)

	// Miss q1 and q3.
	completeBatch(t, s, map[string]string{"q1": "b", "q2": "a", "q3": "b"})
	if s.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.Phase())
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}

	if !s.SmartRetry() {
		t.Fatal("smart retry should start with mistakes present")
	}
	if s.Total() != 2 {
		t.Fatalf("retry total = %d, want 2", s.Total())
	}
	if s.Score() != 0 || len(s.Mistakes()) != 0 {
		t.Error("retry pass must reset score and mistakes")
	}
	// Subset preserves original batch order.
	if s.Current().ID != "q1" {
		t.Errorf("first retry question = %s, want q1", s.Current().ID)
	}

	// Miss only q3 this pass; the next retry narrows further.
	completeBatch(t, s, map[string]string{"q1": "a", "q3": "b"})
	if !s.SmartRetry() {
		t.Fatal("second smart retry")
	}
	if s.Total() != 1 || s.Current().ID != "q3" {
		t.Errorf("second retry = %d questions starting %s, want just q3",
			s.Total(), s.Current().ID)
	}
}

func TestSmartRetryUnavailableOnPerfectPass(t *testing.T) {
	s := testSession(mcQuestion("q1", "1?", "a", "a", "b"))
	completeBatch(t, s, map[string]string{"q1": "a"})
	if s.SmartRetry() {
		t.Error("smart retry with no mistakes should refuse")
	}
}

func TestFullResetRestoresOriginalBatch(t *testing.T) {
	s := testSession(
		mcQuestion("q1", "1?", "a", "a", "b"),
		mcQuestion("q2", "2?", "a", "a", "b"),
	)
	completeBatch(t, s, map[string]string{"q1": "b", "q2": "b"})
	s.SmartRetry()
	completeBatch(t, s, map[string]string{"q1": "a", "q2": "a"})

	if !s.FullReset() {
		t.Fatal("full reset from complete")
	}
	if s.Total() != 2 || s.Score() != 0 || len(s.Mistakes()) != 0 {
		t.Errorf("reset state: total=%d score=%d mistakes=%v",
			s.Total(), s.Score(), s.Mistakes())
	}
}

func TestTransientStateRebuiltPerQuestion(t *testing.T) {
	s := testSession(
		scrambleQuestion("q1", []string{"a", "b"}, []string{"b", "a"}),
		scrambleQuestion("q2", []string{"x", "y"}, []string{"y", "x"}),
	)
	s.PickWord(0)
	s.PickWord(1)
	s.SubmitScramble()
	s.Next()

	if got := s.Assembled(); len(got) != 0 {
		t.Errorf("assembled = %v, want empty on question entry", got)
	}
}

func TestNextOnlyFromExplaining(t *testing.T) {
	s := testSession(mcQuestion("q1", "1?", "a", "a", "b"))
	if s.Next() {
		t.Error("next during answering should refuse")
	}
	s.AnswerChoice("a")
	if !s.Next() {
		t.Error("next after resolution should advance")
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase())
	}
}
