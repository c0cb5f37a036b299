package quiz

// Kind discriminates the question variants in a batch.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindScramble       Kind = "sentence-scramble"
	KindMatching       Kind = "matching"
)

// Pair is one term/definition pairing in a matching question.
type Pair struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Question represents one generated quiz question ready for grading.
// Kind selects which fields are meaningful.
type Question struct {
	// ID is unique within the batch and stable across retry subsets.
	ID string `json:"id"`

	Kind Kind `json:"type"`

	// Prompt is the question text displayed to the learner.
	Prompt string `json:"question"`

	// Explanation is shown after the question resolves. Always present.
	Explanation string `json:"explanation"`

	// Multiple choice: at least two options, one matching CorrectAnswer
	// by value.
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`

	// Sentence scramble: the learner rebuilds TargetWords in order from
	// the shuffled bank. SourceSentence is the native-language original.
	SourceSentence string   `json:"sourceSentence,omitempty"`
	TargetWords    []string `json:"targetWords,omitempty"`
	ShuffledWords  []string `json:"shuffledWords,omitempty"`

	// Matching: the authored pairs. Either selection order (term first
	// or definition first) forms a valid match.
	Pairs []Pair `json:"pairs,omitempty"`
}
