package content

const (
	// MaxExcludedWords caps how many already-seen words are sent with a
	// vocabulary request.
	MaxExcludedWords = 50

	// ChatHistoryWindow caps how many conversation turns are sent with
	// a roleplay or grammar request.
	ChatHistoryWindow = 10

	// VocabularyCount is the number of items requested per batch.
	VocabularyCount = 8

	// QuizCount is the number of questions requested per batch.
	QuizCount = 5
)

// Config holds generation settings shared by all content calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
