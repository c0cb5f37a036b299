package content

import "github.com/karandv/lingua/internal/progress"

// Theme is one suggested learning direction for a scanned context.
type Theme struct {
	Title          string
	Tagline        string
	AvailableRoles []string
}

// ContextScan is the result of analyzing the learner's input.
type ContextScan struct {
	Description string
	Themes      []Theme
}

// GrammarFeedback is the coach's review of one learner utterance.
type GrammarFeedback struct {
	HasError                  bool
	UserOriginal              string
	CorrectedText             string
	Explanation               string
	BetterResponse            string
	BetterResponseExplanation string
}

// ChatMessage is one roleplay turn.
type ChatMessage struct {
	Role string // "user" or "partner"
	Text string
}

const (
	ChatRoleUser    = "user"
	ChatRolePartner = "partner"
)

// ThemeInput describes the context to scan. Text, ImageBase64, or both.
type ThemeInput struct {
	Text        string
	ImageBase64 string
	Language    string
	Difficulty  string
}

// VocabularyInput requests a vocabulary batch for a chosen theme.
type VocabularyInput struct {
	Context    string
	Theme      string
	Language   string
	Difficulty string

	// ExcludedWords are words the learner has already seen. Only the
	// most recent MaxExcludedWords are sent.
	ExcludedWords []string
}

// QuizInput requests a quiz batch over a vocabulary set.
type QuizInput struct {
	Context    string
	Theme      string
	Language   string
	Difficulty string
	Vocabulary []progress.VocabularyItem
}

// RoleplayInput carries the conversation state for the next reply.
type RoleplayInput struct {
	History     []ChatMessage
	Context     string
	UserRole    string
	PartnerRole string
	Theme       string
	Language    string
	Difficulty  string
}

// GrammarInput is one learner utterance plus its roleplay setting.
type GrammarInput struct {
	Text        string
	Language    string
	Difficulty  string
	Context     string
	UserRole    string
	PartnerRole string
}
