package content

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/karandv/lingua/internal/llm"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
	"github.com/karandv/lingua/internal/wordchain"
)

// Service generates learning content through an LLM provider. All calls
// are synchronous; screens run them inside commands.
type Service struct {
	provider llm.Provider
	cfg      Config
	rng      *rand.Rand
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithRand sets the randomness source used for shuffling word banks.
func WithRand(rng *rand.Rand) ServiceOption {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		provider: provider,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type themeOutput struct {
	ContextDescription string `json:"context_description"`
	SuggestedThemes    []struct {
		Title          string   `json:"title"`
		Tagline        string   `json:"tagline"`
		AvailableRoles []string `json:"available_roles"`
	} `json:"suggested_themes"`
}

// GenerateThemes analyzes the learner's input and proposes themes.
func (s *Service) GenerateThemes(ctx context.Context, input ThemeInput) (*ContextScan, error) {
	ctx = llm.WithPurpose(ctx, "themes")

	req := llm.Request{
		System: themeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildThemeUserMessage(input)},
		},
		Schema:      ThemeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("theme generation: %w", err)
	}

	var out themeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse theme response: %w", err)
	}

	scan := &ContextScan{Description: out.ContextDescription}
	for _, t := range out.SuggestedThemes {
		scan.Themes = append(scan.Themes, Theme{
			Title:          t.Title,
			Tagline:        t.Tagline,
			AvailableRoles: t.AvailableRoles,
		})
	}
	return scan, nil
}

type vocabularyOutput struct {
	Vocabulary []struct {
		Word               string `json:"word"`
		Pronunciation      string `json:"pronunciation"`
		Meaning            string `json:"meaning"`
		Example            string `json:"example"`
		ExampleTranslation string `json:"example_translation"`
	} `json:"vocabulary"`
}

// GenerateVocabulary produces a vocabulary batch for a chosen theme.
func (s *Service) GenerateVocabulary(ctx context.Context, input VocabularyInput) ([]progress.VocabularyItem, error) {
	ctx = llm.WithPurpose(ctx, "vocabulary")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVocabularyUserMessage(input)},
		},
		Schema:      VocabularySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vocabulary generation: %w", err)
	}

	var out vocabularyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse vocabulary response: %w", err)
	}

	items := make([]progress.VocabularyItem, 0, len(out.Vocabulary))
	for _, v := range out.Vocabulary {
		items = append(items, progress.VocabularyItem{
			Word:               v.Word,
			Pronunciation:      v.Pronunciation,
			Meaning:            v.Meaning,
			Example:            v.Example,
			ExampleTranslation: v.ExampleTranslation,
		})
	}
	return items, nil
}

type quizOutput struct {
	Quizzes []struct {
		ID             int      `json:"id"`
		Type           string   `json:"type"`
		Question       string   `json:"question"`
		Explanation    string   `json:"explanation"`
		Options        []string `json:"options"`
		CorrectAnswer  string   `json:"correct_answer"`
		SourceSentence string   `json:"source_sentence"`
		TargetWords    []string `json:"target_words"`
		Pairs          []struct {
			Term       string `json:"term"`
			Definition string `json:"definition"`
		} `json:"pairs"`
	} `json:"quizzes"`
}

// GenerateQuizzes produces a quiz batch over a vocabulary set. Scramble
// word banks are shuffled locally so the model never leaks the answer
// order.
func (s *Service) GenerateQuizzes(ctx context.Context, input QuizInput) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quizzes")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]quiz.Question, 0, len(out.Quizzes))
	for _, q := range out.Quizzes {
		question := quiz.Question{
			ID:             fmt.Sprintf("q%d", q.ID),
			Kind:           quiz.Kind(q.Type),
			Prompt:         q.Question,
			Explanation:    q.Explanation,
			Options:        q.Options,
			CorrectAnswer:  q.CorrectAnswer,
			SourceSentence: q.SourceSentence,
			TargetWords:    q.TargetWords,
		}
		if len(q.TargetWords) > 0 {
			question.ShuffledWords = s.shuffled(q.TargetWords)
		}
		for _, p := range q.Pairs {
			question.Pairs = append(question.Pairs, quiz.Pair{Term: p.Term, Definition: p.Definition})
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (s *Service) shuffled(words []string) []string {
	bank := make([]string, len(words))
	copy(bank, words)
	s.rng.Shuffle(len(bank), func(i, j int) {
		bank[i], bank[j] = bank[j], bank[i]
	})
	return bank
}

// RoleplayReply generates the partner's next in-character message.
func (s *Service) RoleplayReply(ctx context.Context, input RoleplayInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "roleplay")

	history := input.History
	if len(history) > ChatHistoryWindow {
		history = history[len(history)-ChatHistoryWindow:]
	}

	messages := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleAssistant
		if m.Role == ChatRoleUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}

	req := llm.Request{
		System:      buildRoleplaySystemPrompt(input),
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("roleplay reply: %w", err)
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	return text, nil
}

type grammarOutput struct {
	HasError                  bool   `json:"has_error"`
	UserOriginal              string `json:"user_original"`
	CorrectedText             string `json:"corrected_text"`
	Explanation               string `json:"explanation"`
	BetterResponse            string `json:"better_response"`
	BetterResponseExplanation string `json:"better_response_explanation"`
}

// AnalyzeGrammar reviews one learner utterance. Failures degrade to a
// no-error analysis so the chat flow keeps moving.
func (s *Service) AnalyzeGrammar(ctx context.Context, input GrammarInput) *GrammarFeedback {
	ctx = llm.WithPurpose(ctx, "grammar")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGrammarUserMessage(input)},
		},
		Schema:      GrammarSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	fallback := &GrammarFeedback{
		UserOriginal:   input.Text,
		CorrectedText:  input.Text,
		BetterResponse: input.Text,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallback
	}

	var out grammarOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback
	}

	feedback := &GrammarFeedback{
		HasError:                  out.HasError,
		UserOriginal:              out.UserOriginal,
		CorrectedText:             out.CorrectedText,
		Explanation:               out.Explanation,
		BetterResponse:            out.BetterResponse,
		BetterResponseExplanation: out.BetterResponseExplanation,
	}
	if feedback.UserOriginal == "" {
		feedback.UserOriginal = input.Text
	}
	if feedback.BetterResponse == "" {
		feedback.BetterResponse = feedback.CorrectedText
	}
	if feedback.BetterResponseExplanation == "" {
		feedback.BetterResponseExplanation = "More natural phrasing."
	}
	return feedback
}

type wordChainOutput struct {
	IsValid       bool   `json:"is_valid"`
	InvalidReason string `json:"invalid_reason"`
	AIWord        string `json:"ai_word"`
	AIDefinition  string `json:"ai_definition"`
}

// WordChainVerdict asks the model to judge a word-chain play and answer
// with the opponent's next word.
func (s *Service) WordChainVerdict(ctx context.Context, history []string, candidate string) (wordchain.Verdict, error) {
	ctx = llm.WithPurpose(ctx, "word-chain")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildWordChainUserMessage(history, candidate)},
		},
		Schema:      WordChainSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return wordchain.Verdict{}, fmt.Errorf("word-chain verdict: %w", err)
	}

	var out wordChainOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return wordchain.Verdict{}, fmt.Errorf("parse word-chain response: %w", err)
	}

	return wordchain.Verdict{
		Valid:              out.IsValid,
		Reason:             out.InvalidReason,
		OpponentWord:       out.AIWord,
		OpponentDefinition: out.AIDefinition,
	}, nil
}
