package learn

import (
	"context"
	"encoding/json"

	tea "charm.land/bubbletea/v2"

	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
	"github.com/karandv/lingua/internal/store"
)

// themesMsg carries the context scan result.
type themesMsg struct {
	scan *content.ContextScan
	err  error
}

// contentMsg carries the generated lesson for the chosen theme.
type contentMsg struct {
	vocab     []progress.VocabularyItem
	questions []quiz.Question
	err       error
}

// replyMsg carries the roleplay partner's reply plus grammar feedback on
// the learner's last message.
type replyMsg struct {
	reply    string
	feedback *content.GrammarFeedback
	err      error
}

// lessonPayload is the history item's content JSON.
type lessonPayload struct {
	Vocabulary []progress.VocabularyItem `json:"vocabulary"`
	Quizzes    []quiz.Question           `json:"quizzes"`
}

func encodeContent(vocab []progress.VocabularyItem, questions []quiz.Question) (json.RawMessage, error) {
	return json.Marshal(lessonPayload{Vocabulary: vocab, Quizzes: questions})
}

func encodeChat(history []content.ChatMessage) (json.RawMessage, error) {
	if len(history) == 0 {
		return nil, nil
	}
	return json.Marshal(history)
}

func (s *LearnScreen) scanCmd(text string) tea.Cmd {
	svc := s.svc
	input := content.ThemeInput{
		Text:       text,
		Language:   s.language,
		Difficulty: s.difficulty,
	}
	return func() tea.Msg {
		scan, err := svc.GenerateThemes(context.Background(), input)
		return themesMsg{scan: scan, err: err}
	}
}

// generateCmd builds the lesson: vocabulary first, excluding words from
// recent history so back-to-back sessions stay fresh, then a quiz over
// that vocabulary.
func (s *LearnScreen) generateCmd() tea.Cmd {
	svc := s.svc
	historyRepo := s.historyRepo
	input := content.VocabularyInput{
		Context:    s.scan.Description,
		Theme:      s.theme.Title,
		Language:   s.language,
		Difficulty: s.difficulty,
	}
	quizBase := content.QuizInput{
		Context:    s.scan.Description,
		Theme:      s.theme.Title,
		Language:   s.language,
		Difficulty: s.difficulty,
	}
	return func() tea.Msg {
		ctx := context.Background()

		input.ExcludedWords = recentWords(ctx, historyRepo)

		vocab, err := svc.GenerateVocabulary(ctx, input)
		if err != nil {
			return contentMsg{err: err}
		}

		quizBase.Vocabulary = vocab
		questions, err := svc.GenerateQuizzes(ctx, quizBase)
		if err != nil {
			return contentMsg{err: err}
		}
		return contentMsg{vocab: vocab, questions: questions}
	}
}

// recentWords gathers vocabulary from recent history items, oldest
// first. The vocabulary generator keeps only the newest of these.
func recentWords(ctx context.Context, repo store.HistoryRepo) []string {
	items, err := repo.Recent(ctx, 10)
	if err != nil {
		return nil
	}
	var words []string
	for i := len(items) - 1; i >= 0; i-- {
		var payload lessonPayload
		if err := json.Unmarshal(items[i].Content, &payload); err != nil {
			continue
		}
		for _, v := range payload.Vocabulary {
			words = append(words, v.Word)
		}
	}
	return words
}

func (s *LearnScreen) replyCmd(text string) tea.Cmd {
	svc := s.svc
	grammar := content.GrammarInput{
		Text:        text,
		Language:    s.language,
		Difficulty:  s.difficulty,
		Context:     s.scan.Description,
		UserRole:    s.userRole,
		PartnerRole: s.aiRole,
	}
	roleplay := content.RoleplayInput{
		History:     append([]content.ChatMessage(nil), s.chatHistory...),
		Context:     s.scan.Description,
		UserRole:    s.userRole,
		PartnerRole: s.aiRole,
		Theme:       s.theme.Title,
		Language:    s.language,
		Difficulty:  s.difficulty,
	}
	return func() tea.Msg {
		ctx := context.Background()
		feedback := svc.AnalyzeGrammar(ctx, grammar)
		reply, err := svc.RoleplayReply(ctx, roleplay)
		return replyMsg{reply: reply, feedback: feedback, err: err}
	}
}
