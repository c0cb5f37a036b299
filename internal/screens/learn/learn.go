package learn

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
	"github.com/karandv/lingua/internal/router"
	"github.com/karandv/lingua/internal/screen"
	"github.com/karandv/lingua/internal/store"
	"github.com/karandv/lingua/internal/ui/components"
	"github.com/karandv/lingua/internal/ui/layout"
)

// phase tracks where the learner is in the scan-learn-quiz-chat flow.
type phase int

const (
	phaseContext phase = iota
	phaseScanning
	phaseThemes
	phaseRoles
	phaseGenerating
	phaseVocab
	phaseQuiz
	phaseRecap
	phaseChat
)

// LearnScreen drives a full learning session: describe a context, pick a
// theme and role, study the generated vocabulary, take the quiz, then
// optionally roleplay the scene.
type LearnScreen struct {
	tracker     *progress.Tracker
	svc         *content.Service
	eventRepo   store.EventRepo
	historyRepo store.HistoryRepo
	chatRepo    store.ChatRepo
	language    string
	difficulty  string

	phase  phase
	errMsg string
	notice string

	contextInput components.TextInput

	scan     *content.ContextScan
	themeIdx int
	roleIdx  int
	theme    content.Theme
	userRole string
	aiRole   string

	historyID string
	vocab     []progress.VocabularyItem
	questions []quiz.Question
	vocabIdx  int

	session      *quiz.Session
	optionCursor int
	passMode     string
	passLogged   bool
	quizCounted  bool

	recapCursor int
	themeBonus  bool

	chatID       string
	chatHistory  []content.ChatMessage
	chatInput    components.TextInput
	feedback     *content.GrammarFeedback
	awaitingChat bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates the learn screen at the context-entry step.
func New(tracker *progress.Tracker, svc *content.Service, eventRepo store.EventRepo, historyRepo store.HistoryRepo, chatRepo store.ChatRepo, language, difficulty string) *LearnScreen {
	return &LearnScreen{
		tracker:      tracker,
		svc:          svc,
		eventRepo:    eventRepo,
		historyRepo:  historyRepo,
		chatRepo:     chatRepo,
		language:     language,
		difficulty:   difficulty,
		contextInput: components.NewTextInput("Describe your surroundings...", false, 48),
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	return s.contextInput.Init()
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseContext:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Scan"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseThemes, phaseRoles:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseVocab:
		return []layout.KeyHint{
			{Key: "←→", Description: "Flip cards"},
			{Key: "S", Description: "Save word"},
			{Key: "Enter", Description: "Start quiz"},
		}
	case phaseQuiz:
		return s.quizKeyHints()
	case phaseRecap:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Home"},
		}
	case phaseChat:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "End chat"},
		}
	}
	return nil
}

func (s *LearnScreen) quizKeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case quiz.PhaseExplaining:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case quiz.PhaseComplete:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		if len(s.session.Mistakes()) > 0 {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Smart retry"})
		}
		return append(hints, layout.KeyHint{Key: "F", Description: "Restart quiz"})
	}
	q := s.session.Current()
	if q == nil {
		return nil
	}
	switch q.Kind {
	case quiz.KindMultipleChoice:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
	case quiz.KindScramble:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick word"},
			{Key: "Backspace", Description: "Undo"},
			{Key: "Enter", Description: "Check"},
		}
	case quiz.KindMatching:
		return []layout.KeyHint{{Key: "1-9", Description: "Flip card"}}
	}
	return nil
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case themesMsg:
		if msg.err != nil {
			s.phase = phaseContext
			s.errMsg = "Couldn't scan that context. Try again."
			return s, s.contextInput.Init()
		}
		s.scan = msg.scan
		s.themeIdx = 0
		s.phase = phaseThemes
		return s, nil

	case contentMsg:
		if msg.err != nil {
			s.phase = phaseThemes
			s.errMsg = "Couldn't build your lesson. Pick a theme to retry."
			return s, nil
		}
		return s, s.applyContent(msg)

	case replyMsg:
		s.awaitingChat = false
		if msg.err != nil {
			s.chatHistory = append(s.chatHistory, content.ChatMessage{
				Role: content.ChatRolePartner,
				Text: "(The conversation dropped. Say that again?)",
			})
			return s, nil
		}
		s.feedback = msg.feedback
		s.chatHistory = append(s.chatHistory, content.ChatMessage{
			Role: content.ChatRolePartner,
			Text: msg.reply,
		})
		s.persistChat()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *LearnScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseContext:
		s.contextInput, cmd = s.contextInput.Update(msg)
	case phaseChat:
		if !s.awaitingChat {
			s.chatInput, cmd = s.chatInput.Update(msg)
		}
	}
	return s, cmd
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// The mission banner shows until the next keypress.
	s.notice = ""

	switch s.phase {
	case phaseContext:
		return s.handleContextKey(key, msg)
	case phaseScanning, phaseGenerating:
		return s, nil
	case phaseThemes:
		return s.handleThemesKey(key)
	case phaseRoles:
		return s.handleRolesKey(key)
	case phaseVocab:
		return s.handleVocabKey(key)
	case phaseQuiz:
		return s.handleQuizKey(key)
	case phaseRecap:
		return s.handleRecapKey(key)
	case phaseChat:
		return s.handleChatKey(key, msg)
	}
	return s, nil
}

func (s *LearnScreen) handleContextKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		return s, popCmd()
	case "enter":
		text := strings.TrimSpace(s.contextInput.Value())
		if text == "" {
			return s, nil
		}
		s.errMsg = ""
		s.phase = phaseScanning
		return s, s.scanCmd(text)
	}
	var cmd tea.Cmd
	s.contextInput, cmd = s.contextInput.Update(msg)
	return s, cmd
}

func (s *LearnScreen) handleThemesKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.phase = phaseContext
		return s, s.contextInput.Init()
	case "up", "k":
		if s.themeIdx > 0 {
			s.themeIdx--
		}
	case "down", "j":
		if s.themeIdx < len(s.scan.Themes)-1 {
			s.themeIdx++
		}
	case "enter":
		s.theme = s.scan.Themes[s.themeIdx]
		s.roleIdx = 0
		s.phase = phaseRoles
	}
	return s, nil
}

func (s *LearnScreen) handleRolesKey(key string) (screen.Screen, tea.Cmd) {
	roles := s.theme.AvailableRoles
	switch key {
	case "esc":
		s.phase = phaseThemes
		return s, nil
	case "up", "k":
		if s.roleIdx > 0 {
			s.roleIdx--
		}
	case "down", "j":
		if s.roleIdx < len(roles)-1 {
			s.roleIdx++
		}
	case "enter":
		if len(roles) == 0 {
			s.userRole, s.aiRole = "Visitor", "Local"
		} else {
			s.userRole = roles[s.roleIdx]
			s.aiRole = partnerFor(roles, s.roleIdx)
		}
		s.errMsg = ""
		s.phase = phaseGenerating
		return s, s.generateCmd()
	}
	return s, nil
}

// partnerFor picks the conversation partner: the next role after the
// learner's choice, wrapping around.
func partnerFor(roles []string, picked int) string {
	if len(roles) < 2 {
		return "Conversation Partner"
	}
	return roles[(picked+1)%len(roles)]
}

func (s *LearnScreen) handleVocabKey(key string) (screen.Screen, tea.Cmd) {
	if len(s.vocab) == 0 {
		s.startQuizPass("initial")
		s.phase = phaseQuiz
		return s, nil
	}
	switch key {
	case "left", "h":
		if s.vocabIdx > 0 {
			s.vocabIdx--
		}
	case "right", "l":
		if s.vocabIdx < len(s.vocab)-1 {
			s.vocabIdx++
		}
	case "s":
		item := s.vocab[s.vocabIdx]
		s.tracker.ToggleSavedWord(context.Background(), item)
	case "esc":
		return s, popCmd()
	case "enter":
		s.startQuizPass("initial")
		s.phase = phaseQuiz
	}
	return s, nil
}

func (s *LearnScreen) startQuizPass(mode string) {
	if s.session == nil {
		s.session = quiz.NewSession(s.questions)
	}
	s.passMode = mode
	s.passLogged = false
	s.optionCursor = 0
}

func (s *LearnScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case quiz.PhaseExplaining:
		if key == "enter" {
			s.session.Next()
			s.optionCursor = 0
			if s.session.Phase() == quiz.PhaseComplete {
				s.logQuizPass()
			}
		}
		return s, nil

	case quiz.PhaseComplete:
		switch key {
		case "r":
			if s.session.SmartRetry() {
				s.passMode = "smart-retry"
				s.passLogged = false
				s.optionCursor = 0
			}
		case "f":
			if s.session.FullReset() {
				s.passMode = "full-reset"
				s.passLogged = false
				s.optionCursor = 0
			}
		case "enter":
			s.enterRecap()
		}
		return s, nil

	case quiz.PhaseEmpty:
		if key == "enter" {
			s.enterRecap()
		}
		return s, nil
	}

	q := s.session.Current()
	if q == nil {
		return s, nil
	}
	switch q.Kind {
	case quiz.KindMultipleChoice:
		s.handleChoiceKey(key, q)
	case quiz.KindScramble:
		s.handleScrambleKey(key, q)
	case quiz.KindMatching:
		s.handleMatchingKey(key)
	}
	return s, nil
}

func (s *LearnScreen) handleChoiceKey(key string, q *quiz.Question) {
	switch key {
	case "up", "k":
		if s.optionCursor > 0 {
			s.optionCursor--
		}
	case "down", "j":
		if s.optionCursor < len(q.Options)-1 {
			s.optionCursor++
		}
	case "enter":
		s.session.AnswerChoice(q.Options[s.optionCursor])
	}
}

func (s *LearnScreen) handleScrambleKey(key string, q *quiz.Question) {
	switch key {
	case "backspace":
		if n := len(s.session.Assembled()); n > 0 {
			s.session.UnpickWord(n - 1)
		}
	case "enter":
		s.session.SubmitScramble()
	default:
		if i := digitIndex(key); i >= 0 {
			s.session.PickWord(i)
		}
	}
}

func (s *LearnScreen) handleMatchingKey(key string) {
	if i := digitIndex(key); i >= 0 {
		s.session.SelectCard(i)
	}
}

// digitIndex maps keys "1".."9" to indexes 0..8, or -1.
func digitIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

// logQuizPass records the pass that just completed, once. The quiz
// mission advances only for the first completed pass of the session.
func (s *LearnScreen) logQuizPass() {
	if s.passLogged {
		return
	}
	s.passLogged = true
	ctx := context.Background()

	_ = s.eventRepo.AppendQuiz(ctx, store.QuizEventData{
		Theme:      s.theme.Title,
		Language:   s.language,
		Mode:       s.passMode,
		Total:      s.session.Total(),
		Score:      s.session.Score(),
		MistakeIDs: s.session.Mistakes(),
	})

	if !s.quizCounted {
		s.quizCounted = true
		s.noteMissions(s.tracker.RecordProgress(ctx, progress.CategoryQuiz, 1))
	}
}

func (s *LearnScreen) enterRecap() {
	ctx := context.Background()
	if s.tracker.MarkThemeCompleted(ctx, s.theme.Title) {
		s.tracker.GrantXP(ctx, progress.ThemeBonusXP)
		s.themeBonus = true
	}
	s.recapCursor = 0
	s.phase = phaseRecap
}

func (s *LearnScreen) handleRecapKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		return s, popCmd()
	case "up", "k":
		if s.recapCursor > 0 {
			s.recapCursor--
		}
	case "down", "j":
		if s.recapCursor < 1 {
			s.recapCursor++
		}
	case "enter":
		if s.recapCursor == 0 {
			return s.enterChat()
		}
		return s, popCmd()
	}
	return s, nil
}

func (s *LearnScreen) enterChat() (screen.Screen, tea.Cmd) {
	if s.chatID == "" {
		s.chatID = uuid.NewString()
		s.chatHistory = []content.ChatMessage{{
			Role: content.ChatRolePartner,
			Text: fmt.Sprintf("Hi! I'll be the %s. You're the %s. Whenever you're ready!",
				strings.ToLower(s.aiRole), strings.ToLower(s.userRole)),
		}}
	}
	s.chatInput = components.NewTextInput("Say something...", false, 48)
	s.phase = phaseChat
	return s, s.chatInput.Init()
}

func (s *LearnScreen) handleChatKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.persistChat()
		s.phase = phaseRecap
		return s, nil
	case "enter":
		if s.awaitingChat {
			return s, nil
		}
		text := strings.TrimSpace(s.chatInput.Value())
		if text == "" {
			return s, nil
		}
		s.chatHistory = append(s.chatHistory, content.ChatMessage{
			Role: content.ChatRoleUser,
			Text: text,
		})
		s.feedback = nil
		s.awaitingChat = true
		s.chatInput = components.NewTextInput("Say something...", false, 48)
		s.noteMissions(s.tracker.RecordProgress(context.Background(), progress.CategoryConversation, 1))
		return s, tea.Batch(s.chatInput.Init(), s.replyCmd(text))
	}
	if s.awaitingChat {
		return s, nil
	}
	var cmd tea.Cmd
	s.chatInput, cmd = s.chatInput.Update(msg)
	return s, cmd
}

// noteMissions surfaces newly completed missions as a banner line.
func (s *LearnScreen) noteMissions(done []progress.Mission) {
	if len(done) == 0 {
		return
	}
	s.notice = fmt.Sprintf("Mission complete: %s  +%d XP", done[0].Label, progress.MissionBonusXP)
}

func (s *LearnScreen) applyContent(msg contentMsg) tea.Cmd {
	s.vocab = msg.vocab
	s.questions = msg.questions
	s.vocabIdx = 0
	s.session = nil
	s.quizCounted = false
	s.historyID = uuid.NewString()
	s.phase = phaseVocab

	ctx := context.Background()
	s.noteMissions(s.tracker.RecordProgress(ctx, progress.CategoryVocabulary, len(s.vocab)))
	s.persistHistory(ctx)
	return nil
}

func (s *LearnScreen) persistHistory(ctx context.Context) {
	payload, err := encodeContent(s.vocab, s.questions)
	if err != nil {
		return
	}
	chat, _ := encodeChat(s.chatHistory)
	_ = s.historyRepo.Upsert(ctx, &store.HistoryItem{
		ID:                 s.historyID,
		Timestamp:          time.Now(),
		Theme:              s.theme.Title,
		Language:           s.language,
		Difficulty:         s.difficulty,
		ContextDescription: s.scan.Description,
		Content:            payload,
		Chat:               chat,
	})
}

func (s *LearnScreen) persistChat() {
	if len(s.chatHistory) == 0 {
		return
	}
	ctx := context.Background()
	messages, err := encodeChat(s.chatHistory)
	if err != nil {
		return
	}
	_ = s.chatRepo.Upsert(ctx, &store.ChatSession{
		ID:                 s.chatID,
		Timestamp:          time.Now(),
		Theme:              s.theme.Title,
		Language:           s.language,
		UserRole:           s.userRole,
		PartnerRole:        s.aiRole,
		ContextDescription: s.scan.Description,
		Messages:           messages,
	})
	s.persistHistory(ctx)
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
