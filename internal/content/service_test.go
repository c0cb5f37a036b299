package content

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/karandv/lingua/internal/llm"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/quiz"
)

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	svc := NewService(mock, DefaultConfig(), WithRand(rand.New(rand.NewSource(1))))
	return svc, mock
}

func TestGenerateThemes(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{
			"context_description": "A busy farmers market on a Saturday morning.",
			"suggested_themes": [
				{"title": "Haggling", "tagline": "Get the best price", "available_roles": ["Vendor", "Shopper", "Regular", "Tourist"]},
				{"title": "Produce", "tagline": "Name what you see", "available_roles": ["Farmer", "Chef", "Customer", "Critic"]},
				{"title": "Small Talk", "tagline": "Chat with strangers", "available_roles": ["Neighbor", "Newcomer", "Vendor", "Busker"]}
			]
		}`),
	})

	scan, err := svc.GenerateThemes(t.Context(), ThemeInput{
		Text:       "photo of a market stall",
		Language:   "Spanish",
		Difficulty: "beginner",
	})
	if err != nil {
		t.Fatalf("GenerateThemes: %v", err)
	}

	if scan.Description != "A busy farmers market on a Saturday morning." {
		t.Errorf("unexpected description %q", scan.Description)
	}
	if len(scan.Themes) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(scan.Themes))
	}
	if scan.Themes[0].Title != "Haggling" {
		t.Errorf("unexpected first theme %q", scan.Themes[0].Title)
	}
	if len(scan.Themes[0].AvailableRoles) != 4 {
		t.Errorf("expected 4 roles, got %d", len(scan.Themes[0].AvailableRoles))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "theme-scan" {
		t.Error("expected schema name 'theme-scan'")
	}
}

func TestGenerateVocabularyBoundsExcludedWords(t *testing.T) {
	vocabJSON := `{"vocabulary": [{"word": "mercado", "meaning": "market", "example": "Voy al mercado.", "example_translation": "I go to the market."}]}`
	svc, mock := newTestService(llm.MockResponse{Content: json.RawMessage(vocabJSON)})

	var excluded []string
	for i := 0; i < 60; i++ {
		excluded = append(excluded, fmt.Sprintf("word%02d", i))
	}

	items, err := svc.GenerateVocabulary(t.Context(), VocabularyInput{
		Context:       "market",
		Theme:         "Haggling",
		Language:      "Spanish",
		Difficulty:    "beginner",
		ExcludedWords: excluded,
	})
	if err != nil {
		t.Fatalf("GenerateVocabulary: %v", err)
	}
	if len(items) != 1 || items[0].Word != "mercado" {
		t.Fatalf("unexpected items %+v", items)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "word09") {
		t.Error("expected oldest excluded words to be dropped")
	}
	if !strings.Contains(prompt, "word10") || !strings.Contains(prompt, "word59") {
		t.Error("expected the 50 most recent excluded words to be sent")
	}
}

func TestGenerateQuizzesDecodesUnion(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"quizzes": [
			{"id": 1, "type": "multiple-choice", "question": "What does 'mercado' mean?", "explanation": "Mercado is a market.", "options": ["market", "library", "school", "beach"], "correct_answer": "market"},
			{"id": 2, "type": "sentence-scramble", "question": "Rebuild the sentence.", "explanation": "Subject, verb, destination.", "source_sentence": "I go to the market.", "target_words": ["Voy", "al", "mercado"]},
			{"id": 3, "type": "matching", "question": "Match the words.", "explanation": "Basic market words.", "pairs": [{"term": "fruta", "definition": "fruit"}, {"term": "pan", "definition": "bread"}]}
		]}`),
	})

	questions, err := svc.GenerateQuizzes(t.Context(), QuizInput{
		Context:    "market",
		Theme:      "Haggling",
		Language:   "Spanish",
		Difficulty: "beginner",
		Vocabulary: []progress.VocabularyItem{{Word: "mercado"}},
	})
	if err != nil {
		t.Fatalf("GenerateQuizzes: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	mc := questions[0]
	if mc.ID != "q1" || mc.Kind != quiz.KindMultipleChoice || mc.CorrectAnswer != "market" {
		t.Errorf("unexpected multiple-choice question %+v", mc)
	}

	scramble := questions[1]
	if scramble.Kind != quiz.KindScramble {
		t.Fatalf("expected scramble, got %s", scramble.Kind)
	}
	if len(scramble.ShuffledWords) != len(scramble.TargetWords) {
		t.Fatal("expected a shuffled bank matching the target words")
	}
	wantBank := append([]string(nil), scramble.TargetWords...)
	gotBank := append([]string(nil), scramble.ShuffledWords...)
	sort.Strings(wantBank)
	sort.Strings(gotBank)
	for i := range wantBank {
		if wantBank[i] != gotBank[i] {
			t.Fatalf("shuffled bank %v is not a permutation of %v", scramble.ShuffledWords, scramble.TargetWords)
		}
	}

	matching := questions[2]
	if matching.Kind != quiz.KindMatching || len(matching.Pairs) != 2 {
		t.Errorf("unexpected matching question %+v", matching)
	}
}

func TestRoleplayReplyWindowsHistory(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`"That sounds lovely! What would you like to buy?"`),
	})

	var history []ChatMessage
	for i := 0; i < 15; i++ {
		role := ChatRoleUser
		if i%2 == 1 {
			role = ChatRolePartner
		}
		history = append(history, ChatMessage{Role: role, Text: fmt.Sprintf("turn %d", i)})
	}

	reply, err := svc.RoleplayReply(t.Context(), RoleplayInput{
		History:     history,
		Context:     "market",
		UserRole:    "Shopper",
		PartnerRole: "Vendor",
		Theme:       "Haggling",
		Language:    "Spanish",
		Difficulty:  "beginner",
	})
	if err != nil {
		t.Fatalf("RoleplayReply: %v", err)
	}
	if reply != "That sounds lovely! What would you like to buy?" {
		t.Errorf("unexpected reply %q", reply)
	}

	req := mock.Calls[0]
	if len(req.Messages) != ChatHistoryWindow {
		t.Fatalf("expected %d history messages, got %d", ChatHistoryWindow, len(req.Messages))
	}
	if req.Messages[0].Content != "turn 5" {
		t.Errorf("expected window to start at turn 5, got %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.System, "Vendor") {
		t.Error("expected the partner role in the system prompt")
	}
}

func TestAnalyzeGrammarDegradesOnError(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})

	feedback := svc.AnalyzeGrammar(t.Context(), GrammarInput{
		Text:     "I goes to market",
		Language: "English",
	})

	if feedback.HasError {
		t.Error("degraded analysis must report no error")
	}
	if feedback.CorrectedText != "I goes to market" || feedback.BetterResponse != "I goes to market" {
		t.Errorf("degraded analysis must echo the input, got %+v", feedback)
	}
}

func TestAnalyzeGrammarFillsDefaults(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{
			"has_error": true,
			"corrected_text": "I go to the market",
			"explanation": "Use 'go' with 'I'.",
			"better_response": "",
			"better_response_explanation": ""
		}`),
	})

	feedback := svc.AnalyzeGrammar(t.Context(), GrammarInput{Text: "I goes to market", Language: "English"})

	if !feedback.HasError {
		t.Error("expected an error to be reported")
	}
	if feedback.UserOriginal != "I goes to market" {
		t.Errorf("expected input echoed as original, got %q", feedback.UserOriginal)
	}
	if feedback.BetterResponse != "I go to the market" {
		t.Errorf("expected corrected text as fallback better response, got %q", feedback.BetterResponse)
	}
	if feedback.BetterResponseExplanation == "" {
		t.Error("expected a default better-response explanation")
	}
}

func TestWordChainVerdict(t *testing.T) {
	svc, mock := newTestService(llm.MockResponse{
		Content: json.RawMessage(`{"is_valid": true, "ai_word": "NIGHT", "ai_definition": "The dark part of the day."}`),
	})
	ref := NewAIReferee(svc)

	v, err := ref.Judge(t.Context(), []string{"CAT", "TEN"}, "NOON")
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if !v.Valid || v.OpponentWord != "NIGHT" || v.OpponentDefinition == "" {
		t.Errorf("unexpected verdict %+v", v)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "CAT, TEN") || !strings.Contains(prompt, `"NOON"`) {
		t.Error("expected history and candidate in the prompt")
	}
}

func TestWordChainVerdictPropagatesError(t *testing.T) {
	svc, _ := newTestService(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	if _, err := svc.WordChainVerdict(t.Context(), []string{"CAT"}, "TEN"); err == nil {
		t.Fatal("expected an error")
	}
}
