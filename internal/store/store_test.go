package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot carrying a progress record.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressData{
				XP:             120,
				StreakDays:     3,
				LastActiveDate: "2026-09-01",
				DailyMissions: []MissionData{
					{ID: "m1", Label: "Scholar: Learn 5 new words", Target: 5, Current: 2, Category: "vocabulary"},
				},
				SavedVocabulary: map[string]VocabularyData{
					"hola": {Word: "hola", Meaning: "hello", Example: "Hola, amigo."},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("expected sequence to be assigned on save")
	}
	if snap.Data.Progress == nil {
		t.Fatal("expected progress data")
	}
	if snap.Data.Progress.XP != 120 {
		t.Errorf("xp = %d, want 120", snap.Data.Progress.XP)
	}
	if snap.Data.Progress.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", snap.Data.Progress.StreakDays)
	}
	if len(snap.Data.Progress.DailyMissions) != 1 {
		t.Fatalf("missions = %d, want 1", len(snap.Data.Progress.DailyMissions))
	}
	if got := snap.Data.Progress.DailyMissions[0].Current; got != 2 {
		t.Errorf("mission current = %d, want 2", got)
	}
	if _, ok := snap.Data.Progress.SavedVocabulary["hola"]; !ok {
		t.Error("expected saved word to survive the round trip")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 7 {
		t.Errorf("latest version = %d, want 7", snap.Data.Version)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not monotonic after %d", seq, prev)
		}
		prev = seq
	}
}

func TestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMission(ctx, MissionEventData{
		MissionID: "m2",
		Label:     "Sharp Mind: Finish 1 Quiz",
		Category:  "quiz",
		Target:    1,
		XPAwarded: 50,
	})
	if err != nil {
		t.Fatalf("append mission: %v", err)
	}

	err = repo.AppendQuiz(ctx, QuizEventData{
		Theme:    "Ordering Coffee",
		Language: "Spanish",
		Mode:     "smart-retry",
		Total:    2,
		Score:    2,
	})
	if err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	err = repo.AppendRound(ctx, RoundEventData{
		RoundID:   "r-1",
		Turns:     7,
		Score:     3,
		Outcome:   "timeout",
		XPAwarded: 30,
	})
	if err != nil {
		t.Fatalf("append round: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-1", Purpose: "word-chain", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	// Events across tables share one sequence space.
	missions, err := s.Client().MissionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query missions: %v", err)
	}
	rounds, err := s.Client().RoundEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query rounds: %v", err)
	}
	if len(missions) != 1 || len(rounds) != 1 {
		t.Fatalf("missions = %d, rounds = %d, want 1 each", len(missions), len(rounds))
	}
	if missions[0].Sequence >= rounds[0].Sequence {
		t.Errorf("mission seq %d should precede round seq %d",
			missions[0].Sequence, rounds[0].Sequence)
	}
}

func TestHistoryUpsertHeadSemantics(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	content := json.RawMessage(`{"vocabulary":[]}`)
	base := time.Now().UTC().Truncate(time.Second)

	first := &HistoryItem{
		ID: "h-1", Timestamp: base,
		Theme: "At the Airport", Language: "French",
		Difficulty: "Beginner", Content: content,
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert first: %v", err)
	}

	// Same theme+language as the head updates in place.
	updated := &HistoryItem{
		ID: "h-2", Timestamp: base.Add(time.Minute),
		Theme: "At the Airport", Language: "French",
		Difficulty: "Intermediate", Content: content,
	}
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	items, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 (head updated in place)", len(items))
	}
	if items[0].Difficulty != "Intermediate" {
		t.Errorf("difficulty = %q, want updated value", items[0].Difficulty)
	}

	// A different context appends a new entry at the top.
	other := &HistoryItem{
		ID: "h-3", Timestamp: base.Add(2 * time.Minute),
		Theme: "Street Food", Language: "French",
		Content: content,
	}
	if err := repo.Upsert(ctx, other); err != nil {
		t.Fatalf("upsert other: %v", err)
	}

	items, err = repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Theme != "Street Food" {
		t.Errorf("head theme = %q, want most recent first", items[0].Theme)
	}
}

func TestHistoryDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	item := &HistoryItem{
		ID: "h-del", Timestamp: time.Now(),
		Theme: "Market Day", Language: "German",
		Content: json.RawMessage(`{}`),
	}
	if err := repo.Upsert(ctx, item); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Delete(ctx, "h-del"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestChatUpsertKeyedByRoles(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	msgs := json.RawMessage(`[{"role":"user","text":"Bonjour"}]`)

	first := &ChatSession{
		ID: "c-1", Timestamp: base,
		Theme: "At the Airport", Language: "French",
		UserRole: "Traveler", PartnerRole: "Customs Officer",
		Messages: msgs,
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Same key replaces, different role pair creates.
	replaced := &ChatSession{
		ID: "c-2", Timestamp: base.Add(time.Minute),
		Theme: "At the Airport", Language: "French",
		UserRole: "Traveler", PartnerRole: "Customs Officer",
		Messages: json.RawMessage(`[{"role":"user","text":"Bonjour"},{"role":"model","text":"Passeport?"}]`),
	}
	if err := repo.Upsert(ctx, replaced); err != nil {
		t.Fatalf("upsert replace: %v", err)
	}

	other := &ChatSession{
		ID: "c-3", Timestamp: base.Add(2 * time.Minute),
		Theme: "At the Airport", Language: "French",
		UserRole: "Traveler", PartnerRole: "Pilot",
		Messages: msgs,
	}
	if err := repo.Upsert(ctx, other); err != nil {
		t.Fatalf("upsert other: %v", err)
	}

	sessions, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	// Most recent first.
	if sessions[0].PartnerRole != "Pilot" {
		t.Errorf("head partner = %q, want Pilot", sessions[0].PartnerRole)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestLLMEventQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "vocabulary",
			InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true,
			RequestBody: `{"theme":"Ordering Coffee"}`, ResponseBody: `{"vocabulary":[]}`},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "vocabulary",
			InputTokens: 120, OutputTokens: 380, LatencyMs: 1100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "word-chain",
			InputTokens: 50, OutputTokens: 30, LatencyMs: 400, Success: false,
			ErrorMessage: "timeout"},
	}
	for _, data := range requests {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "word-chain" {
		t.Errorf("first event purpose = %q, want word-chain", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "vocabulary" {
		t.Fatalf("got = %+v, want vocabulary event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "quizzes",
			InputTokens: 200, OutputTokens: 600, LatencyMs: 1000, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "grammar",
		InputTokens: 80, OutputTokens: 120, LatencyMs: 500, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: grammar, quizzes.
	if byPurpose[0].Purpose != "grammar" || byPurpose[1].Purpose != "quizzes" {
		t.Fatalf("order = %q, %q", byPurpose[0].Purpose, byPurpose[1].Purpose)
	}
	if byPurpose[1].Calls != 2 || byPurpose[1].InputTokens != 400 || byPurpose[1].AvgLatencyMs != 1000 {
		t.Errorf("quizzes stat = %+v", byPurpose[1])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].OutputTokens != 1200 {
		t.Errorf("model stat = %+v", byModel[1])
	}
}

func TestQuizAndRoundAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	passes := []QuizEventData{
		{Theme: "At the Market", Language: "Spanish", Mode: "initial", Total: 5, Score: 3,
			MistakeIDs: []string{"q2", "q4"}},
		{Theme: "At the Market", Language: "Spanish", Mode: "smart-retry", Total: 2, Score: 2},
		{Theme: "Train Station", Language: "Spanish", Mode: "initial", Total: 5, Score: 5},
	}
	for _, p := range passes {
		if err := repo.AppendQuiz(ctx, p); err != nil {
			t.Fatalf("append quiz: %v", err)
		}
	}

	quizStats, err := repo.QuizStats(ctx)
	if err != nil {
		t.Fatalf("quiz stats: %v", err)
	}
	if len(quizStats) != 2 {
		t.Fatalf("modes = %d, want 2", len(quizStats))
	}
	if quizStats[0].Mode != "initial" || quizStats[0].Passes != 2 || quizStats[0].Score != 8 {
		t.Errorf("initial stat = %+v", quizStats[0])
	}

	rounds := []RoundEventData{
		{RoundID: "r-1", Turns: 10, Score: 5, Outcome: "timeout", XPAwarded: 60},
		{RoundID: "r-2", Turns: 16, Score: 8, Outcome: "concession", XPAwarded: 330},
	}
	for _, r := range rounds {
		if err := repo.AppendRound(ctx, r); err != nil {
			t.Fatalf("append round: %v", err)
		}
	}

	roundStats, err := repo.RoundStats(ctx)
	if err != nil {
		t.Fatalf("round stats: %v", err)
	}
	if roundStats.Rounds != 2 || roundStats.BestScore != 8 || roundStats.Wins != 1 {
		t.Errorf("round stats = %+v", roundStats)
	}
	if roundStats.XPAwarded != 390 {
		t.Errorf("xp = %d, want 390", roundStats.XPAwarded)
	}
}
