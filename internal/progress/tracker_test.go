package progress

import (
	"context"
	"testing"
	"time"

	"github.com/karandv/lingua/internal/store"
)

// fakeSnapshotRepo keeps snapshots in memory.
type fakeSnapshotRepo struct {
	snaps []*store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snaps = append(f.snaps, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snaps) == 0 {
		return nil, nil
	}
	return f.snaps[len(f.snaps)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error { return nil }

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	missions []store.MissionEventData
}

func (f *fakeEventRepo) AppendMission(_ context.Context, data store.MissionEventData) error {
	f.missions = append(f.missions, data)
	return nil
}

func (f *fakeEventRepo) AppendQuiz(_ context.Context, _ store.QuizEventData) error  { return nil }
func (f *fakeEventRepo) AppendRound(_ context.Context, _ store.RoundEventData) error { return nil }
func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (f *fakeEventRepo) QuizStats(_ context.Context) ([]store.QuizStat, error) { return nil, nil }
func (f *fakeEventRepo) RoundStats(_ context.Context) (store.RoundStat, error) {
	return store.RoundStat{}, nil
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestTracker(t *testing.T, prior *store.ProgressData, today string) (*Tracker, *fakeSnapshotRepo, *fakeEventRepo) {
	t.Helper()
	snaps := &fakeSnapshotRepo{}
	if prior != nil {
		snaps.snaps = append(snaps.snaps, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      store.SnapshotData{Version: 1, Progress: prior},
		})
	}
	events := &fakeEventRepo{}
	tr := NewTracker(snaps, events, WithClock(fixedClock(today)))
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return tr, snaps, events
}

func TestLoadFreshState(t *testing.T) {
	tr, _, _ := newTestTracker(t, nil, "2026-09-01")
	s := tr.State()

	if s.XP != 0 {
		t.Errorf("xp = %d, want 0", s.XP)
	}
	if s.StreakDays != 0 {
		t.Errorf("streak = %d, want 0 (no prior activity to chain from)", s.StreakDays)
	}
	if s.LastActiveDate != "2026-09-01" {
		t.Errorf("lastActiveDate = %q, want today", s.LastActiveDate)
	}
	if len(s.DailyMissions) != 3 {
		t.Fatalf("missions = %d, want 3", len(s.DailyMissions))
	}
}

func TestStreakRollover(t *testing.T) {
	tests := []struct {
		name       string
		lastActive string
		streak     int
		wantStreak int
	}{
		{"same day keeps streak", "2026-09-01", 4, 4},
		{"absent date leaves streak alone", "", 4, 4},
		{"yesterday extends streak", "2026-08-31", 4, 5},
		{"two day gap resets to one", "2026-08-30", 4, 1},
		{"long gap resets to one", "2026-01-15", 30, 1},
		{"zero streak after gap becomes one", "2026-08-20", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior := &store.ProgressData{
				StreakDays:     tt.streak,
				LastActiveDate: tt.lastActive,
				DailyMissions: []store.MissionData{
					{ID: "m1", Label: "Scholar: Learn 5 new words", Target: 5, Current: 3, Category: "vocabulary"},
					{ID: "m2", Label: "Sharp Mind: Finish 1 Quiz", Target: 1, Category: "quiz"},
					{ID: "m3", Label: "Orator: Speak 5 times", Target: 5, Category: "conversation"},
				},
			}
			tr, _, _ := newTestTracker(t, prior, "2026-09-01")
			s := tr.State()

			if s.StreakDays != tt.wantStreak {
				t.Errorf("streak = %d, want %d", s.StreakDays, tt.wantStreak)
			}
			if s.LastActiveDate != "2026-09-01" {
				t.Errorf("lastActiveDate = %q, want today", s.LastActiveDate)
			}
			if tt.lastActive == "2026-09-01" || tt.lastActive == "" {
				// Same day or no recorded day: in-progress missions survive.
				if s.DailyMissions[0].Current != 3 {
					t.Errorf("mission progress lost on same-day load")
				}
			} else {
				// Any rollover deals a fresh mission set.
				for _, m := range s.DailyMissions {
					if m.Current != 0 || m.Completed {
						t.Errorf("mission %s not reset: current=%d completed=%v", m.ID, m.Current, m.Completed)
					}
				}
			}
		})
	}
}

func TestLoadRepairsMalformedFields(t *testing.T) {
	prior := &store.ProgressData{
		XP:             -50,
		StreakDays:     -2,
		LastActiveDate: "2026-09-01",
		DailyMissions: []store.MissionData{
			{ID: "", Label: "broken", Target: 5},
		},
		SavedVocabulary: map[string]store.VocabularyData{
			"": {Word: ""},
			"bonjour": {Word: "bonjour", Meaning: "hello"},
		},
	}
	tr, _, _ := newTestTracker(t, prior, "2026-09-01")
	s := tr.State()

	if s.XP != 0 {
		t.Errorf("negative xp should default to 0, got %d", s.XP)
	}
	if s.StreakDays != 0 {
		t.Errorf("negative streak should default to 0, got %d", s.StreakDays)
	}
	if len(s.DailyMissions) != 3 || s.DailyMissions[0].ID != "m1" {
		t.Error("malformed mission set should be replaced with defaults")
	}
	if !s.WordSaved("bonjour") {
		t.Error("valid saved word should survive repair")
	}
	if s.WordSaved("") {
		t.Error("empty-keyed word should be dropped")
	}
}

func TestRecordProgressClampAndBonus(t *testing.T) {
	tr, _, events := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	// m1: learn 5 words. Overshoot clamps to target.
	completed := tr.RecordProgress(ctx, CategoryVocabulary, 8)
	if len(completed) != 1 || completed[0].ID != "m1" {
		t.Fatalf("completed = %v, want [m1]", completed)
	}
	m := tr.State().MissionsByCategory(CategoryVocabulary)[0]
	if m.Current != m.Target {
		t.Errorf("current = %d, want clamped to target %d", m.Current, m.Target)
	}
	if !m.Completed {
		t.Error("mission should be completed")
	}
	if tr.State().XP != MissionBonusXP {
		t.Errorf("xp = %d, want one mission bonus %d", tr.State().XP, MissionBonusXP)
	}
	if len(events.missions) != 1 {
		t.Errorf("mission events = %d, want 1", len(events.missions))
	}

	// Further progress on a completed mission does nothing.
	completed = tr.RecordProgress(ctx, CategoryVocabulary, 3)
	if len(completed) != 0 {
		t.Errorf("re-completed = %v, want none", completed)
	}
	if tr.State().XP != MissionBonusXP {
		t.Errorf("xp changed on completed mission: %d", tr.State().XP)
	}

	// Zero or negative amounts are no-ops.
	if got := tr.RecordProgress(ctx, CategoryQuiz, 0); got != nil {
		t.Errorf("zero amount completed %v", got)
	}
	if got := tr.RecordProgress(ctx, CategoryQuiz, -1); got != nil {
		t.Errorf("negative amount completed %v", got)
	}
}

func TestRecordProgressPartial(t *testing.T) {
	tr, _, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	completed := tr.RecordProgress(ctx, CategoryConversation, 2)
	if len(completed) != 0 {
		t.Fatalf("completed = %v, want none at 2/5", completed)
	}
	m := tr.State().MissionsByCategory(CategoryConversation)[0]
	if m.Current != 2 || m.Completed {
		t.Errorf("mission = %+v, want current 2 incomplete", m)
	}

	completed = tr.RecordProgress(ctx, CategoryConversation, 3)
	if len(completed) != 1 {
		t.Fatalf("completed = %v, want m3 at 5/5", completed)
	}
}

func TestGrantXP(t *testing.T) {
	tr, _, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	tr.GrantXP(ctx, 10)
	tr.GrantXP(ctx, 0)
	if tr.State().XP != 10 {
		t.Errorf("xp = %d, want 10", tr.State().XP)
	}

	defer func() {
		if recover() == nil {
			t.Error("negative grant should panic")
		}
	}()
	tr.GrantXP(ctx, -5)
}

func TestToggleSavedWord(t *testing.T) {
	tr, _, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	item := VocabularyItem{Word: "croissant", Meaning: "a flaky pastry"}
	if !tr.ToggleSavedWord(ctx, item) {
		t.Error("first toggle should save")
	}
	if !tr.State().WordSaved("croissant") {
		t.Error("word should be saved")
	}
	if tr.ToggleSavedWord(ctx, item) {
		t.Error("second toggle should remove")
	}
	if tr.State().WordSaved("croissant") {
		t.Error("word should be removed")
	}
}

func TestMarkThemeCompletedIdempotent(t *testing.T) {
	tr, _, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	if !tr.MarkThemeCompleted(ctx, "airport-fr") {
		t.Error("first completion should report newly completed")
	}
	if tr.MarkThemeCompleted(ctx, "airport-fr") {
		t.Error("repeat completion should report false")
	}
}

func TestMutationsPersist(t *testing.T) {
	tr, snaps, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	before := len(snaps.snaps)
	tr.GrantXP(ctx, 25)
	if len(snaps.snaps) <= before {
		t.Fatal("expected a snapshot write after GrantXP")
	}

	latest := snaps.snaps[len(snaps.snaps)-1]
	if latest.Data.Progress == nil || latest.Data.Progress.XP != 25 {
		t.Errorf("persisted xp = %+v, want 25", latest.Data.Progress)
	}
}

func TestRoundTripThroughSnapshot(t *testing.T) {
	tr, snaps, _ := newTestTracker(t, nil, "2026-09-01")
	ctx := context.Background()

	tr.GrantXP(ctx, 75)
	tr.MarkThemeCompleted(ctx, "cafe-es")
	tr.ToggleSavedWord(ctx, VocabularyItem{Word: "gato", Meaning: "cat"})
	tr.RecordProgress(ctx, CategoryQuiz, 1)

	// A second tracker loading the same repo sees the same record.
	tr2 := NewTracker(snaps, nil, WithClock(fixedClock("2026-09-01")))
	if err := tr2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	s := tr2.State()
	if s.XP != 75+MissionBonusXP {
		t.Errorf("xp = %d, want %d", s.XP, 75+MissionBonusXP)
	}
	if !s.CompletedThemes["cafe-es"] {
		t.Error("completed theme lost")
	}
	if !s.WordSaved("gato") {
		t.Error("saved word lost")
	}
	if m := s.MissionsByCategory(CategoryQuiz)[0]; !m.Completed {
		t.Error("quiz mission completion lost")
	}
}
