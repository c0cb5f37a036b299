package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/karandv/lingua/internal/store"
)

const (
	dateLayout   = "2006-01-02"
	snapshotKeep = 20
)

// Tracker owns the learner progress record: XP, day streak, daily
// missions, completed themes and saved vocabulary. Every mutation is
// written through to the snapshot store; a failed save is reported on
// stderr and the in-memory state stands.
//
// Tracker is not safe for concurrent use. The TUI calls it from the
// single update loop.
type Tracker struct {
	state     *State
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a tracker. Call Load before reading state.
func NewTracker(snapRepo store.SnapshotRepo, eventRepo store.EventRepo, opts ...Option) *Tracker {
	t := &Tracker{
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current progress record.
func (t *Tracker) State() *State {
	return t.state
}

// Load reads the latest snapshot, repairs whatever is malformed and
// reconciles the record against today's date. It always leaves the
// tracker with a usable state, persisted with today as the active date.
func (t *Tracker) Load(ctx context.Context) error {
	var data *store.ProgressData
	if t.snapRepo != nil {
		snap, err := t.snapRepo.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load progress snapshot: %w", err)
		}
		if snap != nil {
			data = snap.Data.Progress
		}
	}

	t.state = fromData(data)
	t.reconcileDate()
	t.save(ctx)
	return nil
}

// reconcileDate applies the streak rollover rules for the gap between
// the recorded active date and today:
//
//	absent or same day    keep streak, repair missions only
//	yesterday             streak+1, fresh missions
//	otherwise             streak resets to 1, fresh missions
//
// An absent date means this is the first run (or the field was lost to
// corruption), so there is no gap to judge the streak by.
func (t *Tracker) reconcileDate() {
	today := t.now().Format(dateLayout)
	yesterday := t.now().AddDate(0, 0, -1).Format(dateLayout)

	switch t.state.LastActiveDate {
	case "", today:
		if !missionsValid(t.state.DailyMissions) {
			t.state.DailyMissions = DefaultMissions()
		}
	case yesterday:
		t.state.StreakDays++
		t.state.DailyMissions = DefaultMissions()
	default:
		t.state.StreakDays = 1
		t.state.DailyMissions = DefaultMissions()
	}
	t.state.LastActiveDate = today
}

// RecordProgress advances every incomplete mission in the category by
// amount (clamped to its target). Missions that reach their target flip
// to completed exactly once, each granting MissionBonusXP. The missions
// completed by this call are returned so the UI can announce them.
func (t *Tracker) RecordProgress(ctx context.Context, cat MissionCategory, amount int) []Mission {
	if amount <= 0 {
		return nil
	}

	var completed []Mission
	for i := range t.state.DailyMissions {
		m := &t.state.DailyMissions[i]
		if m.Category != cat || m.Completed {
			continue
		}
		m.Current += amount
		if m.Current >= m.Target {
			m.Current = m.Target
			m.Completed = true
			t.state.XP += MissionBonusXP
			completed = append(completed, *m)
			t.appendMissionEvent(ctx, *m)
		}
	}

	t.save(ctx)
	return completed
}

// GrantXP adds amount to the learner's XP. Negative amounts are a
// programmer error.
func (t *Tracker) GrantXP(ctx context.Context, amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("progress: negative XP grant %d", amount))
	}
	if amount == 0 {
		return
	}
	t.state.XP += amount
	t.save(ctx)
}

// ToggleSavedWord adds the item to the saved vocabulary, or removes it
// if already present. Returns true when the word is saved afterwards.
func (t *Tracker) ToggleSavedWord(ctx context.Context, item VocabularyItem) bool {
	if t.state.SavedVocabulary == nil {
		t.state.SavedVocabulary = make(map[string]VocabularyItem)
	}

	saved := false
	if _, ok := t.state.SavedVocabulary[item.Word]; ok {
		delete(t.state.SavedVocabulary, item.Word)
	} else {
		t.state.SavedVocabulary[item.Word] = item
		saved = true
	}
	t.save(ctx)
	return saved
}

// MarkThemeCompleted records a theme as done. Returns true only the
// first time, so the caller can grant ThemeBonusXP at most once.
func (t *Tracker) MarkThemeCompleted(ctx context.Context, themeID string) bool {
	if t.state.CompletedThemes == nil {
		t.state.CompletedThemes = make(map[string]bool)
	}
	if t.state.CompletedThemes[themeID] {
		return false
	}
	t.state.CompletedThemes[themeID] = true
	t.save(ctx)
	return true
}

func (t *Tracker) appendMissionEvent(ctx context.Context, m Mission) {
	if t.eventRepo == nil {
		return
	}
	err := t.eventRepo.AppendMission(ctx, store.MissionEventData{
		MissionID: m.ID,
		Label:     m.Label,
		Category:  string(m.Category),
		Target:    m.Target,
		XPAwarded: MissionBonusXP,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "lingua: record mission event: %v\n", err)
	}
}

// save writes the current state through to the snapshot store.
// Persistence failures never interrupt play.
func (t *Tracker) save(ctx context.Context) {
	if t.snapRepo == nil {
		return
	}
	snap := &store.Snapshot{
		Timestamp: t.now(),
		Data: store.SnapshotData{
			Version:  1,
			Progress: toData(t.state),
		},
	}
	if err := t.snapRepo.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "lingua: save progress: %v\n", err)
		return
	}
	_ = t.snapRepo.Prune(ctx, snapshotKeep)
}

// fromData rebuilds a State from its serialized form, defaulting each
// field independently so one bad field never discards the rest.
func fromData(data *store.ProgressData) *State {
	s := &State{
		CompletedThemes: make(map[string]bool),
		SavedVocabulary: make(map[string]VocabularyItem),
		DailyMissions:   DefaultMissions(),
	}
	if data == nil {
		return s
	}

	if data.XP > 0 {
		s.XP = data.XP
	}
	if data.StreakDays > 0 {
		s.StreakDays = data.StreakDays
	}
	s.LastActiveDate = data.LastActiveDate

	for _, id := range data.CompletedThemes {
		if id != "" {
			s.CompletedThemes[id] = true
		}
	}

	var missions []Mission
	for _, m := range data.DailyMissions {
		missions = append(missions, Mission{
			ID:        m.ID,
			Label:     m.Label,
			Target:    m.Target,
			Current:   m.Current,
			Completed: m.Completed,
			Category:  MissionCategory(m.Category),
		})
	}
	if missionsValid(missions) {
		s.DailyMissions = missions
	}

	for word, v := range data.SavedVocabulary {
		if word == "" {
			continue
		}
		s.SavedVocabulary[word] = VocabularyItem{
			Word:               v.Word,
			Pronunciation:      v.Pronunciation,
			Meaning:            v.Meaning,
			Example:            v.Example,
			ExampleTranslation: v.ExampleTranslation,
		}
	}

	return s
}

// toData exports the state for persistence.
func toData(s *State) *store.ProgressData {
	data := &store.ProgressData{
		XP:              s.XP,
		StreakDays:      s.StreakDays,
		LastActiveDate:  s.LastActiveDate,
		SavedVocabulary: make(map[string]store.VocabularyData, len(s.SavedVocabulary)),
	}
	for id := range s.CompletedThemes {
		data.CompletedThemes = append(data.CompletedThemes, id)
	}
	for _, m := range s.DailyMissions {
		data.DailyMissions = append(data.DailyMissions, store.MissionData{
			ID:        m.ID,
			Label:     m.Label,
			Target:    m.Target,
			Current:   m.Current,
			Completed: m.Completed,
			Category:  string(m.Category),
		})
	}
	for word, v := range s.SavedVocabulary {
		data.SavedVocabulary[word] = store.VocabularyData{
			Word:               v.Word,
			Pronunciation:      v.Pronunciation,
			Meaning:            v.Meaning,
			Example:            v.Example,
			ExampleTranslation: v.ExampleTranslation,
		}
	}
	return data
}
