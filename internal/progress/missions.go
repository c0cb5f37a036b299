package progress

// XP bonuses granted by the tracker and its callers.
const (
	// MissionBonusXP is granted once when a daily mission completes.
	MissionBonusXP = 50

	// ThemeBonusXP is granted by the caller when a theme is completed
	// for the first time (MarkThemeCompleted reports whether to grant).
	ThemeBonusXP = 200
)

// DefaultMissions returns a fresh copy of the daily mission set.
func DefaultMissions() []Mission {
	return []Mission{
		{ID: "m1", Label: "Scholar: Learn 5 new words", Target: 5, Category: CategoryVocabulary},
		{ID: "m2", Label: "Sharp Mind: Finish 1 Quiz", Target: 1, Category: CategoryQuiz},
		{ID: "m3", Label: "Orator: Speak 5 times", Target: 5, Category: CategoryConversation},
	}
}

// missionsValid reports whether a loaded mission set is usable as-is.
// Anything structurally off (empty set, entries without an ID or with a
// non-positive target) means the whole set is replaced with defaults.
func missionsValid(missions []Mission) bool {
	if len(missions) == 0 {
		return false
	}
	for _, m := range missions {
		if m.ID == "" || m.Target <= 0 {
			return false
		}
	}
	return true
}
