package progress

// MissionCategory groups daily missions by the activity that advances them.
type MissionCategory string

const (
	CategoryVocabulary   MissionCategory = "vocabulary"
	CategoryQuiz         MissionCategory = "quiz"
	CategoryConversation MissionCategory = "conversation"
)

// Mission is one daily goal. Current never exceeds Target, and Completed
// never flips back to false within a day.
type Mission struct {
	ID        string
	Label     string
	Target    int
	Current   int
	Completed bool
	Category  MissionCategory
}

// VocabularyItem is a single word the learner studied or saved.
type VocabularyItem struct {
	Word               string
	Pronunciation      string
	Meaning            string
	Example            string
	ExampleTranslation string
}

// State is the full learner progress record. It is owned by a Tracker
// and mutated only through Tracker methods.
type State struct {
	XP              int
	StreakDays      int
	LastActiveDate  string // YYYY-MM-DD local date
	CompletedThemes map[string]bool
	DailyMissions   []Mission
	SavedVocabulary map[string]VocabularyItem
}

// WordSaved reports whether a word is in the saved vocabulary set.
// Lookup is case-sensitive, matching how items are keyed.
func (s *State) WordSaved(word string) bool {
	_, ok := s.SavedVocabulary[word]
	return ok
}

// MissionsByCategory returns the missions matching a category, in their
// daily order.
func (s *State) MissionsByCategory(cat MissionCategory) []Mission {
	var out []Mission
	for _, m := range s.DailyMissions {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}
