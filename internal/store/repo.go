package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// MissionData is the serialized form of one daily mission.
type MissionData struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Target    int    `json:"target"`
	Current   int    `json:"current"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}

// VocabularyData is the serialized form of a saved vocabulary item.
type VocabularyData struct {
	Word               string `json:"word"`
	Pronunciation      string `json:"pronunciation,omitempty"`
	Meaning            string `json:"meaning"`
	Example            string `json:"example"`
	ExampleTranslation string `json:"exampleTranslation,omitempty"`
}

// ProgressData is the serialized learner progress record.
type ProgressData struct {
	XP              int                       `json:"xp"`
	StreakDays      int                       `json:"streakDays"`
	LastActiveDate  string                    `json:"lastActiveDate"`
	CompletedThemes []string                  `json:"completedThemes"`
	DailyMissions   []MissionData             `json:"dailyMissions"`
	SavedVocabulary map[string]VocabularyData `json:"savedVocabulary"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int           `json:"version"`
	Progress *ProgressData `json:"progress,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// MissionEventData captures a daily mission completing.
type MissionEventData struct {
	MissionID string
	Label     string
	Category  string
	Target    int
	XPAwarded int
}

// QuizEventData captures one completed quiz pass.
type QuizEventData struct {
	Theme      string
	Language   string
	Mode       string // initial, smart-retry, full-reset
	Total      int
	Score      int
	MistakeIDs []string
}

// RoundEventData captures a finished word-chain round.
type RoundEventData struct {
	RoundID   string
	Turns     int
	Score     int
	Outcome   string
	XPAwarded int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizStat aggregates quiz passes by mode.
type QuizStat struct {
	Mode   string
	Passes int
	Score  int
	Total  int
}

// RoundStat aggregates finished word-chain rounds.
type RoundStat struct {
	Rounds    int
	BestScore int
	XPAwarded int
	Wins      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendMission records a completed daily mission.
	AppendMission(ctx context.Context, data MissionEventData) error

	// AppendQuiz records a finished quiz pass.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// AppendRound records a finished word-chain round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by row ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates LLM usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QuizStats aggregates quiz passes by mode.
	QuizStats(ctx context.Context) ([]QuizStat, error)

	// RoundStats aggregates word-chain rounds.
	RoundStats(ctx context.Context) (RoundStat, error)
}

// HistoryItem is one saved learning context with its generated content.
// Content and Chat hold domain JSON owned by the caller; the store does
// not interpret them.
type HistoryItem struct {
	ID                 string
	Timestamp          time.Time
	Theme              string
	Language           string
	Difficulty         string
	ContextDescription string
	Thumbnail          string
	Content            json.RawMessage
	Chat               json.RawMessage
}

// HistoryRepo manages the learning history log.
type HistoryRepo interface {
	// Upsert saves an item. If the most recent item shares the same
	// theme and language, that item is updated in place instead.
	Upsert(ctx context.Context, item *HistoryItem) error

	// Recent returns up to limit items, most recent first (0 = all).
	Recent(ctx context.Context, limit int) ([]*HistoryItem, error)

	// Delete removes an item by its client ID.
	Delete(ctx context.Context, id string) error
}

// ChatSession is a saved roleplay conversation.
type ChatSession struct {
	ID                 string
	Timestamp          time.Time
	Theme              string
	Language           string
	UserRole           string
	PartnerRole        string
	ContextDescription string
	Messages           json.RawMessage
}

// ChatRepo manages saved roleplay sessions.
type ChatRepo interface {
	// Upsert saves a session, replacing any existing session with the
	// same theme, language and role pair. Updated sessions get a fresh
	// timestamp so they sort to the top.
	Upsert(ctx context.Context, sess *ChatSession) error

	// All returns every saved session, most recent first.
	All(ctx context.Context) ([]*ChatSession, error)
}
