// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// HistoryItem is the predicate function for historyitem builders.
type HistoryItem func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MissionEvent is the predicate function for missionevent builders.
type MissionEvent func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)

// RoundEvent is the predicate function for roundevent builders.
type RoundEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
