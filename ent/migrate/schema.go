// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "theme", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "user_role", Type: field.TypeString},
		{Name: "partner_role", Type: field.TypeString},
		{Name: "context_description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "messages", Type: field.TypeJSON},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[2]},
			},
			{
				Name:    "chatsession_theme_language_user_role_partner_role",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[3], ChatSessionsColumns[4], ChatSessionsColumns[5], ChatSessionsColumns[6]},
			},
		},
	}
	// HistoryItemsColumns holds the columns for the "history_items" table.
	HistoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "theme", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "context_description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "thumbnail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeJSON},
		{Name: "chat", Type: field.TypeJSON, Nullable: true},
	}
	// HistoryItemsTable holds the schema information for the "history_items" table.
	HistoryItemsTable = &schema.Table{
		Name:       "history_items",
		Columns:    HistoryItemsColumns,
		PrimaryKey: []*schema.Column{HistoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyitem_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HistoryItemsColumns[2]},
			},
			{
				Name:    "historyitem_theme_language",
				Unique:  false,
				Columns: []*schema.Column{HistoryItemsColumns[3], HistoryItemsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MissionEventsColumns holds the columns for the "mission_events" table.
	MissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "target", Type: field.TypeInt},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
	}
	// MissionEventsTable holds the schema information for the "mission_events" table.
	MissionEventsTable = &schema.Table{
		Name:       "mission_events",
		Columns:    MissionEventsColumns,
		PrimaryKey: []*schema.Column{MissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "missionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MissionEventsColumns[1]},
			},
			{
				Name:    "missionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MissionEventsColumns[2]},
			},
			{
				Name:    "missionevent_mission_id",
				Unique:  false,
				Columns: []*schema.Column{MissionEventsColumns[3]},
			},
			{
				Name:    "missionevent_category",
				Unique:  false,
				Columns: []*schema.Column{MissionEventsColumns[5]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "theme", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "mistake_ids", Type: field.TypeJSON, Nullable: true},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_theme",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_mode",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[5]},
			},
		},
	}
	// RoundEventsColumns holds the columns for the "round_events" table.
	RoundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "round_id", Type: field.TypeString},
		{Name: "turns", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "outcome", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
	}
	// RoundEventsTable holds the schema information for the "round_events" table.
	RoundEventsTable = &schema.Table{
		Name:       "round_events",
		Columns:    RoundEventsColumns,
		PrimaryKey: []*schema.Column{RoundEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roundevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[1]},
			},
			{
				Name:    "roundevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[2]},
			},
			{
				Name:    "roundevent_round_id",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[3]},
			},
			{
				Name:    "roundevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatSessionsTable,
		HistoryItemsTable,
		LlmRequestEventsTable,
		MissionEventsTable,
		QuizEventsTable,
		RoundEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
