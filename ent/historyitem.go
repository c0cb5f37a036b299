// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/karandv/lingua/ent/historyitem"
)

// HistoryItem is the model entity for the HistoryItem schema.
type HistoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client-generated UUID
	ItemID string `json:"item_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme string `json:"theme,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// ContextDescription holds the value of the "context_description" field.
	ContextDescription string `json:"context_description,omitempty"`
	// Base64 source image, dropped on storage pressure
	Thumbnail string `json:"thumbnail,omitempty"`
	// Vocabulary, quizzes and roles for this context
	Content json.RawMessage `json:"content,omitempty"`
	// Chat holds the value of the "chat" field.
	Chat         json.RawMessage `json:"chat,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HistoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case historyitem.FieldContent, historyitem.FieldChat:
			values[i] = new([]byte)
		case historyitem.FieldID:
			values[i] = new(sql.NullInt64)
		case historyitem.FieldItemID, historyitem.FieldTheme, historyitem.FieldLanguage, historyitem.FieldDifficulty, historyitem.FieldContextDescription, historyitem.FieldThumbnail:
			values[i] = new(sql.NullString)
		case historyitem.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HistoryItem fields.
func (_m *HistoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case historyitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case historyitem.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case historyitem.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case historyitem.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case historyitem.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case historyitem.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case historyitem.FieldContextDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_description", values[i])
			} else if value.Valid {
				_m.ContextDescription = value.String
			}
		case historyitem.FieldThumbnail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail", values[i])
			} else if value.Valid {
				_m.Thumbnail = value.String
			}
		case historyitem.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case historyitem.FieldChat:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chat", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Chat); err != nil {
					return fmt.Errorf("unmarshal field chat: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HistoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *HistoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HistoryItem.
// Note that you need to call HistoryItem.Unwrap() before calling this method if this HistoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HistoryItem) Update() *HistoryItemUpdateOne {
	return NewHistoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HistoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HistoryItem) Unwrap() *HistoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HistoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HistoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("HistoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("context_description=")
	builder.WriteString(_m.ContextDescription)
	builder.WriteString(", ")
	builder.WriteString("thumbnail=")
	builder.WriteString(_m.Thumbnail)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("chat=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chat))
	builder.WriteByte(')')
	return builder.String()
}

// HistoryItems is a parsable slice of HistoryItem.
type HistoryItems []*HistoryItem
