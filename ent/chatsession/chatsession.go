// Code generated by ent, DO NOT EDIT.

package chatsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatsession type in the database.
	Label = "chat_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldUserRole holds the string denoting the user_role field in the database.
	FieldUserRole = "user_role"
	// FieldPartnerRole holds the string denoting the partner_role field in the database.
	FieldPartnerRole = "partner_role"
	// FieldContextDescription holds the string denoting the context_description field in the database.
	FieldContextDescription = "context_description"
	// FieldMessages holds the string denoting the messages field in the database.
	FieldMessages = "messages"
	// Table holds the table name of the chatsession in the database.
	Table = "chat_sessions"
)

// Columns holds all SQL columns for chatsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldTheme,
	FieldLanguage,
	FieldUserRole,
	FieldPartnerRole,
	FieldContextDescription,
	FieldMessages,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	ThemeValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// UserRoleValidator is a validator for the "user_role" field. It is called by the builders before save.
	UserRoleValidator func(string) error
	// PartnerRoleValidator is a validator for the "partner_role" field. It is called by the builders before save.
	PartnerRoleValidator func(string) error
	// DefaultContextDescription holds the default value on creation for the "context_description" field.
	DefaultContextDescription string
)

// OrderOption defines the ordering options for the ChatSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByUserRole orders the results by the user_role field.
func ByUserRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRole, opts...).ToFunc()
}

// ByPartnerRole orders the results by the partner_role field.
func ByPartnerRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartnerRole, opts...).ToFunc()
}

// ByContextDescription orders the results by the context_description field.
func ByContextDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextDescription, opts...).ToFunc()
}
