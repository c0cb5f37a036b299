// Code generated by ent, DO NOT EDIT.

package chatsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/karandv/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldTimestamp, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldTheme, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldLanguage, v))
}

// UserRole applies equality check predicate on the "user_role" field. It's identical to UserRoleEQ.
func UserRole(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldUserRole, v))
}

// PartnerRole applies equality check predicate on the "partner_role" field. It's identical to PartnerRoleEQ.
func PartnerRole(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldPartnerRole, v))
}

// ContextDescription applies equality check predicate on the "context_description" field. It's identical to ContextDescriptionEQ.
func ContextDescription(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldContextDescription, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldTimestamp, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldTheme, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldLanguage, v))
}

// UserRoleEQ applies the EQ predicate on the "user_role" field.
func UserRoleEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldUserRole, v))
}

// UserRoleNEQ applies the NEQ predicate on the "user_role" field.
func UserRoleNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldUserRole, v))
}

// UserRoleIn applies the In predicate on the "user_role" field.
func UserRoleIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldUserRole, vs...))
}

// UserRoleNotIn applies the NotIn predicate on the "user_role" field.
func UserRoleNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldUserRole, vs...))
}

// UserRoleGT applies the GT predicate on the "user_role" field.
func UserRoleGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldUserRole, v))
}

// UserRoleGTE applies the GTE predicate on the "user_role" field.
func UserRoleGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldUserRole, v))
}

// UserRoleLT applies the LT predicate on the "user_role" field.
func UserRoleLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldUserRole, v))
}

// UserRoleLTE applies the LTE predicate on the "user_role" field.
func UserRoleLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldUserRole, v))
}

// UserRoleContains applies the Contains predicate on the "user_role" field.
func UserRoleContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldUserRole, v))
}

// UserRoleHasPrefix applies the HasPrefix predicate on the "user_role" field.
func UserRoleHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldUserRole, v))
}

// UserRoleHasSuffix applies the HasSuffix predicate on the "user_role" field.
func UserRoleHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldUserRole, v))
}

// UserRoleEqualFold applies the EqualFold predicate on the "user_role" field.
func UserRoleEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldUserRole, v))
}

// UserRoleContainsFold applies the ContainsFold predicate on the "user_role" field.
func UserRoleContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldUserRole, v))
}

// PartnerRoleEQ applies the EQ predicate on the "partner_role" field.
func PartnerRoleEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldPartnerRole, v))
}

// PartnerRoleNEQ applies the NEQ predicate on the "partner_role" field.
func PartnerRoleNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldPartnerRole, v))
}

// PartnerRoleIn applies the In predicate on the "partner_role" field.
func PartnerRoleIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldPartnerRole, vs...))
}

// PartnerRoleNotIn applies the NotIn predicate on the "partner_role" field.
func PartnerRoleNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldPartnerRole, vs...))
}

// PartnerRoleGT applies the GT predicate on the "partner_role" field.
func PartnerRoleGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldPartnerRole, v))
}

// PartnerRoleGTE applies the GTE predicate on the "partner_role" field.
func PartnerRoleGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldPartnerRole, v))
}

// PartnerRoleLT applies the LT predicate on the "partner_role" field.
func PartnerRoleLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldPartnerRole, v))
}

// PartnerRoleLTE applies the LTE predicate on the "partner_role" field.
func PartnerRoleLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldPartnerRole, v))
}

// PartnerRoleContains applies the Contains predicate on the "partner_role" field.
func PartnerRoleContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldPartnerRole, v))
}

// PartnerRoleHasPrefix applies the HasPrefix predicate on the "partner_role" field.
func PartnerRoleHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldPartnerRole, v))
}

// PartnerRoleHasSuffix applies the HasSuffix predicate on the "partner_role" field.
func PartnerRoleHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldPartnerRole, v))
}

// PartnerRoleEqualFold applies the EqualFold predicate on the "partner_role" field.
func PartnerRoleEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldPartnerRole, v))
}

// PartnerRoleContainsFold applies the ContainsFold predicate on the "partner_role" field.
func PartnerRoleContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldPartnerRole, v))
}

// ContextDescriptionEQ applies the EQ predicate on the "context_description" field.
func ContextDescriptionEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEQ(FieldContextDescription, v))
}

// ContextDescriptionNEQ applies the NEQ predicate on the "context_description" field.
func ContextDescriptionNEQ(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNEQ(FieldContextDescription, v))
}

// ContextDescriptionIn applies the In predicate on the "context_description" field.
func ContextDescriptionIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldIn(FieldContextDescription, vs...))
}

// ContextDescriptionNotIn applies the NotIn predicate on the "context_description" field.
func ContextDescriptionNotIn(vs ...string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldNotIn(FieldContextDescription, vs...))
}

// ContextDescriptionGT applies the GT predicate on the "context_description" field.
func ContextDescriptionGT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGT(FieldContextDescription, v))
}

// ContextDescriptionGTE applies the GTE predicate on the "context_description" field.
func ContextDescriptionGTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldGTE(FieldContextDescription, v))
}

// ContextDescriptionLT applies the LT predicate on the "context_description" field.
func ContextDescriptionLT(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLT(FieldContextDescription, v))
}

// ContextDescriptionLTE applies the LTE predicate on the "context_description" field.
func ContextDescriptionLTE(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldLTE(FieldContextDescription, v))
}

// ContextDescriptionContains applies the Contains predicate on the "context_description" field.
func ContextDescriptionContains(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContains(FieldContextDescription, v))
}

// ContextDescriptionHasPrefix applies the HasPrefix predicate on the "context_description" field.
func ContextDescriptionHasPrefix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasPrefix(FieldContextDescription, v))
}

// ContextDescriptionHasSuffix applies the HasSuffix predicate on the "context_description" field.
func ContextDescriptionHasSuffix(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldHasSuffix(FieldContextDescription, v))
}

// ContextDescriptionEqualFold applies the EqualFold predicate on the "context_description" field.
func ContextDescriptionEqualFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldEqualFold(FieldContextDescription, v))
}

// ContextDescriptionContainsFold applies the ContainsFold predicate on the "context_description" field.
func ContextDescriptionContainsFold(v string) predicate.ChatSession {
	return predicate.ChatSession(sql.FieldContainsFold(FieldContextDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatSession) predicate.ChatSession {
	return predicate.ChatSession(sql.NotPredicates(p))
}
