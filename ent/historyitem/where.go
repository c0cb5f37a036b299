// Code generated by ent, DO NOT EDIT.

package historyitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/karandv/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldItemID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldTimestamp, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldTheme, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldLanguage, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldDifficulty, v))
}

// ContextDescription applies equality check predicate on the "context_description" field. It's identical to ContextDescriptionEQ.
func ContextDescription(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldContextDescription, v))
}

// Thumbnail applies equality check predicate on the "thumbnail" field. It's identical to ThumbnailEQ.
func Thumbnail(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldThumbnail, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldItemID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldTimestamp, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldTheme, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldLanguage, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldDifficulty, v))
}

// ContextDescriptionEQ applies the EQ predicate on the "context_description" field.
func ContextDescriptionEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldContextDescription, v))
}

// ContextDescriptionNEQ applies the NEQ predicate on the "context_description" field.
func ContextDescriptionNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldContextDescription, v))
}

// ContextDescriptionIn applies the In predicate on the "context_description" field.
func ContextDescriptionIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldContextDescription, vs...))
}

// ContextDescriptionNotIn applies the NotIn predicate on the "context_description" field.
func ContextDescriptionNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldContextDescription, vs...))
}

// ContextDescriptionGT applies the GT predicate on the "context_description" field.
func ContextDescriptionGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldContextDescription, v))
}

// ContextDescriptionGTE applies the GTE predicate on the "context_description" field.
func ContextDescriptionGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldContextDescription, v))
}

// ContextDescriptionLT applies the LT predicate on the "context_description" field.
func ContextDescriptionLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldContextDescription, v))
}

// ContextDescriptionLTE applies the LTE predicate on the "context_description" field.
func ContextDescriptionLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldContextDescription, v))
}

// ContextDescriptionContains applies the Contains predicate on the "context_description" field.
func ContextDescriptionContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldContextDescription, v))
}

// ContextDescriptionHasPrefix applies the HasPrefix predicate on the "context_description" field.
func ContextDescriptionHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldContextDescription, v))
}

// ContextDescriptionHasSuffix applies the HasSuffix predicate on the "context_description" field.
func ContextDescriptionHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldContextDescription, v))
}

// ContextDescriptionEqualFold applies the EqualFold predicate on the "context_description" field.
func ContextDescriptionEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldContextDescription, v))
}

// ContextDescriptionContainsFold applies the ContainsFold predicate on the "context_description" field.
func ContextDescriptionContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldContextDescription, v))
}

// ThumbnailEQ applies the EQ predicate on the "thumbnail" field.
func ThumbnailEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEQ(FieldThumbnail, v))
}

// ThumbnailNEQ applies the NEQ predicate on the "thumbnail" field.
func ThumbnailNEQ(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNEQ(FieldThumbnail, v))
}

// ThumbnailIn applies the In predicate on the "thumbnail" field.
func ThumbnailIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIn(FieldThumbnail, vs...))
}

// ThumbnailNotIn applies the NotIn predicate on the "thumbnail" field.
func ThumbnailNotIn(vs ...string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotIn(FieldThumbnail, vs...))
}

// ThumbnailGT applies the GT predicate on the "thumbnail" field.
func ThumbnailGT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGT(FieldThumbnail, v))
}

// ThumbnailGTE applies the GTE predicate on the "thumbnail" field.
func ThumbnailGTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldGTE(FieldThumbnail, v))
}

// ThumbnailLT applies the LT predicate on the "thumbnail" field.
func ThumbnailLT(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLT(FieldThumbnail, v))
}

// ThumbnailLTE applies the LTE predicate on the "thumbnail" field.
func ThumbnailLTE(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldLTE(FieldThumbnail, v))
}

// ThumbnailContains applies the Contains predicate on the "thumbnail" field.
func ThumbnailContains(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContains(FieldThumbnail, v))
}

// ThumbnailHasPrefix applies the HasPrefix predicate on the "thumbnail" field.
func ThumbnailHasPrefix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasPrefix(FieldThumbnail, v))
}

// ThumbnailHasSuffix applies the HasSuffix predicate on the "thumbnail" field.
func ThumbnailHasSuffix(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldHasSuffix(FieldThumbnail, v))
}

// ThumbnailIsNil applies the IsNil predicate on the "thumbnail" field.
func ThumbnailIsNil() predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIsNull(FieldThumbnail))
}

// ThumbnailNotNil applies the NotNil predicate on the "thumbnail" field.
func ThumbnailNotNil() predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotNull(FieldThumbnail))
}

// ThumbnailEqualFold applies the EqualFold predicate on the "thumbnail" field.
func ThumbnailEqualFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldEqualFold(FieldThumbnail, v))
}

// ThumbnailContainsFold applies the ContainsFold predicate on the "thumbnail" field.
func ThumbnailContainsFold(v string) predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldContainsFold(FieldThumbnail, v))
}

// ChatIsNil applies the IsNil predicate on the "chat" field.
func ChatIsNil() predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldIsNull(FieldChat))
}

// ChatNotNil applies the NotNil predicate on the "chat" field.
func ChatNotNil() predicate.HistoryItem {
	return predicate.HistoryItem(sql.FieldNotNull(FieldChat))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HistoryItem) predicate.HistoryItem {
	return predicate.HistoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HistoryItem) predicate.HistoryItem {
	return predicate.HistoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HistoryItem) predicate.HistoryItem {
	return predicate.HistoryItem(sql.NotPredicates(p))
}
