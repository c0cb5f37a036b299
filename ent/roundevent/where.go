// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/karandv/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundID, v))
}

// Turns applies equality check predicate on the "turns" field. It's identical to TurnsEQ.
func Turns(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTurns, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldOutcome, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldRoundID, v))
}

// TurnsEQ applies the EQ predicate on the "turns" field.
func TurnsEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTurns, v))
}

// TurnsNEQ applies the NEQ predicate on the "turns" field.
func TurnsNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTurns, v))
}

// TurnsIn applies the In predicate on the "turns" field.
func TurnsIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTurns, vs...))
}

// TurnsNotIn applies the NotIn predicate on the "turns" field.
func TurnsNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTurns, vs...))
}

// TurnsGT applies the GT predicate on the "turns" field.
func TurnsGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTurns, v))
}

// TurnsGTE applies the GTE predicate on the "turns" field.
func TurnsGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTurns, v))
}

// TurnsLT applies the LT predicate on the "turns" field.
func TurnsLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTurns, v))
}

// TurnsLTE applies the LTE predicate on the "turns" field.
func TurnsLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTurns, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldScore, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.NotPredicates(p))
}
