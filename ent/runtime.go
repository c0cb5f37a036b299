// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/karandv/lingua/ent/chatsession"
	"github.com/karandv/lingua/ent/historyitem"
	"github.com/karandv/lingua/ent/llmrequestevent"
	"github.com/karandv/lingua/ent/missionevent"
	"github.com/karandv/lingua/ent/quizevent"
	"github.com/karandv/lingua/ent/roundevent"
	"github.com/karandv/lingua/ent/schema"
	"github.com/karandv/lingua/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescSessionID is the schema descriptor for session_id field.
	chatsessionDescSessionID := chatsessionFields[0].Descriptor()
	// chatsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatsession.SessionIDValidator = chatsessionDescSessionID.Validators[0].(func(string) error)
	// chatsessionDescTimestamp is the schema descriptor for timestamp field.
	chatsessionDescTimestamp := chatsessionFields[1].Descriptor()
	// chatsession.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatsession.DefaultTimestamp = chatsessionDescTimestamp.Default.(func() time.Time)
	// chatsessionDescTheme is the schema descriptor for theme field.
	chatsessionDescTheme := chatsessionFields[2].Descriptor()
	// chatsession.ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	chatsession.ThemeValidator = chatsessionDescTheme.Validators[0].(func(string) error)
	// chatsessionDescLanguage is the schema descriptor for language field.
	chatsessionDescLanguage := chatsessionFields[3].Descriptor()
	// chatsession.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	chatsession.LanguageValidator = chatsessionDescLanguage.Validators[0].(func(string) error)
	// chatsessionDescUserRole is the schema descriptor for user_role field.
	chatsessionDescUserRole := chatsessionFields[4].Descriptor()
	// chatsession.UserRoleValidator is a validator for the "user_role" field. It is called by the builders before save.
	chatsession.UserRoleValidator = chatsessionDescUserRole.Validators[0].(func(string) error)
	// chatsessionDescPartnerRole is the schema descriptor for partner_role field.
	chatsessionDescPartnerRole := chatsessionFields[5].Descriptor()
	// chatsession.PartnerRoleValidator is a validator for the "partner_role" field. It is called by the builders before save.
	chatsession.PartnerRoleValidator = chatsessionDescPartnerRole.Validators[0].(func(string) error)
	// chatsessionDescContextDescription is the schema descriptor for context_description field.
	chatsessionDescContextDescription := chatsessionFields[6].Descriptor()
	// chatsession.DefaultContextDescription holds the default value on creation for the context_description field.
	chatsession.DefaultContextDescription = chatsessionDescContextDescription.Default.(string)
	historyitemFields := schema.HistoryItem{}.Fields()
	_ = historyitemFields
	// historyitemDescItemID is the schema descriptor for item_id field.
	historyitemDescItemID := historyitemFields[0].Descriptor()
	// historyitem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	historyitem.ItemIDValidator = historyitemDescItemID.Validators[0].(func(string) error)
	// historyitemDescTimestamp is the schema descriptor for timestamp field.
	historyitemDescTimestamp := historyitemFields[1].Descriptor()
	// historyitem.DefaultTimestamp holds the default value on creation for the timestamp field.
	historyitem.DefaultTimestamp = historyitemDescTimestamp.Default.(func() time.Time)
	// historyitemDescTheme is the schema descriptor for theme field.
	historyitemDescTheme := historyitemFields[2].Descriptor()
	// historyitem.ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	historyitem.ThemeValidator = historyitemDescTheme.Validators[0].(func(string) error)
	// historyitemDescLanguage is the schema descriptor for language field.
	historyitemDescLanguage := historyitemFields[3].Descriptor()
	// historyitem.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	historyitem.LanguageValidator = historyitemDescLanguage.Validators[0].(func(string) error)
	// historyitemDescDifficulty is the schema descriptor for difficulty field.
	historyitemDescDifficulty := historyitemFields[4].Descriptor()
	// historyitem.DefaultDifficulty holds the default value on creation for the difficulty field.
	historyitem.DefaultDifficulty = historyitemDescDifficulty.Default.(string)
	// historyitemDescContextDescription is the schema descriptor for context_description field.
	historyitemDescContextDescription := historyitemFields[5].Descriptor()
	// historyitem.DefaultContextDescription holds the default value on creation for the context_description field.
	historyitem.DefaultContextDescription = historyitemDescContextDescription.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	missioneventMixin := schema.MissionEvent{}.Mixin()
	missioneventMixinFields0 := missioneventMixin[0].Fields()
	_ = missioneventMixinFields0
	missioneventFields := schema.MissionEvent{}.Fields()
	_ = missioneventFields
	// missioneventDescTimestamp is the schema descriptor for timestamp field.
	missioneventDescTimestamp := missioneventMixinFields0[1].Descriptor()
	// missionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	missionevent.DefaultTimestamp = missioneventDescTimestamp.Default.(func() time.Time)
	// missioneventDescMissionID is the schema descriptor for mission_id field.
	missioneventDescMissionID := missioneventFields[0].Descriptor()
	// missionevent.MissionIDValidator is a validator for the "mission_id" field. It is called by the builders before save.
	missionevent.MissionIDValidator = missioneventDescMissionID.Validators[0].(func(string) error)
	// missioneventDescLabel is the schema descriptor for label field.
	missioneventDescLabel := missioneventFields[1].Descriptor()
	// missionevent.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	missionevent.LabelValidator = missioneventDescLabel.Validators[0].(func(string) error)
	// missioneventDescXpAwarded is the schema descriptor for xp_awarded field.
	missioneventDescXpAwarded := missioneventFields[4].Descriptor()
	// missionevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	missionevent.DefaultXpAwarded = missioneventDescXpAwarded.Default.(int)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescTheme is the schema descriptor for theme field.
	quizeventDescTheme := quizeventFields[0].Descriptor()
	// quizevent.DefaultTheme holds the default value on creation for the theme field.
	quizevent.DefaultTheme = quizeventDescTheme.Default.(string)
	// quizeventDescLanguage is the schema descriptor for language field.
	quizeventDescLanguage := quizeventFields[1].Descriptor()
	// quizevent.DefaultLanguage holds the default value on creation for the language field.
	quizevent.DefaultLanguage = quizeventDescLanguage.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescRoundID is the schema descriptor for round_id field.
	roundeventDescRoundID := roundeventFields[0].Descriptor()
	// roundevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	roundevent.RoundIDValidator = roundeventDescRoundID.Validators[0].(func(string) error)
	// roundeventDescXpAwarded is the schema descriptor for xp_awarded field.
	roundeventDescXpAwarded := roundeventFields[4].Descriptor()
	// roundevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	roundevent.DefaultXpAwarded = roundeventDescXpAwarded.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
