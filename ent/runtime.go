// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/manara-app/manara/ent/lessonevent"
	"github.com/manara-app/manara/ent/llmrequestevent"
	"github.com/manara-app/manara/ent/quizevent"
	"github.com/manara-app/manara/ent/rewardevent"
	"github.com/manara-app/manara/ent/schema"
	"github.com/manara-app/manara/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescCourseID is the schema descriptor for course_id field.
	lessoneventDescCourseID := lessoneventFields[0].Descriptor()
	// lessonevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessonevent.CourseIDValidator = lessoneventDescCourseID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescPreviousLessonID is the schema descriptor for previous_lesson_id field.
	lessoneventDescPreviousLessonID := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultPreviousLessonID holds the default value on creation for the previous_lesson_id field.
	lessonevent.DefaultPreviousLessonID = lessoneventDescPreviousLessonID.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescAttemptID is the schema descriptor for attempt_id field.
	quizeventDescAttemptID := quizeventFields[0].Descriptor()
	// quizevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizevent.AttemptIDValidator = quizeventDescAttemptID.Validators[0].(func(string) error)
	// quizeventDescLessonID is the schema descriptor for lesson_id field.
	quizeventDescLessonID := quizeventFields[1].Descriptor()
	// quizevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	quizevent.LessonIDValidator = quizeventDescLessonID.Validators[0].(func(string) error)
	// quizeventDescLanguage is the schema descriptor for language field.
	quizeventDescLanguage := quizeventFields[5].Descriptor()
	// quizevent.DefaultLanguage holds the default value on creation for the language field.
	quizevent.DefaultLanguage = quizeventDescLanguage.Default.(string)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescAttemptID is the schema descriptor for attempt_id field.
	rewardeventDescAttemptID := rewardeventFields[0].Descriptor()
	// rewardevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	rewardevent.AttemptIDValidator = rewardeventDescAttemptID.Validators[0].(func(string) error)
	// rewardeventDescLessonID is the schema descriptor for lesson_id field.
	rewardeventDescLessonID := rewardeventFields[1].Descriptor()
	// rewardevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	rewardevent.LessonIDValidator = rewardeventDescLessonID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
