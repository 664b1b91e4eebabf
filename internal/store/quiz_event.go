package store

import (
	"context"
	"fmt"

	"github.com/manara-app/manara/ent"
	"github.com/manara-app/manara/ent/quizevent"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetLessonID(data.LessonID).
		SetQuestionCount(data.QuestionCount).
		SetScore(data.Score).
		SetPerfect(data.Perfect).
		SetLanguage(data.Language).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizzes(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = QuizEventRecord{
			QuizEventData: QuizEventData{
				AttemptID:     e.AttemptID,
				LessonID:      e.LessonID,
				QuestionCount: e.QuestionCount,
				Score:         e.Score,
				Perfect:       e.Perfect,
				Language:      e.Language,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
