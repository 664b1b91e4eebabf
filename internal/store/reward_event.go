package store

import (
	"context"
	"fmt"

	"github.com/manara-app/manara/ent"
	"github.com/manara-app/manara/ent/rewardevent"
)

func (r *eventRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetLessonID(data.LessonID).
		SetTier(data.Tier).
		SetPoints(data.Points).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardEventRecord, len(events))
	for i, e := range events {
		records[i] = RewardEventRecord{
			RewardEventData: RewardEventData{
				AttemptID: e.AttemptID,
				LessonID:  e.LessonID,
				Tier:      e.Tier,
				Points:    e.Points,
				Score:     e.Score,
				MaxScore:  e.MaxScore,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) HasReward(ctx context.Context, attemptID string) (bool, error) {
	exists, err := r.client.RewardEvent.Query().
		Where(rewardevent.AttemptID(attemptID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check reward for attempt %q: %w", attemptID, err)
	}
	return exists, nil
}
