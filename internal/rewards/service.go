// Package rewards converts graded quiz attempts into persisted XP
// awards. Each attempt earns at most one reward regardless of how many
// times a submission is processed.
package rewards

import (
	"context"
	"fmt"
	"sync"

	"github.com/manara-app/manara/internal/grading"
	"github.com/manara-app/manara/internal/store"
)

// Award describes XP granted for one quiz attempt.
type Award struct {
	AttemptID string
	LessonID  string
	Tier      grading.Tier
	Points    int
	Score     int
	MaxScore  int
}

// Progression receives awarded points. Implemented by progress.Service.
type Progression interface {
	AwardPoints(ctx context.Context, points int) error
}

// Service persists reward events and applies them to the learner's
// progression.
type Service struct {
	events      store.EventRepo
	progression Progression

	mu      sync.Mutex
	awarded map[string]bool
	session []Award
}

// NewService creates a reward service.
func NewService(events store.EventRepo, progression Progression) *Service {
	return &Service{
		events:      events,
		progression: progression,
		awarded:     make(map[string]bool),
	}
}

// AwardQuiz grants XP for a submitted attempt. Perfect scores earn the
// mastery tier, everything else the attempt tier. Returns nil when the
// attempt was already rewarded, in this process or a previous run.
func (s *Service) AwardQuiz(ctx context.Context, attemptID, lessonID string, score, maxScore int) (*Award, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.awarded[attemptID] {
		return nil, nil
	}
	if s.events != nil {
		exists, err := s.events.HasReward(ctx, attemptID)
		if err != nil {
			return nil, fmt.Errorf("check existing reward: %w", err)
		}
		if exists {
			s.awarded[attemptID] = true
			return nil, nil
		}
	}

	tier := grading.TierFor(score, maxScore)
	award := Award{
		AttemptID: attemptID,
		LessonID:  lessonID,
		Tier:      tier,
		Points:    tier.Points(),
		Score:     score,
		MaxScore:  maxScore,
	}

	if s.events != nil {
		err := s.events.AppendReward(ctx, store.RewardEventData{
			AttemptID: award.AttemptID,
			LessonID:  award.LessonID,
			Tier:      string(award.Tier),
			Points:    award.Points,
			Score:     award.Score,
			MaxScore:  award.MaxScore,
		})
		if err != nil {
			return nil, fmt.Errorf("persist reward: %w", err)
		}
	}

	if s.progression != nil {
		if err := s.progression.AwardPoints(ctx, award.Points); err != nil {
			return nil, fmt.Errorf("apply reward points: %w", err)
		}
	}

	s.awarded[attemptID] = true
	s.session = append(s.session, award)
	return &award, nil
}

// SessionAwards returns the awards granted during this process run.
func (s *Service) SessionAwards() []Award {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Award(nil), s.session...)
}

// SessionPoints returns total XP granted during this process run.
func (s *Service) SessionPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, a := range s.session {
		total += a.Points
	}
	return total
}
