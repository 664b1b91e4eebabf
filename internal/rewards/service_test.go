package rewards

import (
	"context"
	"testing"

	"github.com/manara-app/manara/internal/grading"
	"github.com/manara-app/manara/internal/store"
)

// mockEventRepo implements store.EventRepo for reward tests.
type mockEventRepo struct {
	rewards []store.RewardEventData
}

func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMRequest(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (m *mockEventRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.rewards = append(m.rewards, data)
	return nil
}

func (m *mockEventRepo) QueryRewards(context.Context, store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) HasReward(_ context.Context, attemptID string) (bool, error) {
	for _, r := range m.rewards {
		if r.AttemptID == attemptID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEventRepo) AppendQuiz(context.Context, store.QuizEventData) error { return nil }

func (m *mockEventRepo) QueryQuizzes(context.Context, store.QueryOpts) ([]store.QuizEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) AppendLesson(context.Context, store.LessonEventData) error { return nil }

func (m *mockEventRepo) QueryLessons(context.Context, store.QueryOpts) ([]store.LessonEventRecord, error) {
	return nil, nil
}

// mockProgression records awarded points.
type mockProgression struct {
	total int
}

func (m *mockProgression) AwardPoints(_ context.Context, points int) error {
	m.total += points
	return nil
}

func TestAwardQuiz_PerfectScoreEarnsMastery(t *testing.T) {
	events := &mockEventRepo{}
	prog := &mockProgression{}
	s := NewService(events, prog)

	award, err := s.AwardQuiz(context.Background(), "attempt-1", "l1-1", 3, 3)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award == nil {
		t.Fatal("expected award")
	}
	if award.Tier != grading.TierMastery {
		t.Errorf("tier = %q, want mastery", award.Tier)
	}
	if award.Points != 50 {
		t.Errorf("points = %d, want 50", award.Points)
	}
	if prog.total != 50 {
		t.Errorf("progression received %d, want 50", prog.total)
	}
	if len(events.rewards) != 1 {
		t.Fatalf("persisted %d rewards, want 1", len(events.rewards))
	}
}

func TestAwardQuiz_ImperfectScoreEarnsAttempt(t *testing.T) {
	s := NewService(&mockEventRepo{}, &mockProgression{})

	award, err := s.AwardQuiz(context.Background(), "attempt-1", "l1-1", 2, 3)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award.Tier != grading.TierAttempt {
		t.Errorf("tier = %q, want attempt", award.Tier)
	}
	if award.Points != 10 {
		t.Errorf("points = %d, want 10", award.Points)
	}
}

func TestAwardQuiz_IdempotentPerAttempt(t *testing.T) {
	events := &mockEventRepo{}
	prog := &mockProgression{}
	s := NewService(events, prog)
	ctx := context.Background()

	if _, err := s.AwardQuiz(ctx, "attempt-1", "l1-1", 3, 3); err != nil {
		t.Fatalf("first award: %v", err)
	}

	award, err := s.AwardQuiz(ctx, "attempt-1", "l1-1", 3, 3)
	if err != nil {
		t.Fatalf("second award: %v", err)
	}
	if award != nil {
		t.Error("expected nil award on duplicate attempt")
	}
	if prog.total != 50 {
		t.Errorf("progression received %d, want 50 (single award)", prog.total)
	}
	if len(events.rewards) != 1 {
		t.Errorf("persisted %d rewards, want 1", len(events.rewards))
	}
}

func TestAwardQuiz_DeduplicatesAcrossRuns(t *testing.T) {
	events := &mockEventRepo{
		rewards: []store.RewardEventData{{AttemptID: "attempt-1", Points: 50}},
	}
	prog := &mockProgression{}
	s := NewService(events, prog)

	award, err := s.AwardQuiz(context.Background(), "attempt-1", "l1-1", 3, 3)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if award != nil {
		t.Error("expected nil award for attempt rewarded in a previous run")
	}
	if prog.total != 0 {
		t.Errorf("progression received %d, want 0", prog.total)
	}
}

func TestSessionAccumulators(t *testing.T) {
	s := NewService(&mockEventRepo{}, &mockProgression{})
	ctx := context.Background()

	s.AwardQuiz(ctx, "a1", "l1-1", 3, 3)
	s.AwardQuiz(ctx, "a2", "l1-2", 1, 3)

	if got := s.SessionPoints(); got != 60 {
		t.Errorf("session points = %d, want 60", got)
	}
	if got := len(s.SessionAwards()); got != 2 {
		t.Errorf("session awards = %d, want 2", got)
	}
}
