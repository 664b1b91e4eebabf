package grading

import (
	"testing"

	"github.com/manara-app/manara/internal/assist"
)

func threeQuestions() []assist.QuizQuestion {
	return []assist.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		{Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 2, 3}, 3},
		{"none correct", []int{1, 0, 0}, 0},
		{"partial", []int{0, 0, 3}, 2},
		{"wrong option never scores", []int{3, 1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(threeQuestions(), tt.answers); got != tt.want {
				t.Errorf("Grade(%v) = %d, want %d", tt.answers, got, tt.want)
			}
		})
	}
}

func TestGrade_IsTotalOnMismatchedLengths(t *testing.T) {
	// Short answer slice: ungraded questions score nothing, no panic.
	if got := Grade(threeQuestions(), []int{0}); got != 1 {
		t.Errorf("Grade(short) = %d, want 1", got)
	}
	// Extra answers are ignored.
	if got := Grade(threeQuestions(), []int{0, 2, 3, 1, 1}); got != 3 {
		t.Errorf("Grade(long) = %d, want 3", got)
	}
	if got := Grade(nil, nil); got != 0 {
		t.Errorf("Grade(nil, nil) = %d, want 0", got)
	}
}

func TestTierFor(t *testing.T) {
	if tier := TierFor(3, 3); tier != TierMastery {
		t.Errorf("TierFor(3,3) = %q, want mastery", tier)
	}
	if tier := TierFor(2, 3); tier != TierAttempt {
		t.Errorf("TierFor(2,3) = %q, want attempt", tier)
	}
	if tier := TierFor(0, 3); tier != TierAttempt {
		t.Errorf("TierFor(0,3) = %q, want attempt", tier)
	}
	// Zero questions can never be mastery.
	if tier := TierFor(0, 0); tier != TierAttempt {
		t.Errorf("TierFor(0,0) = %q, want attempt", tier)
	}
}

func TestTierPoints(t *testing.T) {
	if got := TierMastery.Points(); got != 50 {
		t.Errorf("mastery points = %d, want 50", got)
	}
	if got := TierAttempt.Points(); got != 10 {
		t.Errorf("attempt points = %d, want 10", got)
	}
}

func TestComplete(t *testing.T) {
	if !Complete([]int{0, 1, 2}) {
		t.Error("fully answered attempt reported incomplete")
	}
	if Complete([]int{0, Unanswered, 2}) {
		t.Error("attempt with sentinel reported complete")
	}
	if !Complete(nil) {
		t.Error("empty answer set should be trivially complete")
	}
}
