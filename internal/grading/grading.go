// Package grading scores submitted quiz attempts and maps scores to
// fixed XP reward tiers.
package grading

import "github.com/manara-app/manara/internal/assist"

// Unanswered is the sentinel for a question with no selected option.
const Unanswered = -1

// Reward point values per tier.
const (
	PointsMastery = 50
	PointsAttempt = 10
)

// Tier classifies a graded attempt for reward purposes.
type Tier string

const (
	// TierMastery is a perfect score.
	TierMastery Tier = "mastery"
	// TierAttempt is any completed, non-perfect attempt.
	TierAttempt Tier = "attempt"
)

// Points returns the XP value of a tier.
func (t Tier) Points() int {
	if t == TierMastery {
		return PointsMastery
	}
	return PointsAttempt
}

// Grade counts answers matching the correct option index. It is total:
// extra or missing answers never panic, they simply cannot score.
func Grade(questions []assist.QuizQuestion, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}

// TierFor classifies a score out of total questions.
func TierFor(score, total int) Tier {
	if total > 0 && score == total {
		return TierMastery
	}
	return TierAttempt
}

// Complete reports whether every question has a selected answer.
// Attempts with any Unanswered sentinel cannot be submitted.
func Complete(answers []int) bool {
	for _, a := range answers {
		if a == Unanswered {
			return false
		}
	}
	return true
}
