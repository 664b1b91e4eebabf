package player

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/grading"
)

// QuizAttempt is one learner pass over a generated quiz. The question
// set is fixed at creation; answers accumulate until submission, after
// which the attempt is immutable.
type QuizAttempt struct {
	ID        string
	LessonID  string
	Questions []assist.QuizQuestion
	Answers   []int
	Submitted bool
	Score     int
}

func newQuizAttempt(lessonID string, questions []assist.QuizQuestion) *QuizAttempt {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = grading.Unanswered
	}
	return &QuizAttempt{
		ID:        uuid.NewString(),
		LessonID:  lessonID,
		Questions: questions,
		Answers:   answers,
	}
}

// Answer records the selected option for a question.
func (a *QuizAttempt) Answer(question, option int) error {
	if a.Submitted {
		return ErrAlreadySubmitted
	}
	if question < 0 || question >= len(a.Questions) {
		return fmt.Errorf("question index %d out of range", question)
	}
	if option < 0 || option >= len(a.Questions[question].Options) {
		return fmt.Errorf("option index %d out of range for question %d", option, question)
	}
	a.Answers[question] = option
	return nil
}

// Complete reports whether every question has an answer selected.
func (a *QuizAttempt) Complete() bool {
	return grading.Complete(a.Answers)
}

// Perfect reports whether a submitted attempt scored full marks.
func (a *QuizAttempt) Perfect() bool {
	return a.Submitted && len(a.Questions) > 0 && a.Score == len(a.Questions)
}
