package player

import (
	"errors"
	"testing"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/grading"
)

func testCourse(t *testing.T) catalog.Course {
	t.Helper()
	c, err := catalog.FindCourse("c1")
	if err != nil {
		t.Fatalf("find course: %v", err)
	}
	return c
}

func testQuestions() []assist.QuizQuestion {
	return []assist.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Question: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
		{Question: "q3", Options: []string{"a", "b"}, CorrectIndex: 1},
	}
}

func sessionWithQuiz(t *testing.T, hooks Hooks) *Session {
	t.Helper()
	s := NewSession(testCourse(t), catalog.LangEnglish, hooks)
	ticket, err := s.Begin(OpQuizGen)
	if err != nil {
		t.Fatalf("begin quiz-gen: %v", err)
	}
	if !s.Resolve(ticket, Outcome{Questions: testQuestions()}) {
		t.Fatal("quiz outcome not committed")
	}
	return s
}

func TestNewSession_StartsOnFirstLessonSummaryTab(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	if got := s.ActiveLesson().ID; got != "l1-1" {
		t.Errorf("active lesson = %q, want l1-1", got)
	}
	if got := s.ActiveTab(); got != TabSummary {
		t.Errorf("active tab = %q, want summary", got)
	}
	if got := s.ExpandedChapter(); got != "ch1" {
		t.Errorf("expanded chapter = %q, want ch1", got)
	}
}

func TestSelectLesson_WholesaleReset(t *testing.T) {
	s := sessionWithQuiz(t, Hooks{})
	s.SelectTab(TabQuiz)

	// Populate every lesson-scoped artifact.
	tut, _ := s.Begin(OpTutor)
	s.Resolve(tut, Outcome{Text: "tutor answer"})
	sum, _ := s.Begin(OpSummary)
	s.Resolve(sum, Outcome{Text: "summary"})
	s.StageVideo(assist.MediaFile{Name: "lecture.mp4", MIMEType: "video/mp4"})
	vid, _ := s.Begin(OpVideoAnalysis)
	s.Resolve(vid, Outcome{Text: "analysis"})

	if err := s.SelectLesson("l1-2"); err != nil {
		t.Fatalf("select lesson: %v", err)
	}

	if s.Quiz() != nil {
		t.Error("quiz survived lesson switch")
	}
	if s.TutorResponse() != "" {
		t.Error("tutor response survived lesson switch")
	}
	if s.Summary() != "" {
		t.Error("summary survived lesson switch")
	}
	if s.VideoFile() != nil || s.VideoResult() != "" {
		t.Error("video job survived lesson switch")
	}
	if got := s.ActiveTab(); got != TabSummary {
		t.Errorf("tab = %q, want reset to summary", got)
	}
	for _, kind := range []OpKind{OpQuizGen, OpTutor, OpSummary, OpVideoAnalysis} {
		if got := s.Status(kind); got != StatusIdle {
			t.Errorf("status(%s) = %v, want idle", kind, got)
		}
	}
}

func TestSelectLesson_FiresHookWithPreviousLesson(t *testing.T) {
	var gotPrev, gotNew string
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{
		LessonChanged: func(prev, next string) { gotPrev, gotNew = prev, next },
	})

	if err := s.SelectLesson("l1-2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if gotPrev != "l1-1" || gotNew != "l1-2" {
		t.Errorf("hook got (%q, %q), want (l1-1, l1-2)", gotPrev, gotNew)
	}
}

func TestSelectLesson_UnknownLesson(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})
	if err := s.SelectLesson("l9-9"); err == nil {
		t.Error("expected error for unknown lesson")
	}
	if got := s.ActiveLesson().ID; got != "l1-1" {
		t.Errorf("active lesson changed to %q on failed select", got)
	}
}

func TestToggleChapter(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	s.ToggleChapter("ch1")
	if got := s.ExpandedChapter(); got != "" {
		t.Errorf("expanded = %q, want collapsed", got)
	}
	s.ToggleChapter("ch1")
	if got := s.ExpandedChapter(); got != "ch1" {
		t.Errorf("expanded = %q, want ch1", got)
	}
}

func TestSubmitQuiz_GradesAndLocks(t *testing.T) {
	var submitted *QuizAttempt
	s := sessionWithQuiz(t, Hooks{
		QuizSubmitted: func(a QuizAttempt) { submitted = &a },
	})

	// Correct answers: 0, 1, 1. Answer two correctly.
	s.AnswerQuiz(0, 0)
	s.AnswerQuiz(1, 1)
	s.AnswerQuiz(2, 0)

	attempt, err := s.SubmitQuiz()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 2 {
		t.Errorf("score = %d, want 2", attempt.Score)
	}
	if !attempt.Submitted {
		t.Error("attempt not marked submitted")
	}
	if submitted == nil || submitted.Score != 2 {
		t.Error("QuizSubmitted hook missing or wrong")
	}

	// Post-submit edits and re-submission are rejected.
	if err := s.AnswerQuiz(0, 1); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("answer after submit: %v, want ErrAlreadySubmitted", err)
	}
	if _, err := s.SubmitQuiz(); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("resubmit: %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmitQuiz_BlockedWhileUnanswered(t *testing.T) {
	s := sessionWithQuiz(t, Hooks{})

	s.AnswerQuiz(0, 0)
	// Question 1 and 2 still carry the sentinel.
	if _, err := s.SubmitQuiz(); !errors.Is(err, ErrIncompleteAttempt) {
		t.Fatalf("submit: %v, want ErrIncompleteAttempt", err)
	}

	s.AnswerQuiz(1, 0)
	s.AnswerQuiz(2, 0)
	if _, err := s.SubmitQuiz(); err != nil {
		t.Fatalf("submit complete attempt: %v", err)
	}
}

func TestSubmitQuiz_NoQuiz(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})
	if _, err := s.SubmitQuiz(); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("submit: %v, want ErrNoQuiz", err)
	}
}

func TestNewAttemptAnswersStartUnanswered(t *testing.T) {
	a := newQuizAttempt("l1-1", testQuestions())
	for i, ans := range a.Answers {
		if ans != grading.Unanswered {
			t.Errorf("answers[%d] = %d, want sentinel", i, ans)
		}
	}
	if a.Complete() {
		t.Error("fresh attempt reported complete")
	}
	if a.ID == "" {
		t.Error("attempt missing ID")
	}
}
