package player

import (
	"errors"
	"testing"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
)

func TestBegin_OneInFlightPerKind(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, err := s.Begin(OpTutor)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got := s.Status(OpTutor); got != StatusPending {
		t.Errorf("status = %v, want pending", got)
	}

	if _, err := s.Begin(OpTutor); !errors.Is(err, ErrOpPending) {
		t.Errorf("second begin: %v, want ErrOpPending", err)
	}

	// A different kind is independent.
	if _, err := s.Begin(OpQuizGen); err != nil {
		t.Errorf("begin other kind: %v", err)
	}

	s.Resolve(ticket, Outcome{Text: "answer"})
	if got := s.Status(OpTutor); got != StatusSucceeded {
		t.Errorf("status = %v, want succeeded", got)
	}
}

func TestBegin_RestartAfterFailure(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, _ := s.Begin(OpTutor)
	s.Resolve(ticket, Outcome{Err: errors.New("down"), ErrText: "Error connecting to AI Tutor."})

	if got := s.Status(OpTutor); got != StatusFailed {
		t.Fatalf("status = %v, want failed", got)
	}
	if got := s.OpError(OpTutor); got != "Error connecting to AI Tutor." {
		t.Errorf("op error = %q", got)
	}

	// Failed slots may be restarted; the inline error clears.
	ticket2, err := s.Begin(OpTutor)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := s.OpError(OpTutor); got != "" {
		t.Errorf("op error after restart = %q, want cleared", got)
	}
	s.Resolve(ticket2, Outcome{Text: "recovered"})
	if got := s.TutorResponse(); got != "recovered" {
		t.Errorf("tutor response = %q", got)
	}
}

func TestResolve_StaleAfterLessonSwitch(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, _ := s.Begin(OpTutor)
	if err := s.SelectLesson("l1-2"); err != nil {
		t.Fatalf("select: %v", err)
	}

	// The old lesson's answer arrives after the switch: discarded.
	if s.Resolve(ticket, Outcome{Text: "stale answer"}) {
		t.Error("stale outcome committed")
	}
	if got := s.TutorResponse(); got != "" {
		t.Errorf("tutor response = %q, want empty", got)
	}
	if got := s.Status(OpTutor); got != StatusIdle {
		t.Errorf("status = %v, want idle", got)
	}
}

func TestResolve_StaleAfterReturningToSameLesson(t *testing.T) {
	// Switching away and back mints a new generation, so a ticket from
	// the first visit is stale even though the lesson ID matches.
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, _ := s.Begin(OpTutor)
	s.SelectLesson("l1-2")
	s.SelectLesson("l1-1")

	if s.Resolve(ticket, Outcome{Text: "stale"}) {
		t.Error("outcome from earlier visit committed")
	}
	if got := s.TutorResponse(); got != "" {
		t.Errorf("tutor response = %q, want empty", got)
	}
}

func TestResolve_EmptyQuizIsFailure(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, _ := s.Begin(OpQuizGen)
	committed := s.Resolve(ticket, Outcome{Questions: nil, ErrText: "quiz unavailable"})
	if !committed {
		t.Fatal("outcome not committed")
	}
	if got := s.Status(OpQuizGen); got != StatusFailed {
		t.Errorf("status = %v, want failed", got)
	}
	if s.Quiz() != nil {
		t.Error("empty question set produced a quiz attempt")
	}
}

func TestResolve_QuizSuccessCreatesFreshAttempt(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	ticket, _ := s.Begin(OpQuizGen)
	if !s.Resolve(ticket, Outcome{Questions: testQuestions()}) {
		t.Fatal("outcome not committed")
	}

	quiz := s.Quiz()
	if quiz == nil {
		t.Fatal("no quiz attempt")
	}
	if quiz.LessonID != "l1-1" {
		t.Errorf("attempt lesson = %q", quiz.LessonID)
	}
	if len(quiz.Answers) != len(quiz.Questions) {
		t.Errorf("answers len = %d, want %d", len(quiz.Answers), len(quiz.Questions))
	}
}

func TestResolve_VideoScopedToStagedFile(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})
	s.StageVideo(assist.MediaFile{Name: "first.mp4", MIMEType: "video/mp4"})

	ticket, _ := s.Begin(OpVideoAnalysis)

	// Replacing the staged file invalidates the running analysis.
	s.StageVideo(assist.MediaFile{Name: "second.mp4", MIMEType: "video/mp4"})

	if s.Resolve(ticket, Outcome{Text: "analysis of first"}) {
		t.Error("analysis of replaced file committed")
	}
	if got := s.VideoResult(); got != "" {
		t.Errorf("video result = %q, want empty", got)
	}
}

func TestResolve_ChatSurvivesLessonSwitch(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})
	s.AttachChat("chat-1")

	ticket, _ := s.Begin(OpChat)
	s.SelectLesson("l1-2")

	// Chat is lesson-independent: the turn still commits.
	if !s.Resolve(ticket, Outcome{Text: "reply"}) {
		t.Error("chat outcome discarded on lesson switch")
	}
	if got := s.Status(OpChat); got != StatusSucceeded {
		t.Errorf("chat status = %v, want succeeded", got)
	}
}

func TestResolve_ChatStaleAfterSessionSwap(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})
	s.AttachChat("chat-1")

	ticket, _ := s.Begin(OpChat)
	s.AttachChat("chat-2")

	if s.Resolve(ticket, Outcome{Text: "reply"}) {
		t.Error("outcome for replaced chat session committed")
	}
}

func TestResolve_UnknownTicketDiscarded(t *testing.T) {
	s := NewSession(testCourse(t), catalog.LangEnglish, Hooks{})

	bogus := Ticket{Kind: OpTutor, Scope: Scope{LessonID: "l1-1"}}
	if s.Resolve(bogus, Outcome{Text: "x"}) {
		t.Error("outcome without Begin committed")
	}
}
