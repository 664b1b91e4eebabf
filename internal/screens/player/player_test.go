package player

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
	ctrl "github.com/manara-app/manara/internal/player"
	"github.com/manara-app/manara/internal/screen"
)

const quizJSON = `[
	{"question":"q1","options":["a","b"],"correctIndex":0,"explanation":""},
	{"question":"q2","options":["a","b"],"correctIndex":1,"explanation":""},
	{"question":"q3","options":["a","b"],"correctIndex":1,"explanation":""}
]`

func newTestPlayer(t *testing.T, responses ...llm.MockResponse) *PlayerScreen {
	t.Helper()
	course, err := catalog.FindCourse("c1")
	if err != nil {
		t.Fatalf("find course: %v", err)
	}
	client := assist.New(llm.NewMockProvider(responses...), assist.DefaultConfig())
	return New(course, client, nil, nil, nil, nil, catalog.LangEnglish)
}

func press(t *testing.T, s screen.Screen, code rune) (screen.Screen, tea.Cmd) {
	t.Helper()
	return s.Update(tea.KeyPressMsg{Code: code, Text: string(code)})
}

// runCmd executes a command and feeds its message back into the screen,
// the way the Bubble Tea runtime would.
func runCmd(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := s.Update(cmd())
	return updated
}

func TestSidebarItems_OnlyExpandedChapterShowsLessons(t *testing.T) {
	p := newTestPlayer(t)

	items := p.sidebarItems()

	var chapters, lessons int
	for _, item := range items {
		if item.lesson == nil {
			chapters++
		} else {
			lessons++
		}
	}
	if chapters != len(p.course.Chapters) {
		t.Errorf("chapters shown = %d, want %d", chapters, len(p.course.Chapters))
	}
	if lessons == 0 {
		t.Error("expanded chapter shows no lessons")
	}

	p.sess.ToggleChapter(p.sess.ExpandedChapter())
	for _, item := range p.sidebarItems() {
		if item.lesson != nil {
			t.Fatal("collapsed curriculum still shows lessons")
		}
	}
}

func TestCycleTab_WrapsAround(t *testing.T) {
	p := newTestPlayer(t)

	order := []ctrl.Tab{ctrl.TabQuiz, ctrl.TabVideo, ctrl.TabDiscussion, ctrl.TabSummary}
	for _, want := range order {
		p.cycleTab(1)
		if got := p.sess.ActiveTab(); got != want {
			t.Fatalf("tab = %q, want %q", got, want)
		}
	}

	p.cycleTab(-1)
	if got := p.sess.ActiveTab(); got != ctrl.TabDiscussion {
		t.Errorf("tab = %q, want discussion after cycling back", got)
	}
}

func TestQuizFlow_GenerateAnswerSubmit(t *testing.T) {
	p := newTestPlayer(t, llm.MockResponse{Content: json.RawMessage(quizJSON)})

	// Open the quiz tab and generate.
	var s screen.Screen = p
	s, _ = press(t, s, '2')
	s, cmd := press(t, s, 'g')
	s = runCmd(t, s, cmd)

	quiz := p.sess.Quiz()
	if quiz == nil {
		t.Fatal("no quiz after generation")
	}
	if p.sess.Status(ctrl.OpQuizGen) != ctrl.StatusSucceeded {
		t.Fatalf("quiz-gen status = %v", p.sess.Status(ctrl.OpQuizGen))
	}

	// Answer all three questions with option 0 (one correct).
	for i := 0; i < 3; i++ {
		// Select and lock in option 0.
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if !p.mc.Submitted {
			t.Fatalf("question %d not answered after enter", i)
		}
		// Advance (submits the attempt after the last question).
		_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	if cmd == nil {
		t.Fatal("final enter produced no submit command")
	}
	s = runCmd(t, s, cmd)

	quiz = p.sess.Quiz()
	if !quiz.Submitted {
		t.Fatal("attempt not submitted")
	}
	if quiz.Score != 1 {
		t.Errorf("score = %d, want 1", quiz.Score)
	}
}

func TestQuizGeneration_PendingBlocksRestart(t *testing.T) {
	p := newTestPlayer(t, llm.MockResponse{Content: json.RawMessage(quizJSON)})

	var s screen.Screen = p
	s, _ = press(t, s, '2')
	_, cmd := press(t, s, 'g')
	if cmd == nil {
		t.Fatal("expected generation command")
	}

	// A second press while the first is in flight is a no-op.
	_, cmd2 := press(t, s, 'g')
	if cmd2 != nil {
		t.Error("second generate dispatched while one is pending")
	}
}

func TestLessonSwitchDiscardsLateQuiz(t *testing.T) {
	p := newTestPlayer(t, llm.MockResponse{Content: json.RawMessage(quizJSON)})

	var s screen.Screen = p
	s, _ = press(t, s, '2')
	s, cmd := press(t, s, 'g')

	// The learner moves on before the quiz arrives.
	if err := p.sess.SelectLesson("l1-2"); err != nil {
		t.Fatalf("select lesson: %v", err)
	}

	runCmd(t, s, cmd)
	if p.sess.Quiz() != nil {
		t.Error("stale quiz committed after lesson switch")
	}
}
