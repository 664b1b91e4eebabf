// Package player holds the lesson session state machine: which lesson
// and tab are active, the per-lesson AI artifacts (quiz, tutor answer,
// summary, video analysis), and the orchestration of in-flight AI
// operations against that state.
package player

import (
	"errors"
	"sync"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/grading"
)

// Tab identifies a lesson content pane.
type Tab string

const (
	TabSummary    Tab = "summary"
	TabQuiz       Tab = "quiz"
	TabVideo      Tab = "video"
	TabDiscussion Tab = "discussion"
)

var (
	// ErrOpPending is returned when an operation of the same kind is
	// already in flight.
	ErrOpPending = errors.New("operation already in flight")

	// ErrNoQuiz is returned when quiz actions run without a generated quiz.
	ErrNoQuiz = errors.New("no quiz generated")

	// ErrIncompleteAttempt blocks submission while any answer is missing.
	ErrIncompleteAttempt = errors.New("quiz attempt has unanswered questions")

	// ErrAlreadySubmitted blocks re-submission and post-submit edits.
	ErrAlreadySubmitted = errors.New("quiz attempt already submitted")
)

// Hooks are callbacks fired on session transitions. They run outside the
// session lock, after the transition commits.
type Hooks struct {
	// LessonChanged fires after a lesson switch. prevID is empty on the
	// initial selection.
	LessonChanged func(prevID, newID string)

	// QuizSubmitted fires once per attempt submission with the graded
	// attempt.
	QuizSubmitted func(attempt QuizAttempt)
}

// Session is the lesson session controller. Safe for concurrent use;
// async operation results re-enter through the Resolve gate.
type Session struct {
	mu    sync.Mutex
	hooks Hooks

	course catalog.Course
	lang   catalog.Language

	activeLesson    catalog.Lesson
	activeTab       Tab
	expandedChapter string

	// gen increments on every lesson switch. Tickets minted under an
	// older generation can never commit.
	gen uint64

	quiz          *QuizAttempt
	tutorResponse string
	summary       string
	videoFile     *assist.MediaFile
	videoResult   string

	chatID string

	ops    map[OpKind]*operation
	opErrs map[OpKind]string
}

// NewSession starts a session on the course's first lesson with the
// summary tab active.
func NewSession(course catalog.Course, lang catalog.Language, hooks Hooks) *Session {
	s := &Session{
		hooks:     hooks,
		course:    course,
		lang:      lang,
		activeTab: TabSummary,
		ops:       make(map[OpKind]*operation),
		opErrs:    make(map[OpKind]string),
	}

	if first, ok := course.FirstLesson(); ok {
		s.activeLesson = first
		if ch, ok := course.ChapterOf(first.ID); ok {
			s.expandedChapter = ch.ID
		}
	}

	return s
}

// Course returns the course being played.
func (s *Session) Course() catalog.Course {
	return s.course
}

// Language returns the session language.
func (s *Session) Language() catalog.Language {
	return s.lang
}

// ActiveLesson returns the currently selected lesson.
func (s *Session) ActiveLesson() catalog.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLesson
}

// ActiveTab returns the currently selected content tab.
func (s *Session) ActiveTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// ExpandedChapter returns the ID of the expanded curriculum chapter.
func (s *Session) ExpandedChapter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedChapter
}

// Quiz returns the current quiz attempt, or nil.
func (s *Session) Quiz() *QuizAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// TutorResponse returns the latest tutor answer for this lesson.
func (s *Session) TutorResponse() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tutorResponse
}

// Summary returns the generated summary for this lesson.
func (s *Session) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// VideoFile returns the media file staged for analysis, or nil.
func (s *Session) VideoFile() *assist.MediaFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoFile
}

// VideoResult returns the analysis text for the staged video.
func (s *Session) VideoResult() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoResult
}

// SelectLesson switches the active lesson and wholesale-resets all
// lesson-scoped state: quiz attempt, tutor response, summary, video job,
// inline errors, and pending lesson-scoped operations. The active tab
// returns to summary. The chat session is untouched.
func (s *Session) SelectLesson(lessonID string) error {
	s.mu.Lock()

	lesson, ch, err := s.course.FindLesson(lessonID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	prevID := s.activeLesson.ID
	s.activeLesson = lesson
	s.expandedChapter = ch.ID
	s.activeTab = TabSummary
	s.gen++

	s.quiz = nil
	s.tutorResponse = ""
	s.summary = ""
	s.videoFile = nil
	s.videoResult = ""

	for kind := range s.ops {
		if kind != OpChat {
			delete(s.ops, kind)
		}
	}
	for kind := range s.opErrs {
		if kind != OpChat {
			delete(s.opErrs, kind)
		}
	}

	hook := s.hooks.LessonChanged
	s.mu.Unlock()

	if hook != nil {
		hook(prevID, lessonID)
	}
	return nil
}

// SelectTab switches the active content tab.
func (s *Session) SelectTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

// ToggleChapter expands a curriculum chapter, or collapses it when
// already expanded.
func (s *Session) ToggleChapter(chapterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedChapter == chapterID {
		s.expandedChapter = ""
		return
	}
	s.expandedChapter = chapterID
}

// StageVideo stages a media file for analysis, replacing any prior file
// and its result.
func (s *Session) StageVideo(file assist.MediaFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoFile = &file
	s.videoResult = ""
	delete(s.ops, OpVideoAnalysis)
	delete(s.opErrs, OpVideoAnalysis)
}

// AttachChat binds the lesson-independent chat session so chat
// operations can be gated like the others.
func (s *Session) AttachChat(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatID = chatID
}

// AnswerQuiz records the selected option for a quiz question.
func (s *Session) AnswerQuiz(question, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz == nil {
		return ErrNoQuiz
	}
	return s.quiz.Answer(question, option)
}

// SubmitQuiz grades the attempt and locks it. Submission requires every
// question answered; an attempt is graded exactly once.
func (s *Session) SubmitQuiz() (QuizAttempt, error) {
	s.mu.Lock()

	if s.quiz == nil {
		s.mu.Unlock()
		return QuizAttempt{}, ErrNoQuiz
	}
	if s.quiz.Submitted {
		s.mu.Unlock()
		return QuizAttempt{}, ErrAlreadySubmitted
	}
	if !s.quiz.Complete() {
		s.mu.Unlock()
		return QuizAttempt{}, ErrIncompleteAttempt
	}

	s.quiz.Score = grading.Grade(s.quiz.Questions, s.quiz.Answers)
	s.quiz.Submitted = true

	graded := *s.quiz
	hook := s.hooks.QuizSubmitted
	s.mu.Unlock()

	if hook != nil {
		hook(graded)
	}
	return graded, nil
}
