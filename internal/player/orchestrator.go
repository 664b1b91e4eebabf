package player

import (
	"github.com/manara-app/manara/internal/assist"
)

// OpKind identifies an AI operation class. At most one operation of each
// kind may be in flight at a time.
type OpKind string

const (
	OpQuizGen       OpKind = "quiz-gen"
	OpTutor         OpKind = "tutor"
	OpSummary       OpKind = "summary"
	OpVideoAnalysis OpKind = "video-analysis"
	OpChat          OpKind = "chat"
)

// OpStatus is the lifecycle state of an operation slot.
type OpStatus int

const (
	StatusIdle OpStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

// Scope captures the identity an operation was started against. A result
// commits only if its scope still matches the session when it arrives:
// lesson-scoped ops carry the lesson and generation, video additionally
// carries the staged file name, chat carries the chat session instead.
type Scope struct {
	LessonID  string
	MediaName string
	ChatID    string
	Gen       uint64
}

// Ticket is the handle returned by Begin. The holder runs the operation
// asynchronously and brings the outcome back through Resolve.
type Ticket struct {
	Kind  OpKind
	Scope Scope
}

// Outcome is the tagged result of a finished operation. Exactly one of
// the payload fields is meaningful for a given kind: Questions for quiz
// generation, Text for the others. Err marks failure; ErrText is the
// localized message rendered inline.
type Outcome struct {
	Questions []assist.QuizQuestion
	Text      string
	Err       error
	ErrText   string
}

// operation is one in-flight or settled slot in the orchestrator.
type operation struct {
	status OpStatus
	ticket Ticket
}

// scopeFor builds the current scope for a kind. Caller holds the lock.
func (s *Session) scopeFor(kind OpKind) Scope {
	switch kind {
	case OpChat:
		return Scope{ChatID: s.chatID}
	case OpVideoAnalysis:
		name := ""
		if s.videoFile != nil {
			name = s.videoFile.Name
		}
		return Scope{LessonID: s.activeLesson.ID, MediaName: name, Gen: s.gen}
	default:
		return Scope{LessonID: s.activeLesson.ID, Gen: s.gen}
	}
}

// Begin transitions an operation kind to pending and returns its ticket.
// Returns ErrOpPending while a prior operation of the same kind is still
// in flight; settled slots (succeeded or failed) may be restarted.
func (s *Session) Begin(kind OpKind) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if op, ok := s.ops[kind]; ok && op.status == StatusPending {
		return Ticket{}, ErrOpPending
	}

	t := Ticket{Kind: kind, Scope: s.scopeFor(kind)}
	s.ops[kind] = &operation{status: StatusPending, ticket: t}
	delete(s.opErrs, kind)
	return t, nil
}

// Resolve commits an operation outcome. Results whose ticket no longer
// matches the live operation slot, or whose scope has moved on (the
// lesson changed, the staged video was replaced, the chat was swapped),
// are discarded silently and the session state is left untouched.
// Returns whether the outcome was committed.
func (s *Session) Resolve(t Ticket, out Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.ops[t.Kind]
	if !ok || op.status != StatusPending || op.ticket != t {
		return false
	}
	if s.scopeFor(t.Kind) != t.Scope {
		// The slot survived but the world changed underneath it.
		op.status = StatusIdle
		return false
	}

	failed := out.Err != nil
	if t.Kind == OpQuizGen && len(out.Questions) == 0 {
		// An empty question set is never a valid quiz.
		failed = true
	}

	if failed {
		op.status = StatusFailed
		s.opErrs[t.Kind] = out.ErrText
		return true
	}

	switch t.Kind {
	case OpQuizGen:
		s.quiz = newQuizAttempt(s.activeLesson.ID, out.Questions)
	case OpTutor:
		s.tutorResponse = out.Text
	case OpSummary:
		s.summary = out.Text
	case OpVideoAnalysis:
		s.videoResult = out.Text
	case OpChat:
		// Chat transcript lives in the assist.ChatSession; the slot only
		// tracks the in-flight turn.
	}

	op.status = StatusSucceeded
	return true
}

// Status returns the lifecycle state of an operation kind.
func (s *Session) Status(kind OpKind) OpStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if op, ok := s.ops[kind]; ok {
		return op.status
	}
	return StatusIdle
}

// OpError returns the inline error text for a failed operation.
func (s *Session) OpError(kind OpKind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opErrs[kind]
}
