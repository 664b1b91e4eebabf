package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressData is the learner progression portion of a snapshot.
type ProgressData struct {
	XP               int      `json:"xp"`
	Streak           int      `json:"streak"`
	CompletedLessons []string `json:"completed_lessons"`
	LastActiveDay    string   `json:"last_active_day"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int           `json:"version"`
	Progress *ProgressData `json:"progress,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates token usage for one grouping key (purpose or model).
type LLMUsageStat struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// RewardEventData captures XP awarded for a submitted quiz attempt.
type RewardEventData struct {
	AttemptID string
	LessonID  string
	Tier      string
	Points    int
	Score     int
	MaxScore  int
}

// RewardEventRecord is a stored reward event.
type RewardEventRecord struct {
	RewardEventData
	Sequence  int64
	Timestamp time.Time
}

// QuizEventData captures a submitted quiz attempt and its grade.
type QuizEventData struct {
	AttemptID     string
	LessonID      string
	QuestionCount int
	Score         int
	Perfect       bool
	Language      string
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// LessonEventData captures a lesson selection.
type LessonEventData struct {
	CourseID         string
	LessonID         string
	PreviousLessonID string
}

// LessonEventRecord is a stored lesson selection event.
type LessonEventRecord struct {
	LessonEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMRequest returns a single LLM request event by ID.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)

	// AppendReward records XP awarded for a quiz attempt.
	AppendReward(ctx context.Context, data RewardEventData) error

	// QueryRewards returns reward events, newest first.
	QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// HasReward reports whether a reward was already recorded for the attempt.
	HasReward(ctx context.Context, attemptID string) (bool, error)

	// AppendQuiz records a submitted quiz attempt.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// QueryQuizzes returns quiz events, newest first.
	QueryQuizzes(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// AppendLesson records a lesson selection.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// QueryLessons returns lesson selection events, newest first.
	QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonEventRecord, error)
}
