// Package progress tracks the local learner's identity and progression:
// XP, streak, and completed lessons. State is restored from the latest
// snapshot and re-snapshotted after every mutation.
package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/store"
)

// Role distinguishes learners from instructors.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// User is the local account the client runs as.
type User struct {
	ID               string
	Name             string
	Email            string
	Role             Role
	XP               int
	Streak           int
	CompletedLessons []string
}

// LevelTitle returns the bilingual rank for the user's XP.
func (u User) LevelTitle() catalog.Text {
	switch {
	case u.XP >= 5000:
		return catalog.Text{AR: "عالم خبير", EN: "Expert Scholar"}
	case u.XP >= 2500:
		return catalog.Text{AR: "مستكشف متقدم", EN: "Advanced Explorer"}
	case u.XP >= 1000:
		return catalog.Text{AR: "باحث مبتدئ", EN: "Novice Researcher"}
	default:
		return catalog.Text{AR: "متعلم جديد", EN: "New Learner"}
	}
}

// Service owns the learner state. Safe for concurrent use.
type Service struct {
	snapshots store.SnapshotRepo

	mu            sync.Mutex
	user          User
	lastActiveDay string
}

// snapshotsToKeep bounds snapshot history growth.
const snapshotsToKeep = 10

// Load restores learner state from the latest snapshot, or starts the
// seeded local learner when none exists.
func Load(ctx context.Context, snapshots store.SnapshotRepo) (*Service, error) {
	s := &Service{
		snapshots: snapshots,
		user: User{
			ID:     "u1",
			Name:   "أحمد محمد",
			Email:  "student@almanara.com",
			Role:   RoleStudent,
			XP:     1250,
			Streak: 5,
		},
	}

	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress snapshot: %w", err)
	}
	if snap != nil && snap.Data.Progress != nil {
		p := snap.Data.Progress
		s.user.XP = p.XP
		s.user.Streak = p.Streak
		s.user.CompletedLessons = p.CompletedLessons
		s.lastActiveDay = p.LastActiveDay
	}

	return s, nil
}

// CurrentUser returns a copy of the learner state.
func (s *Service) CurrentUser() User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.user
	u.CompletedLessons = append([]string(nil), s.user.CompletedLessons...)
	return u
}

// AwardPoints adds XP, advances the activity streak, and persists.
func (s *Service) AwardPoints(ctx context.Context, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.XP += points
	s.touchStreak()
	return s.save(ctx)
}

// MarkCompleted records a finished lesson. Already-completed lessons
// are a no-op.
func (s *Service) MarkCompleted(ctx context.Context, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.user.CompletedLessons {
		if id == lessonID {
			return nil
		}
	}
	s.user.CompletedLessons = append(s.user.CompletedLessons, lessonID)
	return s.save(ctx)
}

// IsCompleted reports whether the lesson was finished before.
func (s *Service) IsCompleted(lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.user.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// touchStreak updates the day streak based on the last active day.
// Caller holds the mutex.
func (s *Service) touchStreak() {
	today := time.Now().Format("2006-01-02")
	if s.lastActiveDay == today {
		return
	}
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if s.lastActiveDay == yesterday {
		s.user.Streak++
	} else if s.lastActiveDay != "" {
		s.user.Streak = 1
	}
	s.lastActiveDay = today
}

// save writes a fresh snapshot. Caller holds the mutex.
func (s *Service) save(ctx context.Context) error {
	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			Progress: &store.ProgressData{
				XP:               s.user.XP,
				Streak:           s.user.Streak,
				CompletedLessons: append([]string(nil), s.user.CompletedLessons...),
				LastActiveDay:    s.lastActiveDay,
			},
		},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	if err := s.snapshots.Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune progress snapshots: %w", err)
	}
	return nil
}
