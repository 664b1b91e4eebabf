// Package activity displays past quiz attempts and the XP they earned.
package activity

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/manara-app/manara/internal/grading"
	"github.com/manara-app/manara/internal/router"
	"github.com/manara-app/manara/internal/screen"
	"github.com/manara-app/manara/internal/store"
	"github.com/manara-app/manara/internal/ui/layout"
	"github.com/manara-app/manara/internal/ui/theme"
)

type activityLoadedMsg struct {
	Quizzes []store.QuizEventRecord
	Rewards map[string]store.RewardEventRecord // attemptID → reward
	Err     error
}

// ActivityScreen lists quiz attempts newest first with their rewards.
type ActivityScreen struct {
	eventRepo store.EventRepo
	quizzes   []store.QuizEventRecord
	rewards   map[string]store.RewardEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates a new ActivityScreen.
func New(eventRepo store.EventRepo) *ActivityScreen {
	return &ActivityScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *ActivityScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := s.eventRepo.QueryQuizzes(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return activityLoadedMsg{Err: err}
		}

		rewards := make(map[string]store.RewardEventRecord)
		rewardEvents, err := s.eventRepo.QueryRewards(ctx, store.QueryOpts{})
		if err != nil {
			return activityLoadedMsg{Quizzes: quizzes, Rewards: rewards}
		}
		for _, r := range rewardEvents {
			rewards[r.AttemptID] = r
		}

		return activityLoadedMsg{Quizzes: quizzes, Rewards: rewards}
	}
}

func (s *ActivityScreen) Title() string {
	return "Activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
			s.rewards = msg.Rewards
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.quizzes)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *ActivityScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}
	if len(s.quizzes) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Open a lesson and generate one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, quiz := range s.quizzes {
		dateStr := quiz.Timestamp.Format("Jan 02, 2006")

		scoreStr := fmt.Sprintf("%d/%d", quiz.Score, quiz.QuestionCount)
		perfectStr := ""
		if quiz.Perfect {
			perfectStr = "  ✦ perfect"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  score %s%s",
			prefix, dateStr, quiz.LessonID, scoreStr, perfectStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			reward, ok := s.rewards[quiz.AttemptID]
			if !ok {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No XP recorded for this attempt")))
				b.WriteString("\n")
			} else {
				tier := grading.Tier(reward.Tier)
				detail := fmt.Sprintf("    %s — +%d XP", tierLabel(tier), reward.Points)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(tierColor(tier)).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func tierLabel(t grading.Tier) string {
	if t == grading.TierMastery {
		return "Mastery"
	}
	return "Good attempt"
}

func tierColor(t grading.Tier) color.Color {
	if t == grading.TierMastery {
		return theme.Accent
	}
	return theme.Secondary
}
