package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/progress"
	"github.com/manara-app/manara/internal/rewards"
	"github.com/manara-app/manara/internal/router"
	"github.com/manara-app/manara/internal/screen"
	"github.com/manara-app/manara/internal/screens/activity"
	chatscreen "github.com/manara-app/manara/internal/screens/chat"
	playerscreen "github.com/manara-app/manara/internal/screens/player"
	"github.com/manara-app/manara/internal/store"
	"github.com/manara-app/manara/internal/ui/components"
	"github.com/manara-app/manara/internal/ui/theme"
)

// HomeScreen is the course picker and entry point of the application.
type HomeScreen struct {
	menu        components.Menu
	progressSvc *progress.Service
	lang        catalog.Language
	courseCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(client *assist.Client, events store.EventRepo, progressSvc *progress.Service, rewardsSvc *rewards.Service, chat *assist.ChatSession, lang catalog.Language) *HomeScreen {
	courses := catalog.Courses()

	items := make([]components.MenuItem, 0, len(courses)+3)
	for _, course := range courses {
		course := course
		label := fmt.Sprintf("%s  (%d lessons)", strings.ToUpper(course.Title.In(lang)), course.LessonCount())
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: playerscreen.New(course, client, events, progressSvc, rewardsSvc, chat, lang),
				}
			}
		}})
	}

	items = append(items,
		components.MenuItem{Label: "STUDY CHAT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(client, chat, nil)}
			}
		}},
		components.MenuItem{Label: "ACTIVITY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: activity.New(events)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:        components.NewMenu(items),
		progressSvc: progressSvc,
		lang:        lang,
		courseCount: len(courses),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Manara")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your AI-powered learning companion")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats())
	sections = append(sections, theme.Card.Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStats shows the learner identity line and progression numbers.
func (h *HomeScreen) renderStats() string {
	user := h.progressSvc.CurrentUser()

	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(user.Name)
	level := lipgloss.NewStyle().Foreground(theme.Secondary).Render(user.LevelTitle().In(h.lang))

	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("✦ %d XP   ★ %d day streak   ✓ %d lessons done",
			user.XP, user.Streak, len(user.CompletedLessons)))

	return theme.Card.Render(name + "  ·  " + level + "\n" + stats)
}
