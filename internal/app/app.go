package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/progress"
	"github.com/manara-app/manara/internal/rewards"
	"github.com/manara-app/manara/internal/router"
	"github.com/manara-app/manara/internal/screen"
	"github.com/manara-app/manara/internal/screens/home"
	"github.com/manara-app/manara/internal/screens/welcome"
	"github.com/manara-app/manara/internal/store"
	"github.com/manara-app/manara/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	progressSvc *progress.Service
	width       int
	height      int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(client *assist.Client, events store.EventRepo, progressSvc *progress.Service, rewardsSvc *rewards.Service, chat *assist.ChatSession, lang catalog.Language) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(client, events, progressSvc, rewardsSvc, chat, lang)
	}
	return AppModel{
		router:      router.New(welcome.New(homeFactory)),
		progressSvc: progressSvc,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders frameless.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	var xp, streak int
	if m.progressSvc != nil {
		user := m.progressSvc.CurrentUser()
		xp = user.XP
		streak = user.Streak
	}
	header := layout.RenderHeader(title, xp, streak, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(client *assist.Client, events store.EventRepo, progressSvc *progress.Service, rewardsSvc *rewards.Service, chat *assist.ChatSession, lang catalog.Language) error {
	p := tea.NewProgram(newAppModel(client, events, progressSvc, rewardsSvc, chat, lang))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
