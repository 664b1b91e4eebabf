// Package chat renders the lesson-independent study chat. The transcript
// lives in an assist.ChatSession shared across screens, so the
// conversation keeps its history when the learner moves between lessons.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/player"
	"github.com/manara-app/manara/internal/router"
	"github.com/manara-app/manara/internal/screen"
	"github.com/manara-app/manara/internal/ui/components"
	"github.com/manara-app/manara/internal/ui/layout"
	"github.com/manara-app/manara/internal/ui/theme"
)

// replyMsg carries an assistant reply back into the update loop.
type replyMsg struct {
	Ticket player.Ticket
	Text   string
	Err    error
}

// ChatScreen is the conversational AI assistant view.
type ChatScreen struct {
	client  *assist.Client
	session *assist.ChatSession

	// ctrl gates in-flight turns when the chat is opened from a lesson.
	// Nil when opened standalone from the home screen.
	ctrl *player.Session

	input   components.TextInput
	busy    bool
	errText string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen over the shared chat session.
func New(client *assist.Client, session *assist.ChatSession, ctrl *player.Session) *ChatScreen {
	return &ChatScreen{
		client:  client,
		session: session,
		ctrl:    ctrl,
		input:   components.NewTextInput("Ask me anything...", false, 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Study Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return c.handleReply(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send dispatches the typed message as an async chat turn. The learner
// turn is appended here, and the assistant turn in handleReply, so the
// shared transcript is only ever mutated from the event loop; the
// command goroutine works from the history snapshot taken before
// dispatch.
func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(c.input.Value())
	if text == "" || c.pending() {
		return c, nil
	}

	var ticket player.Ticket
	if c.ctrl != nil {
		t, err := c.ctrl.Begin(player.OpChat)
		if err != nil {
			return c, nil
		}
		ticket = t
	}
	c.busy = true
	c.errText = ""
	c.input = components.NewTextInput("Ask me anything...", false, 200)

	history := c.session.Context()
	c.session.AddLearner(text)

	client, lang := c.client, c.session.Lang
	return c, tea.Batch(c.input.Init(), func() tea.Msg {
		reply, err := client.Chat(context.Background(), text, history, lang)
		return replyMsg{Ticket: ticket, Text: reply, Err: err}
	})
}

func (c *ChatScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	c.busy = false

	if c.ctrl != nil {
		out := player.Outcome{Text: msg.Text, Err: msg.Err}
		if msg.Err != nil {
			out.ErrText = msg.Text
		}
		if !c.ctrl.Resolve(msg.Ticket, out) {
			return c, nil
		}
	}
	if msg.Err != nil {
		// The reply text is the localized failure message. The learner
		// turn stays; no assistant turn is recorded.
		c.errText = msg.Text
		return c, nil
	}
	c.session.AddAssistant(msg.Text)
	return c, nil
}

func (c *ChatScreen) pending() bool {
	if c.ctrl != nil {
		return c.ctrl.Status(player.OpChat) == player.StatusPending
	}
	return c.busy
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	transcriptHeight := height - 4
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	lines := c.transcriptLines(width - 4)
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(strings.Repeat("\n", transcriptHeight-len(lines)+1))

	if c.pending() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  Manara is thinking..."))
		b.WriteString("\n")
	} else if c.errText != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("  " + c.errText))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString("  " + c.input.View())
	return b.String()
}

// transcriptLines renders every turn wrapped to the given width.
func (c *ChatScreen) transcriptLines(width int) []string {
	if width < 10 {
		width = 10
	}

	learnerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	assistantStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var lines []string
	for _, turn := range c.session.Turns {
		label := assistantStyle.Render("  Manara")
		if turn.Speaker == assist.SpeakerLearner {
			label = learnerStyle.Render("  You")
		}
		lines = append(lines, label)
		lines = append(lines, strings.Split(bodyStyle.Render("  "+turn.Text), "\n")...)
		lines = append(lines, "")
	}
	return lines
}
