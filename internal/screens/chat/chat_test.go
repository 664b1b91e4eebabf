package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
	"github.com/manara-app/manara/internal/screen"
)

func newTestChat(responses ...llm.MockResponse) (*ChatScreen, *assist.ChatSession) {
	client := assist.New(llm.NewMockProvider(responses...), assist.DefaultConfig())
	session := assist.NewChatSession(catalog.LangEnglish, "welcome")
	return New(client, session, nil), session
}

func typeMessage(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

// drain flattens a possibly-batched command into its messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findReply(t *testing.T, msgs []tea.Msg) replyMsg {
	t.Helper()
	for _, m := range msgs {
		if r, ok := m.(replyMsg); ok {
			return r
		}
	}
	t.Fatal("no reply message produced")
	return replyMsg{}
}

// The transcript is only mutated from the update loop: the learner turn
// lands synchronously on send, and the assistant turn only once the
// reply message is delivered. The command itself must not touch the
// session, since it runs on another goroutine while View reads the
// transcript.
func TestSend_TranscriptMutatesOnlyOnUpdateLoop(t *testing.T) {
	c, session := newTestChat(llm.MockResponse{Content: json.RawMessage(`The Sun is a star.`)})

	var s screen.Screen = c
	s = typeMessage(s, "what is the sun?")
	s, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// The learner's own message renders before the reply arrives.
	if len(session.Turns) != 2 {
		t.Fatalf("transcript has %d turns after send, want 2", len(session.Turns))
	}
	if session.Turns[1].Speaker != assist.SpeakerLearner || session.Turns[1].Text != "what is the sun?" {
		t.Errorf("learner turn = %+v", session.Turns[1])
	}
	if view := s.View(80, 24); !strings.Contains(view, "what is the sun?") {
		t.Error("pending view does not show the learner's message")
	}

	msgs := drain(cmd)
	if len(session.Turns) != 2 {
		t.Fatalf("command mutated the transcript: %d turns", len(session.Turns))
	}

	s, _ = s.Update(findReply(t, msgs))
	if len(session.Turns) != 3 {
		t.Fatalf("transcript has %d turns after reply, want 3", len(session.Turns))
	}
	last := session.Turns[2]
	if last.Speaker != assist.SpeakerAssistant || last.Text != "The Sun is a star." {
		t.Errorf("assistant turn = %+v", last)
	}
	if view := s.View(80, 24); !strings.Contains(view, "The Sun is a star.") {
		t.Error("view does not show the assistant reply")
	}
}

func TestSend_FailureKeepsLearnerTurnOnly(t *testing.T) {
	c, session := newTestChat(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	var s screen.Screen = c
	s = typeMessage(s, "hello?")
	s, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s, _ = s.Update(findReply(t, drain(cmd)))

	// Synthetic welcome plus the learner turn; no assistant turn recorded.
	if len(session.Turns) != 2 {
		t.Fatalf("transcript has %d turns, want 2", len(session.Turns))
	}
	if c.errText != "Sorry, an error occurred." {
		t.Errorf("errText = %q", c.errText)
	}
	if view := s.View(80, 24); !strings.Contains(view, "Sorry, an error occurred.") {
		t.Error("view does not show the failure message")
	}
}

func TestSend_SecondRoundSendsHistoryWithoutWelcome(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Reply one`)},
		llm.MockResponse{Content: json.RawMessage(`Reply two`)},
	)
	client := assist.New(provider, assist.DefaultConfig())
	session := assist.NewChatSession(catalog.LangEnglish, "welcome")

	var s screen.Screen = New(client, session, nil)
	s = typeMessage(s, "first")
	s, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s, _ = s.Update(findReply(t, drain(cmd)))

	s = typeMessage(s, "second")
	s, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(findReply(t, drain(cmd)))

	msgs := provider.Calls[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("round 2 sent %d messages, want 3", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "Reply one" || msgs[2].Content != "second" {
		t.Errorf("unexpected round 2 messages: %+v", msgs)
	}
	for _, m := range msgs {
		if m.Content == "welcome" {
			t.Error("synthetic welcome sent to provider")
		}
	}
}
