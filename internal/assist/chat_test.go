package assist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

func TestChatSession_ContextExcludesSyntheticWelcome(t *testing.T) {
	s := NewChatSession(catalog.LangEnglish, "Hello! I am your AI assistant.")
	s.AddLearner("What is the Sun made of?")
	s.AddAssistant("Mostly hydrogen and helium.")

	ctx := s.Context()
	if len(ctx) != 2 {
		t.Fatalf("context has %d messages, want 2 (welcome excluded)", len(ctx))
	}
	if ctx[0].Role != llm.RoleUser || ctx[1].Role != llm.RoleAssistant {
		t.Errorf("unexpected roles: %v, %v", ctx[0].Role, ctx[1].Role)
	}
}

func TestChatSession_SyntheticExcludedByProvenanceNotPosition(t *testing.T) {
	// A synthetic turn injected mid-transcript must also be excluded.
	s := NewChatSession(catalog.LangEnglish, "")
	s.AddLearner("hi")
	s.Turns = append(s.Turns, Turn{Speaker: SpeakerAssistant, Text: "session restored", Synthetic: true})
	s.AddAssistant("hello")

	ctx := s.Context()
	if len(ctx) != 2 {
		t.Fatalf("context has %d messages, want 2", len(ctx))
	}
	for _, m := range ctx {
		if m.Content == "session restored" {
			t.Error("synthetic turn leaked into context")
		}
	}
}

func TestChat_PassesHistoryAndCurrentMessageSeparately(t *testing.T) {
	c, mock := newTestClient(
		llm.MockResponse{Content: json.RawMessage(`Reply one`)},
		llm.MockResponse{Content: json.RawMessage(`Reply two`)},
	)

	s := NewChatSession(catalog.LangEnglish, "welcome")

	if _, err := c.Chat(context.Background(), "first question", s.Context(), s.Lang); err != nil {
		t.Fatalf("chat 1: %v", err)
	}
	// First round: no history, just the current message.
	if got := len(mock.Calls[0].Messages); got != 1 {
		t.Fatalf("round 1 sent %d messages, want 1", got)
	}

	s.AddLearner("first question")
	s.AddAssistant("Reply one")

	if _, err := c.Chat(context.Background(), "second question", s.Context(), s.Lang); err != nil {
		t.Fatalf("chat 2: %v", err)
	}
	// Second round: two history turns plus the current message.
	msgs := mock.Calls[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("round 2 sent %d messages, want 3", len(msgs))
	}
	if msgs[0].Content != "first question" || msgs[1].Content != "Reply one" {
		t.Errorf("unexpected history: %+v", msgs[:2])
	}
	if msgs[2].Content != "second question" {
		t.Errorf("current message = %q", msgs[2].Content)
	}
	// The welcome never reaches the provider.
	for _, m := range msgs {
		if m.Content == "welcome" {
			t.Error("synthetic welcome sent to provider")
		}
	}
}

func TestChat_FailureReturnsLocalizedFallback(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	text, err := c.Chat(context.Background(), "hello?", nil, catalog.LangEnglish)
	if err == nil {
		t.Fatal("expected error")
	}
	if text != "Sorry, an error occurred." {
		t.Errorf("fallback text = %q", text)
	}
}

func TestChat_NotConfiguredReturnsLocalizedText(t *testing.T) {
	c := New(nil, DefaultConfig())

	text, err := c.Chat(context.Background(), "hi", nil, catalog.LangArabic)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if text != "يرجى تكوين مفتاح API." {
		t.Errorf("text = %q", text)
	}
}
