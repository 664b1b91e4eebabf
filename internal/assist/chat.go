package assist

import (
	"context"

	"github.com/google/uuid"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

// Speaker identifies who produced a chat turn.
type Speaker string

const (
	SpeakerLearner   Speaker = "learner"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is a single chat message with provenance. Synthetic turns are
// client-generated UI text (the welcome greeting) that was never part of
// the model conversation.
type Turn struct {
	Speaker   Speaker
	Text      string
	Synthetic bool
}

// ChatSession accumulates the chat transcript. Its lifetime is
// independent of lesson navigation: switching lessons does not clear it.
// Turns are appended only from the UI event loop; command goroutines work
// from the snapshot returned by Context.
type ChatSession struct {
	ID    string
	Lang  catalog.Language
	Turns []Turn
}

// NewChatSession creates a session seeded with the synthetic welcome
// greeting shown when the chat is first opened.
func NewChatSession(lang catalog.Language, welcome string) *ChatSession {
	s := &ChatSession{
		ID:   uuid.NewString(),
		Lang: lang,
	}
	if welcome != "" {
		s.Turns = append(s.Turns, Turn{Speaker: SpeakerAssistant, Text: welcome, Synthetic: true})
	}
	return s
}

// AddLearner appends a learner turn to the transcript.
func (s *ChatSession) AddLearner(text string) {
	s.Turns = append(s.Turns, Turn{Speaker: SpeakerLearner, Text: text})
}

// AddAssistant appends a model-produced assistant turn.
func (s *ChatSession) AddAssistant(text string) {
	s.Turns = append(s.Turns, Turn{Speaker: SpeakerAssistant, Text: text})
}

// Context assembles the outbound conversation history. Synthetic turns
// are excluded by provenance, wherever they sit in the transcript; only
// turns that actually passed through the model are forwarded.
func (s *ChatSession) Context() []llm.Message {
	var msgs []llm.Message
	for _, t := range s.Turns {
		if t.Synthetic {
			continue
		}
		role := llm.RoleUser
		if t.Speaker == SpeakerAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}

// Chat sends one learner message with prior conversation history and
// returns the assistant reply. The current message is passed separately
// from history, appended as the final user turn.
func (c *Client) Chat(ctx context.Context, message string, history []llm.Message, lang catalog.Language) (string, error) {
	if c.provider == nil {
		return notConfiguredText(lang), ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "chat")

	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:    chatSystemPrompt(lang),
		Messages:  msgs,
		Model:     c.cfg.ChatModel,
		MaxTokens: c.cfg.ChatMaxTokens,
	})
	if err != nil {
		return chatErrorText(lang), err
	}

	return rawText(resp), nil
}
