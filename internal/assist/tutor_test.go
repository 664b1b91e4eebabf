package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

func TestAskTutor_GroundsQuestionInLessonContent(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(`The Sun is a star.`)})

	answer, err := c.AskTutor(context.Background(), "Is the Sun a planet?", "The Sun is the star at the center.", catalog.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "The Sun is a star." {
		t.Errorf("answer = %q", answer)
	}

	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Context: The Sun is the star at the center.") {
		t.Errorf("prompt missing lesson context: %q", prompt)
	}
	if !strings.Contains(prompt, "Student Question: Is the Sun a planet?") {
		t.Errorf("prompt missing question: %q", prompt)
	}
	if req.Model != "gemini-3-pro-preview" {
		t.Errorf("model = %q, want tutor model", req.Model)
	}
	if req.MaxTokens != 500 {
		t.Errorf("max tokens = %d, want 500", req.MaxTokens)
	}
}

func TestAskTutor_TransportFailureReturnsLocalizedText(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	text, err := c.AskTutor(context.Background(), "q", "ctx", catalog.LangArabic)
	if err == nil {
		t.Fatal("expected error")
	}
	if text != "حدث خطأ أثناء الاتصال بالمعلم الذكي." {
		t.Errorf("fallback text = %q", text)
	}
}

func TestAskTutor_NotConfiguredDistinctFromTransportError(t *testing.T) {
	c := New(nil, DefaultConfig())

	text, err := c.AskTutor(context.Background(), "q", "ctx", catalog.LangEnglish)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if text != "Please configure API Key." {
		t.Errorf("text = %q", text)
	}
}

func TestSummarize_UsesFastModel(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(`A short summary.`)})

	summary, err := c.Summarize(context.Background(), "long raw text", catalog.LangEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "A short summary." {
		t.Errorf("summary = %q", summary)
	}
	if mock.Calls[0].Model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want summary model", mock.Calls[0].Model)
	}
}
