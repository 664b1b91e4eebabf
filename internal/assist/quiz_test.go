package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

const quizJSON = `[
	{"question":"What is at the center of the Solar System?","options":["The Moon","The Sun","Mars","Jupiter"],"correctIndex":1,"explanation":"The Sun is the central star."},
	{"question":"What is the Sun mostly made of?","options":["Rock","Iron","Hydrogen and helium","Ice"],"correctIndex":2,"explanation":"Hydrogen and helium dominate."},
	{"question":"Which of these is a rocky planet?","options":["Neptune","Saturn","Mars","Uranus"],"correctIndex":2,"explanation":"Mars is one of the inner rocky planets."}
]`

func newTestClient(responses ...llm.MockResponse) (*Client, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestGenerateQuiz_RequestsThreeQuestionsInLanguage(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	questions, err := c.GenerateQuiz(context.Background(), "The Sun is the star at the center of the Solar System.", catalog.LangArabic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if questions[0].CorrectIndex != 1 {
		t.Errorf("correctIndex = %d, want 1", questions[0].CorrectIndex)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "3 multiple choice questions") {
		t.Errorf("prompt missing question count: %q", prompt)
	}
	if !strings.Contains(prompt, "Arabic") {
		t.Errorf("prompt missing language: %q", prompt)
	}
	if req.Schema == nil || req.Schema.Name != "quiz-questions" {
		t.Error("expected quiz schema on request")
	}
	if req.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want quiz model", req.Model)
	}
}

func TestGenerateQuiz_TruncatesLongContent(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	long := strings.Repeat("a", 5000)
	if _, err := c.GenerateQuiz(context.Background(), long, catalog.LangEnglish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, strings.Repeat("a", 1001)) {
		t.Error("content was not truncated to the configured bound")
	}
	if !strings.Contains(prompt, strings.Repeat("a", 1000)) {
		t.Error("truncated content missing from prompt")
	}
}

func TestTruncateContent_CutsOnRuneBoundary(t *testing.T) {
	// Arabic letters are two bytes; an odd byte limit lands mid-rune and
	// must back up to the previous boundary.
	long := strings.Repeat("الشمس نجم", 200)
	got := truncateContent(long, 1001)
	if len(got) > 1001 {
		t.Fatalf("truncated to %d bytes, want <= 1001", len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("truncation produced invalid UTF-8")
	}

	if short := truncateContent("قصير", 1000); short != "قصير" {
		t.Errorf("short content altered: %q", short)
	}
}

func TestGenerateQuiz_ArabicContentStaysValidUTF8(t *testing.T) {
	c, mock := newTestClient(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	long := strings.Repeat("الشمس هي النجم في مركز النظام الشمسي. ", 100)
	if _, err := c.GenerateQuiz(context.Background(), long, catalog.LangArabic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !utf8.ValidString(prompt) {
		t.Error("prompt contains invalid UTF-8 after truncation")
	}
}

func TestGenerateQuiz_ProviderFailureYieldsNoQuestions(t *testing.T) {
	c, _ := newTestClient(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	questions, err := c.GenerateQuiz(context.Background(), "content", catalog.LangEnglish)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions on failure, want 0", len(questions))
	}
}

func TestGenerateQuiz_NotConfigured(t *testing.T) {
	c := New(nil, DefaultConfig())

	questions, err := c.GenerateQuiz(context.Background(), "content", catalog.LangEnglish)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
}

func TestGenerateQuiz_RejectsOutOfRangeCorrectIndex(t *testing.T) {
	bad := `[{"question":"q","options":["a","b"],"correctIndex":5,"explanation":"e"}]`
	c, _ := newTestClient(llm.MockResponse{Content: json.RawMessage(bad)})

	_, err := c.GenerateQuiz(context.Background(), "content", catalog.LangEnglish)
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}
