package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

// QuizQuestion is one multiple-choice question of a generated quiz.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// GenerateQuiz produces a short multiple-choice quiz from lesson content.
// The content is truncated to the configured bound before prompting.
// An empty result always means generation failed; a successful quiz has
// at least one question.
func (c *Client) GenerateQuiz(ctx context.Context, content string, lang catalog.Language) ([]QuizQuestion, error) {
	if c.provider == nil {
		return nil, ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	truncated := truncateContent(content, c.cfg.MaxContentChars)

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPrompt(truncated, c.cfg.QuizQuestionCount, lang)},
		},
		Schema:    quizSchema,
		Model:     c.cfg.QuizModel,
		MaxTokens: c.cfg.QuizMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var questions []QuizQuestion
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	for i, q := range questions {
		if len(q.Options) == 0 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, &llm.ErrInvalidResponse{
				Content: resp.Content,
				Err:     fmt.Errorf("question %d has correctIndex %d out of range for %d options", i, q.CorrectIndex, len(q.Options)),
			}
		}
	}

	return questions, nil
}

// truncateContent bounds prompt content to max bytes, backing up to a
// rune boundary so multi-byte text stays valid UTF-8.
func truncateContent(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
