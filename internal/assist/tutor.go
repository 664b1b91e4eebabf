package assist

import (
	"context"
	"strconv"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

// AskTutor answers a student question grounded in the active lesson's
// content. On failure the returned text is a localized message safe to
// render inline; err marks the operation as failed for the caller's
// state machine.
func (c *Client) AskTutor(ctx context.Context, query, lessonContent string, lang catalog.Language) (string, error) {
	if c.provider == nil {
		return notConfiguredText(lang), ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: tutorSystemPrompt(lang),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorPrompt(query, lessonContent)},
		},
		Model:     c.cfg.TutorModel,
		MaxTokens: c.cfg.TutorMaxTokens,
	})
	if err != nil {
		return tutorErrorText(lang), err
	}

	return rawText(resp), nil
}

// rawText extracts plain text from a schemaless response. Providers wrap
// free-form output as a JSON string; anything else passes through as-is.
func rawText(resp *llm.Response) string {
	s := string(resp.Content)
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}
