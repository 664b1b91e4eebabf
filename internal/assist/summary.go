package assist

import (
	"context"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/llm"
)

// Summarize condenses raw educational text into a short lesson
// description. Used by instructors when drafting course content.
func (c *Client) Summarize(ctx context.Context, rawContent string, lang catalog.Language) (string, error) {
	if c.provider == nil {
		return notConfiguredText(lang), ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "summary")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryPrompt(rawContent, lang)},
		},
		Model:     c.cfg.SummaryModel,
		MaxTokens: c.cfg.SummaryMaxTokens,
	})
	if err != nil {
		return summaryErrorText(lang), err
	}

	return rawText(resp), nil
}
