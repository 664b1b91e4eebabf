package assist

import "github.com/manara-app/manara/internal/llm"

// quizSchema constrains quiz generation output to an array of
// multiple-choice questions.
var quizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A short multiple-choice quiz derived from lesson content",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question text",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "The answer choices",
				},
				"correctIndex": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is right",
				},
			},
			"required": []any{"question", "options", "correctIndex", "explanation"},
		},
	},
}
