package assist

import "os"

// Config holds per-operation tuning for the AI gateway.
type Config struct {
	// Model IDs per operation. Fast model for bulk generation,
	// reasoning model for tutoring, chat and video understanding.
	QuizModel    string
	TutorModel   string
	SummaryModel string
	ChatModel    string
	VideoModel   string

	// QuizQuestionCount is the number of questions requested per quiz.
	QuizQuestionCount int

	// MaxContentChars bounds how much lesson content is embedded in the
	// quiz prompt.
	MaxContentChars int

	// MaxMediaBytes bounds inline media size for video analysis.
	MaxMediaBytes int

	// Per-operation response token limits.
	QuizMaxTokens    int
	TutorMaxTokens   int
	SummaryMaxTokens int
	ChatMaxTokens    int
	VideoMaxTokens   int
}

// DefaultConfig returns the standard gateway configuration.
func DefaultConfig() Config {
	return Config{
		QuizModel:         "gemini-2.5-flash",
		TutorModel:        "gemini-3-pro-preview",
		SummaryModel:      "gemini-2.5-flash",
		ChatModel:         "gemini-3-pro-preview",
		VideoModel:        "gemini-3-pro-preview",
		QuizQuestionCount: 3,
		MaxContentChars:   1000,
		MaxMediaBytes:     20 << 20, // inline upload limit
		QuizMaxTokens:     2048,
		TutorMaxTokens:    500,
		SummaryMaxTokens:  1024,
		ChatMaxTokens:     1024,
		VideoMaxTokens:    2048,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if m := os.Getenv("MANARA_QUIZ_MODEL"); m != "" {
		cfg.QuizModel = m
	}
	if m := os.Getenv("MANARA_TUTOR_MODEL"); m != "" {
		cfg.TutorModel = m
	}
	if m := os.Getenv("MANARA_SUMMARY_MODEL"); m != "" {
		cfg.SummaryModel = m
	}
	if m := os.Getenv("MANARA_CHAT_MODEL"); m != "" {
		cfg.ChatModel = m
	}
	if m := os.Getenv("MANARA_VIDEO_MODEL"); m != "" {
		cfg.VideoModel = m
	}

	return cfg
}
