package cmd

import (
	"fmt"
	"os"

	"github.com/manara-app/manara/internal/app"
	"github.com/manara-app/manara/internal/assist"
	"github.com/manara-app/manara/internal/i18n"
	"github.com/manara-app/manara/internal/llm"
	"github.com/manara-app/manara/internal/progress"
	"github.com/manara-app/manara/internal/rewards"
	"github.com/manara-app/manara/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	lang := resolveLang(cmd)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	progressSvc, err := progress.Load(ctx, st.SnapshotRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	rewardsSvc := rewards.NewService(eventRepo, progressSvc)

	// The AI gateway is optional — the app degrades to content-only mode
	// when no provider key is configured.
	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		p, err := llm.NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		} else {
			provider = p
		}
	} else {
		fmt.Fprintln(os.Stderr, "No API key found. AI features will be unavailable.")
	}
	client := assist.New(provider, assist.ConfigFromEnv())

	chat := assist.NewChatSession(lang, i18n.T("chatWelcome", lang))

	return app.Run(client, eventRepo, progressSvc, rewardsSvc, chat, lang)
}
