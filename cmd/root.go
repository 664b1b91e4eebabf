package cmd

import (
	"os"

	"github.com/manara-app/manara/internal/catalog"
	"github.com/manara-app/manara/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manara",
	Short: "AI-powered e-learning companion",
	Long:  "Manara — bilingual (Arabic/English) terminal learning app with AI-generated quizzes, summaries, tutoring, and chat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MANARA_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: ar or en (overrides MANARA_LANG env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MANARA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLang returns the interface language from --lang, then MANARA_LANG,
// defaulting to Arabic.
func resolveLang(cmd *cobra.Command) catalog.Language {
	l, _ := cmd.Flags().GetString("lang")
	if l == "" {
		l = os.Getenv("MANARA_LANG")
	}
	if l == "en" {
		return catalog.LangEnglish
	}
	return catalog.LangArabic
}
