package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manara-app/manara/internal/progress"
	"github.com/manara-app/manara/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := resolveLang(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		progressSvc, err := progress.Load(ctx, st.SnapshotRepo())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		user := progressSvc.CurrentUser()

		fmt.Printf("%s  (%s)\n", user.Name, user.LevelTitle().In(lang))
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("XP:                %d\n", user.XP)
		fmt.Printf("Streak:            %d days\n", user.Streak)
		fmt.Printf("Lessons completed: %d\n", len(user.CompletedLessons))

		quizzes, err := st.EventRepo().QueryQuizzes(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query quizzes: %w", err)
		}

		var perfect int
		var answered, correct int
		for _, q := range quizzes {
			if q.Perfect {
				perfect++
			}
			answered += q.QuestionCount
			correct += q.Score
		}

		fmt.Println()
		fmt.Printf("Quizzes taken:     %d\n", len(quizzes))
		fmt.Printf("Perfect scores:    %d\n", perfect)
		if answered > 0 {
			fmt.Printf("Overall accuracy:  %.0f%%\n", float64(correct)/float64(answered)*100)
		}

		rewardEvents, err := st.EventRepo().QueryRewards(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query rewards: %w", err)
		}
		var earned int
		for _, r := range rewardEvents {
			earned += r.Points
		}
		fmt.Printf("XP from quizzes:   %d\n", earned)

		return nil
	},
}
