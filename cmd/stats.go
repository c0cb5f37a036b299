package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		tracker := progress.NewTracker(s.SnapshotRepo(), s.EventRepo())
		if err := tracker.Load(ctx); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		state := tracker.State()

		fmt.Println("Learner")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("XP:               %d\n", state.XP)
		fmt.Printf("Streak:           %d days\n", state.StreakDays)
		fmt.Printf("Saved words:      %d\n", len(state.SavedVocabulary))
		fmt.Printf("Themes completed: %d\n", len(state.CompletedThemes))

		fmt.Println()
		fmt.Println("Today's Missions")
		fmt.Println(strings.Repeat("─", 48))
		for _, m := range state.DailyMissions {
			mark := " "
			if m.Completed {
				mark = "✓"
			}
			fmt.Printf("[%s] %-32s %d/%d\n", mark, m.Label, m.Current, m.Target)
		}

		quizStats, err := s.EventRepo().QuizStats(ctx)
		if err != nil {
			return fmt.Errorf("query quiz stats: %w", err)
		}
		if len(quizStats) > 0 {
			fmt.Println()
			fmt.Println("Quizzes")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("%-14s  %8s  %8s  %8s\n", "Mode", "Passes", "Correct", "Asked")
			for _, st := range quizStats {
				fmt.Printf("%-14s  %8d  %8d  %8d\n", st.Mode, st.Passes, st.Score, st.Total)
			}
		}

		roundStats, err := s.EventRepo().RoundStats(ctx)
		if err != nil {
			return fmt.Errorf("query round stats: %w", err)
		}
		if roundStats.Rounds > 0 {
			fmt.Println()
			fmt.Println("Word Chain")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("Rounds played: %d\n", roundStats.Rounds)
			fmt.Printf("Wins:          %d\n", roundStats.Wins)
			fmt.Printf("Best score:    %d\n", roundStats.BestScore)
			fmt.Printf("XP earned:     %d\n", roundStats.XPAwarded)
		}

		return nil
	},
}
