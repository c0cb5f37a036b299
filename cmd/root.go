package cmd

import (
	"github.com/karandv/lingua/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "AI language tutor in your terminal",
	Long:  "Lingua — scan your surroundings, learn the words for them, quiz yourself, and roleplay the scene in your target language.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUA_DB env var)")
	rootCmd.Flags().String("language", "", "Target language (overrides LINGUA_LANGUAGE env var)")
	rootCmd.Flags().String("difficulty", "", "Difficulty level: Beginner, Intermediate, Advanced (overrides LINGUA_DIFFICULTY)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
