package cmd

import (
	"fmt"
	"os"

	"github.com/karandv/lingua/internal/app"
	"github.com/karandv/lingua/internal/content"
	"github.com/karandv/lingua/internal/llm"
	"github.com/karandv/lingua/internal/progress"
	"github.com/karandv/lingua/internal/store"
	"github.com/karandv/lingua/internal/wordchain"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
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
	tracker := progress.NewTracker(st.SnapshotRepo(), eventRepo)
	if err := tracker.Load(ctx); err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	deps := app.Deps{
		Tracker:    tracker,
		Events:     eventRepo,
		History:    st.HistoryRepo(),
		Chats:      st.ChatRepo(),
		Language:   resolveSetting(cmd, "language", "LINGUA_LANGUAGE", "Spanish"),
		Difficulty: resolveSetting(cmd, "difficulty", "LINGUA_DIFFICULTY", "Beginner"),
	}

	// The word chain falls back to a built-in opponent when no provider
	// is configured; the learn flow needs a real one.
	deps.Referee = wordchain.NewLocalReferee(nil)

	provider, err := buildProvider(cmd, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		svc := content.NewService(provider, content.DefaultConfig())
		deps.Content = svc
		deps.Referee = content.NewAIReferee(svc)
	}

	return app.Run(deps)
}

// buildProvider prefers explicit LINGUA_* configuration, then falls back
// to probing the standard provider API key env vars.
func buildProvider(cmd *cobra.Command, eventRepo store.EventRepo) (llm.Provider, error) {
	ctx := cmd.Context()

	if os.Getenv("LINGUA_LLM_PROVIDER") != "" {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return llm.NewProvider(ctx, cfg, eventRepo)
	}

	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no API key found (set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY)")
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}

func resolveSetting(cmd *cobra.Command, flag, envVar, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
