package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/supervity/supervity/internal/cli/formatter"
	"github.com/supervity/supervity/internal/config"
	"github.com/supervity/supervity/internal/db"
	"github.com/supervity/supervity/internal/intelligence"
	"github.com/supervity/supervity/internal/planner"
	"github.com/supervity/supervity/internal/repository"
)

func newPlanCmd(configPath *string) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the study plan for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, *configPath, userID)
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id to plan for")
	cmd.MarkFlagRequired("user")
	return cmd
}

func runPlan(cmd *cobra.Command, configPath, userID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()
	assignments := repository.NewSQLiteAssignmentRepo(database)
	snapshot, err := assignments.ListPendingByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading assignments: %w", err)
	}

	result := planner.Synthesize(snapshot, time.Now().UTC(), cfg.PlannerConfig())

	// Offline view renders deterministically; the server is where the LLM
	// path lives.
	var lines []string
	for _, sug := range result.Suggestions {
		if sug.Kind == planner.KindRecommendation {
			lines = intelligence.DeterministicAdvice(sug.Recommendation.Items)
			break
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPlan(result, lines, formatter.PlainOutput()))
	return nil
}
