package main

import (
	"github.com/spf13/cobra"

	"mealplan/internal/workflow"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run whichever planning phase is next",
		Long: "Run executes the next phase of the planning loop: gathering recipes " +
			"into a shopping list, or reviewing the recipes from the last plan. " +
			"The phase is stored durably, so run always continues where the last " +
			"invocation left off.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withWorkflow(cmd, func(mgr *workflow.Manager) error {
				return mgr.Run(cmd.Context(), count)
			})
		},
	}

	cmd.Flags().Int64VarP(&count, "count", "n", 0, "Number of recipes to plan (prompted when omitted)")
	return cmd
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Gather recipes and write the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withWorkflow(cmd, func(mgr *workflow.Manager) error {
				return mgr.RunGather(cmd.Context(), count)
			})
		},
	}

	cmd.Flags().Int64VarP(&count, "count", "n", 0, "Number of recipes to plan (prompted when omitted)")
	return cmd
}

func newReviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Rate the recipes from the last plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withWorkflow(cmd, func(mgr *workflow.Manager) error {
				return mgr.RunReview(cmd.Context())
			})
		},
	}
}
