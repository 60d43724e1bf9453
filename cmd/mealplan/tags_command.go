package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mealplan/internal/config"
	"mealplan/internal/store"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tag preference scores learned from reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				tags, err := st.Tags(cmd.Context())
				if err != nil {
					return fmt.Errorf("read tags: %w", err)
				}
				if len(tags) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tags recorded yet.")
					return nil
				}

				rows := make([][]string, 0, len(tags))
				for _, tag := range tags {
					rows = append(rows, []string{
						strconv.FormatInt(tag.ID, 10),
						strconv.FormatInt(tag.Likes, 10),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tag", "Score"}, rows, []columnAlignment{alignRight, alignRight}))
				return nil
			})
		},
	}
}
