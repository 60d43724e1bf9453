package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mealplan/internal/config"
	"mealplan/internal/store"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every recipe that has appeared in a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				history, err := st.History(cmd.Context())
				if err != nil {
					return fmt.Errorf("read history: %w", err)
				}
				if len(history) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No recipes planned yet.")
					return nil
				}

				title := cases.Title(language.English)
				rows := make([][]string, 0, len(history))
				for _, r := range history {
					rows = append(rows, []string{strconv.FormatInt(r.ID, 10), title.String(r.Name)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Recipe"}, rows, []columnAlignment{alignRight, alignLeft}))
				return nil
			})
		},
	}
}
