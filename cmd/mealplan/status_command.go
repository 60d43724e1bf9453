package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mealplan/internal/config"
	"mealplan/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current workflow phase and counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				state, err := st.State(cmd.Context())
				if err != nil {
					return fmt.Errorf("read workflow state: %w", err)
				}
				pending, err := st.PendingRecipes(cmd.Context())
				if err != nil {
					return fmt.Errorf("read pending batch: %w", err)
				}
				history, err := st.History(cmd.Context())
				if err != nil {
					return fmt.Errorf("read history: %w", err)
				}

				rows := [][]string{
					{"Phase", state.Mode.String()},
					{"Catalog offset", strconv.FormatInt(state.Offset, 10)},
					{"Awaiting review", strconv.Itoa(len(pending))},
					{"Recipes planned", strconv.Itoa(len(history))},
					{"Database", st.Path()},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
				return nil
			})
		},
	}
}
