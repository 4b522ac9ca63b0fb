package main

import (
	"fmt"

	invsearch "github.com/fekuna/omnipos-inventory-service/internal/inventory/search"
	"github.com/fekuna/omnipos-inventory-service/pkg/search"
	"github.com/spf13/cobra"
)

func newMovementsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Query the movement audit index",
	}

	q := &invsearch.MovementQuery{}
	find := &cobra.Command{
		Use:   "search [TEXT]",
		Short: "Search indexed movements by notes text and filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q.Text = args[0]
			}
			if q.Text == "" && q.VariantID == "" && q.WarehouseID == "" && q.PerformedBy == "" {
				return fmt.Errorf("give search text or at least one filter")
			}

			client, err := search.NewClient(&search.Config{
				Addresses: e.cfg.Elastic.Addresses,
				Username:  e.cfg.Elastic.Username,
				Password:  e.cfg.Elastic.Password,
			})
			if err != nil {
				return err
			}
			mvs, total, err := invsearch.NewMovementIndexer(client, e.cfg.Elastic.MovementsIndex).SearchMovements(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"total":     total,
				"movements": mvs,
			})
		},
	}
	find.Flags().StringVar(&q.VariantID, "variant", "", "variant id")
	find.Flags().StringVar(&q.WarehouseID, "warehouse", "", "warehouse id")
	find.Flags().StringVar(&q.PerformedBy, "actor", "", "performed by")
	find.Flags().IntVar(&q.Size, "size", 20, "maximum hits")

	cmd.AddCommand(find)
	return cmd
}
