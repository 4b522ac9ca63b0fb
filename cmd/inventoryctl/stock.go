package main

import (
	"fmt"

	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newStockCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and adjust stock records",
	}

	get := &cobra.Command{
		Use:   "get VARIANT_ID WAREHOUSE_ID",
		Short: "Show one stock record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := e.inventory()
			if err != nil {
				return err
			}
			rec, err := uc.GetStock(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"variant_id":      rec.VariantID,
				"warehouse_id":    rec.WarehouseID,
				"on_hand":         rec.OnHand,
				"reserved":        rec.Reserved,
				"available":       rec.Available(),
				"reorder_point":   rec.ReorderPoint,
				"allow_backorder": rec.AllowBackorder,
				"low_stock":       rec.IsLow(),
			})
		},
	}

	var (
		delta  string
		reason string
		actor  string
	)
	adjust := &cobra.Command{
		Use:   "adjust VARIANT_ID WAREHOUSE_ID",
		Short: "Apply a manual adjustment; --delta is signed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decimal.NewFromString(delta)
			if err != nil {
				return fmt.Errorf("--delta: %w", err)
			}
			uc, err := e.inventory()
			if err != nil {
				return err
			}
			rec, err := uc.AdjustStock(cmd.Context(), &dto.AdjustStockInput{
				VariantID:   args[0],
				WarehouseID: args[1],
				Delta:       d,
				Reason:      reason,
				Actor:       actor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s on hand %s\n", rec.VariantID, rec.WarehouseID, rec.OnHand)
			return nil
		},
	}
	adjust.Flags().StringVar(&delta, "delta", "", "signed quantity change, e.g. -3 or 12.5")
	adjust.Flags().StringVar(&reason, "reason", "", "note stored on the movement")
	adjust.Flags().StringVar(&actor, "actor", auth.SystemActor, "who performed the adjustment")
	_ = adjust.MarkFlagRequired("delta")

	cmd.AddCommand(get, adjust)
	return cmd
}
