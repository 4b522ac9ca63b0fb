package main

import (
	"fmt"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/spf13/cobra"
)

func newReconcileCmd(e *env) *cobra.Command {
	var (
		variantID   string
		warehouseID string
		onlyDrift   bool
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare on hand quantities with the sum of their movements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (variantID == "") != (warehouseID == "") {
				return fmt.Errorf("--variant and --warehouse go together")
			}
			uc, err := e.inventory()
			if err != nil {
				return err
			}

			var recs []model.Reconciliation
			if variantID != "" {
				r, err := uc.Reconcile(cmd.Context(), variantID, warehouseID)
				if err != nil {
					return err
				}
				recs = []model.Reconciliation{*r}
			} else {
				recs, err = uc.ReconcileAll(cmd.Context())
				if err != nil {
					return err
				}
			}

			drifted := writeReport(cmd, recs, onlyDrift)
			if drifted > 0 {
				return fmt.Errorf("%d stock record(s) drifted", drifted)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variantID, "variant", "", "variant id")
	cmd.Flags().StringVar(&warehouseID, "warehouse", "", "warehouse id")
	cmd.Flags().BoolVar(&onlyDrift, "drift-only", false, "print drifted records only")
	return cmd
}

func writeReport(cmd *cobra.Command, recs []model.Reconciliation, onlyDrift bool) int {
	out := cmd.OutOrStdout()
	drifted := 0
	for i := range recs {
		r := &recs[i]
		if !r.Balanced() {
			drifted++
		} else if onlyDrift {
			continue
		}
		fmt.Fprintf(out, "%s\t%s\ton_hand=%s\tmovements=%s\tcount=%d\tdrift=%s\n",
			r.VariantID, r.WarehouseID, r.OnHand, r.MovementSum, r.MovementCount, r.Drift())
	}
	fmt.Fprintf(out, "%d record(s), %d drifted\n", len(recs), drifted)
	return drifted
}
