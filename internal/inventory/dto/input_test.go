package dto

import (
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyInput_Validate(t *testing.T) {
	base := func() ApplyInput {
		return ApplyInput{
			VariantID:    "v1",
			WarehouseID:  "w1",
			Delta:        decimal.NewFromInt(-2),
			MovementType: model.MovementFulfillmentDeduction,
		}
	}

	tests := []struct {
		name   string
		mutate func(*ApplyInput)
		field  string
	}{
		{"valid", func(*ApplyInput) {}, ""},
		{"missing variant", func(in *ApplyInput) { in.VariantID = "" }, "variant_id"},
		{"missing warehouse", func(in *ApplyInput) { in.WarehouseID = "" }, "warehouse_id"},
		{"zero delta", func(in *ApplyInput) { in.Delta = decimal.Zero }, "quantity_change"},
		{"unknown type", func(in *ApplyInput) { in.MovementType = "shrinkage" }, "movement_type"},
		{"positive deduction", func(in *ApplyInput) { in.Delta = decimal.NewFromInt(2) }, "quantity_change"},
		{"negative restoration", func(in *ApplyInput) { in.MovementType = model.MovementReturnRestoration }, "quantity_change"},
		{"negative adjustment", func(in *ApplyInput) { in.MovementType = model.MovementAdjustment }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(&in)
			err := in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *apperr.ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}
}

func TestReserveInput_Validate(t *testing.T) {
	in := ReserveInput{VariantID: "v", WarehouseID: "w", Qty: decimal.Zero}
	assert.ErrorIs(t, in.Validate(), apperr.ErrValidation)

	in.Qty = decimal.NewFromInt(1)
	assert.NoError(t, in.Validate())
}
