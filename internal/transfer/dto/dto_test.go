package dto

import (
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransferInput_Validate(t *testing.T) {
	one := decimal.NewFromInt(1)

	tests := []struct {
		name  string
		in    CreateTransferInput
		field string
	}{
		{"ok", CreateTransferInput{FromWarehouseID: "a", ToWarehouseID: "b", Items: []TransferItemInput{{VariantID: "v1", Qty: one}}}, ""},
		{"same warehouse", CreateTransferInput{FromWarehouseID: "a", ToWarehouseID: "a", Items: []TransferItemInput{{VariantID: "v1", Qty: one}}}, "to_warehouse_id"},
		{"no items", CreateTransferInput{FromWarehouseID: "a", ToWarehouseID: "b"}, "items"},
		{"duplicate", CreateTransferInput{FromWarehouseID: "a", ToWarehouseID: "b", Items: []TransferItemInput{{VariantID: "v1", Qty: one}, {VariantID: "v1", Qty: one}}}, "items[1].variant_id"},
		{"zero qty", CreateTransferInput{FromWarehouseID: "a", ToWarehouseID: "b", Items: []TransferItemInput{{VariantID: "v1"}}}, "items[0].qty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperr.ValidationError
			if assert.ErrorAs(t, err, &ve) {
				assert.Equal(t, tt.field, ve.Field)
			}
		})
	}
}
