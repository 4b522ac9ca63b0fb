package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFulfillmentStatus_Precedes(t *testing.T) {
	tests := []struct {
		from, to FulfillmentStatus
		want     bool
	}{
		{FulfillmentPending, FulfillmentShipped, true},
		{FulfillmentPending, FulfillmentDelivered, true},
		{FulfillmentShipped, FulfillmentDelivered, true},
		{FulfillmentShipped, FulfillmentPending, false},
		{FulfillmentDelivered, FulfillmentShipped, false},
		{FulfillmentPending, FulfillmentPending, false},
		{FulfillmentReturned, FulfillmentDelivered, false},
		{FulfillmentPending, FulfillmentReturned, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Precedes(tt.to))
		})
	}
}

func TestStockRecord_IsLow(t *testing.T) {
	rec := StockRecord{
		OnHand:       decimal.NewFromInt(10),
		Reserved:     decimal.NewFromInt(6),
		ReorderPoint: decimal.NewFromInt(4),
	}
	assert.True(t, rec.IsLow())

	rec.Reserved = decimal.NewFromInt(5)
	assert.False(t, rec.IsLow())

	rec.ReorderPoint = decimal.Zero
	rec.OnHand = decimal.Zero
	rec.Reserved = decimal.Zero
	assert.False(t, rec.IsLow(), "records without a reorder point are never low")
}

func TestReconciliation_Drift(t *testing.T) {
	r := Reconciliation{OnHand: decimal.NewFromInt(7), MovementSum: decimal.NewFromInt(7)}
	assert.True(t, r.Balanced())

	r.MovementSum = decimal.NewFromInt(9)
	assert.False(t, r.Balanced())
	assert.True(t, r.Drift().Equal(decimal.NewFromInt(-2)))
}
