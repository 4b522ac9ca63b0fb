package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLedger struct {
	inventory.Ledger
	calls []string
	fail  string
}

func (l *recordingLedger) Apply(_ context.Context, _ *sqlx.Tx, in *dto.ApplyInput) (*model.LedgerResult, error) {
	key := in.VariantID + "@" + in.WarehouseID
	l.calls = append(l.calls, key)
	if key == l.fail {
		return nil, errors.New("boom")
	}
	return &model.LedgerResult{Stock: &model.StockRecord{VariantID: in.VariantID, WarehouseID: in.WarehouseID}}, nil
}

func TestApplyAll_LocksInVariantWarehouseOrder(t *testing.T) {
	l := &recordingLedger{}
	inputs := []*dto.ApplyInput{
		{VariantID: "v2", WarehouseID: "w1"},
		{VariantID: "v1", WarehouseID: "w2"},
		{VariantID: "v1", WarehouseID: "w1"},
	}

	results, err := inventory.ApplyAll(context.Background(), nil, l, inputs)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1@w1", "v1@w2", "v2@w1"}, l.calls)
	require.Len(t, results, 3)
	assert.Equal(t, "v1", results[0].Stock.VariantID)
	assert.Equal(t, "w1", results[0].Stock.WarehouseID)

	// The caller's slice keeps its order.
	assert.Equal(t, "v2", inputs[0].VariantID)
}

func TestApplyAll_StopsAtFirstError(t *testing.T) {
	l := &recordingLedger{fail: "v1@w1"}
	_, err := inventory.ApplyAll(context.Background(), nil, l, []*dto.ApplyInput{
		{VariantID: "v2", WarehouseID: "w1"},
		{VariantID: "v1", WarehouseID: "w1"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"v1@w1"}, l.calls)
}
