package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const fulfillmentColumns = `id, order_id, warehouse_id, status, tracking_number, carrier,
        shipped_at, delivered_at, returned_at, created_by, created_at, updated_at`

const itemColumns = `id, fulfillment_id, order_item_id, variant_id, qty`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) LockOrder(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error) {
	return r.getOrder(ctx, tx, orderID, postgres.ForUpdate(tx))
}

func (r *PGRepository) GetOrder(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error) {
	return r.getOrder(ctx, tx, orderID, "")
}

func (r *PGRepository) getOrder(ctx context.Context, tx *sqlx.Tx, orderID, suffix string) (*model.Order, error) {
	var o model.Order
	query := tx.Rebind(`SELECT id, status FROM orders WHERE id = ?` + suffix)
	if err := tx.GetContext(ctx, &o, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) ListOrderItems(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	query := tx.Rebind(`SELECT id, order_id, variant_id, qty FROM order_items WHERE order_id = ? ORDER BY id`)
	if err := tx.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FulfilledQuantities(ctx context.Context, tx *sqlx.Tx, orderID string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		OrderItemID string          `db:"order_item_id"`
		Qty         decimal.Decimal `db:"qty"`
	}
	query := tx.Rebind(`
        SELECT fi.order_item_id, SUM(fi.qty) AS qty
        FROM fulfillment_items fi
        JOIN fulfillments f ON f.id = fi.fulfillment_id
        WHERE f.order_id = ? AND f.status <> ?
        GROUP BY fi.order_item_id
    `)
	if err := tx.SelectContext(ctx, &rows, query, orderID, string(model.FulfillmentReturned)); err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.OrderItemID] = row.Qty
	}
	return out, nil
}

func (r *PGRepository) Create(ctx context.Context, tx *sqlx.Tx, f *model.Fulfillment) error {
	query := `
        INSERT INTO fulfillments (
            id, order_id, warehouse_id, status, tracking_number, carrier,
            shipped_at, delivered_at, returned_at, created_by, created_at, updated_at
        )
        VALUES (
            :id, :order_id, :warehouse_id, :status, :tracking_number, :carrier,
            :shipped_at, :delivered_at, :returned_at, :created_by, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, f); err != nil {
		return errors.Wrap(err, "insert fulfillment")
	}

	itemQuery := `
        INSERT INTO fulfillment_items (id, fulfillment_id, order_item_id, variant_id, qty)
        VALUES (:id, :fulfillment_id, :order_item_id, :variant_id, :qty)
    `
	for i := range f.Items {
		if _, err := tx.NamedExecContext(ctx, itemQuery, &f.Items[i]); err != nil {
			return errors.Wrap(err, "insert fulfillment item")
		}
	}
	return nil
}

func (r *PGRepository) LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*model.Fulfillment, error) {
	var f model.Fulfillment
	query := tx.Rebind(`SELECT ` + fulfillmentColumns + ` FROM fulfillments WHERE id = ?` + postgres.ForUpdate(tx))
	if err := tx.GetContext(ctx, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query = tx.Rebind(`SELECT ` + itemColumns + ` FROM fulfillment_items WHERE fulfillment_id = ? ORDER BY id`)
	if err := tx.SelectContext(ctx, &f.Items, query, id); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, f *model.Fulfillment) error {
	query := `
        UPDATE fulfillments
        SET status = :status,
            tracking_number = :tracking_number,
            carrier = :carrier,
            shipped_at = :shipped_at,
            delivered_at = :delivered_at,
            returned_at = :returned_at,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, f); err != nil {
		return errors.Wrap(err, "update fulfillment")
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Fulfillment, error) {
	var f model.Fulfillment
	query := r.DB.Rebind(`SELECT ` + fulfillmentColumns + ` FROM fulfillments WHERE id = ?`)
	if err := r.DB.GetContext(ctx, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query = r.DB.Rebind(`SELECT ` + itemColumns + ` FROM fulfillment_items WHERE fulfillment_id = ? ORDER BY id`)
	if err := r.DB.SelectContext(ctx, &f.Items, query, id); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGRepository) ListByOrder(ctx context.Context, orderID string) ([]model.Fulfillment, error) {
	var list []model.Fulfillment
	query := r.DB.Rebind(`SELECT ` + fulfillmentColumns + ` FROM fulfillments WHERE order_id = ? ORDER BY created_at, id`)
	if err := r.DB.SelectContext(ctx, &list, query, orderID); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	var items []model.FulfillmentItem
	query = r.DB.Rebind(`
        SELECT fi.id, fi.fulfillment_id, fi.order_item_id, fi.variant_id, fi.qty
        FROM fulfillment_items fi
        JOIN fulfillments f ON f.id = fi.fulfillment_id
        WHERE f.order_id = ?
        ORDER BY fi.id
    `)
	if err := r.DB.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}

	byFulfillment := make(map[string][]model.FulfillmentItem, len(list))
	for _, item := range items {
		byFulfillment[item.FulfillmentID] = append(byFulfillment[item.FulfillmentID], item)
	}
	for i := range list {
		list[i].Items = byFulfillment[list[i].ID]
	}
	return list, nil
}
