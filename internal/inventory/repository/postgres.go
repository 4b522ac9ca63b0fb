package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const stockColumns = `id, variant_id, warehouse_id, on_hand, reserved, safety_stock, reorder_point,
        allow_backorder, retired_at, created_at, updated_at`

const movementColumns = `id, variant_id, warehouse_id, movement_type, quantity_change, quantity_before,
        quantity_after, reference_type, reference_id, notes, performed_by, performed_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error) {
	var rec model.StockRecord
	query := r.DB.Rebind(`SELECT ` + stockColumns + ` FROM stock_records WHERE variant_id = ? AND warehouse_id = ?`)
	err := r.DB.GetContext(ctx, &rec, query, variantID, warehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) FindStock(ctx context.Context, f *dto.StockFilters) ([]model.StockRecord, int, error) {
	var items []model.StockRecord

	conditions := []string{}
	args := map[string]interface{}{}

	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.WarehouseID != "" {
		conditions = append(conditions, "warehouse_id = :warehouse_id")
		args["warehouse_id"] = f.WarehouseID
	}
	if !f.IncludeRetired {
		conditions = append(conditions, "retired_at IS NULL")
	}
	if f.LowStock {
		conditions = append(conditions, "on_hand - reserved <= reorder_point AND reorder_point > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	count, err := r.namedCount(ctx, "SELECT count(*) FROM stock_records"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + stockColumns + " FROM stock_records" + whereClause + " ORDER BY updated_at DESC, id"
	query += pageClause(f.Page, f.PageSize)

	if err := r.namedSelect(ctx, &items, query, args); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *PGRepository) LockStock(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID string) (*model.StockRecord, error) {
	var rec model.StockRecord
	query := tx.Rebind(`SELECT ` + stockColumns + ` FROM stock_records WHERE variant_id = ? AND warehouse_id = ?` + postgres.ForUpdate(tx))
	err := tx.GetContext(ctx, &rec, query, variantID, warehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// EnsureStock inserts rec unless a record for the same variant and warehouse
// already exists, in which case nothing changes.
func (r *PGRepository) EnsureStock(ctx context.Context, tx *sqlx.Tx, rec *model.StockRecord) error {
	query := `
        INSERT INTO stock_records (
            id, variant_id, warehouse_id, on_hand, reserved, safety_stock, reorder_point,
            allow_backorder, retired_at, created_at, updated_at
        )
        VALUES (
            :id, :variant_id, :warehouse_id, :on_hand, :reserved, :safety_stock, :reorder_point,
            :allow_backorder, :retired_at, :created_at, :updated_at
        )
        ON CONFLICT (variant_id, warehouse_id) DO NOTHING
    `
	_, err := tx.NamedExecContext(ctx, query, rec)
	return err
}

func (r *PGRepository) UpdateStock(ctx context.Context, tx *sqlx.Tx, rec *model.StockRecord) error {
	query := `
        UPDATE stock_records
        SET on_hand = :on_hand,
            reserved = :reserved,
            safety_stock = :safety_stock,
            reorder_point = :reorder_point,
            allow_backorder = :allow_backorder,
            retired_at = :retired_at,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := tx.NamedExecContext(ctx, query, rec)
	if err != nil {
		return errors.Wrap(err, "update stock record")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return errors.Errorf("update stock record %s: %d rows affected", rec.ID, rows)
	}
	return nil
}

func (r *PGRepository) SetBackorder(ctx context.Context, tx *sqlx.Tx, variantID string, allow bool, at time.Time) (int64, error) {
	query := tx.Rebind(`UPDATE stock_records SET allow_backorder = ?, updated_at = ? WHERE variant_id = ?`)
	res, err := tx.ExecContext(ctx, query, allow, at, variantID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PGRepository) InsertMovement(ctx context.Context, tx *sqlx.Tx, m *model.MovementEntry) error {
	query := `
        INSERT INTO stock_movements (
            id, variant_id, warehouse_id, movement_type, quantity_change, quantity_before,
            quantity_after, reference_type, reference_id, notes, performed_by, performed_at
        )
        VALUES (
            :id, :variant_id, :warehouse_id, :movement_type, :quantity_change, :quantity_before,
            :quantity_after, :reference_type, :reference_id, :notes, :performed_by, :performed_at
        )
    `
	_, err := tx.NamedExecContext(ctx, query, m)
	if err != nil {
		return errors.Wrap(err, "insert stock movement")
	}
	return nil
}

func (r *PGRepository) HasMovement(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID, referenceType, referenceID string) (bool, error) {
	var count int
	query := tx.Rebind(`
        SELECT count(*) FROM stock_movements
        WHERE variant_id = ? AND warehouse_id = ? AND reference_type = ? AND reference_id = ?
    `)
	if err := tx.GetContext(ctx, &count, query, variantID, warehouseID, referenceType, referenceID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.MovementEntry, int, error) {
	var items []model.MovementEntry

	conditions := []string{}
	args := map[string]interface{}{}

	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.WarehouseID != "" {
		conditions = append(conditions, "warehouse_id = :warehouse_id")
		args["warehouse_id"] = f.WarehouseID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.ReferenceType != "" {
		conditions = append(conditions, "reference_type = :reference_type")
		args["reference_type"] = f.ReferenceType
	}
	if f.ReferenceID != "" {
		conditions = append(conditions, "reference_id = :reference_id")
		args["reference_id"] = f.ReferenceID
	}
	if f.StartDate != nil {
		conditions = append(conditions, "performed_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "performed_at < :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	count, err := r.namedCount(ctx, "SELECT count(*) FROM stock_movements"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + movementColumns + " FROM stock_movements" + whereClause + " ORDER BY performed_at DESC, id"
	query += pageClause(f.Page, f.PageSize)

	if err := r.namedSelect(ctx, &items, query, args); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

const reconcileQuery = `
        SELECT s.variant_id, s.warehouse_id, s.on_hand,
               COALESCE(SUM(m.quantity_change), 0) AS movement_sum,
               COUNT(m.id) AS movement_count
        FROM stock_records s
        LEFT JOIN stock_movements m
               ON m.variant_id = s.variant_id AND m.warehouse_id = s.warehouse_id`

const reconcileGroupBy = ` GROUP BY s.variant_id, s.warehouse_id, s.on_hand`

func (r *PGRepository) Reconcile(ctx context.Context, variantID, warehouseID string) (*model.Reconciliation, error) {
	var rec model.Reconciliation
	query := r.DB.Rebind(reconcileQuery + ` WHERE s.variant_id = ? AND s.warehouse_id = ?` + reconcileGroupBy)
	err := r.DB.GetContext(ctx, &rec, query, variantID, warehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) ReconcileAll(ctx context.Context) ([]model.Reconciliation, error) {
	var recs []model.Reconciliation
	query := reconcileQuery + reconcileGroupBy + ` ORDER BY s.variant_id, s.warehouse_id`
	if err := r.DB.SelectContext(ctx, &recs, query); err != nil {
		return nil, err
	}
	return recs, nil
}

// namedCount runs a count(*) query with named args. The cursor is closed
// before returning so the connection is free for the follow-up select.
func (r *PGRepository) namedCount(ctx context.Context, query string, args map[string]interface{}) (int, error) {
	rows, err := r.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	return count, rows.Err()
}

func (r *PGRepository) namedSelect(ctx context.Context, dest interface{}, query string, args map[string]interface{}) error {
	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return err
	}
	defer nstmt.Close()

	return nstmt.SelectContext(ctx, dest, args)
}

func pageClause(page, pageSize int) string {
	if pageSize <= 0 {
		return ""
	}
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
}
