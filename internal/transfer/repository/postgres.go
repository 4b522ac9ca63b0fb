package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const transferColumns = `id, from_warehouse_id, to_warehouse_id, status, notes, created_by,
        created_at, updated_at, completed_at, canceled_at`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error {
	query := `
        INSERT INTO transfers (
            id, from_warehouse_id, to_warehouse_id, status, notes, created_by,
            created_at, updated_at, completed_at, canceled_at
        )
        VALUES (
            :id, :from_warehouse_id, :to_warehouse_id, :status, :notes, :created_by,
            :created_at, :updated_at, :completed_at, :canceled_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, t); err != nil {
		return errors.Wrap(err, "insert transfer")
	}

	itemQuery := `
        INSERT INTO transfer_items (id, transfer_id, variant_id, qty)
        VALUES (:id, :transfer_id, :variant_id, :qty)
    `
	for i := range t.Items {
		if _, err := tx.NamedExecContext(ctx, itemQuery, &t.Items[i]); err != nil {
			return errors.Wrap(err, "insert transfer item")
		}
	}
	return nil
}

func (r *PGRepository) LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*model.Transfer, error) {
	var t model.Transfer
	query := tx.Rebind(`SELECT ` + transferColumns + ` FROM transfers WHERE id = ?` + postgres.ForUpdate(tx))
	if err := tx.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query = tx.Rebind(`SELECT id, transfer_id, variant_id, qty FROM transfer_items WHERE transfer_id = ? ORDER BY variant_id`)
	if err := tx.SelectContext(ctx, &t.Items, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error {
	query := `
        UPDATE transfers
        SET status = :status,
            updated_at = :updated_at,
            completed_at = :completed_at,
            canceled_at = :canceled_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, t); err != nil {
		return errors.Wrap(err, "update transfer")
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Transfer, error) {
	var t model.Transfer
	query := r.DB.Rebind(`SELECT ` + transferColumns + ` FROM transfers WHERE id = ?`)
	if err := r.DB.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	query = r.DB.Rebind(`SELECT id, transfer_id, variant_id, qty FROM transfer_items WHERE transfer_id = ? ORDER BY variant_id`)
	if err := r.DB.SelectContext(ctx, &t.Items, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll lists transfers newest first. Items are not loaded.
func (r *PGRepository) FindAll(ctx context.Context, f *dto.TransferFilters) ([]model.Transfer, int, error) {
	var list []model.Transfer

	conditions := []string{}
	args := []interface{}{}

	if f.WarehouseID != "" {
		conditions = append(conditions, "(from_warehouse_id = ? OR to_warehouse_id = ?)")
		args = append(args, f.WarehouseID, f.WarehouseID)
	}
	if f.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(f.Status))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind("SELECT count(*) FROM transfers"+whereClause), args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + transferColumns + " FROM transfers" + whereClause + " ORDER BY created_at DESC, id"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	if err := r.DB.SelectContext(ctx, &list, r.DB.Rebind(query), args...); err != nil {
		return nil, 0, err
	}
	return list, count, nil
}
