// Package testutil provides an embedded SQL database carrying the service
// schema, plus seed helpers for the tables owned by other services.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Epoch is the start time used by test clocks.
var Epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

var schema = []string{
	`CREATE TABLE orders (
        id TEXT PRIMARY KEY,
        merchant_id TEXT,
        status TEXT NOT NULL DEFAULT 'pending',
        created_at TIMESTAMP
    )`,
	`CREATE TABLE order_items (
        id TEXT PRIMARY KEY,
        order_id TEXT NOT NULL REFERENCES orders (id),
        variant_id TEXT NOT NULL,
        qty NUMERIC NOT NULL
    )`,
	`CREATE TABLE stock_records (
        id TEXT PRIMARY KEY,
        variant_id TEXT NOT NULL,
        warehouse_id TEXT NOT NULL,
        on_hand NUMERIC NOT NULL DEFAULT 0,
        reserved NUMERIC NOT NULL DEFAULT 0,
        safety_stock NUMERIC NOT NULL DEFAULT 0,
        reorder_point NUMERIC NOT NULL DEFAULT 0,
        allow_backorder BOOLEAN NOT NULL DEFAULT 0,
        retired_at TIMESTAMP,
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL,
        UNIQUE (variant_id, warehouse_id)
    )`,
	`CREATE TABLE stock_movements (
        id TEXT PRIMARY KEY,
        variant_id TEXT NOT NULL,
        warehouse_id TEXT NOT NULL,
        movement_type TEXT NOT NULL,
        quantity_change NUMERIC NOT NULL,
        quantity_before NUMERIC NOT NULL,
        quantity_after NUMERIC NOT NULL,
        reference_type TEXT NOT NULL DEFAULT '',
        reference_id TEXT NOT NULL DEFAULT '',
        notes TEXT NOT NULL DEFAULT '',
        performed_by TEXT NOT NULL DEFAULT '',
        performed_at TIMESTAMP NOT NULL
    )`,
	`CREATE INDEX idx_stock_movements_reconcile ON stock_movements (variant_id, warehouse_id, performed_at)`,
	`CREATE TRIGGER trg_stock_movements_no_update BEFORE UPDATE ON stock_movements
        BEGIN SELECT RAISE(ABORT, 'stock_movements is append-only'); END`,
	`CREATE TRIGGER trg_stock_movements_no_delete BEFORE DELETE ON stock_movements
        BEGIN SELECT RAISE(ABORT, 'stock_movements is append-only'); END`,
	`CREATE TABLE fulfillments (
        id TEXT PRIMARY KEY,
        order_id TEXT NOT NULL REFERENCES orders (id),
        warehouse_id TEXT NOT NULL,
        status TEXT NOT NULL,
        tracking_number TEXT,
        carrier TEXT,
        shipped_at TIMESTAMP,
        delivered_at TIMESTAMP,
        returned_at TIMESTAMP,
        created_by TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL
    )`,
	`CREATE TABLE fulfillment_items (
        id TEXT PRIMARY KEY,
        fulfillment_id TEXT NOT NULL REFERENCES fulfillments (id),
        order_item_id TEXT NOT NULL REFERENCES order_items (id),
        variant_id TEXT NOT NULL,
        qty NUMERIC NOT NULL
    )`,
	`CREATE TABLE transfers (
        id TEXT PRIMARY KEY,
        from_warehouse_id TEXT NOT NULL,
        to_warehouse_id TEXT NOT NULL,
        status TEXT NOT NULL,
        notes TEXT NOT NULL DEFAULT '',
        created_by TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL,
        completed_at TIMESTAMP,
        canceled_at TIMESTAMP
    )`,
	`CREATE TABLE transfer_items (
        id TEXT PRIMARY KEY,
        transfer_id TEXT NOT NULL REFERENCES transfers (id),
        variant_id TEXT NOT NULL,
        qty NUMERIC NOT NULL
    )`,
}

// NewDB opens a fresh database file under t.TempDir with the schema applied.
// The pool holds a single connection, so transactions from concurrent
// goroutines queue up behind each other the way row locks serialise them in
// PostgreSQL.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.db")
	db, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v\n%s", err, stmt)
		}
	}
	return db
}

// SeedOrder inserts an order with one item per quantity and returns the item ids
// in the same order. variants[i] is the variant of item i.
func SeedOrder(t *testing.T, db *sqlx.DB, orderID string, variants []string, qtys []int64) []string {
	t.Helper()

	if len(variants) != len(qtys) {
		t.Fatalf("seed order: %d variants for %d quantities", len(variants), len(qtys))
	}

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `INSERT INTO orders (id, status, created_at) VALUES (?, 'processing', ?)`, orderID, Epoch); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	ids := make([]string, len(variants))
	for i := range variants {
		ids[i] = uuid.New().String()
		_, err := db.ExecContext(ctx, `INSERT INTO order_items (id, order_id, variant_id, qty) VALUES (?, ?, ?, ?)`,
			ids[i], orderID, variants[i], decimal.NewFromInt(qtys[i]))
		if err != nil {
			t.Fatalf("seed order item: %v", err)
		}
	}
	return ids
}

// CountRows returns the number of rows in table matching where.
func CountRows(t *testing.T, db *sqlx.DB, table, where string, args ...interface{}) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	if err := db.Get(&n, query, args...); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
