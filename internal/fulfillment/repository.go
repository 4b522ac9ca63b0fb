package fulfillment

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Orders are owned by the order service; these only read them.
	LockOrder(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error)
	GetOrder(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error)
	ListOrderItems(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.OrderItem, error)

	// FulfilledQuantities sums item quantities of the order's non-returned
	// fulfillments, keyed by order item id.
	FulfilledQuantities(ctx context.Context, tx *sqlx.Tx, orderID string) (map[string]decimal.Decimal, error)

	Create(ctx context.Context, tx *sqlx.Tx, f *model.Fulfillment) error
	LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*model.Fulfillment, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, f *model.Fulfillment) error

	FindByID(ctx context.Context, id string) (*model.Fulfillment, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.Fulfillment, error)
}
