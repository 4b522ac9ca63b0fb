package model

import "github.com/shopspring/decimal"

// Order and OrderItem are owned by the order service and only read here.
type Order struct {
	ID     string `db:"id" json:"id"`
	Status string `db:"status" json:"status"`
}

type OrderItem struct {
	ID        string          `db:"id" json:"id"`
	OrderID   string          `db:"order_id" json:"order_id"`
	VariantID string          `db:"variant_id" json:"variant_id"`
	Qty       decimal.Decimal `db:"qty" json:"qty"`
}

// RemainingQuantity is what is still left to fulfill on one order item.
type RemainingQuantity struct {
	OrderItemID string          `json:"order_item_id"`
	VariantID   string          `json:"variant_id"`
	Ordered     decimal.Decimal `json:"ordered"`
	Fulfilled   decimal.Decimal `json:"fulfilled"`
	Remaining   decimal.Decimal `json:"remaining"`
}
