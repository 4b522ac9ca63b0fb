package inventoryv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock

type StockRecord struct {
	ID             string          `json:"id,omitempty"`
	VariantID      string          `json:"variant_id"`
	WarehouseID    string          `json:"warehouse_id"`
	OnHand         decimal.Decimal `json:"on_hand"`
	Reserved       decimal.Decimal `json:"reserved"`
	Available      decimal.Decimal `json:"available"`
	SafetyStock    decimal.Decimal `json:"safety_stock"`
	ReorderPoint   decimal.Decimal `json:"reorder_point"`
	AllowBackorder bool            `json:"allow_backorder"`
	LowStock       bool            `json:"low_stock"`
	RetiredAt      *time.Time      `json:"retired_at,omitempty"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

type GetStockRequest struct {
	VariantID   string `json:"variant_id"`
	WarehouseID string `json:"warehouse_id"`
}

type ListStockRequest struct {
	VariantID      string `json:"variant_id,omitempty"`
	WarehouseID    string `json:"warehouse_id,omitempty"`
	LowStock       bool   `json:"low_stock,omitempty"`
	IncludeRetired bool   `json:"include_retired,omitempty"`
	Page           int32  `json:"page,omitempty"`
	PageSize       int32  `json:"page_size,omitempty"`
}

type ListLowStockRequest struct {
	WarehouseID string `json:"warehouse_id,omitempty"`
	Page        int32  `json:"page,omitempty"`
	PageSize    int32  `json:"page_size,omitempty"`
}

type ListStockResponse struct {
	Items []*StockRecord `json:"items"`
	Total int32          `json:"total"`
}

type AdjustStockRequest struct {
	VariantID      string          `json:"variant_id"`
	WarehouseID    string          `json:"warehouse_id"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	Reason         string          `json:"reason,omitempty"`
	ReferenceType  string          `json:"reference_type,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
}

type InitializeStockRequest struct {
	VariantID       string          `json:"variant_id"`
	WarehouseID     string          `json:"warehouse_id"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	SafetyStock     decimal.Decimal `json:"safety_stock"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
	AllowBackorder  bool            `json:"allow_backorder,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
}

type ReserveStockRequest struct {
	VariantID   string          `json:"variant_id"`
	WarehouseID string          `json:"warehouse_id"`
	Qty         decimal.Decimal `json:"qty"`
}

type RetireStockRequest struct {
	VariantID   string `json:"variant_id"`
	WarehouseID string `json:"warehouse_id"`
}

type SetBackorderRequest struct {
	VariantID      string `json:"variant_id"`
	AllowBackorder bool   `json:"allow_backorder"`
}

type SetBackorderResponse struct {
	Updated int64 `json:"updated"`
}

type Movement struct {
	ID             string          `json:"id"`
	VariantID      string          `json:"variant_id"`
	WarehouseID    string          `json:"warehouse_id"`
	MovementType   string          `json:"movement_type"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	ReferenceType  string          `json:"reference_type,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	PerformedBy    string          `json:"performed_by,omitempty"`
	PerformedAt    time.Time       `json:"performed_at"`
}

type ListMovementsRequest struct {
	VariantID     string     `json:"variant_id,omitempty"`
	WarehouseID   string     `json:"warehouse_id,omitempty"`
	MovementType  string     `json:"movement_type,omitempty"`
	ReferenceType string     `json:"reference_type,omitempty"`
	ReferenceID   string     `json:"reference_id,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Page          int32      `json:"page,omitempty"`
	PageSize      int32      `json:"page_size,omitempty"`
}

type ListMovementsResponse struct {
	Movements []*Movement `json:"movements"`
	Total     int32       `json:"total"`
}

// ReconcileStockRequest checks one pair, or every record when both ids are empty.
type ReconcileStockRequest struct {
	VariantID   string `json:"variant_id,omitempty"`
	WarehouseID string `json:"warehouse_id,omitempty"`
}

type Reconciliation struct {
	VariantID     string          `json:"variant_id"`
	WarehouseID   string          `json:"warehouse_id"`
	OnHand        decimal.Decimal `json:"on_hand"`
	MovementSum   decimal.Decimal `json:"movement_sum"`
	MovementCount int32           `json:"movement_count"`
	Drift         decimal.Decimal `json:"drift"`
	Balanced      bool            `json:"balanced"`
}

type ReconcileStockResponse struct {
	Items []*Reconciliation `json:"items"`
}

// Fulfillment

type FulfillmentLine struct {
	OrderItemID string          `json:"order_item_id"`
	Qty         decimal.Decimal `json:"qty"`
}

type CreateFulfillmentRequest struct {
	OrderID        string             `json:"order_id"`
	WarehouseID    string             `json:"warehouse_id"`
	Items          []*FulfillmentLine `json:"items"`
	TrackingNumber string             `json:"tracking_number,omitempty"`
	Carrier        string             `json:"carrier,omitempty"`
	Status         string             `json:"status,omitempty"`
}

type UpdateFulfillmentStatusRequest struct {
	FulfillmentID  string `json:"fulfillment_id"`
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
}

type GetFulfillmentRequest struct {
	ID string `json:"id"`
}

type ListOrderFulfillmentsRequest struct {
	OrderID string `json:"order_id"`
}

type FulfillmentItem struct {
	ID          string          `json:"id"`
	OrderItemID string          `json:"order_item_id"`
	VariantID   string          `json:"variant_id"`
	Qty         decimal.Decimal `json:"qty"`
}

type Fulfillment struct {
	ID             string             `json:"id"`
	OrderID        string             `json:"order_id"`
	WarehouseID    string             `json:"warehouse_id"`
	Status         string             `json:"status"`
	TrackingNumber string             `json:"tracking_number,omitempty"`
	Carrier        string             `json:"carrier,omitempty"`
	ShippedAt      *time.Time         `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time         `json:"delivered_at,omitempty"`
	ReturnedAt     *time.Time         `json:"returned_at,omitempty"`
	CreatedBy      string             `json:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Items          []*FulfillmentItem `json:"items"`
}

type RemainingQuantity struct {
	OrderItemID string          `json:"order_item_id"`
	VariantID   string          `json:"variant_id"`
	Ordered     decimal.Decimal `json:"ordered"`
	Fulfilled   decimal.Decimal `json:"fulfilled"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type ListOrderFulfillmentsResponse struct {
	Fulfillments []*Fulfillment       `json:"fulfillments"`
	Remaining    []*RemainingQuantity `json:"remaining"`
}

// Transfer

type TransferLine struct {
	VariantID string          `json:"variant_id"`
	Qty       decimal.Decimal `json:"qty"`
}

type CreateTransferRequest struct {
	FromWarehouseID string          `json:"from_warehouse_id"`
	ToWarehouseID   string          `json:"to_warehouse_id"`
	Items           []*TransferLine `json:"items"`
	Notes           string          `json:"notes,omitempty"`
}

type TransferIDRequest struct {
	ID string `json:"id"`
}

type ListTransfersRequest struct {
	WarehouseID string `json:"warehouse_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Page        int32  `json:"page,omitempty"`
	PageSize    int32  `json:"page_size,omitempty"`
}

type Transfer struct {
	ID              string          `json:"id"`
	FromWarehouseID string          `json:"from_warehouse_id"`
	ToWarehouseID   string          `json:"to_warehouse_id"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CanceledAt      *time.Time      `json:"canceled_at,omitempty"`
	Items           []*TransferLine `json:"items"`
}

type ListTransfersResponse struct {
	Items []*Transfer `json:"items"`
	Total int32       `json:"total"`
}
