package dto

import "time"

type StockFilters struct {
	VariantID      string
	WarehouseID    string
	LowStock       bool // available (on_hand - reserved) <= reorder_point
	IncludeRetired bool
	Page           int
	PageSize       int
}

type MovementFilters struct {
	VariantID     string
	WarehouseID   string
	MovementType  string
	ReferenceType string
	ReferenceID   string
	StartDate     *time.Time
	EndDate       *time.Time
	Page          int
	PageSize      int
}
