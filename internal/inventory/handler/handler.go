package handler

import (
	"context"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	inventoryv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) GetStock(ctx context.Context, req *inventoryv1.GetStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.GetStock(ctx, req.VariantID, req.WarehouseID)
	if err != nil {
		return nil, h.toStatus("get stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) ListStock(ctx context.Context, req *inventoryv1.ListStockRequest) (*inventoryv1.ListStockResponse, error) {
	items, count, err := h.uc.ListStock(ctx, &dto.StockFilters{
		VariantID:      req.VariantID,
		WarehouseID:    req.WarehouseID,
		LowStock:       req.LowStock,
		IncludeRetired: req.IncludeRetired,
		Page:           int(req.Page),
		PageSize:       int(req.PageSize),
	})
	if err != nil {
		return nil, h.toStatus("list stock", err)
	}
	return stockList(items, count), nil
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, req *inventoryv1.ListLowStockRequest) (*inventoryv1.ListStockResponse, error) {
	items, count, err := h.uc.ListLowStock(ctx, req.WarehouseID, int(req.Page), int(req.PageSize))
	if err != nil {
		return nil, h.toStatus("list low stock", err)
	}
	return stockList(items, count), nil
}

func (h *InventoryHandler) AdjustStock(ctx context.Context, req *inventoryv1.AdjustStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{
		VariantID:     req.VariantID,
		WarehouseID:   req.WarehouseID,
		Delta:         req.QuantityChange,
		Reason:        req.Reason,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Actor:         auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.toStatus("adjust stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) InitializeStock(ctx context.Context, req *inventoryv1.InitializeStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.InitializeStock(ctx, &dto.InitializeStockInput{
		VariantID:       req.VariantID,
		WarehouseID:     req.WarehouseID,
		InitialQuantity: req.InitialQuantity,
		SafetyStock:     req.SafetyStock,
		ReorderPoint:    req.ReorderPoint,
		AllowBackorder:  req.AllowBackorder,
		ReferenceType:   model.ReferenceManual,
		ReferenceID:     req.ReferenceID,
		Actor:           auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.toStatus("initialize stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) ReserveStock(ctx context.Context, req *inventoryv1.ReserveStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.ReserveStock(ctx, &dto.ReserveInput{VariantID: req.VariantID, WarehouseID: req.WarehouseID, Qty: req.Qty})
	if err != nil {
		return nil, h.toStatus("reserve stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) ReleaseStock(ctx context.Context, req *inventoryv1.ReserveStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.ReleaseStock(ctx, &dto.ReserveInput{VariantID: req.VariantID, WarehouseID: req.WarehouseID, Qty: req.Qty})
	if err != nil {
		return nil, h.toStatus("release stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) RetireStock(ctx context.Context, req *inventoryv1.RetireStockRequest) (*inventoryv1.StockRecord, error) {
	rec, err := h.uc.RetireStock(ctx, req.VariantID, req.WarehouseID)
	if err != nil {
		return nil, h.toStatus("retire stock", err)
	}
	return MapStock(rec), nil
}

func (h *InventoryHandler) SetBackorder(ctx context.Context, req *inventoryv1.SetBackorderRequest) (*inventoryv1.SetBackorderResponse, error) {
	n, err := h.uc.SetBackorder(ctx, &dto.SetBackorderInput{VariantID: req.VariantID, AllowBackorder: req.AllowBackorder})
	if err != nil {
		return nil, h.toStatus("set backorder", err)
	}
	return &inventoryv1.SetBackorderResponse{Updated: n}, nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *inventoryv1.ListMovementsRequest) (*inventoryv1.ListMovementsResponse, error) {
	mvs, count, err := h.uc.ListMovements(ctx, &dto.MovementFilters{
		VariantID:     req.VariantID,
		WarehouseID:   req.WarehouseID,
		MovementType:  req.MovementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Page:          int(req.Page),
		PageSize:      int(req.PageSize),
	})
	if err != nil {
		return nil, h.toStatus("list movements", err)
	}

	out := make([]*inventoryv1.Movement, len(mvs))
	for i := range mvs {
		out[i] = MapMovement(&mvs[i])
	}
	return &inventoryv1.ListMovementsResponse{Movements: out, Total: int32(count)}, nil
}

func (h *InventoryHandler) ReconcileStock(ctx context.Context, req *inventoryv1.ReconcileStockRequest) (*inventoryv1.ReconcileStockResponse, error) {
	var recs []model.Reconciliation
	if req.VariantID == "" && req.WarehouseID == "" {
		all, err := h.uc.ReconcileAll(ctx)
		if err != nil {
			return nil, h.toStatus("reconcile all", err)
		}
		recs = all
	} else {
		if req.VariantID == "" || req.WarehouseID == "" {
			return nil, apperr.ToStatus(apperr.Validation("variant_id", "variant_id and warehouse_id go together"))
		}
		one, err := h.uc.Reconcile(ctx, req.VariantID, req.WarehouseID)
		if err != nil {
			return nil, h.toStatus("reconcile", err)
		}
		recs = []model.Reconciliation{*one}
	}

	out := make([]*inventoryv1.Reconciliation, len(recs))
	for i := range recs {
		r := &recs[i]
		out[i] = &inventoryv1.Reconciliation{
			VariantID:     r.VariantID,
			WarehouseID:   r.WarehouseID,
			OnHand:        r.OnHand,
			MovementSum:   r.MovementSum,
			MovementCount: int32(r.MovementCount),
			Drift:         r.Drift(),
			Balanced:      r.Balanced(),
		}
	}
	return &inventoryv1.ReconcileStockResponse{Items: out}, nil
}

func (h *InventoryHandler) toStatus(op string, err error) error {
	if apperr.IsInternal(err) {
		h.logger.Error(op, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func stockList(items []model.StockRecord, count int) *inventoryv1.ListStockResponse {
	out := make([]*inventoryv1.StockRecord, len(items))
	for i := range items {
		out[i] = MapStock(&items[i])
	}
	return &inventoryv1.ListStockResponse{Items: out, Total: int32(count)}
}

func MapStock(m *model.StockRecord) *inventoryv1.StockRecord {
	if m == nil {
		return nil
	}
	out := &inventoryv1.StockRecord{
		ID:             m.ID,
		VariantID:      m.VariantID,
		WarehouseID:    m.WarehouseID,
		OnHand:         m.OnHand,
		Reserved:       m.Reserved,
		Available:      m.Available(),
		SafetyStock:    m.SafetyStock,
		ReorderPoint:   m.ReorderPoint,
		AllowBackorder: m.AllowBackorder,
		LowStock:       m.IsLow(),
		RetiredAt:      m.RetiredAt,
	}
	if !m.UpdatedAt.IsZero() {
		updated := m.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

func MapMovement(m *model.MovementEntry) *inventoryv1.Movement {
	if m == nil {
		return nil
	}
	return &inventoryv1.Movement{
		ID:             m.ID,
		VariantID:      m.VariantID,
		WarehouseID:    m.WarehouseID,
		MovementType:   string(m.MovementType),
		QuantityChange: m.QuantityChange,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		ReferenceType:  m.ReferenceType,
		ReferenceID:    m.ReferenceID,
		Notes:          m.Notes,
		PerformedBy:    m.PerformedBy,
		PerformedAt:    m.PerformedAt,
	}
}
