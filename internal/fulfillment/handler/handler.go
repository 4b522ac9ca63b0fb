package handler

import (
	"context"
	"fmt"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type FulfillmentHandler struct {
	inventoryv1.UnimplementedFulfillmentServiceServer
	uc     fulfillment.UseCase
	logger logger.ZapLogger
}

func NewFulfillmentHandler(uc fulfillment.UseCase, log logger.ZapLogger) *FulfillmentHandler {
	return &FulfillmentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *FulfillmentHandler) CreateFulfillment(ctx context.Context, req *inventoryv1.CreateFulfillmentRequest) (*inventoryv1.Fulfillment, error) {
	items := make([]dto.CreateItemInput, 0, len(req.Items))
	for i, line := range req.Items {
		if line == nil {
			return nil, h.toStatus("create fulfillment", apperr.Validation(fmt.Sprintf("items[%d]", i), "is required"))
		}
		items = append(items, dto.CreateItemInput{OrderItemID: line.OrderItemID, Qty: line.Qty})
	}

	f, err := h.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID:        req.OrderID,
		WarehouseID:    req.WarehouseID,
		Items:          items,
		TrackingNumber: optional(req.TrackingNumber),
		Carrier:        optional(req.Carrier),
		Status:         model.FulfillmentStatus(req.Status),
		Actor:          auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.toStatus("create fulfillment", err)
	}
	return MapFulfillment(f), nil
}

func (h *FulfillmentHandler) UpdateFulfillmentStatus(ctx context.Context, req *inventoryv1.UpdateFulfillmentStatusRequest) (*inventoryv1.Fulfillment, error) {
	f, err := h.uc.UpdateStatus(ctx, &dto.UpdateStatusInput{
		FulfillmentID:  req.FulfillmentID,
		Status:         model.FulfillmentStatus(req.Status),
		TrackingNumber: optional(req.TrackingNumber),
		Carrier:        optional(req.Carrier),
		Actor:          auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.toStatus("update fulfillment status", err)
	}
	return MapFulfillment(f), nil
}

func (h *FulfillmentHandler) GetFulfillment(ctx context.Context, req *inventoryv1.GetFulfillmentRequest) (*inventoryv1.Fulfillment, error) {
	f, err := h.uc.GetFulfillment(ctx, req.ID)
	if err != nil {
		return nil, h.toStatus("get fulfillment", err)
	}
	return MapFulfillment(f), nil
}

func (h *FulfillmentHandler) ListOrderFulfillments(ctx context.Context, req *inventoryv1.ListOrderFulfillmentsRequest) (*inventoryv1.ListOrderFulfillmentsResponse, error) {
	list, err := h.uc.ListByOrder(ctx, req.OrderID)
	if err != nil {
		return nil, h.toStatus("list order fulfillments", err)
	}
	remaining, err := h.uc.RemainingQuantities(ctx, req.OrderID)
	if err != nil {
		return nil, h.toStatus("remaining quantities", err)
	}

	resp := &inventoryv1.ListOrderFulfillmentsResponse{
		Fulfillments: make([]*inventoryv1.Fulfillment, len(list)),
		Remaining:    make([]*inventoryv1.RemainingQuantity, len(remaining)),
	}
	for i := range list {
		resp.Fulfillments[i] = MapFulfillment(&list[i])
	}
	for i, r := range remaining {
		resp.Remaining[i] = &inventoryv1.RemainingQuantity{
			OrderItemID: r.OrderItemID,
			VariantID:   r.VariantID,
			Ordered:     r.Ordered,
			Fulfilled:   r.Fulfilled,
			Remaining:   r.Remaining,
		}
	}
	return resp, nil
}

func (h *FulfillmentHandler) toStatus(op string, err error) error {
	if apperr.IsInternal(err) {
		h.logger.Error(op, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func MapFulfillment(f *model.Fulfillment) *inventoryv1.Fulfillment {
	if f == nil {
		return nil
	}
	out := &inventoryv1.Fulfillment{
		ID:          f.ID,
		OrderID:     f.OrderID,
		WarehouseID: f.WarehouseID,
		Status:      string(f.Status),
		ShippedAt:   f.ShippedAt,
		DeliveredAt: f.DeliveredAt,
		ReturnedAt:  f.ReturnedAt,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
		Items:       make([]*inventoryv1.FulfillmentItem, len(f.Items)),
	}
	if f.TrackingNumber != nil {
		out.TrackingNumber = *f.TrackingNumber
	}
	if f.Carrier != nil {
		out.Carrier = *f.Carrier
	}
	for i, item := range f.Items {
		out.Items[i] = &inventoryv1.FulfillmentItem{
			ID:          item.ID,
			OrderItemID: item.OrderItemID,
			VariantID:   item.VariantID,
			Qty:         item.Qty,
		}
	}
	return out
}
