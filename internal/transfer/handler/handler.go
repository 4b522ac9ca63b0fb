package handler

import (
	"context"
	"fmt"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type TransferHandler struct {
	inventoryv1.UnimplementedTransferServiceServer
	uc     transfer.UseCase
	logger logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TransferHandler) CreateTransfer(ctx context.Context, req *inventoryv1.CreateTransferRequest) (*inventoryv1.Transfer, error) {
	items := make([]dto.TransferItemInput, 0, len(req.Items))
	for i, line := range req.Items {
		if line == nil {
			return nil, h.toStatus("create transfer", apperr.Validation(fmt.Sprintf("items[%d]", i), "is required"))
		}
		items = append(items, dto.TransferItemInput{VariantID: line.VariantID, Qty: line.Qty})
	}

	t, err := h.uc.CreateTransfer(ctx, &dto.CreateTransferInput{
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Items:           items,
		Notes:           req.Notes,
		Actor:           auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.toStatus("create transfer", err)
	}
	return MapTransfer(t), nil
}

func (h *TransferHandler) CompleteTransfer(ctx context.Context, req *inventoryv1.TransferIDRequest) (*inventoryv1.Transfer, error) {
	t, err := h.uc.CompleteTransfer(ctx, req.ID, auth.GetActorID(ctx))
	if err != nil {
		return nil, h.toStatus("complete transfer", err)
	}
	return MapTransfer(t), nil
}

func (h *TransferHandler) CancelTransfer(ctx context.Context, req *inventoryv1.TransferIDRequest) (*inventoryv1.Transfer, error) {
	t, err := h.uc.CancelTransfer(ctx, req.ID, auth.GetActorID(ctx))
	if err != nil {
		return nil, h.toStatus("cancel transfer", err)
	}
	return MapTransfer(t), nil
}

func (h *TransferHandler) GetTransfer(ctx context.Context, req *inventoryv1.TransferIDRequest) (*inventoryv1.Transfer, error) {
	t, err := h.uc.GetTransfer(ctx, req.ID)
	if err != nil {
		return nil, h.toStatus("get transfer", err)
	}
	return MapTransfer(t), nil
}

func (h *TransferHandler) ListTransfers(ctx context.Context, req *inventoryv1.ListTransfersRequest) (*inventoryv1.ListTransfersResponse, error) {
	list, count, err := h.uc.ListTransfers(ctx, &dto.TransferFilters{
		WarehouseID: req.WarehouseID,
		Status:      model.TransferStatus(req.Status),
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	})
	if err != nil {
		return nil, h.toStatus("list transfers", err)
	}

	out := make([]*inventoryv1.Transfer, len(list))
	for i := range list {
		out[i] = MapTransfer(&list[i])
	}
	return &inventoryv1.ListTransfersResponse{Items: out, Total: int32(count)}, nil
}

func (h *TransferHandler) toStatus(op string, err error) error {
	if apperr.IsInternal(err) {
		h.logger.Error(op, zap.Error(err))
	}
	return apperr.ToStatus(err)
}

func MapTransfer(t *model.Transfer) *inventoryv1.Transfer {
	if t == nil {
		return nil
	}
	out := &inventoryv1.Transfer{
		ID:              t.ID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          string(t.Status),
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
		CanceledAt:      t.CanceledAt,
		Items:           make([]*inventoryv1.TransferLine, len(t.Items)),
	}
	for i, item := range t.Items {
		out.Items[i] = &inventoryv1.TransferLine{VariantID: item.VariantID, Qty: item.Qty}
	}
	return out
}
