package fulfillment

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

type UseCase interface {
	CreateFulfillment(ctx context.Context, input *dto.CreateFulfillmentInput) (*model.Fulfillment, error)
	UpdateStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Fulfillment, error)
	GetFulfillment(ctx context.Context, id string) (*model.Fulfillment, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.Fulfillment, error)
	RemainingQuantities(ctx context.Context, orderID string) ([]model.RemainingQuantity, error)
}
