package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", Validation("items[0].qty", "must be positive"), codes.InvalidArgument},
		{"insufficient", &InsufficientStockError{VariantID: "v", WarehouseID: "w"}, codes.FailedPrecondition},
		{"wrapped insufficient", errors.Wrap(&InsufficientStockError{}, "line 2"), codes.FailedPrecondition},
		{"conflict", Conflict("fulfillment %s is returned", "f1"), codes.Aborted},
		{"not found", NotFound("order %s", "o1"), codes.NotFound},
		{"unknown", errors.New("connection reset"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(ToStatus(tt.err)))
		})
	}
}

func TestToStatus_HidesInternalDetails(t *testing.T) {
	st, _ := status.FromError(ToStatus(errors.New("pq: password authentication failed")))
	assert.Equal(t, "internal error", st.Message())
}

func TestValidationError_Message(t *testing.T) {
	err := Validation("items[1].qty", "exceeds remaining quantity (%s left)", decimal.NewFromInt(2).String())
	assert.EqualError(t, err, "items[1].qty: exceeds remaining quantity (2 left)")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestIsInternal(t *testing.T) {
	assert.False(t, IsInternal(nil))
	assert.False(t, IsInternal(Conflict("x")))
	assert.False(t, IsInternal(errors.Wrap(NotFound("order %s", "o1"), "load")))
	assert.True(t, IsInternal(errors.New("deadlock detected")))
}
