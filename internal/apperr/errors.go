package apperr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
)

// ValidationError is a caller mistake on a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validation(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports a deduction the stock record cannot cover.
type InsufficientStockError struct {
	VariantID   string
	WarehouseID string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for variant %s in warehouse %s: available %s, requested %s",
		e.VariantID, e.WarehouseID, e.Available.String(), e.Requested.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

func NotFound(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConflict, format, args...)
}

// ToStatus maps a domain error onto a gRPC status error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var code codes.Code
	switch {
	case errors.Is(err, ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, ErrInsufficientStock):
		code = codes.FailedPrecondition
	case errors.Is(err, ErrConflict):
		code = codes.Aborted
	case errors.Is(err, ErrNotFound):
		code = codes.NotFound
	default:
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

// IsInternal reports whether err falls outside the domain taxonomy and would
// surface as an internal error.
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrValidation) &&
		!errors.Is(err, ErrInsufficientStock) &&
		!errors.Is(err, ErrConflict) &&
		!errors.Is(err, ErrNotFound)
}
