package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	MerchantIDKey contextKey = "merchant_id"
	UserIDKey     contextKey = "user_id"
	RequestIDKey  contextKey = "request_id"
)

// ContextInterceptor copies identity headers from incoming metadata onto the context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		if v := first(md, "x-merchant-id"); v != "" {
			ctx = context.WithValue(ctx, MerchantIDKey, v)
		}
		if v := first(md, "x-user-id"); v != "" {
			ctx = context.WithValue(ctx, UserIDKey, v)
		}

		requestID := first(md, "x-request-id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)

		return handler(ctx, req)
	}
}

func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		requestID, _ := ctx.Value(RequestIDKey).(string)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", status.Code(err).String()),
		}
		if v, ok := ctx.Value(MerchantIDKey).(string); ok {
			fields = append(fields, zap.String("merchant_id", v))
		}
		if v, ok := ctx.Value(UserIDKey).(string); ok {
			fields = append(fields, zap.String("user_id", v))
		}
		if err != nil {
			log.Warn("grpc request failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("grpc request", fields...)
		}
		return resp, err
	}
}

func first(md metadata.MD, key string) string {
	if md == nil {
		return ""
	}
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}
