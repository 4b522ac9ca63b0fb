package auth

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// SystemActor is recorded on movements caused by events rather than people.
const SystemActor = "system"

// GetActorID returns the id of the user performing the call, used for audit
// attribution only.
func GetActorID(ctx context.Context) string {
	return fromContext(ctx, middleware.UserIDKey, "x-user-id")
}

func fromContext(ctx context.Context, key interface{}, header string) string {
	// Set by the context interceptor.
	if val, ok := ctx.Value(key).(string); ok && val != "" {
		return val
	}

	// Fallback to metadata
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(header); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
