package cache

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

const keyPrefix = "inventory:stock:"

// DefaultInvalidationHold is how long an invalidated key refuses new entries.
// It must outlast the gap between a read from the database and its Set.
const DefaultInvalidationHold = 10 * time.Second

// RedisStockCache keeps recently read stock records in Redis. Invalidate
// leaves a tombstone rather than deleting the key, and Set only writes into
// an empty key, so a record read before a commit cannot be stored after that
// commit's invalidation.
type RedisStockCache struct {
	client *cache.RedisClient
	ttl    time.Duration
	hold   time.Duration
	logger logger.ZapLogger
}

func NewRedisStockCache(client *cache.RedisClient, ttl time.Duration, log logger.ZapLogger) *RedisStockCache {
	return &RedisStockCache{client: client, ttl: ttl, hold: DefaultInvalidationHold, logger: log}
}

func Key(variantID, warehouseID string) string {
	return keyPrefix + variantID + ":" + warehouseID
}

func (c *RedisStockCache) Get(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, bool) {
	var rec model.StockRecord
	ok, err := c.client.GetJSON(ctx, Key(variantID, warehouseID), &rec)
	if err != nil {
		c.logger.Warn("stock cache get", zap.String("variant_id", variantID), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &rec, true
}

func (c *RedisStockCache) Set(ctx context.Context, rec *model.StockRecord) {
	if _, err := c.client.SetJSONIfAbsent(ctx, Key(rec.VariantID, rec.WarehouseID), rec, c.ttl); err != nil {
		c.logger.Warn("stock cache set", zap.String("variant_id", rec.VariantID), zap.Error(err))
	}
}

func (c *RedisStockCache) Invalidate(ctx context.Context, variantID, warehouseID string) {
	if err := c.client.Tombstone(ctx, Key(variantID, warehouseID), c.hold); err != nil {
		c.logger.Warn("stock cache invalidate", zap.String("variant_id", variantID), zap.Error(err))
	}
}
