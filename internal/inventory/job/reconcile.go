package job

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reconcileLockKey = "inventory:job:reconcile"

type Reconciler interface {
	ReconcileAll(ctx context.Context) ([]model.Reconciliation, error)
}

// Locker is satisfied by cache.RedisClient.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

// ReconcileJob audits every stock record against its movement history and
// logs the ones that drifted. It only reads.
type ReconcileJob struct {
	uc      Reconciler
	locker  Locker
	logger  logger.ZapLogger
	lockTTL time.Duration
	timeout time.Duration
}

// NewReconcileJob builds the audit job. locker may be nil when only one
// replica runs.
func NewReconcileJob(uc Reconciler, locker Locker, log logger.ZapLogger) *ReconcileJob {
	return &ReconcileJob{
		uc:      uc,
		locker:  locker,
		logger:  log,
		lockTTL: 10 * time.Minute,
		timeout: 5 * time.Minute,
	}
}

// Register adds the job to c on the given cron schedule.
func (j *ReconcileJob) Register(c *cron.Cron, schedule string) (cron.EntryID, error) {
	id, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("reconcile job failed", zap.Error(err))
		}
	})
	if err != nil {
		return 0, errors.Wrapf(err, "register reconcile job %q", schedule)
	}
	return id, nil
}

// Run reconciles all stock records and returns the drifted ones. When another
// replica holds the lock it returns nil without doing anything.
func (j *ReconcileJob) Run(ctx context.Context) ([]model.Reconciliation, error) {
	if j.locker != nil {
		holder := uuid.New().String()
		ok, err := j.locker.AcquireLock(ctx, reconcileLockKey, holder, j.lockTTL)
		if err != nil {
			return nil, errors.Wrap(err, "acquire reconcile lock")
		}
		if !ok {
			j.logger.Debug("reconcile job skipped, lock held elsewhere")
			return nil, nil
		}
		defer func() {
			if err := j.locker.ReleaseLock(context.Background(), reconcileLockKey, holder); err != nil {
				j.logger.Warn("release reconcile lock", zap.Error(err))
			}
		}()
	}

	start := time.Now()
	recs, err := j.uc.ReconcileAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reconcile all")
	}

	var drifted []model.Reconciliation
	for i := range recs {
		r := &recs[i]
		if r.Balanced() {
			continue
		}
		drifted = append(drifted, *r)
		j.logger.Warn("stock drift detected",
			zap.String("variant_id", r.VariantID),
			zap.String("warehouse_id", r.WarehouseID),
			zap.String("on_hand", r.OnHand.String()),
			zap.String("movement_sum", r.MovementSum.String()),
			zap.String("drift", r.Drift().String()),
		)
	}

	j.logger.Info("reconcile job finished",
		zap.Int("records", len(recs)),
		zap.Int("drifted", len(drifted)),
		zap.Duration("duration", time.Since(start)),
	)
	return drifted, nil
}
