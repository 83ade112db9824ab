package slots

import (
	"context"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL       = 2 * time.Minute
	leaderUnlockTimeout = 5 * time.Second
)

// Worker periodically purges past slots nobody booked.
type Worker struct {
	log         *zap.Logger
	cfg         *config.InternalConfig
	locker      contracts.LockerService
	slotUsecase contracts.SlotUsecase
	cron        *cron.Cron
	runCtx      context.Context
	cancel      context.CancelFunc
	now         func() time.Time
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, slotUsecase contracts.SlotUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, slotUsecase: slotUsecase, now: time.Now}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Worker.SlotCleanupCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("slots.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String("spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running purge to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeySlotCleanupLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("slots.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slots.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.releaseLeadership(ctx, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.keepLeadership(refreshCtx, token)

	cutoff := w.now().UTC().AddDate(0, 0, -w.cfg.Worker.SlotRetentionDays)
	count, err := w.slotUsecase.PurgePastSlots(ctx, cutoff)
	if err != nil {
		w.log.Error("slots.worker: purge failed", zap.Time(constvars.LoggingCutoffKey, cutoff), zap.Error(err))
		return
	}
	w.log.Info("slots.worker: purge finished",
		zap.Time(constvars.LoggingCutoffKey, cutoff),
		zap.Int64(constvars.LoggingCountKey, count),
	)
}

// releaseLeadership runs even after Stop cancelled ctx, so the next run does
// not wait for the lock TTL.
func (w *Worker) releaseLeadership(ctx context.Context, token string) {
	unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), leaderUnlockTimeout)
	defer cancel()

	if err := w.locker.Unlock(unlockCtx, constvars.RedisKeySlotCleanupLeader, token); err != nil {
		w.log.Warn("slots.worker: failed to release leader lock", zap.Error(err))
	}
}

// keepLeadership extends the leader lock at half its TTL until ctx ends.
func (w *Worker) keepLeadership(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeySlotCleanupLeader, token, leaderLockTTL); err != nil {
				w.log.Warn("slots.worker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}
