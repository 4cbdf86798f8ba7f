package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "learnhub_backend/internals/features/lms/batch/controller"
	model "learnhub_backend/internals/features/lms/batch/model"
)

const (
	scanInterval   = 10 * time.Minute
	reminderOffset = time.Hour
)

// Notifier periodically reminds enrolled students about live classes that
// start roughly one hour from now. Dedup lives in NotifyBatchStudents, so a
// batch caught by two overlapping scans still yields one notification per
// student.
type Notifier struct {
	DB       *gorm.DB
	Sugar    *zap.SugaredLogger
	Interval time.Duration
}

func NewNotifier(db *gorm.DB, sugar *zap.SugaredLogger) *Notifier {
	return &Notifier{DB: db, Sugar: sugar, Interval: scanInterval}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (n *Notifier) Start(ctx context.Context) {
	ticker := time.NewTicker(n.Interval)
	defer ticker.Stop()

	n.RunOnce()
	for {
		select {
		case <-ctx.Done():
			n.Sugar.Infow("live class notifier stopped")
			return
		case <-ticker.C:
			n.RunOnce()
		}
	}
}

// RunOnce scans one reminder window: batches whose live class starts between
// (reminderOffset - Interval) and reminderOffset from now.
func (n *Notifier) RunOnce() {
	now := time.Now()
	windowStart := now.Add(reminderOffset - n.Interval)
	windowEnd := now.Add(reminderOffset)

	var batches []model.BatchModel
	if err := n.DB.
		Where("live_start_time IS NOT NULL AND live_start_time BETWEEN ? AND ?", windowStart, windowEnd).
		Find(&batches).Error; err != nil {
		n.Sugar.Errorw("live class notifier: scan failed", "err", err)
		return
	}

	for i := range batches {
		created, err := controller.NotifyBatchStudents(n.DB, &batches[i])
		if err != nil {
			n.Sugar.Errorw("live class notifier: notify failed", "batch_id", batches[i].ID, "err", err)
			continue
		}
		if created > 0 {
			n.Sugar.Infow("live class reminders sent", "batch_id", batches[i].ID, "count", created)
		}
	}
}
