package workers

import (
	"context"
	"time"

	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
)

// backupWorker takes an automatic inventory snapshot on every tick. It has
// no semantic effect on correctness, only on how much history the backup
// list accumulates between manual snapshots.
type backupWorker struct {
	backupService service.BackupService
	interval      time.Duration
	quit          chan struct{}
	logger        *logger.Logger
}

func newBackupWorker(backupService service.BackupService, interval time.Duration, logger *logger.Logger) *backupWorker {
	logger.Debug().Dur("interval", interval).Msg("creating backup worker")
	return &backupWorker{
		backupService: backupService,
		interval:      interval,
		quit:          make(chan struct{}),
		logger:        logger,
	}
}

// Run starts the snapshot loop in a background goroutine and returns
// immediately. A failed snapshot is logged and the loop keeps ticking.
func (w *backupWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.quit:
				w.logger.Info().Msg("backup worker stopped")
				return
			case <-ticker.C:
				w.snapshot()
			}
		}
	}()
}

// Stop ends the snapshot loop. A snapshot already in flight finishes first.
// Stop must be called at most once.
func (w *backupWorker) Stop() {
	close(w.quit)
}

func (w *backupWorker) snapshot() {
	ctx := w.logger.WithContext(context.Background())

	backup, err := w.backupService.Create(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "backupWorker.snapshot").Msg("automatic backup failed")
		return
	}

	w.logger.Info().Int64("id", backup.ID).Int64("size", backup.Size).Msg("automatic backup created")
}
