package workers

import (
	"context"
	"testing"
	"time"

	"github.com/estoque-digital/estoque-server/internal/config"
	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
	"github.com/estoque-digital/estoque-server/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

// stoppableWorker additionally records whether Stop was called.
type stoppableWorker struct {
	mockWorker
	stopped bool
}

func (s *stoppableWorker) Stop() {
	s.stopped = true
}

// fakeBackupService signals on created every time a snapshot is taken.
type fakeBackupService struct {
	created chan struct{}
}

func (f *fakeBackupService) Create(ctx context.Context) (models.Backup, error) {
	f.created <- struct{}{}
	return models.Backup{ID: 1, Size: 2}, nil
}

func (f *fakeBackupService) List(ctx context.Context) ([]models.BackupSummary, error) {
	return nil, nil
}

func (f *fakeBackupService) Download(ctx context.Context, id int64) (models.Backup, error) {
	return models.Backup{}, nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Stop_StopsStoppableWorkers(t *testing.T) {
	stoppable := &stoppableWorker{}
	plain := &mockWorker{}

	ws := &Workers{workers: []Worker{stoppable, plain}}
	ws.Run()
	ws.Stop()

	if !stoppable.stopped {
		t.Error("expected stoppable worker to be stopped")
	}
}

func TestNewWorkers_BackupIntervalGatesBackupWorker(t *testing.T) {
	services := &service.Services{
		BackupService: &fakeBackupService{created: make(chan struct{}, 1)},
	}

	ws := NewWorkers(services, config.Workers{}, logger.Nop())
	if len(ws.workers) != 0 {
		t.Errorf("expected no workers with zero interval, got %d", len(ws.workers))
	}

	ws = NewWorkers(services, config.Workers{BackupInterval: time.Minute}, logger.Nop())
	if len(ws.workers) != 1 {
		t.Errorf("expected 1 worker, got %d", len(ws.workers))
	}
}

func TestBackupWorker_TicksAndStops(t *testing.T) {
	svc := &fakeBackupService{created: make(chan struct{}, 16)}
	w := newBackupWorker(svc, 5*time.Millisecond, logger.Nop())

	w.Run()

	select {
	case <-svc.created:
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot was taken")
	}

	w.Stop()

	// drain any snapshot already in flight, then the loop must be silent
	time.Sleep(50 * time.Millisecond)
	for len(svc.created) > 0 {
		<-svc.created
	}
	time.Sleep(50 * time.Millisecond)
	if n := len(svc.created); n != 0 {
		t.Errorf("expected no snapshots after Stop, got %d", n)
	}
}
