package scheduler

import (
	"context"
	"fmt"
	"time"

	"eduledger/internal/core"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	refreshInterval = 5 * time.Minute
	refreshWindow   = 24 * time.Hour
	refreshDeadline = 4 * time.Minute
)

// Manager owns the background jobs. Currently there is one: re-confirming
// recently mirrored transactions against the node.
type Manager struct {
	scheduler gocron.Scheduler
	mirror    *core.Mirror
	logs      *zap.SugaredLogger
}

func NewManager(logger *zap.SugaredLogger, mirror *core.Mirror) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Manager{
		scheduler: s,
		mirror:    mirror,
		logs:      logger,
	}, nil
}

func (m *Manager) Start() error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(refreshInterval),
		gocron.NewTask(m.runRefresh),
		gocron.WithName("confirmation-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}

	m.scheduler.Start()
	m.logs.Infow("scheduler started", "interval", refreshInterval.String())
	return nil
}

func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		m.logs.Errorw("scheduler shutdown failed", "error", err)
		return
	}
	m.logs.Infow("scheduler stopped")
}

func (m *Manager) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshDeadline)
	defer cancel()

	refreshed, err := m.mirror.RefreshRecent(ctx, refreshWindow)
	if err != nil {
		m.logs.Errorw("confirmation refresh sweep failed", "error", err)
		return
	}

	if refreshed > 0 {
		m.logs.Infow("confirmation refresh sweep done", "refreshed", refreshed)
	}
}
