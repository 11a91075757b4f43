package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
)

// HousekeepingService periodically purges expired password reset tokens so
// the table does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non positive
// interval defaults to one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop blocks until an in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes every reset token past its expiry and reports how many went.
func (s *HousekeepingService) Sweep(ctx context.Context) int64 {
	n, err := s.Store.PasswordResets().DeleteExpiredResetTokens(ctx, clock(s.Now))
	if err != nil {
		s.Logger.Error("failed to delete expired reset tokens", slog.Any("error", err))
		return 0
	}
	s.Logger.Debug("housekeeping sweep completed", slog.Int64("reset_tokens_deleted", n))
	return n
}
