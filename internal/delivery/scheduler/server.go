// Package scheduler drives the reminder scan on a fixed cadence.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"medreminder/config"
	"medreminder/internal/delivery"
	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultScanInterval = 30 * time.Second

// ServerParams holds dependencies for the scheduler, injected by Fx
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Reminders usecase.ReminderUsecase
	Sessions  usecase.SessionTracker
}

type tickerServer struct {
	interval  time.Duration
	reminders usecase.ReminderUsecase
	sessions  usecase.SessionTracker
	now       func() time.Time
	logger    *slog.Logger

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewServer creates the reminder ticker; it runs until the fx lifecycle stops
func NewServer(params ServerParams) delivery.Delivery {
	interval := defaultScanInterval
	if params.Config.Reminder != nil && params.Config.Reminder.ScanInterval > 0 {
		interval = params.Config.Reminder.ScanInterval
	}

	srv := newTickerServer(interval, params.Reminders, params.Sessions, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func newTickerServer(interval time.Duration, reminders usecase.ReminderUsecase, sessions usecase.SessionTracker, logger *slog.Logger) *tickerServer {
	return &tickerServer{
		interval:  interval,
		reminders: reminders,
		sessions:  sessions,
		now:       time.Now,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Serve scans every interval until stopped or ctx is done
func (s *tickerServer) Serve(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("reminder scheduler already started")
	}
	defer close(s.doneCh)

	s.logger.Info("Starting reminder scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *tickerServer) tick(ctx context.Context) {
	now := s.now()
	sessions := s.sessions.Active(now)
	if len(sessions) == 0 {
		return
	}

	// Each tick gets its own ID so the events and logs it causes can be correlated.
	tickID := uuid.New().String()
	logger := s.logger.With(slog.String("tick_id", tickID))
	ctx = deliverycontext.WithRequestID(ctx, tickID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	presented, err := s.reminders.Tick(ctx, now, sessions)
	if err != nil {
		logger.Error("Reminder tick failed", slog.Any("error", err))
	}
	if presented > 0 {
		logger.Info("Reminders presented",
			slog.Int("count", presented),
			slog.Int("sessions", len(sessions)),
		)
	}
}

func (s *tickerServer) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if !s.started.Load() {
		return nil
	}

	s.logger.Info("Stopping reminder scheduler")

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
