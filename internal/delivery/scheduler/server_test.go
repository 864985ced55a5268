package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/domain/entity"
	"medreminder/internal/errors"
	mockUsecase "medreminder/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTickerServer_TicksActiveSessionsUntilStopped(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	sessions := mockUsecase.NewMockSessionTracker(t)
	now := time.Date(2024, time.May, 6, 8, 0, 0, 0, time.UTC)
	active := []entity.Session{{CustomerID: uuid.New(), Username: "ada", ExpiresAt: now.Add(time.Hour)}}

	ticked := make(chan struct{}, 1)
	sessions.EXPECT().Active(now).Return(active)
	reminders.EXPECT().
		Tick(mock.Anything, now, active).
		Run(func(context.Context, time.Time, []entity.Session) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return(1, nil)

	srv := newTickerServer(5*time.Millisecond, reminders, sessions, discardLogger())
	srv.now = func() time.Time { return now }

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("scheduler never ticked")
	}

	require.NoError(t, srv.stop(context.Background()))
	assert.NoError(t, <-served)
}

func TestTickerServer_SkipsTickWithoutSessions(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	sessions := mockUsecase.NewMockSessionTracker(t)
	sessions.EXPECT().Active(mock.Anything).Return(nil)

	srv := newTickerServer(time.Hour, reminders, sessions, discardLogger())
	srv.tick(context.Background())

	reminders.AssertNotCalled(t, "Tick", mock.Anything, mock.Anything, mock.Anything)
}

func TestTickerServer_TickErrorIsLogged(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	sessions := mockUsecase.NewMockSessionTracker(t)
	active := []entity.Session{{CustomerID: uuid.New()}}
	sessions.EXPECT().Active(mock.Anything).Return(active)
	reminders.EXPECT().Tick(mock.Anything, mock.Anything, active).Return(0, errors.New("present failed")).Once()

	srv := newTickerServer(time.Hour, reminders, sessions, discardLogger())

	assert.NotPanics(t, func() { srv.tick(context.Background()) })
}

func TestTickerServer_TickContextCarriesTickID(t *testing.T) {
	reminders := mockUsecase.NewMockReminderUsecase(t)
	sessions := mockUsecase.NewMockSessionTracker(t)
	active := []entity.Session{{CustomerID: uuid.New()}}
	sessions.EXPECT().Active(mock.Anything).Return(active)

	var tickIDs []string
	reminders.EXPECT().Tick(mock.Anything, mock.Anything, active).
		Run(func(ctx context.Context, _ time.Time, _ []entity.Session) {
			tickIDs = append(tickIDs, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
		}).
		Return(0, nil).Twice()

	srv := newTickerServer(time.Hour, reminders, sessions, discardLogger())
	srv.tick(context.Background())
	srv.tick(context.Background())

	require.Len(t, tickIDs, 2)
	assert.NotEmpty(t, tickIDs[0])
	assert.NotEqual(t, tickIDs[0], tickIDs[1])
}

func TestTickerServer_StopBeforeServe(t *testing.T) {
	srv := newTickerServer(time.Hour, mockUsecase.NewMockReminderUsecase(t), mockUsecase.NewMockSessionTracker(t), discardLogger())

	require.NoError(t, srv.stop(context.Background()))
	require.NoError(t, srv.stop(context.Background()))
}

func TestTickerServer_ServeReturnsOnContextDone(t *testing.T) {
	srv := newTickerServer(time.Hour, mockUsecase.NewMockReminderUsecase(t), mockUsecase.NewMockSessionTracker(t), discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.Serve(ctx))
	assert.Error(t, srv.Serve(context.Background()), "second start")
}
