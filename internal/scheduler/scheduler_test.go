package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsBothSweeps(t *testing.T) {
	sweeper := mocks.NewMockRentalSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	cancelled := []*domain.Rental{
		{ID: "r1", ItemID: "i1", Status: domain.RentalStatusCancelled},
	}
	completed := []*domain.Rental{
		{ID: "r2", ItemID: "i2", Status: domain.RentalStatusCompleted},
	}
	sweeper.EXPECT().CancelStale(mock.Anything).Return(cancelled, nil)
	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 2)
}

func TestScheduler_Tick_ErrorDoesNotSkipOtherSweep(t *testing.T) {
	sweeper := mocks.NewMockRentalSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Hour, log)

	sweeper.EXPECT().CancelStale(mock.Anything).Return(nil, errors.New("db error")).Once()
	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockRentalSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockRentalSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, log)

	sweeper.EXPECT().CancelStale(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 4)
}
