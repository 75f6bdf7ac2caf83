package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
	"github.com/stpnv0/RentalShop/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const (
	ownerID  = "11111111-1111-1111-1111-111111111111"
	renterID = "22222222-2222-2222-2222-222222222222"
	itemID   = "33333333-3333-3333-3333-333333333333"
	rentalID = "44444444-4444-4444-4444-444444444444"
)

var fixedNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func camera() *domain.Item {
	return &domain.Item{
		ID:          itemID,
		OwnerID:     ownerID,
		Name:        "Camera",
		DailyRate:   decimal.NewFromInt(25),
		IsAvailable: true,
	}
}

type rentalDeps struct {
	rentalRepo *mocks.MockRentalRepo
	itemRepo   *mocks.MockItemRepo
	userRepo   *mocks.MockUserRepo
	notifier   *mocks.MockRentalNotifier
}

func newRentalService(t *testing.T) (*RentalService, rentalDeps) {
	deps := rentalDeps{
		rentalRepo: mocks.NewMockRentalRepo(t),
		itemRepo:   mocks.NewMockItemRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockRentalNotifier(t),
	}
	svc := NewRentalService(deps.rentalRepo, deps.itemRepo, deps.userRepo, deps.notifier, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

// bookAgainst makes CreateChecked behave like the repository: run the builder
// against item, then reject if the result overlaps any of existing.
func bookAgainst(item *domain.Item, existing ...*domain.Rental) func(context.Context, string, ports.RentalBuilder) (*domain.Rental, error) {
	return func(_ context.Context, _ string, build ports.RentalBuilder) (*domain.Rental, error) {
		r, err := build(item)
		if err != nil {
			return nil, err
		}
		for _, e := range existing {
			if e.Status.Active() && e.Range().Overlaps(r.Range()) {
				return nil, domain.ErrDateRangeConflict
			}
		}
		return r, nil
	}
}

func TestRentalService_Create_Success(t *testing.T) {
	svc, deps := newRentalService(t)
	owner := &domain.User{ID: ownerID, Username: "owner"}

	deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).RunAndReturn(bookAgainst(camera()))
	deps.userRepo.EXPECT().GetByID(mock.Anything, ownerID).Return(owner, nil)
	deps.notifier.EXPECT().NotifyRentalRequested(mock.Anything, owner, mock.Anything).Return()

	rental, err := svc.Create(context.Background(), domain.CreateRentalInput{
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, rental.ID)
	assert.Equal(t, domain.RentalStatusPending, rental.Status)
	assert.Equal(t, 4, rental.TotalDays)
	assert.Equal(t, "100.00", rental.TotalAmount.StringFixed(2))
	assert.Equal(t, ownerID, rental.OwnerID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_Create_AdjacentRangesSucceed(t *testing.T) {
	svc, deps := newRentalService(t)
	existing := &domain.Rental{
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
		Status:    domain.RentalStatusConfirmed,
	}

	deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).RunAndReturn(bookAgainst(camera(), existing))
	deps.userRepo.EXPECT().GetByID(mock.Anything, ownerID).Return(&domain.User{ID: ownerID}, nil)
	deps.notifier.EXPECT().NotifyRentalRequested(mock.Anything, mock.Anything, mock.Anything).Return()

	rental, err := svc.Create(context.Background(), domain.CreateRentalInput{
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: day("2024-06-05"),
		EndDate:   day("2024-06-08"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, rental.TotalDays)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_Create_OverlapConflict(t *testing.T) {
	svc, deps := newRentalService(t)
	existing := &domain.Rental{
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
		Status:    domain.RentalStatusPending,
	}

	deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).RunAndReturn(bookAgainst(camera(), existing))

	_, err := svc.Create(context.Background(), domain.CreateRentalInput{
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: day("2024-06-04"),
		EndDate:   day("2024-06-06"),
	})

	assert.ErrorIs(t, err, domain.ErrDateRangeConflict)
}

func TestRentalService_Create_CancelledRentalFreesDates(t *testing.T) {
	svc, deps := newRentalService(t)
	existing := &domain.Rental{
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
		Status:    domain.RentalStatusCancelled,
	}

	deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).RunAndReturn(bookAgainst(camera(), existing))
	deps.userRepo.EXPECT().GetByID(mock.Anything, ownerID).Return(&domain.User{ID: ownerID}, nil)
	deps.notifier.EXPECT().NotifyRentalRequested(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Create(context.Background(), domain.CreateRentalInput{
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_Create_Rejections(t *testing.T) {
	unavailable := camera()
	unavailable.IsAvailable = false

	tests := []struct {
		name  string
		item  *domain.Item
		input domain.CreateRentalInput
		error error
	}{
		{
			name:  "self rental",
			item:  camera(),
			input: domain.CreateRentalInput{ItemID: itemID, RenterID: ownerID, StartDate: day("2024-06-01"), EndDate: day("2024-06-03")},
			error: domain.ErrSelfRentalForbidden,
		},
		{
			name:  "start equals end",
			item:  camera(),
			input: domain.CreateRentalInput{ItemID: itemID, RenterID: renterID, StartDate: day("2024-06-01"), EndDate: day("2024-06-01")},
			error: domain.ErrInvalidDateRange,
		},
		{
			name:  "start in past",
			item:  camera(),
			input: domain.CreateRentalInput{ItemID: itemID, RenterID: renterID, StartDate: day("2024-05-19"), EndDate: day("2024-05-22")},
			error: domain.ErrDateInPast,
		},
		{
			name:  "item unavailable",
			item:  unavailable,
			input: domain.CreateRentalInput{ItemID: itemID, RenterID: renterID, StartDate: day("2024-06-01"), EndDate: day("2024-06-03")},
			error: domain.ErrItemUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newRentalService(t)
			deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).RunAndReturn(bookAgainst(tt.item))

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.error)
		})
	}
}

func TestRentalService_Create_ItemNotFound(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.rentalRepo.EXPECT().CreateChecked(mock.Anything, itemID, mock.Anything).Return(nil, domain.ErrItemNotFound)

	_, err := svc.Create(context.Background(), domain.CreateRentalInput{
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-02"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalService_Create_InvalidInput(t *testing.T) {
	svc, _ := newRentalService(t)

	_, err := svc.Create(context.Background(), domain.CreateRentalInput{ItemID: "not-a-uuid", RenterID: renterID})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRentalService_CheckAvailability(t *testing.T) {
	svc, deps := newRentalService(t)
	rng := domain.NewDateRange(day("2024-06-01"), day("2024-06-05"))

	deps.itemRepo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)
	deps.rentalRepo.EXPECT().HasOverlap(mock.Anything, itemID, rng).Return(true, nil)

	ok, err := svc.CheckAvailability(context.Background(), itemID, rng.Start, rng.End)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRentalService_CheckAvailability_InvalidRange(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.itemRepo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)

	_, err := svc.CheckAvailability(context.Background(), itemID, day("2024-06-05"), day("2024-06-05"))

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRentalService_CheckAvailability_ItemNotFound(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.itemRepo.EXPECT().GetByID(mock.Anything, itemID).Return(nil, domain.ErrItemNotFound)

	_, err := svc.CheckAvailability(context.Background(), itemID, day("2024-06-01"), day("2024-06-02"))

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func pendingRental() *domain.Rental {
	return &domain.Rental{
		ID:        rentalID,
		ItemID:    itemID,
		OwnerID:   ownerID,
		RenterID:  renterID,
		StartDate: day("2024-06-01"),
		EndDate:   day("2024-06-05"),
		Status:    domain.RentalStatusPending,
	}
}

func mutateLocked(r *domain.Rental) func(context.Context, string, ports.RentalMutator) (*domain.Rental, error) {
	return func(_ context.Context, _ string, mutate ports.RentalMutator) (*domain.Rental, error) {
		if err := mutate(r); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func TestRentalService_SetStatus_Confirm(t *testing.T) {
	svc, deps := newRentalService(t)
	renter := &domain.User{ID: renterID}

	deps.rentalRepo.EXPECT().UpdateStatus(mock.Anything, rentalID, mock.Anything).RunAndReturn(mutateLocked(pendingRental()))
	deps.userRepo.EXPECT().GetByID(mock.Anything, renterID).Return(renter, nil)
	deps.notifier.EXPECT().NotifyRentalStatusChanged(mock.Anything, renter, mock.Anything).Return()

	rental, err := svc.SetStatus(context.Background(), domain.SetRentalStatusInput{
		RentalID: rentalID,
		ActorID:  ownerID,
		Status:   domain.RentalStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusConfirmed, rental.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_SetStatus_SameStatusDoesNotNotify(t *testing.T) {
	svc, deps := newRentalService(t)
	r := pendingRental()
	r.Status = domain.RentalStatusConfirmed

	deps.rentalRepo.EXPECT().UpdateStatus(mock.Anything, rentalID, mock.Anything).RunAndReturn(mutateLocked(r))

	rental, err := svc.SetStatus(context.Background(), domain.SetRentalStatusInput{
		RentalID: rentalID,
		ActorID:  ownerID,
		Status:   domain.RentalStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusConfirmed, rental.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRentalService_SetStatus_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status domain.RentalStatus
		actor  string
		from   domain.RentalStatus
		error  error
	}{
		{"renter cannot set status", domain.RentalStatusCancelled, renterID, domain.RentalStatusPending, domain.ErrUnauthorized},
		{"pending is not settable", domain.RentalStatusPending, ownerID, domain.RentalStatusConfirmed, domain.ErrInvalidStatus},
		{"empty status", "", ownerID, domain.RentalStatusPending, domain.ErrInvalidStatus},
		{"unknown status", "archived", ownerID, domain.RentalStatusPending, domain.ErrInvalidStatus},
		{"completed is final", domain.RentalStatusCancelled, ownerID, domain.RentalStatusCompleted, domain.ErrInvalidRentalState},
		{"cancelled is final", domain.RentalStatusConfirmed, ownerID, domain.RentalStatusCancelled, domain.ErrInvalidRentalState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newRentalService(t)
			r := pendingRental()
			r.Status = tt.from

			deps.rentalRepo.EXPECT().UpdateStatus(mock.Anything, rentalID, mock.Anything).RunAndReturn(mutateLocked(r))

			_, err := svc.SetStatus(context.Background(), domain.SetRentalStatusInput{
				RentalID: rentalID,
				ActorID:  tt.actor,
				Status:   tt.status,
			})

			assert.ErrorIs(t, err, tt.error)
			assert.Equal(t, tt.from, r.Status)
		})
	}
}

func TestRentalService_SetStatus_NotFound(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.rentalRepo.EXPECT().UpdateStatus(mock.Anything, rentalID, mock.Anything).Return(nil, domain.ErrRentalNotFound)

	_, err := svc.SetStatus(context.Background(), domain.SetRentalStatusInput{
		RentalID: rentalID,
		ActorID:  ownerID,
		Status:   domain.RentalStatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalService_Get(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.rentalRepo.EXPECT().GetByID(mock.Anything, rentalID).Return(pendingRental(), nil)

	rental, err := svc.Get(context.Background(), rentalID, renterID)
	require.NoError(t, err)
	assert.Equal(t, rentalID, rental.ID)

	_, err = svc.Get(context.Background(), rentalID, "55555555-5555-5555-5555-555555555555")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRentalService_List(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.rentalRepo.EXPECT().ListByOwner(mock.Anything, ownerID).Return([]*domain.Rental{pendingRental()}, nil)
	deps.rentalRepo.EXPECT().ListByRenter(mock.Anything, renterID).Return(nil, nil)

	owned, err := svc.List(context.Background(), ownerID, domain.RentalRoleOwner)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	rented, err := svc.List(context.Background(), renterID, "")
	require.NoError(t, err)
	assert.Empty(t, rented)

	_, err = svc.List(context.Background(), renterID, "landlord")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRentalService_CancelStale(t *testing.T) {
	svc, deps := newRentalService(t)
	stale := pendingRental()
	stale.Status = domain.RentalStatusCancelled
	renter := &domain.User{ID: renterID}

	deps.rentalRepo.EXPECT().CancelStale(mock.Anything, day("2024-05-20")).Return([]*domain.Rental{stale}, nil)
	deps.userRepo.EXPECT().GetByID(mock.Anything, renterID).Return(renter, nil)
	deps.notifier.EXPECT().NotifyRentalStatusChanged(mock.Anything, renter, stale).Return()

	cancelled, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRentalService_CompleteFinished(t *testing.T) {
	svc, deps := newRentalService(t)

	deps.rentalRepo.EXPECT().CompleteFinished(mock.Anything, day("2024-05-20")).Return(nil, nil)

	completed, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestRentalService_CompleteFinished_Error(t *testing.T) {
	svc, deps := newRentalService(t)
	dbErr := errors.New("db error")

	deps.rentalRepo.EXPECT().CompleteFinished(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := svc.CompleteFinished(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
