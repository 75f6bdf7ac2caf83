package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

const testMigrationsDir = "../../migrations"

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%d user=testuser password=testpass dbname=testdb sslmode=disable",
		host, port.Int(),
	)

	require.NoError(t, Migrate(dsn, testMigrationsDir))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Master.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	return db
}

func seedUser(t *testing.T, repo *UserRepository, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		FullName:  username,
		Email:     username + "@example.com",
		CreatedAt: testNow,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedItem(t *testing.T, repo *ItemRepository, ownerID, category string) *domain.Item {
	t.Helper()
	i := &domain.Item{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        "Drill " + category,
		Description: "cordless drill",
		Category:    category,
		DailyRate:   decimal.RequireFromString("15.50"),
		IsAvailable: true,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	require.NoError(t, repo.Create(context.Background(), i))
	return i
}

func book(rentals *RentalRepository, itemID, renterID, start, end string) (*domain.Rental, error) {
	s, _ := domain.ParseDate(start)
	e, _ := domain.ParseDate(end)
	in := domain.CreateRentalInput{ItemID: itemID, RenterID: renterID, StartDate: s, EndDate: e}

	return rentals.CreateChecked(context.Background(), itemID, func(item *domain.Item) (*domain.Rental, error) {
		return domain.NewRental(uuid.New().String(), item, in, testNow)
	})
}

func TestRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserRepo(db)
	items := NewItemRepo(db)
	rentals := NewRentalRepo(db)
	payments := NewPaymentRepo(db)
	dashboard := NewDashboardRepo(db)

	owner := seedUser(t, users, "owner")
	renter := seedUser(t, users, "renter")
	item := seedItem(t, items, owner.ID, "tools")
	seedItem(t, items, owner.ID, "garden")

	t.Run("duplicate username", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{
			ID:        uuid.New().String(),
			Username:  "owner",
			FullName:  "Other",
			Email:     "other@example.com",
			CreatedAt: testNow,
		})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("item list and categories", func(t *testing.T) {
		got, err := items.List(ctx, domain.ItemFilter{Category: "tools", Search: "DRILL"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "15.50", got[0].DailyRate.StringFixed(2))

		got, err = items.List(ctx, domain.ItemFilter{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, got)

		categories, err := items.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"garden", "tools"}, categories)
	})

	var first *domain.Rental

	t.Run("booking and adjacency", func(t *testing.T) {
		var err error
		first, err = book(rentals, item.ID, renter.ID, "2030-02-01", "2030-02-05")
		require.NoError(t, err)
		assert.Equal(t, "62.00", first.TotalAmount.StringFixed(2))

		_, err = book(rentals, item.ID, renter.ID, "2030-02-04", "2030-02-06")
		assert.ErrorIs(t, err, domain.ErrDateRangeConflict)

		_, err = book(rentals, item.ID, renter.ID, "2030-02-05", "2030-02-08")
		assert.NoError(t, err)

		overlap, err := rentals.HasOverlap(ctx, item.ID, domain.NewDateRange(first.StartDate, first.EndDate))
		require.NoError(t, err)
		assert.True(t, overlap)

		got, err := rentals.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, item.Name, got.ItemName)
		assert.True(t, first.StartDate.Equal(got.StartDate))
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := book(rentals, uuid.New().String(), renter.ID, "2030-02-01", "2030-02-05")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("payment confirms rental once", func(t *testing.T) {
		build := func(r *domain.Rental) (*domain.Payment, error) {
			p, err := domain.NewPayment(uuid.New().String(), r, renter.ID, domain.PaymentMethodCash, testNow)
			if err != nil {
				return nil, err
			}
			r.MarkPaid(testNow)
			return p, nil
		}

		p, r, err := payments.CreateForRental(ctx, first.ID, build)
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusConfirmed, r.Status)

		_, _, err = payments.CreateForRental(ctx, first.ID, build)
		assert.ErrorIs(t, err, domain.ErrPaymentAlreadyExists)

		got, err := payments.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, renter.ID, got.RenterID)

		stored, err := rentals.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusConfirmed, stored.Status)
	})

	t.Run("cancel frees the calendar", func(t *testing.T) {
		r, err := book(rentals, item.ID, renter.ID, "2030-03-01", "2030-03-03")
		require.NoError(t, err)

		_, err = rentals.UpdateStatus(ctx, r.ID, func(r *domain.Rental) error {
			return r.TransitionTo(owner.ID, domain.RentalStatusCancelled, testNow)
		})
		require.NoError(t, err)

		_, err = book(rentals, item.ID, renter.ID, "2030-03-01", "2030-03-03")
		assert.NoError(t, err)
	})

	t.Run("status update rolls back on error", func(t *testing.T) {
		_, err := rentals.UpdateStatus(ctx, first.ID, func(r *domain.Rental) error {
			return r.TransitionTo(renter.ID, domain.RentalStatusCancelled, testNow)
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = rentals.UpdateStatus(ctx, uuid.New().String(), func(*domain.Rental) error { return nil })
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})

	t.Run("sweeps", func(t *testing.T) {
		today, _ := domain.ParseDate("2030-02-06")

		cancelled, err := rentals.CancelStale(ctx, today)
		require.NoError(t, err)
		require.Len(t, cancelled, 1)
		assert.Equal(t, domain.RentalStatusCancelled, cancelled[0].Status)
		assert.Equal(t, owner.ID, cancelled[0].OwnerID)

		completed, err := rentals.CompleteFinished(ctx, today)
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, first.ID, completed[0].ID)
	})

	t.Run("listing and dashboard", func(t *testing.T) {
		asRenter, err := rentals.ListByRenter(ctx, renter.ID)
		require.NoError(t, err)
		assert.Len(t, asRenter, 4)

		asOwner, err := rentals.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, asOwner, 4)

		stats, err := dashboard.Stats(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.OwnedItemsCount)
		assert.Equal(t, 4, stats.RentalsAsOwnerCount)
		assert.Equal(t, "62.00", stats.TotalEarnings.StringFixed(2))
		assert.Equal(t, 1, stats.PendingRentalsAsOwner)

		stats, err = dashboard.Stats(ctx, renter.ID)
		require.NoError(t, err)
		assert.Equal(t, "62.00", stats.TotalSpending.StringFixed(2))
	})
}

func TestRentalRepository_ConcurrentOverlappingBookings(t *testing.T) {
	db := setupTestDB(t)

	users := NewUserRepo(db)
	items := NewItemRepo(db)
	rentals := NewRentalRepo(db)

	owner := seedUser(t, users, "owner")
	item := seedItem(t, items, owner.ID, "tools")

	const workers = 8
	renters := make([]*domain.User, workers)
	for i := range renters {
		renters[i] = seedUser(t, users, fmt.Sprintf("renter%d", i))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(renterID string) {
			defer wg.Done()
			_, err := book(rentals, item.ID, renterID, "2030-04-01", "2030-04-10")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrDateRangeConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(renters[i].ID)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}
