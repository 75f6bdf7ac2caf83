package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/handler/dto"
	"github.com/stpnv0/RentalShop/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ItemSvc interface {
	Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
	Update(ctx context.Context, input domain.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, itemID, actorID string) error
	Categories(ctx context.Context) ([]string, error)
}

type RentalSvc interface {
	Create(ctx context.Context, input domain.CreateRentalInput) (*domain.Rental, error)
	CheckAvailability(ctx context.Context, itemID string, start, end time.Time) (bool, error)
	SetStatus(ctx context.Context, input domain.SetRentalStatusInput) (*domain.Rental, error)
	Get(ctx context.Context, rentalID, actorID string) (*domain.Rental, error)
	List(ctx context.Context, actorID string, role domain.RentalRole) ([]*domain.Rental, error)
}

type PaymentSvc interface {
	Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, paymentID, actorID string) (*domain.Payment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type DashboardSvc interface {
	Stats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}

type Handler struct {
	itemService      ItemSvc
	rentalService    RentalSvc
	paymentService   PaymentSvc
	userService      UserSvc
	dashboardService DashboardSvc
}

func NewHandler(
	itemService ItemSvc,
	rentalService RentalSvc,
	paymentService PaymentSvc,
	userService UserSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		itemService:      itemService,
		rentalService:    rentalService,
		paymentService:   paymentService,
		userService:      userService,
		dashboardService: dashboardService,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// pathID reads a UUID path parameter, answering 400 if it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " id"})
		return "", false
	}
	return id, true
}

// actorID returns the identity set by middleware.Actor. Handlers behind that
// middleware always get one; the check covers misconfigured routes.
func actorID(c *ginext.Context) (string, bool) {
	id := middleware.ActorID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDateRangeConflict),
		errors.Is(err, domain.ErrPaymentAlreadyExists),
		errors.Is(err, domain.ErrInvalidRentalState),
		errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrDateInPast),
		errors.Is(err, domain.ErrSelfRentalForbidden),
		errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
