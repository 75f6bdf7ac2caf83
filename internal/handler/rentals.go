package handler

import (
	"net/http"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRental(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rental, err := h.rentalService.Create(c.Request.Context(), domain.CreateRentalInput{
		ItemID:    req.ItemID,
		RenterID:  actor,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRentalResponse(rental))
}

// ListRentals returns the actor's rentals; ?role=owner lists rentals of the
// actor's items instead.
func (h *Handler) ListRentals(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	rentals, err := h.rentalService.List(c.Request.Context(), actor, domain.RentalRole(c.Query("role")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponses(rentals))
}

func (h *Handler) GetRental(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "rental")
	if !ok {
		return
	}

	rental, err := h.rentalService.Get(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

func (h *Handler) UpdateRentalStatus(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "rental")
	if !ok {
		return
	}

	var req dto.UpdateRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rental, err := h.rentalService.SetStatus(c.Request.Context(), domain.SetRentalStatusInput{
		RentalID: id,
		ActorID:  actor,
		Status:   domain.RentalStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}
