package handler

import (
	"net/http"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreatePayment(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), domain.CreatePaymentInput{
		RentalID: req.RentalID,
		ActorID:  actor,
		Method:   domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
