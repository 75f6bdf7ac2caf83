package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateItem(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateItemInput{
		OwnerID:     actor,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		DailyRate:   req.DailyRate,
		Location:    req.Location,
	}

	item, err := h.itemService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) GetItem(c *ginext.Context) {
	id, ok := pathID(c, "item")
	if !ok {
		return
	}

	item, err := h.itemService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// ListItems supports ?category=, ?search= and ?owner_id= filters.
func (h *Handler) ListItems(c *ginext.Context) {
	filter := domain.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if owner := c.Query("owner_id"); owner != "" {
		parsed, err := uuid.Parse(owner)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner id"})
			return
		}
		filter.OwnerID = parsed.String()
	}

	items, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, dto.ToItemResponse(i))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateItem(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "item")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateItemInput{
		ItemID:      id,
		ActorID:     actor,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		DailyRate:   req.DailyRate,
		Location:    req.Location,
		IsAvailable: req.IsAvailable,
	}

	item, err := h.itemService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) DeleteItem(c *ginext.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "item")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id, actor); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ItemAvailability(c *ginext.Context) {
	id, ok := pathID(c, "item")
	if !ok {
		return
	}

	start, err := domain.ParseDate(c.Query("start"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := domain.ParseDate(c.Query("end"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	available, err := h.rentalService.CheckAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ItemID:    id,
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Available: available,
	})
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.itemService.Categories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
