package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tastetrack/internal/model"
	"tastetrack/internal/response"
	"tastetrack/internal/service"
)

// ItemHandler handles menu catalog and daily menu endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemRequest represents a create/update menu item payload.
type ItemRequest struct {
	ItemID    int             `json:"itemId"`
	ItemName  string          `json:"itemName" validate:"required,max=100"`
	ItemPrice decimal.Decimal `json:"itemPrice"`
}

// StatusRequest flips a daily menu entry's status.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available soldout"`
}

// ListItems godoc
// @Summary List the menu catalog
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemService.ListItems(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(items, "Items retrieved successfully"))
}

// GetItem godoc
// @Summary Fetch one menu item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item id"))
	}

	item, err := h.itemService.GetItem(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(item, "Item retrieved successfully"))
}

// CreateItem godoc
// @Summary Add a menu item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ItemRequest true "Item payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item data"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item data", err.Error()))
	}
	if req.ItemPrice.LessThanOrEqual(decimal.Zero) {
		return c.JSON(http.StatusBadRequest, response.Fail("item price must be greater than 0"))
	}

	item := &model.MenuItem{ItemName: req.ItemName, ItemPrice: req.ItemPrice}
	if _, err := h.itemService.CreateItem(c.Request().Context(), item); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(item, "Item created successfully"))
}

// UpdateItem godoc
// @Summary Update a menu item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item id"))
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item data"))
	}
	if req.ItemID != 0 && req.ItemID != id {
		return c.JSON(http.StatusBadRequest, response.Fail("item id mismatch"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item data", err.Error()))
	}
	if req.ItemPrice.LessThanOrEqual(decimal.Zero) {
		return c.JSON(http.StatusBadRequest, response.Fail("item price must be greater than 0"))
	}

	item := &model.MenuItem{ItemID: id, ItemName: req.ItemName, ItemPrice: req.ItemPrice}
	if err := h.itemService.UpdateItem(c.Request().Context(), item); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Item updated successfully"))
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item id"))
	}

	if err := h.itemService.DeleteItem(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Item deleted successfully"))
}

// ListDailyItems godoc
// @Summary List today's menu
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /items/daily [get]
func (h *ItemHandler) ListDailyItems(c echo.Context) error {
	entries, err := h.itemService.ListDailyItems(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(entries, "Daily items retrieved successfully"))
}

// AddDailyItem godoc
// @Summary Put a catalog item on today's menu
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/daily/{itemId} [post]
func (h *ItemHandler) AddDailyItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item id"))
	}

	if err := h.itemService.AddDailyItem(c.Request().Context(), itemID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Item added to daily menu"))
}

// UpdateDailyItemStatus godoc
// @Summary Update a daily menu entry's status
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Daily item ID"
// @Param request body StatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /items/daily/{id}/status [put]
func (h *ItemHandler) UpdateDailyItemStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid daily item id"))
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data", err.Error()))
	}

	if err := h.itemService.UpdateDailyItemStatus(c.Request().Context(), id, req.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Daily item status updated"))
}
