package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tastetrack/internal/response"
	"tastetrack/internal/service"
)

// SalesHandler handles the current-sale staging and sales history endpoints.
type SalesHandler struct {
	saleService service.SaleService
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(saleService service.SaleService) *SalesHandler {
	return &SalesHandler{saleService: saleService}
}

// AddItemRequest represents an add-item-to-sale request.
type AddItemRequest struct {
	ItemID   int `json:"itemId" validate:"required"`
	Quantity int `json:"quantity"`
}

// AddItem godoc
// @Summary Add an item to the current sale
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddItemRequest true "Item and quantity"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sales/add-item [post]
func (h *SalesHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request data", err.Error()))
	}

	if err := h.saleService.AddItem(c.Request().Context(), terminalID(c), req.ItemID, req.Quantity); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Item added to sale successfully"))
}

// RemoveItem godoc
// @Summary Remove an item from the current sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sales/remove-item/{itemId} [delete]
func (h *SalesHandler) RemoveItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid item id"))
	}

	if err := h.saleService.RemoveItem(c.Request().Context(), terminalID(c), itemID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(nil, "Item removed from sale successfully"))
}

// Complete godoc
// @Summary Complete the current sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sales/complete [post]
func (h *SalesHandler) Complete(c echo.Context) error {
	orderID, err := h.saleService.Checkout(c.Request().Context(), terminalID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(map[string]int{"orderId": orderID}, "Sale completed successfully"))
}

// Current godoc
// @Summary List the current sale's staged lines
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /sales/current [get]
func (h *SalesHandler) Current(c echo.Context) error {
	lines, err := h.saleService.ListCurrent(c.Request().Context(), terminalID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(lines, "Current sale items retrieved successfully"))
}

// ListSales godoc
// @Summary List completed sales, newest first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /sales [get]
func (h *SalesHandler) ListSales(c echo.Context) error {
	sales, err := h.saleService.ListSales(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(sales, "Sales retrieved successfully"))
}

// GetSale godoc
// @Summary Fetch one completed sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sales/{orderId} [get]
func (h *SalesHandler) GetSale(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid order id"))
	}

	sale, err := h.saleService.GetSale(c.Request().Context(), orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(sale, "Sale retrieved successfully"))
}

// GetSaleItems godoc
// @Summary Fetch the lines of one completed sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Router /sales/{orderId}/items [get]
func (h *SalesHandler) GetSaleItems(c echo.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid order id"))
	}

	lines, err := h.saleService.GetSaleLines(c.Request().Context(), orderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(lines, "Sale items retrieved successfully"))
}
