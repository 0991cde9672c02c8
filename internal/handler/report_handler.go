package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tastetrack/internal/response"
	"tastetrack/internal/service"
)

const dateLayout = "2006-01-02"

// ReportHandler handles the admin reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseOptionalDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseRequiredRange(c echo.Context) (time.Time, time.Time, bool) {
	start, err1 := time.Parse(dateLayout, c.QueryParam("startDate"))
	end, err2 := time.Parse(dateLayout, c.QueryParam("endDate"))
	return start, end, err1 == nil && err2 == nil
}

// DailyItemWise godoc
// @Summary Item-wise sales totals over a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /reports/daily-itemwise [get]
func (h *ReportHandler) DailyItemWise(c echo.Context) error {
	start, err := parseOptionalDate(c, "startDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid start date"))
	}
	end, err := parseOptionalDate(c, "endDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid end date"))
	}

	rows, err := h.reportService.ItemWiseReport(c.Request().Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(rows, "Daily item-wise report retrieved successfully"))
}

// DailyOrderWise godoc
// @Summary Order-wise sales over a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /reports/daily-orderwise [get]
func (h *ReportHandler) DailyOrderWise(c echo.Context) error {
	start, err := parseOptionalDate(c, "startDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid start date"))
	}
	end, err := parseOptionalDate(c, "endDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid end date"))
	}

	sales, err := h.reportService.OrderWiseReport(c.Request().Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(sales, "Daily order-wise report retrieved successfully"))
}

// Sales godoc
// @Summary Line-level sales detail over a required date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c echo.Context) error {
	start, end, ok := parseRequiredRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Fail("start date and end date are required"))
	}

	lines, err := h.reportService.SalesReport(c.Request().Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(lines, "Sales report retrieved successfully"))
}

// SalesComparison godoc
// @Summary Per-day totals and order counts over a required date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /reports/sales-comparison [get]
func (h *ReportHandler) SalesComparison(c echo.Context) error {
	start, end, ok := parseRequiredRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Fail("start date and end date are required"))
	}

	rows, err := h.reportService.SalesComparisonReport(c.Request().Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(rows, "Sales comparison report retrieved successfully"))
}

// DashboardSummary godoc
// @Summary Today's and this month's sales at a glance
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /reports/dashboard-summary [get]
func (h *ReportHandler) DashboardSummary(c echo.Context) error {
	summary, err := h.reportService.DashboardSummary(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(summary, "Dashboard summary retrieved successfully"))
}
