package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tastetrack/internal/auth"
	"tastetrack/internal/handler"
	"tastetrack/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	itemHandler *handler.ItemHandler,
	salesHandler *handler.SalesHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", authHandler.Login)

	// Everything else requires a valid session token.
	secured := api.Group("", auth.JWTMiddleware(jwtService))

	anyStaff := auth.RequireRoles(model.RoleUser, model.RoleAdmin)
	adminOnly := auth.RequireRoles(model.RoleAdmin)

	secured.POST("/login/refresh", authHandler.Refresh)
	secured.GET("/login/validate/:userid", authHandler.ValidateUser, anyStaff)

	// Menu catalog: reads for all staff, writes for admins.
	secured.GET("/items", itemHandler.ListItems, anyStaff)
	secured.GET("/items/daily", itemHandler.ListDailyItems, anyStaff)
	secured.POST("/items/daily/:itemId", itemHandler.AddDailyItem, anyStaff)
	secured.PUT("/items/daily/:id/status", itemHandler.UpdateDailyItemStatus, adminOnly)
	secured.GET("/items/:id", itemHandler.GetItem, anyStaff)
	secured.POST("/items", itemHandler.CreateItem, adminOnly)
	secured.PUT("/items/:id", itemHandler.UpdateItem, adminOnly)
	secured.DELETE("/items/:id", itemHandler.DeleteItem, adminOnly)

	// Current sale staging for cashiers; history for admins.
	secured.POST("/sales/add-item", salesHandler.AddItem, anyStaff)
	secured.DELETE("/sales/remove-item/:itemId", salesHandler.RemoveItem, anyStaff)
	secured.POST("/sales/complete", salesHandler.Complete, anyStaff)
	secured.GET("/sales/current", salesHandler.Current, anyStaff)
	secured.GET("/sales", salesHandler.ListSales, adminOnly)
	secured.GET("/sales/:orderId", salesHandler.GetSale, adminOnly)
	secured.GET("/sales/:orderId/items", salesHandler.GetSaleItems, adminOnly)

	// Reports and staff management are admin surfaces.
	secured.GET("/reports/daily-itemwise", reportHandler.DailyItemWise, adminOnly)
	secured.GET("/reports/daily-orderwise", reportHandler.DailyOrderWise, adminOnly)
	secured.GET("/reports/sales", reportHandler.Sales, adminOnly)
	secured.GET("/reports/sales-comparison", reportHandler.SalesComparison, adminOnly)
	secured.GET("/reports/dashboard-summary", reportHandler.DashboardSummary, adminOnly)

	secured.GET("/users", userHandler.ListUsers, adminOnly)
	secured.POST("/users", userHandler.CreateUser, adminOnly)
	secured.PUT("/users/:userid", userHandler.UpdateUser, adminOnly)
	secured.DELETE("/users/:userid", userHandler.DeleteUser, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
