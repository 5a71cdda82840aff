package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/aftab6363/Spare-Parts-Depot/internal/config"
	"github.com/aftab6363/Spare-Parts-Depot/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	partHandler *handler.PartHandler,
	orderHandler *handler.OrderHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/parts", partHandler.List)
	api.GET("/parts/:id", partHandler.Get)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), AttachIdentity)

	// Catalog mutation routes
	secured.POST("/parts", partHandler.Create, RequireAdmin)
	secured.PUT("/parts/:id", partHandler.Update, RequireAdmin)
	secured.DELETE("/parts/:id", partHandler.Delete, RequireAdmin)

	// Order routes
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders", orderHandler.ListAll, RequireAdmin)
	secured.GET("/orders/myorders", orderHandler.ListMine)
	secured.GET("/orders/:id", orderHandler.Get)
	secured.PUT("/orders/:id/pay", orderHandler.MarkPaid)
	secured.PUT("/orders/:id/deliver", orderHandler.MarkDelivered, RequireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
