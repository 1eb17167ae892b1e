// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/delivery/http/router/handler"
	"staffhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	EmployeeHandler *handler.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	employeeHandler *handler.EmployeeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		employeeHandler: params.EmployeeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/verify-token", r.authHandler.VerifyToken)
	}

	// Owner login flow (phone OTP)
	ownerGroup := api.Group("/owner")
	{
		ownerGroup.POST("/generate-access-code", r.authHandler.GenerateOwnerCode)
		ownerGroup.POST("/validate-access-code", r.authHandler.ValidateOwnerCode)
	}

	// Employee login flows (email OTP and password)
	employeeGroup := api.Group("/employee")
	{
		employeeGroup.POST("/login-email", r.authHandler.GenerateEmployeeCode)
		employeeGroup.POST("/validate-access-code", r.authHandler.ValidateEmployeeCode)
		employeeGroup.POST("/login-password", r.authHandler.LoginWithPassword)
		employeeGroup.POST("/set-password", r.employeeHandler.SetPassword)
	}

	// Staff management, owner only
	staffGroup := api.Group("/owner/employees")
	staffGroup.Use(r.authMiddleware.Authenticate)
	staffGroup.Use(r.authMiddleware.RequireRole(entity.RoleOwner))
	{
		staffGroup.POST("/create", r.employeeHandler.Create)
		staffGroup.GET("/get-all", r.employeeHandler.List)
		staffGroup.GET("/get/:employeeId", r.employeeHandler.Get)
		staffGroup.PUT("/update/:employeeId", r.employeeHandler.Update)
		staffGroup.DELETE("/delete/:employeeId", r.employeeHandler.Delete)
	}

	// Employee self-service; lives under the staff prefix but gates on
	// the employee role, not the owner group middleware.
	api.GET("/owner/employees/me", r.employeeHandler.GetSelf,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleEmployee))
}
