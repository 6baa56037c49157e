// Package router wires the marketplace API routes to their handlers.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	ComplaintHandler *handler.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	complaintHandler *handler.ComplaintHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		paymentHandler:   params.PaymentHandler,
		complaintHandler: params.ComplaintHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/users", r.accountHandler.Register)
	e.POST("/sessions", r.accountHandler.Login)

	auth := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin.String())
	supplierOrAdmin := r.authMiddleware.RequireRole(entity.RoleSupplier.String(), entity.RoleAdmin.String())
	vendorOnly := r.authMiddleware.RequireRole(entity.RoleStreetVendor.String())

	e.GET("/users/me", r.accountHandler.Profile, auth)

	// Catalog: everyone logged in can browse, only admins extend it
	e.GET("/resources", r.catalogHandler.ListResources, auth)
	e.POST("/resources", r.catalogHandler.AddResource, auth, adminOnly)

	// Orders: vendors place, suppliers and admins decide
	e.POST("/orders", r.orderHandler.PlaceOrder, auth, vendorOnly)
	e.GET("/orders", r.orderHandler.ListOrders, auth)
	e.PATCH("/orders/:id", r.orderHandler.TransitionOrder, auth, supplierOrAdmin)

	// Payments: settlement is a supplier/admin concern, receipts are not
	e.GET("/payments", r.paymentHandler.ListPayments, auth, supplierOrAdmin)
	e.PATCH("/payments/:id", r.paymentHandler.TransitionPayment, auth, supplierOrAdmin)
	e.GET("/payments/:id/receipt", r.paymentHandler.PaymentReceipt, auth)
	e.POST("/payments/receipt/verify", r.paymentHandler.VerifyReceipt, auth, supplierOrAdmin)

	// Complaints: anyone files, admins triage
	e.POST("/complaints", r.complaintHandler.SubmitComplaint, auth)
	e.GET("/complaints", r.complaintHandler.ListComplaints, auth, adminOnly)
	e.PATCH("/complaints/:id/resolve", r.complaintHandler.ResolveComplaint, auth, adminOnly)
	e.DELETE("/complaints/:id", r.complaintHandler.DeleteComplaint, auth, adminOnly)
}
