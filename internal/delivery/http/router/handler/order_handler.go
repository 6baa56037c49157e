package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc        usecase.OrderUsecase
	accountUc usecase.AccountUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, accountUc usecase.AccountUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, accountUc: accountUc, logger: logger}
}

type placeOrderRequest struct {
	ResourceIDs []string `json:"resourceIds" validate:"required,min=1,dive,uuid"`
}

// PlaceOrder checks out the authenticated vendor's cart. Only resource IDs
// are taken from the request; names and prices come from the live catalog.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	vendorID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resourceIDs := make([]uuid.UUID, 0, len(req.ResourceIDs))
	for _, raw := range req.ResourceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "Invalid resource ID: "+raw)
		}
		resourceIDs = append(resourceIDs, id)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		VendorID:    vendorID,
		ResourceIDs: resourceIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// ListOrders returns orders filtered by exactly one of ?status= or ?vendorId=,
// newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{}

	if status := c.QueryParam("status"); status != "" {
		input.Status = entity.OrderStatus(status)
	}
	if rawVendorID := c.QueryParam("vendorId"); rawVendorID != "" {
		vendorID, err := uuid.Parse(rawVendorID)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "Invalid vendor ID")
		}
		input.VendorID = vendorID
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

type transitionOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// TransitionOrder approves or rejects a pending order, recording who acted.
func (h *OrderHandler) TransitionOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid order ID")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req transitionOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// The acting account's display name is recorded on the order.
	actor, err := h.accountUc.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.TransitionOrder(c.Request().Context(), &usecase.TransitionOrderInput{
		OrderID:   orderID,
		Target:    entity.OrderStatus(req.Status),
		ActorName: actor.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order updated successfully")
}
