package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// ListPayments returns payments in the requested status, newest first.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Query parameter 'status' is required")
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), entity.PaymentStatus(status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentViews(payments), "")
}

type transitionPaymentRequest struct {
	Status string `json:"status" validate:"required"`
}

// TransitionPayment settles or rejects a pending payment.
func (h *PaymentHandler) TransitionPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid payment ID")
	}

	var req transitionPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.TransitionPayment(c.Request().Context(), paymentID, entity.PaymentStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Payment updated successfully")
}

// PaymentReceipt renders a scannable QR receipt for the payment as PNG.
func (h *PaymentHandler) PaymentReceipt(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid payment ID")
	}

	png, err := h.uc.PaymentReceipt(c.Request().Context(), paymentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type verifyReceiptRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// VerifyReceipt resolves a scanned receipt payload back to its payment.
func (h *PaymentHandler) VerifyReceipt(c echo.Context) error {
	var req verifyReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.uc.VerifyReceipt(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Receipt verified successfully")
}
