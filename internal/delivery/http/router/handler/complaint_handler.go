package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ComplaintHandler holds dependencies for complaint-related handlers.
type ComplaintHandler struct {
	uc     usecase.ComplaintUsecase
	logger *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler, injected by Fx.
func NewComplaintHandler(uc usecase.ComplaintUsecase, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{uc: uc, logger: logger}
}

type submitComplaintRequest struct {
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// SubmitComplaint files a complaint for the authenticated account.
func (h *ComplaintHandler) SubmitComplaint(c echo.Context) error {
	partyID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req submitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.uc.SubmitComplaint(c.Request().Context(), &usecase.SubmitComplaintInput{
		PartyID:  partyID,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toComplaintView(complaint), "Complaint submitted successfully")
}

// ListComplaints returns every complaint, newest first.
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.uc.ListComplaints(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toComplaintViews(complaints), "")
}

// ResolveComplaint marks a pending complaint resolved.
func (h *ComplaintHandler) ResolveComplaint(c echo.Context) error {
	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid complaint ID")
	}

	complaint, err := h.uc.ResolveComplaint(c.Request().Context(), complaintID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toComplaintView(complaint), "Complaint resolved successfully")
}

// DeleteComplaint removes a complaint permanently.
func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid complaint ID")
	}

	if err := h.uc.DeleteComplaint(c.Request().Context(), complaintID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
