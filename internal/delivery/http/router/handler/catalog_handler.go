package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListResources returns the catalog ordered by name.
func (h *CatalogHandler) ListResources(c echo.Context) error {
	resources, err := h.uc.ListResources(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResourceViews(resources), "")
}

type addResourceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// AddResource stores a new catalog entry.
func (h *CatalogHandler) AddResource(c echo.Context) error {
	var req addResourceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resource input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Price must be a decimal number")
	}

	resource, err := h.uc.AddResource(c.Request().Context(), &usecase.AddResourceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    entity.ResourceCategory(req.Category),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toResourceView(resource), "Resource added successfully")
}
