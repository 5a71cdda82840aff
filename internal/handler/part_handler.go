package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/aftab6363/Spare-Parts-Depot/internal/auth"
	"github.com/aftab6363/Spare-Parts-Depot/internal/errors"
	"github.com/aftab6363/Spare-Parts-Depot/internal/repository"
	"github.com/aftab6363/Spare-Parts-Depot/internal/service"
)

// PartHandler handles catalog endpoints.
type PartHandler struct {
	partService service.PartService
}

// NewPartHandler creates a new part handler.
func NewPartHandler(partService service.PartService) *PartHandler {
	return &PartHandler{partService: partService}
}

// CreatePartRequest represents a new catalog part.
type CreatePartRequest struct {
	Name         string          `json:"name" validate:"required"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category" validate:"required"`
	ModelNumber  string          `json:"modelNumber" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"countInStock" validate:"min=0"`
	Image        string          `json:"image"`
}

// UpdatePartRequest is a partial part update; absent fields are left
// unchanged, present zero values are applied.
type UpdatePartRequest struct {
	Name         *string          `json:"name"`
	Brand        *string          `json:"brand"`
	Category     *string          `json:"category"`
	ModelNumber  *string          `json:"modelNumber"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CountInStock *int             `json:"countInStock"`
	Image        *string          `json:"image"`
}

// List godoc
// @Summary List catalog parts
// @Tags parts
// @Produce json
// @Param keyword query string false "Case-insensitive model number match"
// @Param category query string false "Exact category, All for no filter"
// @Param sort query string false "low | high | default newest"
// @Success 200 {array} model.Part
// @Failure 500 {object} errors.ErrorResponse
// @Router /parts [get]
func (h *PartHandler) List(c echo.Context) error {
	filter := repository.PartFilter{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	}

	parts, err := h.partService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, parts)
}

// Get godoc
// @Summary Get a part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 200 {object} model.Part
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /parts/{id} [get]
func (h *PartHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid part ID")
	}

	part, err := h.partService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, part)
}

// Create godoc
// @Summary Create a part
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePartRequest true "Part data"
// @Success 201 {object} model.Part
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /parts [post]
func (h *PartHandler) Create(c echo.Context) error {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CreatePartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price cannot be negative")
	}

	part, err := h.partService.Create(c.Request().Context(), ident.UserID, service.CreatePartInput{
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		ModelNumber:  req.ModelNumber,
		Description:  req.Description,
		Price:        req.Price,
		CountInStock: req.CountInStock,
		Image:        req.Image,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, part)
}

// Update godoc
// @Summary Update a part
// @Tags parts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Part ID"
// @Param request body UpdatePartRequest true "Fields to update"
// @Success 200 {object} model.Part
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /parts/{id} [put]
func (h *PartHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid part ID")
	}

	var req UpdatePartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Price != nil && req.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price cannot be negative")
	}
	if req.CountInStock != nil && *req.CountInStock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "countInStock cannot be negative")
	}

	part, err := h.partService.Update(c.Request().Context(), id, service.UpdatePartInput{
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		ModelNumber:  req.ModelNumber,
		Description:  req.Description,
		Price:        req.Price,
		CountInStock: req.CountInStock,
		Image:        req.Image,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, part)
}

// Delete godoc
// @Summary Delete a part
// @Tags parts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Part ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /parts/{id} [delete]
func (h *PartHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid part ID")
	}

	if err := h.partService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Part removed"})
}
