package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "storeapi/internal/errors"
	appmw "storeapi/internal/middleware"
	"storeapi/internal/model"
	"storeapi/internal/service"
)

const productHandlerOrigin = "ProductHandler"

// ProductHandler handles product CRUD endpoints.
type ProductHandler struct {
	svc  service.ProductService
	logs service.ErrorLogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService, logs service.ErrorLogService) *ProductHandler {
	return &ProductHandler{svc: svc, logs: logs}
}

// ProductRequest represents a product create/update payload. Name is
// optional and schema-checked only when present; the price minimum is
// enforced by the entity constructor, not here.
type ProductRequest struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name" validate:"omitempty,min=3,max=255"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (r *ProductRequest) name() string {
	if r.Name == nil || *r.Name == "" {
		return model.DefaultProductName
	}
	return *r.Name
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context())
	if err != nil {
		h.logError(c, err)
		return c.JSON(http.StatusInternalServerError, apperrors.Internal())
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.NotFoundResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := h.productID(c)
	if !ok {
		return nil
	}

	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.NotFoundResponse{ID: id, Message: "Product not found"})
		}
		h.logError(c, fmt.Errorf("get product %d: %w", id, err))
		return c.JSON(http.StatusInternalServerError, apperrors.Internal())
	}
	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product payload"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 406 {object} errors.FieldErrors
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusNotAcceptable, fieldErrors(err))
	}

	product, err := h.svc.Create(c.Request().Context(), req.name(), req.Price, req.Image)
	if err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: vErr.Reason})
		case errors.Is(err, service.ErrInvalidImage):
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrDuplicateProduct):
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{Message: err.Error()})
		default:
			h.logError(c, err)
			return c.JSON(http.StatusInternalServerError, apperrors.Internal())
		}
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/products/%d", product.ID))
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Replace product
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product payload"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 406 {object} errors.FieldErrors
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := h.productID(c)
	if !ok {
		return nil
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if req.ID != id {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "route id does not match body id"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusNotAcceptable, fieldErrors(err))
	}

	if err := h.svc.Update(c.Request().Context(), id, req.name(), req.Price, req.Image); err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Message: "Product not found"})
		case errors.As(err, &vErr):
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: vErr.Reason})
		case errors.Is(err, service.ErrInvalidImage):
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrUpdateConflict):
			// Lost race against a concurrent writer; let the trap log it.
			return err
		default:
			h.logError(c, fmt.Errorf("update product %d: %w", id, err))
			return c.JSON(http.StatusInternalServerError, apperrors.Internal())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := h.productID(c)
	if !ok {
		return nil
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Message: "Product not found"})
		}
		h.logError(c, fmt.Errorf("delete product %d: %w", id, err))
		return c.JSON(http.StatusInternalServerError, apperrors.Internal())
	}
	return c.NoContent(http.StatusNoContent)
}

// productID parses the id path parameter, answering 400 itself on garbage.
func (h *ProductHandler) productID(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		_ = c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

func (h *ProductHandler) logError(c echo.Context, err error) {
	req := c.Request()
	h.logs.Log(req.Context(), err, req.URL.Path, req.Method, appmw.CapturedBody(c), productHandlerOrigin)
}

// fieldErrors flattens validator violations into a field→message map.
func fieldErrors(err error) apperrors.FieldErrors {
	out := apperrors.FieldErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		return out
	}
	out["request"] = err.Error()
	return out
}
