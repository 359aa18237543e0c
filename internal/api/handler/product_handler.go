package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

// ProductHandler exposes the catalog CRUD endpoints.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name        string  `json:"nombre" validate:"required"`
	Category    string  `json:"categoria" validate:"required"`
	Price       float64 `json:"precio" validate:"required,gte=0"`
	Description string  `json:"descripcion"`
	Image       string  `json:"imagen"`
	Stock       int     `json:"stock" validate:"required,gte=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"nombre"`
	Category    *string  `json:"categoria"`
	Price       *float64 `json:"precio"`
	Description *string  `json:"descripcion"`
	Image       *string  `json:"imagen"`
	Stock       *int     `json:"stock"`
}

// Create adds a catalog entry.
//
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Datos del producto"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  messageResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	product, err := h.products.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error al crear el producto"})
	}

	return c.JSON(http.StatusCreated, product)
}

// List returns the full catalog.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error al obtener los productos"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Update applies a partial update to a catalog entry.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cuerpo de la petición no válido"})
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), ports.ProductUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID de producto no válido"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Producto no encontrado"})
		default:
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error al actualizar el producto"})
		}
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a catalog entry.
func (h *ProductHandler) Delete(c echo.Context) error {
	err := h.products.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID de producto no válido"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Producto no encontrado"})
		default:
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error al eliminar el producto"})
		}
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Producto eliminado con éxito"})
}
