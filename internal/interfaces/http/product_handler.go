package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/usecase"
	"github.com/jhoicas/stock-manager/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	err errorResponder
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, errs errorResponder) *ProductHandler {
	return &ProductHandler{uc: uc, err: errs}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías disponibles
// @Tags         products
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// Alerts godoc
// @Summary      Productos en alerta o ruptura, del más crítico al menos crítico
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/alerts [get]
func (h *ProductHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext())
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// AlertSummary godoc
// @Summary      Conteo de alertas por severidad
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.AlertSummaryResponse
// @Router       /api/products/alerts/summary [get]
func (h *ProductHandler) AlertSummary(c *fiber.Ctx) error {
	out, err := h.uc.AlertSummary(c.UserContext())
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.err.write(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return h.err.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar producto
// @Description  Si quantity cambia se registra un movimiento de ajuste (Entrée o Sortie).
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Registro completo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.err.write(c, err)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return h.err.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto y sus movimientos
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.err.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.err.write(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func productID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, domain.Invalid("id debe ser un entero")
	}
	if id <= 0 {
		return 0, domain.ErrNotFound
	}
	return int64(id), nil
}
