package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/domain"
)

// MovementHandler maneja el historial y el registro de movimientos.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
	err      errorResponder
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase, errs errorResponder) *MovementHandler {
	return &MovementHandler{register: register, query: query, err: errs}
}

// List godoc
// @Summary      Historial de movimientos (fecha desc, id desc)
// @Tags         movements
// @Produce      json
// @Param        product_id    query  int     false  "ID de producto"
// @Param        type          query  string  false  "Entrée | Sortie | Tous"
// @Param        date_from     query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        date_to       query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        product_name  query  string  false  "Nombre exacto del producto"
// @Param        limit         query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.MovementResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	q, err := movementQuery(c)
	if err != nil {
		return h.err.write(c, err)
	}
	out, err := h.query.List(c.UserContext(), q)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, type, quantity, date, comment"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return h.err.write(c, err)
	}
	out, err := h.register.Register(c.UserContext(), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func movementQuery(c *fiber.Ctx) (dto.MovementQuery, error) {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return q, domain.Invalid("parámetros de consulta inválidos")
	}
	return q, nil
}
