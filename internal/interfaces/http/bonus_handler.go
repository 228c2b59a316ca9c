package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
)

// BonusHandler calcula el bonus anual de un cliente.
type BonusHandler struct {
	uc *usecase.BonusUseCase
}

// NewBonusHandler construye el handler.
func NewBonusHandler(uc *usecase.BonusUseCase) *BonusHandler {
	return &BonusHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular bonus según tarifa
// @Description  Tarifa "rak" aplica el porcentaje sobre el total facturado; "medAvdrag" descuenta primero el monto indicado
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        id       path  int               true  "Número de cliente"
// @Param        request  body  dto.BonusRequest  true  "Parámetros de la tarifa"
// @Success      200  {object}  analytics.BonusCalculation
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/bonus [post]
func (h *BonusHandler) Calculate(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	}

	var req dto.BonusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	result, err := h.uc.Calculate(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
