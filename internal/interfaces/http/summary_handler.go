package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
)

// SummaryHandler expone el resumen analítico por cliente.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de ventas de un cliente
// @Description  Con view=public devuelve la proyección apta para cliente, sin costos ni márgenes; por defecto la vista interna completa
// @Tags         analytics
// @Produce      json
// @Param        id    path   int     true   "Número de cliente"
// @Param        view  query  string  false  "public o internal"  Enums(public, internal)
// @Success      200  {object}  analytics.CustomerSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	}

	if c.Query("view", "internal") == "public" {
		summary, err := h.uc.GetPublicSummary(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(summary)
	}

	summary, err := h.uc.GetSummary(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
