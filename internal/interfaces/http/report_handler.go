package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ReportHandler genera el PDF de análisis de cliente.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Export godoc
// @Summary      Exportar análisis de cliente en PDF
// @Description  variant=customer produce el documento apto para entregar al cliente; variant=internal incluye costos y márgenes
// @Tags         analytics
// @Produce      application/pdf
// @Param        id       path   int     true   "Número de cliente"
// @Param        variant  query  string  false  "customer o internal"  Enums(customer, internal)
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/report [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	}

	variant := c.Query("variant", usecase.ReportVariantCustomer)
	content, fileName, err := h.uc.Generate(c.UserContext(), id, variant)
	if err != nil {
		h.log.Error().Err(err).Int("customer_id", id).Str("variant", variant).Msg("error generando el PDF")
		return respondError(c, err)
	}

	h.log.Info().Int("customer_id", id).Str("variant", variant).Int("bytes", len(content)).Msg("PDF generado")

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(content)
}
