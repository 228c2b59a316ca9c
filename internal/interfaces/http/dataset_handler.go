package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// DatasetHandler maneja la carga del export CSV y el listado de clientes.
type DatasetHandler struct {
	uc  *usecase.DatasetUseCase
	log *logger.Logger
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *usecase.DatasetUseCase, log *logger.Logger) *DatasetHandler {
	return &DatasetHandler{uc: uc, log: log}
}

// Upload godoc
// @Summary      Cargar export CSV de pedidos
// @Description  Reemplaza por completo el dataset de la sesión con las filas del archivo subido (multipart, campo "file", delimitador ";")
// @Tags         dataset
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Export CSV del ERP"
// @Success      200  {object}  dto.UploadDatasetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dataset [post]
func (h *DatasetHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FILE", Message: "se requiere el archivo CSV en el campo 'file'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FILE", Message: "no se pudo abrir el archivo subido",
		})
	}
	defer file.Close()

	rows, err := csvimport.ParseOrderRows(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CSV", Message: err.Error(),
		})
	}

	res := h.uc.Replace(rows, fileHeader.Filename)
	h.log.Info().
		Str("batch_id", res.BatchID).
		Str("file", res.FileName).
		Int("rows", res.RowCount).
		Int("customers", res.CustomerCount).
		Msg("dataset de pedidos cargado")

	return c.JSON(res)
}

// Clear godoc
// @Summary      Descartar el dataset de la sesión
// @Tags         dataset
// @Success      204  "sin contenido"
// @Router       /api/dataset [delete]
func (h *DatasetHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCustomers godoc
// @Summary      Clientes distintos del dataset, ascendentes
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *DatasetHandler) ListCustomers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Customers())
}
