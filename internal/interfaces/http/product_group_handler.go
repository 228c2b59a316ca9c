package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/csvimport"
)

// ProductGroupHandler administra la tabla de referencia de varugrupper.
type ProductGroupHandler struct {
	uc *usecase.ProductGroupUseCase
}

// NewProductGroupHandler construye el handler.
func NewProductGroupHandler(uc *usecase.ProductGroupUseCase) *ProductGroupHandler {
	return &ProductGroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo de artículos
// @Tags         product-groups
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateProductGroupRequest  true  "Grupo a crear"
// @Success      201  {object}  dto.ProductGroupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product-groups [post]
func (h *ProductGroupHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	group, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetByID godoc
// @Summary      Obtener grupo por código
// @Tags         product-groups
// @Produce      json
// @Param        id  path  string  true  "Código del grupo"
// @Success      200  {object}  dto.ProductGroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-groups/{id} [get]
func (h *ProductGroupHandler) GetByID(c *fiber.Ctx) error {
	group, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "grupo no encontrado",
		})
	}
	return c.JSON(group)
}

// List godoc
// @Summary      Listar grupos de artículos
// @Tags         product-groups
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ProductGroupListResponse
// @Router       /api/product-groups [get]
func (h *ProductGroupHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos",
		})
	}

	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Modificar grupo (parcial)
// @Tags         product-groups
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "Código del grupo"
// @Param        request  body  dto.UpdateProductGroupRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.ProductGroupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-groups/{id} [put]
func (h *ProductGroupHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	group, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(group)
}

// Delete godoc
// @Summary      Eliminar grupo por código
// @Tags         product-groups
// @Param        id  path  string  true  "Código del grupo"
// @Success      204  "sin contenido"
// @Router       /api/product-groups/{id} [delete]
func (h *ProductGroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar grupos desde CSV de referencia
// @Description  Upsert fila a fila; las filas con error se reportan con su número de línea sin abortar el resto
// @Tags         product-groups
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de grupos (id;nombre;descripción)"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/product-groups/import [post]
func (h *ProductGroupHandler) Import(c *fiber.Ctx) error {
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

	groups, err := csvimport.ParseProductGroups(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CSV", Message: err.Error(),
		})
	}

	return c.JSON(h.uc.Import(c.UserContext(), groups))
}
