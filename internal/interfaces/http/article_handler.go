package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/csvimport"
)

// ArticleHandler administra la tabla de referencia de artículos.
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateArticleRequest  true  "Artículo a crear"
// @Success      201  {object}  dto.ArticleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	article, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// GetByNumber godoc
// @Summary      Obtener artículo por número
// @Tags         articles
// @Produce      json
// @Param        number  path  string  true  "Número de artículo"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{number} [get]
func (h *ArticleHandler) GetByNumber(c *fiber.Ctx) error {
	article, err := h.uc.GetByNumber(c.UserContext(), c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	if article == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "artículo no encontrado",
		})
	}
	return c.JSON(article)
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
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
// @Summary      Modificar artículo (parcial)
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        number   path  string                    true  "Número de artículo"
// @Param        request  body  dto.UpdateArticleRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{number} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	article, err := h.uc.Update(c.UserContext(), c.Params("number"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(article)
}

// Delete godoc
// @Summary      Eliminar artículo por número
// @Tags         articles
// @Param        number  path  string  true  "Número de artículo"
// @Success      204  "sin contenido"
// @Router       /api/articles/{number} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("number")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar artículos desde CSV de referencia
// @Tags         articles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV de artículos (número;grupo;texto;cuenta proveedor)"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/articles/import [post]
func (h *ArticleHandler) Import(c *fiber.Ctx) error {
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

	articles, err := csvimport.ParseArticles(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CSV", Message: err.Error(),
		})
	}

	return c.JSON(h.uc.Import(c.UserContext(), articles))
}
