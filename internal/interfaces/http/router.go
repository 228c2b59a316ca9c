package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DatasetUC      *usecase.DatasetUseCase
	SummaryUC      *usecase.SummaryUseCase
	BonusUC        *usecase.BonusUseCase
	ReportUC       *usecase.ReportUseCase
	ProductGroupUC *usecase.ProductGroupUseCase
	ArticleUC      *usecase.ArticleUseCase
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dataset de la sesión (carga del export CSV)
	datasetHandler := NewDatasetHandler(deps.DatasetUC, deps.Log)
	api.Post("/dataset", datasetHandler.Upload)
	api.Delete("/dataset", datasetHandler.Clear)
	api.Get("/customers", datasetHandler.ListCustomers)

	// Análisis por cliente
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	api.Get("/customers/:id/summary", summaryHandler.GetSummary)

	bonusHandler := NewBonusHandler(deps.BonusUC)
	api.Post("/customers/:id/bonus", bonusHandler.Calculate)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	api.Get("/customers/:id/report", reportHandler.Export)

	// Administración de tablas de referencia
	groups := api.Group("/product-groups")
	groupHandler := NewProductGroupHandler(deps.ProductGroupUC)
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Post("/import", groupHandler.Import)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)

	articles := api.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Post("/import", articleHandler.Import)
	articles.Get("/:number", articleHandler.GetByNumber)
	articles.Put("/:number", articleHandler.Update)
	articles.Delete("/:number", articleHandler.Delete)
}
