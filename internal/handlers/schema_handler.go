package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/services"
)

type SchemaHandler struct {
	collector services.FormCollector
	predictor services.Predictor
}

func NewSchemaHandler(collector services.FormCollector, predictor services.Predictor) *SchemaHandler {
	return &SchemaHandler{
		collector: collector,
		predictor: predictor,
	}
}

// HandleGetSchema handles GET /schema
func (h *SchemaHandler) HandleGetSchema(c *fiber.Ctx) error {
	schema := h.predictor.Schema()

	return c.JSON(models.SchemaResponse{
		Fields:      h.collector.Fields(),
		Numeric:     schema.Numeric,
		Categorical: schema.Categorical,
		Columns:     schema.Columns,
		ModelKind:   h.predictor.ModelKind(),
	})
}
