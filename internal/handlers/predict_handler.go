package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/services"
)

type PredictHandler struct {
	collector services.FormCollector
	predictor services.Predictor
}

func NewPredictHandler(
	collector services.FormCollector,
	predictor services.Predictor,
) *PredictHandler {
	return &PredictHandler{
		collector: collector,
		predictor: predictor,
	}
}

// HandlePredict handles POST /predict
func (h *PredictHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	raw, err := h.collector.Collect(&req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	prediction, err := h.predictor.Predict(raw)
	if err != nil {
		log.Printf("❌ Prediction failed: %v\n", err)
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.PredictionResponse{
		ID:               uuid.New().String(),
		PredictionResult: prediction.Result,
		Features:         prediction.Encoded.Map(),
	})
}
