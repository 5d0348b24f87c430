package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/services"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(
	template.New("form.html").
		Funcs(template.FuncMap{
			"num": func(v *float64) string {
				if v == nil {
					return ""
				}
				return strconv.FormatFloat(*v, 'f', -1, 64)
			},
		}).
		ParseFS(templateFS, "templates/form.html"),
)

type formPage struct {
	Fields []models.FormField
	Values map[string]string
	Result *models.PredictionResult
	Error  string
}

type FormHandler struct {
	collector services.FormCollector
	predictor services.Predictor
}

func NewFormHandler(collector services.FormCollector, predictor services.Predictor) *FormHandler {
	return &FormHandler{
		collector: collector,
		predictor: predictor,
	}
}

// HandleForm handles GET /
func (h *FormHandler) HandleForm(c *fiber.Ctx) error {
	values := map[string]string{}
	for _, f := range h.collector.Fields() {
		if len(f.Options) > 0 {
			values[f.Key] = f.Options[0]
		} else if f.Min != nil {
			values[f.Key] = strconv.FormatFloat(*f.Min, 'f', -1, 64)
		}
	}

	return h.render(c, fiber.StatusOK, formPage{
		Fields: h.collector.Fields(),
		Values: values,
	})
}

// HandleSubmit handles POST /predict from the HTML form
func (h *FormHandler) HandleSubmit(c *fiber.Ctx) error {
	page := formPage{
		Fields: h.collector.Fields(),
		Values: map[string]string{},
	}
	for _, f := range page.Fields {
		page.Values[f.Key] = c.FormValue(f.Key)
	}

	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		page.Error = "Invalid form submission"
		return h.render(c, fiber.StatusBadRequest, page)
	}

	raw, err := h.collector.Collect(&req)
	if err != nil {
		page.Error = err.Error()
		return h.render(c, statusFor(err), page)
	}

	prediction, err := h.predictor.Predict(raw)
	if err != nil {
		log.Printf("❌ Prediction failed: %v\n", err)
		page.Error = err.Error()
		return h.render(c, statusFor(err), page)
	}

	page.Result = &prediction.Result
	return h.render(c, fiber.StatusOK, page)
}

func (h *FormHandler) render(c *fiber.Ctx, status int, page formPage) error {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render form")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
