package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/services"
)

func newTestApp(t *testing.T, intercept float64) *fiber.App {
	t.Helper()

	schema := models.DefaultSchema()
	model, err := services.NewLogisticRegression(make([]float64, len(schema.Columns)), intercept, nil)
	require.NoError(t, err)

	predictor, err := services.NewPredictor(
		schema,
		services.NewEncoder(services.LoanEncodingTable()),
		services.NewReconciler(schema, false),
		&services.Artifacts{
			Model:  model,
			Scaler: &services.StandardScaler{Mean: make([]float64, 5), Scale: []float64{1, 1, 1, 1, 1}},
		},
	)
	require.NoError(t, err)

	collector := services.NewFormCollector(models.LoanFormFields())
	form := NewFormHandler(collector, predictor)
	predict := NewPredictHandler(collector, predictor)
	schemaHandler := NewSchemaHandler(collector, predictor)

	app := fiber.New()
	app.Get("/", form.HandleForm)
	app.Post("/predict", form.HandleSubmit)
	app.Get("/api/v1/schema", schemaHandler.HandleGetSchema)
	app.Post("/api/v1/predict", predict.HandlePredict)
	return app
}

const scenarioJSON = `{
	"gender": "Male",
	"married": "Yes",
	"education": "Graduate",
	"self_employed": "No",
	"applicant_income": 5000,
	"coapplicant_income": 0,
	"loan_amount": 120,
	"loan_amount_term": 360,
	"credit_history": 1.0,
	"property_area": "Urban"
}`

func postJSON(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandlePredict_Approved(t *testing.T) {
	status, body := postJSON(t, newTestApp(t, 1), scenarioJSON)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["approved"])
	assert.Equal(t, float64(1), body["label"])
	assert.Equal(t, "Loan Approved! Probability: 0.73", body["message"])
	assert.NotEmpty(t, body["id"])

	features, ok := body["features"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, features, 11)
	assert.Equal(t, float64(1), features["Property_Area_Urban"])
}

func TestHandlePredict_NotApproved(t *testing.T) {
	status, body := postJSON(t, newTestApp(t, -1), scenarioJSON)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["approved"])
	assert.Equal(t, "Loan Not Approved. Probability: 0.27", body["message"])
}

func TestHandlePredict_BadInput(t *testing.T) {
	app := newTestApp(t, 0)

	status, body := postJSON(t, app, `{"gender":"Male"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "missing required field")

	status, _ = postJSON(t, app, strings.Replace(scenarioJSON, `"Urban"`, `"Mars"`, 1))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, strings.Replace(scenarioJSON, `"applicant_income": 5000`, `"applicant_income": -5`, 1))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleGetSchema(t *testing.T) {
	resp, err := newTestApp(t, 0).Test(httptest.NewRequest("GET", "/api/v1/schema", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out models.SchemaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, models.DefaultSchema().Numeric, out.Numeric)
	assert.Equal(t, services.KindLogisticRegression, out.ModelKind)
	assert.Len(t, out.Fields, 10)
}

func TestHandleForm(t *testing.T) {
	resp, err := newTestApp(t, 0).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Loan Approval Prediction App")
	assert.Contains(t, string(body), `name="property_area"`)
	assert.Contains(t, string(body), `min="0"`)
}

func TestHandleSubmit(t *testing.T) {
	form := url.Values{
		"gender":             {"Female"},
		"married":            {"No"},
		"education":          {"Not Graduate"},
		"self_employed":      {"Yes"},
		"applicant_income":   {"3000"},
		"coapplicant_income": {"1500.5"},
		"loan_amount":        {"90"},
		"loan_amount_term":   {"180"},
		"credit_history":     {"0.0"},
		"property_area":      {"Rural"},
	}

	req := httptest.NewRequest("POST", "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := newTestApp(t, -1).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Loan Not Approved. Probability: 0.27")
	assert.Contains(t, string(body), `<option value="Rural" selected>`)
}

func TestHandleSubmit_InvalidChoice(t *testing.T) {
	form := url.Values{"gender": {"Unknown"}}
	req := httptest.NewRequest("POST", "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := newTestApp(t, 0).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSubmit_NonFiniteNumber(t *testing.T) {
	form := url.Values{
		"gender":             {"Male"},
		"married":            {"Yes"},
		"education":          {"Graduate"},
		"self_employed":      {"No"},
		"applicant_income":   {"NaN"},
		"coapplicant_income": {"0"},
		"loan_amount":        {"120"},
		"loan_amount_term":   {"360"},
		"credit_history":     {"1.0"},
		"property_area":      {"Urban"},
	}

	req := httptest.NewRequest("POST", "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := newTestApp(t, 1).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotContains(t, string(body), "Probability: NaN")
}

func TestHandlePredict_FractionalIncome(t *testing.T) {
	status, _ := postJSON(t, newTestApp(t, 1), strings.Replace(scenarioJSON, `"applicant_income": 5000`, `"applicant_income": 5000.5`, 1))
	assert.Equal(t, fiber.StatusBadRequest, status)
}
