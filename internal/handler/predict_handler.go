package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/service"
	"cropadvisor/internal/web"
)

// PredictHandler serves the prediction form and runs predictions.
type PredictHandler struct {
	predictionService service.PredictionService
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(predictionService service.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// featureForm mirrors the original field names of the prediction form.
type featureForm struct {
	Nitrogen    string `form:"N" validate:"required"`
	Phosphorus  string `form:"P" validate:"required"`
	Potassium   string `form:"K" validate:"required"`
	Temperature string `form:"temperature" validate:"required"`
	Humidity    string `form:"humidity" validate:"required"`
	PH          string `form:"ph" validate:"required"`
	Rainfall    string `form:"rainfall" validate:"required"`
}

// PredictForm renders the empty prediction form.
func (h *PredictHandler) PredictForm(c echo.Context) error {
	return c.Render(http.StatusOK, "predict.html", echo.Map{
		"Flash": web.PopFlash(c),
	})
}

// Predict validates the seven measurements and renders the predicted crop.
// Failures redirect back to the form with a flash message.
func (h *PredictHandler) Predict(c echo.Context) error {
	var form featureForm
	if err := c.Bind(&form); err != nil {
		web.SetFlash(c, "danger", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/predict")
	}
	if err := c.Validate(&form); err != nil {
		web.SetFlash(c, "danger", apperrors.UserMessage(apperrors.ErrInvalidInput))
		return c.Redirect(http.StatusSeeOther, "/predict")
	}

	label, err := h.predictionService.Predict(c.Request().Context(), service.FeatureInput{
		Nitrogen:    form.Nitrogen,
		Phosphorus:  form.Phosphorus,
		Potassium:   form.Potassium,
		Temperature: form.Temperature,
		Humidity:    form.Humidity,
		PH:          form.PH,
		Rainfall:    form.Rainfall,
	})
	if err != nil {
		web.SetFlash(c, "danger", apperrors.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/predict")
	}

	return c.Render(http.StatusOK, "predict.html", echo.Map{
		"Flash":      web.PopFlash(c),
		"Prediction": label,
	})
}
