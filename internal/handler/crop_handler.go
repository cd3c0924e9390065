package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/internal/service"
	"cropadvisor/internal/web"
)

// CropHandler serves the crop knowledge base.
type CropHandler struct {
	cropService service.CropService
}

// NewCropHandler creates a new crop handler.
func NewCropHandler(cropService service.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

// ListCrops renders the full crop catalogue with resolved images.
func (h *CropHandler) ListCrops(c echo.Context) error {
	return c.Render(http.StatusOK, "crops.html", echo.Map{
		"Flash": web.PopFlash(c),
		"Crops": h.cropService.ListCrops(),
	})
}
