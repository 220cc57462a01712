package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/vision"
)

// AnalysisHandler handles food photo analysis.
type AnalysisHandler struct {
	analyzer vision.Analyzer
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzer vision.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// AnalysisResponse wraps a nutrition estimate.
type AnalysisResponse struct {
	Success  bool            `json:"success"`
	Analysis vision.Estimate `json:"analysis"`
}

// AnalyzeFood godoc
// @Summary Estimate calories and macros from a food photo
// @Description Always succeeds once a file is uploaded; degraded analyses carry a sentinel estimate.
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Food photo"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /analyze-food [post]
func (h *AnalysisHandler) AnalyzeFood(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	data, mimeType, err := readUpload(c, "file")
	if err != nil {
		return err
	}

	result := h.analyzer.Analyze(c.Request().Context(), data, mimeType)
	c.Response().Header().Set("X-Analysis-Outcome", string(result.Outcome))

	return c.JSON(http.StatusOK, AnalysisResponse{
		Success:  true,
		Analysis: result.Estimate,
	})
}
