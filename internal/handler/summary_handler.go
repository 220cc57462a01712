package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/service"
)

// SummaryHandler serves daily and weekly calorie balances.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// DailySummary godoc
// @Summary Get the calorie balance for one day
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {object} model.DailySummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /daily-summary [get]
func (h *SummaryHandler) DailySummary(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.summaryService.DailySummary(c.Request().Context(), user, c.QueryParam("date"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// WeeklySummary godoc
// @Summary Get per-day totals for the last seven days
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WeeklySummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /weekly-summary [get]
func (h *SummaryHandler) WeeklySummary(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.summaryService.WeeklySummary(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
