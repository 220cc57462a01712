package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/service"
)

// LedgerHandler handles food and activity logging.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// AddFoodRequest represents a food diary entry. Numeric fields must be present
// but any value, zero or negative included, is accepted. Quantity defaults to 1.
type AddFoodRequest struct {
	Name     string   `json:"name" validate:"required"`
	Calories *float64 `json:"calories" validate:"required"`
	Proteins *float64 `json:"proteins" validate:"required"`
	Carbs    *float64 `json:"carbs" validate:"required"`
	Fats     *float64 `json:"fats" validate:"required"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// AddActivityRequest represents an activity entry.
type AddActivityRequest struct {
	Name            string   `json:"name" validate:"required"`
	DurationMinutes *int     `json:"duration_minutes" validate:"required"`
	CaloriesBurned  *float64 `json:"calories_burned" validate:"required"`
}

// CreatedResponse carries the id of a newly appended entry.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// AddFood godoc
// @Summary Log a food item for today
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFoodRequest true "Food entry"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add-food [post]
func (h *LedgerHandler) AddFood(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.ledgerService.AddFood(c.Request().Context(), user.ID, service.FoodInput{
		Name:     req.Name,
		Calories: *req.Calories,
		Proteins: *req.Proteins,
		Carbs:    *req.Carbs,
		Fats:     *req.Fats,
		Quantity: req.Quantity,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{Message: "food added successfully", ID: id})
}

// AddActivity godoc
// @Summary Log a physical activity for today
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddActivityRequest true "Activity entry"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add-activity [post]
func (h *LedgerHandler) AddActivity(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.ledgerService.AddActivity(c.Request().Context(), user.ID, service.ActivityInput{
		Name:            req.Name,
		DurationMinutes: *req.DurationMinutes,
		CaloriesBurned:  *req.CaloriesBurned,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{Message: "activity added successfully", ID: id})
}
