package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	userService service.UserService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// ProfileResponse is the authenticated user's profile.
type ProfileResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	Gender        string    `json:"gender"`
	ActivityLevel string    `json:"activity_level"`
	GoalWeight    *float64  `json:"goal_weight"`
	BMR           float64   `json:"bmr"`
	DailyCalories float64   `json:"daily_calories"`
	ProfilePhoto  *string   `json:"profile_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Age:           user.Age,
		Weight:        user.Weight,
		Height:        user.Height,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		GoalWeight:    user.GoalWeight,
		BMR:           user.BMR,
		DailyCalories: user.DailyGoal(),
		ProfilePhoto:  user.ProfilePhoto,
		CreatedAt:     user.CreatedAt,
	})
}

// UploadProfilePhoto godoc
// @Summary Upload a profile photo
// @Description The image is resized to 200x200 and stored as base64 PNG.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload-profile-photo [post]
func (h *ProfileHandler) UploadProfilePhoto(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	data, _, err := readUpload(c, "file")
	if err != nil {
		return err
	}

	if err := h.userService.UploadProfilePhoto(c.Request().Context(), user.ID, data); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "profile photo updated successfully",
	})
}
