package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Age           int      `json:"age" validate:"required,gt=0"`
	Weight        float64  `json:"weight" validate:"required,gt=0"`
	Height        float64  `json:"height" validate:"required,gt=0"`
	Gender        string   `json:"gender" validate:"required"`
	ActivityLevel string   `json:"activity_level" validate:"required"`
	GoalWeight    *float64 `json:"goal_weight,omitempty"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the user view returned alongside a token.
type UserSummary struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	DailyCalories float64 `json:"daily_calories"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

func newAuthResponse(message, token string, user *model.User) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   token,
		User: UserSummary{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.Name,
			DailyCalories: user.DailyGoal(),
		},
	}
}

// Register godoc
// @Summary Register a new user
// @Description Computes BMR and the daily calorie target from the submitted profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		GoalWeight:    req.GoalWeight,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, newAuthResponse("user registered successfully", token, user))
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, newAuthResponse("logged in successfully", token, user))
}

// Logout godoc
// @Summary Revoke the current access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing bearer token",
			Code:  "UNAUTHORIZED",
		})
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
