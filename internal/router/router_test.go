package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/handler"
	"calorietracker/internal/model"
	"calorietracker/internal/service"
)

// stubAuthService resolves a fixed set of tokens.
type stubAuthService struct {
	service.AuthService
	users map[string]*model.User
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	switch token {
	case "db-down":
		return nil, fmt.Errorf("load user: %w", errors.New("connection refused"))
	}
	if user, ok := s.users[token]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("%w: bad token", apperrors.ErrUnauthorized)
}

func newTestServer() *echo.Echo {
	e := echo.New()
	auth := &stubAuthService{users: map[string]*model.User{
		"good-token": {ID: "u-1", Email: "ana@example.com", Name: "Ana", DailyCalories: 1800},
	}}
	Register(e, Handlers{
		Auth:     handler.NewAuthHandler(auth),
		Profile:  handler.NewProfileHandler(nil),
		Ledger:   handler.NewLedgerHandler(nil),
		Summary:  handler.NewSummaryHandler(nil),
		Analysis: handler.NewAnalysisHandler(nil),
	}, auth)
	return e
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSecuredRoutes(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedErr  string
	}{
		{"missing header", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"storage failure", "Bearer db-down", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"valid token", "Bearer good-token", http.StatusOK, ""},
	}

	e := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, body["code"])
			} else {
				assert.Equal(t, "u-1", body["id"])
				assert.Equal(t, 1800.0, body["daily_calories"])
			}
		})
	}
}

func TestValidator(t *testing.T) {
	v := &CustomValidator{validator: newValidator()}

	assert.NoError(t, v.Validate(&handler.LoginRequest{Email: "a@b.co", Password: "x"}))
	assert.Error(t, v.Validate(&handler.LoginRequest{Email: "not-an-email", Password: "x"}))
	assert.Error(t, v.Validate(&handler.AddFoodRequest{}))
}
