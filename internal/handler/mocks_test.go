package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"calorietracker/internal/model"
	"calorietracker/internal/service"
	"calorietracker/internal/vision"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (string, *model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) IssueToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UploadProfilePhoto(ctx context.Context, userID string, image []byte) error {
	args := m.Called(ctx, userID, image)
	return args.Error(0)
}

// MockLedgerService is a mock implementation of LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddFood(ctx context.Context, userID string, in service.FoodInput) (string, error) {
	args := m.Called(ctx, userID, in)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerService) AddActivity(ctx context.Context, userID string, in service.ActivityInput) (string, error) {
	args := m.Called(ctx, userID, in)
	return args.String(0), args.Error(1)
}

// MockSummaryService is a mock implementation of SummaryService.
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) DailySummary(ctx context.Context, user *model.User, date string) (*model.DailySummary, error) {
	args := m.Called(ctx, user, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailySummary), args.Error(1)
}

func (m *MockSummaryService) WeeklySummary(ctx context.Context, userID string) (*model.WeeklySummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeeklySummary), args.Error(1)
}

// MockAnalyzer is a mock implementation of vision.Analyzer.
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) vision.Result {
	args := m.Called(ctx, image, mimeType)
	return args.Get(0).(vision.Result)
}
