package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"calorietracker/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfilePhoto(ctx context.Context, id, photo string) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

// MockFoodEntryRepository is a mock implementation of FoodEntryRepository.
type MockFoodEntryRepository struct {
	mock.Mock
}

func (m *MockFoodEntryRepository) Create(ctx context.Context, entry *model.FoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) ListByDate(ctx context.Context, userID, date string) ([]model.FoodEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.FoodEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodEntry), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, entry *model.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByDate(ctx context.Context, userID, date string) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

func (m *MockActivityRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
