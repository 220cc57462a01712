package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
)

func newTestSummary(foods *MockFoodEntryRepository, activities *MockActivityRepository) *summaryService {
	svc := NewSummaryService(foods, activities).(*summaryService)
	svc.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestSummaryService_DailySummary_Empty(t *testing.T) {
	foods := new(MockFoodEntryRepository)
	activities := new(MockActivityRepository)
	foods.On("ListByDate", mock.Anything, "u-1", "2026-10-16").Return(nil, nil)
	activities.On("ListByDate", mock.Anything, "u-1", "2026-10-16").Return(nil, nil)

	user := &model.User{ID: "u-1", DailyCalories: 2008.5}
	summary, err := newTestSummary(foods, activities).DailySummary(context.Background(), user, "")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-16", summary.Date)
	assert.Zero(t, summary.CaloriesConsumed)
	assert.Zero(t, summary.NetCalories)
	assert.Equal(t, 2008.5, summary.DailyGoal)
	assert.Equal(t, 2008.5, summary.RemainingCalories)
	assert.NotNil(t, summary.Foods)
	assert.NotNil(t, summary.Activities)
	assert.Empty(t, summary.Foods)
}

func TestSummaryService_DailySummary_WeightsByQuantity(t *testing.T) {
	foods := new(MockFoodEntryRepository)
	activities := new(MockActivityRepository)
	foods.On("ListByDate", mock.Anything, "u-1", "2026-10-10").Return([]model.FoodEntry{
		{Name: "Rice", Calories: 200, Proteins: 4, Carbs: 44, Fats: 0.5, Quantity: 1.5},
		{Name: "Chicken", Calories: 165, Proteins: 31, Carbs: 0, Fats: 3.6, Quantity: 1},
		{Name: "Skipped", Calories: 500, Proteins: 10, Carbs: 10, Fats: 10, Quantity: 0},
	}, nil)
	activities.On("ListByDate", mock.Anything, "u-1", "2026-10-10").Return([]model.ActivityEntry{
		{Name: "Walk", DurationMinutes: 40, CaloriesBurned: 150},
	}, nil)

	summary, err := newTestSummary(foods, activities).DailySummary(context.Background(), &model.User{ID: "u-1"}, "2026-10-10")
	require.NoError(t, err)

	assert.Equal(t, 465.0, summary.CaloriesConsumed)
	assert.Equal(t, 150.0, summary.CaloriesBurned)
	assert.Equal(t, 315.0, summary.NetCalories)
	assert.Equal(t, model.DefaultDailyCalories, summary.DailyGoal)
	assert.Equal(t, model.DefaultDailyCalories-315, summary.RemainingCalories)
	assert.Equal(t, 37.0, summary.Macros.Proteins)
	assert.Equal(t, 66.0, summary.Macros.Carbs)
	assert.Equal(t, 4.35, summary.Macros.Fats)
	assert.Len(t, summary.Foods, 3)
}

func TestSummaryService_DailySummary_InvalidDate(t *testing.T) {
	foods := new(MockFoodEntryRepository)
	activities := new(MockActivityRepository)

	_, err := newTestSummary(foods, activities).DailySummary(context.Background(), &model.User{ID: "u-1"}, "16/10/2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	foods.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaryService_DailySummary_StorageFailure(t *testing.T) {
	foods := new(MockFoodEntryRepository)
	foods.On("ListByDate", mock.Anything, "u-1", "2026-10-16").Return(nil, errors.New("timeout"))

	_, err := newTestSummary(foods, new(MockActivityRepository)).DailySummary(context.Background(), &model.User{ID: "u-1"}, "")
	assert.Error(t, err)
}

func TestSummaryService_WeeklySummary(t *testing.T) {
	foods := new(MockFoodEntryRepository)
	activities := new(MockActivityRepository)
	foods.On("ListByDateRange", mock.Anything, "u-1", "2026-10-10", "2026-10-16").Return([]model.FoodEntry{
		{Date: "2026-10-10", Calories: 500, Quantity: 2},
		{Date: "2026-10-16", Calories: 300, Quantity: 1},
		{Date: "2026-10-16", Calories: 100, Quantity: 0.5},
	}, nil)
	activities.On("ListByDateRange", mock.Anything, "u-1", "2026-10-10", "2026-10-16").Return([]model.ActivityEntry{
		{Date: "2026-10-13", CaloriesBurned: 250},
	}, nil)

	summary, err := newTestSummary(foods, activities).WeeklySummary(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-10", summary.StartDate)
	assert.Equal(t, "2026-10-16", summary.EndDate)
	require.Len(t, summary.Days, 7)
	assert.Len(t, summary.DailyData, 7)

	expectedDates := []string{"2026-10-10", "2026-10-11", "2026-10-12", "2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16"}
	for i, day := range summary.Days {
		assert.Equal(t, expectedDates[i], day.Date)
		assert.Equal(t, day, summary.DailyData[day.Date])
	}

	assert.Equal(t, 1000.0, summary.Days[0].CaloriesConsumed)
	assert.Equal(t, -250.0, summary.Days[3].NetCalories)
	assert.Equal(t, 350.0, summary.Days[6].CaloriesConsumed)
	assert.Zero(t, summary.Days[1].CaloriesConsumed)
}
