package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

// weekDays is the length of the weekly window, today included.
const weekDays = 7

// SummaryService computes calorie balances from the ledger.
type SummaryService interface {
	// DailySummary defaults date to today (UTC) when empty.
	DailySummary(ctx context.Context, user *model.User, date string) (*model.DailySummary, error)
	WeeklySummary(ctx context.Context, userID string) (*model.WeeklySummary, error)
}

type summaryService struct {
	foods      repository.FoodEntryRepository
	activities repository.ActivityRepository
	now        func() time.Time
}

// NewSummaryService creates a new summary service.
func NewSummaryService(foods repository.FoodEntryRepository, activities repository.ActivityRepository) SummaryService {
	return &summaryService{
		foods:      foods,
		activities: activities,
		now:        time.Now,
	}
}

func (s *summaryService) today() time.Time {
	return s.now().UTC()
}

func (s *summaryService) DailySummary(ctx context.Context, user *model.User, date string) (*model.DailySummary, error) {
	if date == "" {
		date = s.today().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	foods, err := s.foods.ListByDate(ctx, user.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	activities, err := s.activities.ListByDate(ctx, user.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	var consumed, proteins, carbs, fats, burned decimal.Decimal
	for _, f := range foods {
		q := decimal.NewFromFloat(f.Quantity)
		consumed = consumed.Add(decimal.NewFromFloat(f.Calories).Mul(q))
		proteins = proteins.Add(decimal.NewFromFloat(f.Proteins).Mul(q))
		carbs = carbs.Add(decimal.NewFromFloat(f.Carbs).Mul(q))
		fats = fats.Add(decimal.NewFromFloat(f.Fats).Mul(q))
	}
	for _, a := range activities {
		burned = burned.Add(decimal.NewFromFloat(a.CaloriesBurned))
	}

	net := consumed.Sub(burned)
	goal := decimal.NewFromFloat(user.DailyGoal())

	if foods == nil {
		foods = []model.FoodEntry{}
	}
	if activities == nil {
		activities = []model.ActivityEntry{}
	}

	return &model.DailySummary{
		Date:              date,
		CaloriesConsumed:  consumed.InexactFloat64(),
		CaloriesBurned:    burned.InexactFloat64(),
		NetCalories:       net.InexactFloat64(),
		DailyGoal:         goal.InexactFloat64(),
		RemainingCalories: goal.Sub(net).InexactFloat64(),
		Macros: model.Macros{
			Proteins: proteins.InexactFloat64(),
			Carbs:    carbs.InexactFloat64(),
			Fats:     fats.InexactFloat64(),
		},
		Foods:      foods,
		Activities: activities,
	}, nil
}

type dayAccumulator struct {
	consumed decimal.Decimal
	burned   decimal.Decimal
}

func (s *summaryService) WeeklySummary(ctx context.Context, userID string) (*model.WeeklySummary, error) {
	end := s.today()
	start := end.AddDate(0, 0, -(weekDays - 1))
	startKey, endKey := start.Format(model.DateLayout), end.Format(model.DateLayout)

	foods, err := s.foods.ListByDateRange(ctx, userID, startKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	activities, err := s.activities.ListByDateRange(ctx, userID, startKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	keys := make([]string, weekDays)
	buckets := make(map[string]*dayAccumulator, weekDays)
	for i := range keys {
		keys[i] = start.AddDate(0, 0, i).Format(model.DateLayout)
		buckets[keys[i]] = &dayAccumulator{}
	}

	for _, f := range foods {
		if b, ok := buckets[f.Date]; ok {
			b.consumed = b.consumed.Add(decimal.NewFromFloat(f.Calories).Mul(decimal.NewFromFloat(f.Quantity)))
		}
	}
	for _, a := range activities {
		if b, ok := buckets[a.Date]; ok {
			b.burned = b.burned.Add(decimal.NewFromFloat(a.CaloriesBurned))
		}
	}

	summary := &model.WeeklySummary{
		StartDate: startKey,
		EndDate:   endKey,
		Days:      make([]model.DayTotals, 0, weekDays),
		DailyData: make(map[string]model.DayTotals, weekDays),
	}
	for _, key := range keys {
		b := buckets[key]
		day := model.DayTotals{
			Date:             key,
			CaloriesConsumed: b.consumed.InexactFloat64(),
			CaloriesBurned:   b.burned.InexactFloat64(),
			NetCalories:      b.consumed.Sub(b.burned).InexactFloat64(),
		}
		summary.Days = append(summary.Days, day)
		summary.DailyData[key] = day
	}
	return summary, nil
}
