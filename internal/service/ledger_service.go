package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

// FoodInput is a food item as submitted by the client. A nil Quantity means 1.0.
type FoodInput struct {
	Name     string
	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
	Quantity *float64
}

// ActivityInput is an activity as submitted by the client.
type ActivityInput struct {
	Name            string
	DurationMinutes int
	CaloriesBurned  float64
}

// LedgerService appends food and activity entries. There is no update or delete.
type LedgerService interface {
	AddFood(ctx context.Context, userID string, in FoodInput) (string, error)
	AddActivity(ctx context.Context, userID string, in ActivityInput) (string, error)
}

type ledgerService struct {
	foods      repository.FoodEntryRepository
	activities repository.ActivityRepository
	now        func() time.Time
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(foods repository.FoodEntryRepository, activities repository.ActivityRepository) LedgerService {
	return &ledgerService{
		foods:      foods,
		activities: activities,
		now:        time.Now,
	}
}

// AddFood stamps the entry with the current UTC day and stores it.
// Numeric fields are stored as given, negatives included.
func (s *ledgerService) AddFood(ctx context.Context, userID string, in FoodInput) (string, error) {
	quantity := 1.0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	now := s.now().UTC()
	entry := &model.FoodEntry{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     in.Name,
		Calories: in.Calories,
		Proteins: in.Proteins,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Quantity: quantity,
		Date:     now.Format(model.DateLayout),
		DateTime: now,
	}

	if err := s.foods.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("create food entry: %w", err)
	}
	return entry.ID, nil
}

// AddActivity stamps the entry with the current UTC day and stores it.
func (s *ledgerService) AddActivity(ctx context.Context, userID string, in ActivityInput) (string, error) {
	now := s.now().UTC()
	entry := &model.ActivityEntry{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		Date:            now.Format(model.DateLayout),
		DateTime:        now,
	}

	if err := s.activities.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("create activity entry: %w", err)
	}
	return entry.ID, nil
}
