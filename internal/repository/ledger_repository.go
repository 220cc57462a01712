package repository

import (
	"context"

	"gorm.io/gorm"

	"calorietracker/internal/model"
)

// FoodEntryRepository defines food ledger persistence operations.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *model.FoodEntry) error
	ListByDate(ctx context.Context, userID, date string) ([]model.FoodEntry, error)
	// ListByDateRange returns rows whose date lies in [start, end] inclusive.
	ListByDateRange(ctx context.Context, userID, start, end string) ([]model.FoodEntry, error)
}

// ActivityRepository defines activity ledger persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, entry *model.ActivityEntry) error
	ListByDate(ctx context.Context, userID, date string) ([]model.ActivityEntry, error)
	ListByDateRange(ctx context.Context, userID, start, end string) ([]model.ActivityEntry, error)
}

type foodEntryRepository struct {
	db *gorm.DB
}

// NewFoodEntryRepository creates a new food entry repository.
func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db: db}
}

// Create appends a food entry.
func (r *foodEntryRepository) Create(ctx context.Context, entry *model.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByDate lists a user's food entries for one calendar day.
func (r *foodEntryRepository) ListByDate(ctx context.Context, userID, date string) ([]model.FoodEntry, error) {
	var entries []model.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("datetime ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByDateRange lists a user's food entries between two calendar days.
func (r *foodEntryRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.FoodEntry, error) {
	var entries []model.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends an activity entry.
func (r *activityRepository) Create(ctx context.Context, entry *model.ActivityEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByDate lists a user's activities for one calendar day.
func (r *activityRepository) ListByDate(ctx context.Context, userID, date string) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("datetime ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByDateRange lists a user's activities between two calendar days.
func (r *activityRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
