package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-day key used for grouping ledger rows (UTC).
const DateLayout = "2006-01-02"

// FoodEntry is one logged food item. Rows are immutable once written.
type FoodEntry struct {
	ID       string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	UserID   string    `json:"user_id" bson:"user_id" gorm:"type:char(36);not null;index:idx_food_user_date,priority:1"`
	Name     string    `json:"name" bson:"name" gorm:"size:255;not null"`
	Calories float64   `json:"calories" bson:"calories"`
	Proteins float64   `json:"proteins" bson:"proteins"`
	Carbs    float64   `json:"carbs" bson:"carbs"`
	Fats     float64   `json:"fats" bson:"fats"`
	Quantity float64   `json:"quantity" bson:"quantity"`
	Date     string    `json:"date" bson:"date" gorm:"type:char(10);not null;index:idx_food_user_date,priority:2"`
	DateTime time.Time `json:"datetime" bson:"datetime" gorm:"column:datetime;not null"`
}

// TableName keeps the table name aligned with the Mongo collection.
func (FoodEntry) TableName() string {
	return "food_entries"
}

// BeforeCreate sets UUID before creating the record.
func (f *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// EffectiveCalories is calories scaled by the quantity multiplier.
func (f FoodEntry) EffectiveCalories() float64 {
	return f.Calories * f.Quantity
}
