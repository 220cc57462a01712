package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityEntry is one logged physical activity.
type ActivityEntry struct {
	ID              string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	UserID          string    `json:"user_id" bson:"user_id" gorm:"type:char(36);not null;index:idx_activity_user_date,priority:1"`
	Name            string    `json:"name" bson:"name" gorm:"size:255;not null"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned" bson:"calories_burned"`
	Date            string    `json:"date" bson:"date" gorm:"type:char(10);not null;index:idx_activity_user_date,priority:2"`
	DateTime        time.Time `json:"datetime" bson:"datetime" gorm:"column:datetime;not null"`
}

// TableName keeps the table name aligned with the Mongo collection.
func (ActivityEntry) TableName() string {
	return "activities"
}

// BeforeCreate sets UUID before creating the record.
func (a *ActivityEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
