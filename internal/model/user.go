package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered person with body metrics and a daily calorie target.
type User struct {
	ID            string    `json:"id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Email         string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" bson:"password" gorm:"size:255;not null"` // Never expose in JSON
	Name          string    `json:"name" bson:"name" gorm:"size:255;not null"`
	Age           int       `json:"age" bson:"age"`
	Weight        float64   `json:"weight" bson:"weight"`
	Height        float64   `json:"height" bson:"height"`
	Gender        string    `json:"gender" bson:"gender" gorm:"size:32"`
	ActivityLevel string    `json:"activity_level" bson:"activity_level" gorm:"size:32"`
	GoalWeight    *float64  `json:"goal_weight" bson:"goal_weight"`
	BMR           float64   `json:"bmr" bson:"bmr"`
	DailyCalories float64   `json:"daily_calories" bson:"daily_calories"`
	ProfilePhoto  *string   `json:"profile_photo" bson:"profile_photo" gorm:"type:longtext"` // base64 PNG
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// TableName keeps the table name aligned with the Mongo collection.
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DailyGoal returns the stored daily calorie target, falling back to
// DefaultDailyCalories when the user has none.
func (u *User) DailyGoal() float64 {
	if u == nil || u.DailyCalories == 0 {
		return DefaultDailyCalories
	}
	return u.DailyCalories
}

// DefaultDailyCalories is used when a user has no stored daily calorie target.
const DefaultDailyCalories = 2000.0
