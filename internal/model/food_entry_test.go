package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoodEntry_EffectiveCalories(t *testing.T) {
	assert.Equal(t, 300.0, FoodEntry{Calories: 200, Quantity: 1.5}.EffectiveCalories())
	assert.Equal(t, -50.0, FoodEntry{Calories: -50, Quantity: 1}.EffectiveCalories())
}

func TestUser_DailyGoal(t *testing.T) {
	var nilUser *User
	assert.Equal(t, DefaultDailyCalories, nilUser.DailyGoal())
	assert.Equal(t, DefaultDailyCalories, (&User{}).DailyGoal())
	assert.Equal(t, 2008.5, (&User{DailyCalories: 2008.5}).DailyGoal())
}

func TestBeforeCreate_AssignsMissingIDs(t *testing.T) {
	u := &User{}
	f := &FoodEntry{}
	a := &ActivityEntry{ID: "keep-me"}

	assert.NoError(t, u.BeforeCreate(nil))
	assert.NoError(t, f.BeforeCreate(nil))
	assert.NoError(t, a.BeforeCreate(nil))

	assert.Len(t, u.ID, 36)
	assert.Len(t, f.ID, 36)
	assert.Equal(t, "keep-me", a.ID)
}
