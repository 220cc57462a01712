package model

// Macros holds quantity-weighted macro-nutrient totals in grams.
type Macros struct {
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DailySummary is the calorie balance for one user and calendar day.
type DailySummary struct {
	Date              string          `json:"date"`
	CaloriesConsumed  float64         `json:"calories_consumed"`
	CaloriesBurned    float64         `json:"calories_burned"`
	NetCalories       float64         `json:"net_calories"`
	DailyGoal         float64         `json:"daily_goal"`
	RemainingCalories float64         `json:"remaining_calories"`
	Macros            Macros          `json:"macros"`
	Foods             []FoodEntry     `json:"foods"`
	Activities        []ActivityEntry `json:"activities"`
}

// DayTotals is one bucket of a weekly summary.
type DayTotals struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"calories_consumed"`
	CaloriesBurned   float64 `json:"calories_burned"`
	NetCalories      float64 `json:"net_calories"`
}

// WeeklySummary covers the seven days ending today, oldest first.
type WeeklySummary struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Days      []DayTotals          `json:"days"`
	DailyData map[string]DayTotals `json:"daily_data"`
}
