package service

import "strings"

// Gender selects the Mifflin-St Jeor constant. Only two branches exist.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

// ParseGender maps a free-text label onto the two formula branches.
// Only a case-insensitive exact "male" selects GenderMale; everything else,
// padded labels included, takes the female branch. known is false when the
// label is neither "male" nor "female", so callers can flag it for review.
func ParseGender(label string) (g Gender, known bool) {
	switch {
	case strings.EqualFold(label, "male"):
		return GenderMale, true
	case strings.EqualFold(label, "female"):
		return GenderFemale, true
	default:
		return GenderFemale, false
	}
}

// ActivityMultipliers scales BMR into a daily calorie target.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const defaultActivityMultiplier = 1.2

// ComputeBMR returns the basal metabolic rate in kcal/day (Mifflin-St Jeor).
func ComputeBMR(age int, weightKg, heightCm float64, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// ComputeDailyCalories applies the activity multiplier; unknown levels use 1.2.
func ComputeDailyCalories(bmr float64, activityLevel string) float64 {
	multiplier, ok := ActivityMultipliers[activityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	return bmr * multiplier
}
