package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"calorietracker/internal/auth"
	"calorietracker/internal/config"
	"calorietracker/internal/db"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/repository"
	"calorietracker/internal/service"
)

// seedDays is how many days of history are generated, today included.
const seedDays = 7

//go:embed seed_data.json
var seedData []byte

// SeedData is the demo dataset bundled with the binary.
type SeedData struct {
	User       SeedUser       `json:"user"`
	Foods      []SeedFood     `json:"foods"`
	Activities []SeedActivity `json:"activities"`
}

// SeedUser is the demo account profile.
type SeedUser struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
	GoalWeight    *float64 `json:"goal_weight"`
}

// SeedFood is a meal template logged at Hour (UTC).
type SeedFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Quantity float64 `json:"quantity"`
	Hour     int     `json:"hour"`
}

// SeedActivity is an exercise template logged at Hour (UTC).
type SeedActivity struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Hour            int     `json:"hour"`
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()
	ctx := context.Background()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close(ctx)
	log.Printf("Connected to %s backend", cfg.DBDriver)

	var data SeedData
	if err := json.Unmarshal(seedData, &data); err != nil {
		log.Fatalf("Failed to parse seed data: %v", err)
	}

	users := service.NewUserService(store.Repos.Users, nil)
	authService := service.NewAuthService(store.Repos.Users, users, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(nil))

	user, err := ensureUser(ctx, authService, data.User)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	foods, activities := buildWeek(user.ID, data, time.Now().UTC())
	if err := insertEntries(ctx, store.Repos, foods, activities); err != nil {
		log.Fatalf("Failed to seed ledger: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo login: %s / %s", data.User.Email, data.User.Password)
	log.Printf("  - Food entries created: %d", len(foods))
	log.Printf("  - Activities created: %d", len(activities))
}

// ensureUser registers the demo account, or logs in when it already exists.
func ensureUser(ctx context.Context, authService service.AuthService, u SeedUser) (*model.User, error) {
	_, user, err := authService.Register(ctx, service.RegisterInput{
		Email:         u.Email,
		Password:      u.Password,
		Name:          u.Name,
		Age:           u.Age,
		Weight:        u.Weight,
		Height:        u.Height,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		GoalWeight:    u.GoalWeight,
	})
	if err == nil {
		log.Printf("Created demo user %s", user.ID)
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		return nil, err
	}

	_, user, err = authService.Login(ctx, u.Email, u.Password)
	if err != nil {
		return nil, fmt.Errorf("demo user exists with a different password: %w", err)
	}
	log.Printf("Demo user %s already exists, adding entries", user.ID)
	return user, nil
}

// buildWeek spreads the templates over the seedDays ending at today. Every
// day gets all meals and one activity, rotating through the activity list.
func buildWeek(userID string, data SeedData, today time.Time) ([]model.FoodEntry, []model.ActivityEntry) {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(seedDays - 1))

	foods := make([]model.FoodEntry, 0, seedDays*len(data.Foods))
	activities := make([]model.ActivityEntry, 0, seedDays)

	for day := 0; day < seedDays; day++ {
		date := start.AddDate(0, 0, day)
		key := date.Format(model.DateLayout)

		for _, f := range data.Foods {
			foods = append(foods, model.FoodEntry{
				ID:       uuid.NewString(),
				UserID:   userID,
				Name:     f.Name,
				Calories: f.Calories,
				Proteins: f.Proteins,
				Carbs:    f.Carbs,
				Fats:     f.Fats,
				Quantity: f.Quantity,
				Date:     key,
				DateTime: date.Add(time.Duration(f.Hour) * time.Hour),
			})
		}

		if len(data.Activities) == 0 {
			continue
		}
		a := data.Activities[day%len(data.Activities)]
		activities = append(activities, model.ActivityEntry{
			ID:              uuid.NewString(),
			UserID:          userID,
			Name:            a.Name,
			DurationMinutes: a.DurationMinutes,
			CaloriesBurned:  a.CaloriesBurned,
			Date:            key,
			DateTime:        date.Add(time.Duration(a.Hour) * time.Hour),
		})
	}

	return foods, activities
}

func insertEntries(ctx context.Context, repos repository.Repositories, foods []model.FoodEntry, activities []model.ActivityEntry) error {
	for i := range foods {
		if err := repos.Foods.Create(ctx, &foods[i]); err != nil {
			return fmt.Errorf("error creating food entry %s: %w", foods[i].Name, err)
		}
	}
	for i := range activities {
		if err := repos.Activities.Create(ctx, &activities[i]); err != nil {
			return fmt.Errorf("error creating activity %s: %w", activities[i].Name, err)
		}
	}
	return nil
}
