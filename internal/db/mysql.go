package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"calorietracker/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
// TranslateError makes unique-index violations surface as gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the users, food_entries and activities tables.
// With reset set, the tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	tables := []interface{}{
		&model.FoodEntry{},
		&model.ActivityEntry{},
		&model.User{},
	}
	if reset {
		for _, table := range tables {
			if err := db.Migrator().DropTable(table); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
