package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Repositories bundles the persistence ports for one storage backend.
type Repositories struct {
	Users      UserRepository
	Foods      FoodEntryRepository
	Activities ActivityRepository
}

// NewGormRepositories wires the GORM implementations.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      NewUserRepository(db),
		Foods:      NewFoodEntryRepository(db),
		Activities: NewActivityRepository(db),
	}
}

// NewMongoRepositories wires the MongoDB implementations.
func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:      NewMongoUserRepository(db),
		Foods:      NewMongoFoodEntryRepository(db),
		Activities: NewMongoActivityRepository(db),
	}
}
