package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calorietracker/internal/model"
)

// Collection names shared with the SQL table names.
const (
	usersCollection      = "users"
	foodCollection       = "food_entries"
	activitiesCollection = "activities"
)

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a MongoDB-backed user repository.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return translateMongoError(err)
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongoError(err)
	}
	return &user, nil
}

func (r *mongoUserRepository) UpdateProfilePhoto(ctx context.Context, id, photo string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profile_photo": photo}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoFoodEntryRepository struct {
	coll *mongo.Collection
}

// NewMongoFoodEntryRepository builds a MongoDB-backed food ledger.
func NewMongoFoodEntryRepository(db *mongo.Database) FoodEntryRepository {
	return &mongoFoodEntryRepository{coll: db.Collection(foodCollection)}
}

func (r *mongoFoodEntryRepository) Create(ctx context.Context, entry *model.FoodEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

func (r *mongoFoodEntryRepository) ListByDate(ctx context.Context, userID, date string) ([]model.FoodEntry, error) {
	entries := []model.FoodEntry{}
	err := findAll(ctx, r.coll, bson.M{"user_id": userID, "date": date}, &entries)
	return entries, err
}

func (r *mongoFoodEntryRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.FoodEntry, error) {
	entries := []model.FoodEntry{}
	err := findAll(ctx, r.coll, dateRangeFilter(userID, start, end), &entries)
	return entries, err
}

type mongoActivityRepository struct {
	coll *mongo.Collection
}

// NewMongoActivityRepository builds a MongoDB-backed activity ledger.
func NewMongoActivityRepository(db *mongo.Database) ActivityRepository {
	return &mongoActivityRepository{coll: db.Collection(activitiesCollection)}
}

func (r *mongoActivityRepository) Create(ctx context.Context, entry *model.ActivityEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

func (r *mongoActivityRepository) ListByDate(ctx context.Context, userID, date string) ([]model.ActivityEntry, error) {
	entries := []model.ActivityEntry{}
	err := findAll(ctx, r.coll, bson.M{"user_id": userID, "date": date}, &entries)
	return entries, err
}

func (r *mongoActivityRepository) ListByDateRange(ctx context.Context, userID, start, end string) ([]model.ActivityEntry, error) {
	entries := []model.ActivityEntry{}
	err := findAll(ctx, r.coll, dateRangeFilter(userID, start, end), &entries)
	return entries, err
}

// EnsureMongoIndexes creates the unique email index and the (user_id, date)
// lookup indexes used by the summaries.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	byUserDate := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}}
	for _, name := range []string{foodCollection, activitiesCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, byUserDate); err != nil {
			return err
		}
	}
	return nil
}

func dateRangeFilter(userID, start, end string) bson.M {
	return bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lte": end},
	}
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}}))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}
