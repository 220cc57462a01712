package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calorietracker/internal/cache"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/imaging"
	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes profile operations.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UploadProfilePhoto(ctx context.Context, userID string, image []byte) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// GetUser loads a user by id, read-through the cache.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

// UploadProfilePhoto stores a 200×200 PNG copy of image on the user.
func (s *userService) UploadProfilePhoto(ctx context.Context, userID string, image []byte) error {
	photo, err := imaging.ProfileThumbnail(image)
	if err != nil {
		return apperrors.NewProcessingError("process profile photo", err)
	}

	if err := s.repo.UpdateProfilePhoto(ctx, userID, photo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewProcessingError("save profile photo", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}
