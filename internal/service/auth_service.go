package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"calorietracker/internal/auth"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the profile captured at sign-up.
type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	Age           int
	Weight        float64
	Height        float64
	Gender        string
	ActivityLevel string
	GoalWeight    *float64
}

// AuthService handles registration, login and bearer-token resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	IssueToken(userID string) (string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	users      UserService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, users UserService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		now:        time.Now,
	}
}

// HashPassword returns a salted bcrypt hash; equal inputs hash differently.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password produced hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with derived BMR and calorie target, then issues a token.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *model.User, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	gender, known := ParseGender(in.Gender)
	if !known {
		log.Printf("register: unrecognized gender label %q, using female BMR coefficients", in.Gender)
	}
	bmr := ComputeBMR(in.Age, in.Weight, in.Height, gender)

	user := &model.User{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  hashed,
		Name:          in.Name,
		Age:           in.Age,
		Weight:        in.Weight,
		Height:        in.Height,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		GoalWeight:    in.GoalWeight,
		BMR:           bmr,
		DailyCalories: ComputeDailyCalories(bmr, in.ActivityLevel),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, apperrors.ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a 30-minute access token for userID.
func (s *authService) IssueToken(userID string) (string, error) {
	token, err := s.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	revoked, err := s.tokenStore.IsAccessTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", apperrors.ErrUnauthorized)
	}

	user, err := s.users.GetUser(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return s.tokenStore.RevokeAccessToken(ctx, claims.ID, s.jwtService.RemainingTTL(claims))
}
