package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"

	"go.uber.org/zap"
)

// Number of pre-prepared profile pictures users can choose between.
const profilePictureCount = 9

// UserService owns the user document lifecycle and the read-side views of it.
// User documents are created exactly once, when the auth layer reports a new
// identity, and are never deleted here.
type UserService interface {
	// EnsureUser creates the user document for a new identity. Calling it
	// again for an existing user is a no-op; the bool reports whether a
	// document was created.
	EnsureUser(ctx context.Context, userID string) (bool, error)

	ListCurrentProjects(ctx context.Context, userID string) ([]string, error)
	ListAchievements(ctx context.Context, userID string) ([]model.AchievementRecord, error)
	GetProfilePicture(ctx context.Context, userID string) (string, error)
	SetProfilePicture(ctx context.Context, userID string, picture string) error
}

type userService struct {
	users  repo.UserRepository
	logger *zap.Logger
}

func NewUserService(users repo.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (s *userService) EnsureUser(ctx context.Context, userID string) (bool, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return false, err
	}
	if exists {
		s.logger.Debug("user document already exists", zap.String("user_id", userID))
		return false, nil
	}

	user := model.User{
		ID:                userID,
		ProfilePicture:    fmt.Sprintf("profile_picture_%d.png", rand.Intn(profilePictureCount)+1),
		JoinedDate:        time.Now().UTC(),
		Achievements:      []model.AchievementRecord{},
		CurrentProjects:   []string{},
		CompletedProjects: []string{},
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return false, err
	}

	return true, nil
}

// ListCurrentProjects returns the user's project IDs in insertion order. An
// empty list is a valid result, distinct from a missing user.
func (s *userService) ListCurrentProjects(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.CurrentProjects, nil
}

// ListAchievements returns the user's achievement history in the order the
// records were appended, which is chronological by construction.
func (s *userService) ListAchievements(ctx context.Context, userID string) ([]model.AchievementRecord, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Achievements, nil
}

func (s *userService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.ProfilePicture, nil
}

func (s *userService) SetProfilePicture(ctx context.Context, userID string, picture string) error {
	return s.users.SetProfilePicture(ctx, userID, picture)
}
