package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Toglefritz/Launchpad/internal/db"
	"github.com/Toglefritz/Launchpad/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound    = errors.New("user document not found")
	ErrProjectNotFound = errors.New("project document not found")
)

const (
	// Timeouts
	defaultWriteTimeout = 5 * time.Second
	defaultReadTimeout  = 10 * time.Second
)

type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	CreateUser(ctx context.Context, user model.User) error
	AppendCurrentProject(ctx context.Context, userID string, projectID string) error
	RemoveCurrentProject(ctx context.Context, userID string, projectID string) error
	AppendAchievement(ctx context.Context, userID string, record model.AchievementRecord) error
	SetProfilePicture(ctx context.Context, userID string, picture string) error
}

type userRepository struct {
	mongoRepo *db.Repository[model.User]
	logger    *zap.Logger
}

func NewUserRepository(repo *db.Repository[model.User], logger *zap.Logger) UserRepository {
	return &userRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID string) (*model.User, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	user, err := r.mongoRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		r.logger.Error("failed to fetch user", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return user, nil
}

func (r *userRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	exists, err := r.mongoRepo.Exists(ctx, userID)
	if err != nil {
		r.logger.Error("failed to check user existence", zap.String("user_id", userID), zap.Error(err))
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user model.User) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	if err := r.mongoRepo.Set(ctx, user.ID, user); err != nil {
		r.logger.Error("failed to create user", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user document created", zap.String("user_id", user.ID))
	return nil
}

// AppendCurrentProject adds a project ID to the end of the user's
// currentProjects array. The append is a targeted $push so concurrent
// mutations of the same array cannot clobber each other.
func (r *userRepository) AppendCurrentProject(ctx context.Context, userID string, projectID string) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	matched, err := r.mongoRepo.Push(ctx, userID, "currentProjects", projectID)
	if err != nil {
		r.logger.Error("failed to append current project",
			zap.String("user_id", userID),
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to append current project: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	return nil
}

// RemoveCurrentProject removes a project ID from the user's currentProjects
// array. Removing an ID that is not present succeeds without effect.
func (r *userRepository) RemoveCurrentProject(ctx context.Context, userID string, projectID string) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	matched, err := r.mongoRepo.Pull(ctx, userID, "currentProjects", projectID)
	if err != nil {
		r.logger.Error("failed to remove current project",
			zap.String("user_id", userID),
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to remove current project: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	return nil
}

// AppendAchievement appends one record to the user's achievement history.
// The history is append-only; nothing ever removes entries.
func (r *userRepository) AppendAchievement(ctx context.Context, userID string, record model.AchievementRecord) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	matched, err := r.mongoRepo.Push(ctx, userID, "achievements", record)
	if err != nil {
		r.logger.Error("failed to append achievement record",
			zap.String("user_id", userID),
			zap.String("achievement_id", record.ID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to append achievement record: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	r.logger.Info("achievement recorded",
		zap.String("user_id", userID),
		zap.String("achievement_id", record.ID),
	)
	return nil
}

func (r *userRepository) SetProfilePicture(ctx context.Context, userID string, picture string) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	matched, err := r.mongoRepo.UpdateFields(ctx, userID, bson.M{"profilePicture": picture})
	if err != nil {
		r.logger.Error("failed to set profile picture", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to set profile picture: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	return nil
}

func ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hadDeadline := ctx.Deadline(); hadDeadline {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
