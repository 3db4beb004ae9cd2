package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Toglefritz/Launchpad/internal/db"
	"github.com/Toglefritz/Launchpad/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ProjectRepository interface {
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	SetProject(ctx context.Context, project model.Project) error
	UpdateProjectFields(ctx context.Context, projectID string, fields bson.M) error
	DeleteProject(ctx context.Context, projectID string) error

	// Conditional element updates. The write lands only if the flag still
	// holds the `from` value the caller read; a false return means a
	// concurrent writer got there first (or the element vanished) and the
	// caller should re-read and retry.
	SetDirectionComplete(ctx context.Context, projectID string, directionID string, from bool, to bool) (bool, error)
	SetAchievementComplete(ctx context.Context, projectID string, achievementID string, from bool, to bool) (bool, error)
}

type projectRepository struct {
	mongoRepo *db.Repository[model.Project]
	logger    *zap.Logger
}

func NewProjectRepository(repo *db.Repository[model.Project], logger *zap.Logger) ProjectRepository {
	return &projectRepository{
		mongoRepo: repo,
		logger:    logger,
	}
}

func (r *projectRepository) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	ctx, cancel := ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	project, err := r.mongoRepo.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		r.logger.Error("failed to fetch project", zap.String("project_id", projectID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	return project, nil
}

// SetProject writes the full project document under its own ID. An existing
// document with the same ID is silently overwritten.
func (r *projectRepository) SetProject(ctx context.Context, project model.Project) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	if err := r.mongoRepo.Set(ctx, project.ID, project); err != nil {
		r.logger.Error("failed to set project", zap.String("project_id", project.ID), zap.Error(err))
		return fmt.Errorf("failed to set project: %w", err)
	}

	return nil
}

func (r *projectRepository) UpdateProjectFields(ctx context.Context, projectID string, fields bson.M) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	matched, err := r.mongoRepo.UpdateFields(ctx, projectID, fields)
	if err != nil {
		r.logger.Error("failed to update project", zap.String("project_id", projectID), zap.Error(err))
		return fmt.Errorf("failed to update project: %w", err)
	}
	if matched == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes the project document. Deleting an absent document
// succeeds; the user-side cleanup decides how to treat a missing owner.
func (r *projectRepository) DeleteProject(ctx context.Context, projectID string) error {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	if err := r.mongoRepo.Delete(ctx, projectID); err != nil {
		r.logger.Error("failed to delete project", zap.String("project_id", projectID), zap.Error(err))
		return fmt.Errorf("failed to delete project: %w", err)
	}

	r.logger.Info("project deleted", zap.String("project_id", projectID))
	return nil
}

// SetDirectionComplete flips one direction flag inside step[].itemListElement[]
// with a filter that pins the previous value. Duplicated IDs resolve to the
// first element in array order, matching the scan the caller performed.
func (r *projectRepository) SetDirectionComplete(ctx context.Context, projectID string, directionID string, from bool, to bool) (bool, error) {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	element := bson.M{"id": directionID, "complete": from}
	filter := db.NewFilter().
		ID(projectID).
		ElemMatch("step", bson.M{"itemListElement": bson.M{"$elemMatch": element}}).
		Build()
	update := bson.M{"$set": bson.M{"step.$[s].itemListElement.$[d].complete": to}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"s.itemListElement": bson.M{"$elemMatch": element}},
			bson.M{"d.id": directionID, "d.complete": from},
		},
	})

	matched, err := r.mongoRepo.UpdateMatched(ctx, filter, update, opts)
	if err != nil {
		r.logger.Error("failed to toggle direction",
			zap.String("project_id", projectID),
			zap.String("direction_id", directionID),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to toggle direction: %w", err)
	}

	return matched > 0, nil
}

// SetAchievementComplete is the single-level counterpart for achievement[].
func (r *projectRepository) SetAchievementComplete(ctx context.Context, projectID string, achievementID string, from bool, to bool) (bool, error) {
	ctx, cancel := ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	filter := db.NewFilter().
		ID(projectID).
		ElemMatch("achievement", bson.M{"id": achievementID, "complete": from}).
		Build()
	update := bson.M{"$set": bson.M{"achievement.$.complete": to}}

	matched, err := r.mongoRepo.UpdateMatched(ctx, filter, update)
	if err != nil {
		r.logger.Error("failed to toggle achievement",
			zap.String("project_id", projectID),
			zap.String("achievement_id", achievementID),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to toggle achievement: %w", err)
	}

	return matched > 0, nil
}
