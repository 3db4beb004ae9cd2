package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var ErrMissingProjectID = errors.New("project data is missing a project ID")

// ProjectService maintains the association between user documents and project
// documents. Project documents carry no owner field; ownership lives solely
// in the owner's currentProjects list, so creation and deletion have a
// second, user-side write.
//
// The two writes are not transactional. A project write that lands before
// the owner turns out to be missing is not rolled back; the caller sees
// repo.ErrUserNotFound and the orphaned document stays behind.
type ProjectService interface {
	CreateProject(ctx context.Context, ownerID string, project model.Project) (string, error)
	ReadProject(ctx context.Context, projectID string) (*model.Project, error)
	UpdateProject(ctx context.Context, projectID string, fields map[string]interface{}) error
	DeleteProject(ctx context.Context, projectID string, ownerID string) error
	SetCurrentStep(ctx context.Context, projectID string, stepIndex int) error
}

type projectService struct {
	projects repo.ProjectRepository
	users    repo.UserRepository
	logger   *zap.Logger
}

func NewProjectService(projects repo.ProjectRepository, users repo.UserRepository, logger *zap.Logger) ProjectService {
	return &projectService{
		projects: projects,
		users:    users,
		logger:   logger,
	}
}

// CreateProject persists the project document under its caller-chosen ID and
// appends that ID to the owner's currentProjects. An ID collision silently
// overwrites the existing project document.
func (s *projectService) CreateProject(ctx context.Context, ownerID string, project model.Project) (string, error) {
	if project.ID == "" {
		return "", ErrMissingProjectID
	}

	if err := s.projects.SetProject(ctx, project); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}

	if err := s.users.AppendCurrentProject(ctx, ownerID, project.ID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			s.logger.Warn("project created but owner does not exist",
				zap.String("project_id", project.ID),
				zap.String("user_id", ownerID),
			)
			return "", err
		}
		return "", fmt.Errorf("link project to owner: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("user_id", ownerID),
	)
	return project.ID, nil
}

func (s *projectService) ReadProject(ctx context.Context, projectID string) (*model.Project, error) {
	return s.projects.GetProject(ctx, projectID)
}

// UpdateProject merges the named fields into the project document. Identifier
// fields are stripped so an update cannot re-key the document.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, fields map[string]interface{}) error {
	update := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "projectId" {
			continue
		}
		update[k] = v
	}
	if len(update) == 0 {
		return nil
	}

	return s.projects.UpdateProjectFields(ctx, projectID, update)
}

// DeleteProject removes the project document, then removes the ID from the
// supplied owner's currentProjects. Only that one owner is cleaned up; if
// other users reference the project their lists keep a dangling ID, which
// readers treat as a non-fatal not-found. A projectID absent from the
// owner's list is a no-op removal, not an error.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, ownerID string) error {
	if err := s.projects.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if err := s.users.RemoveCurrentProject(ctx, ownerID, projectID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			s.logger.Warn("project deleted but owner does not exist",
				zap.String("project_id", projectID),
				zap.String("user_id", ownerID),
			)
			return err
		}
		return fmt.Errorf("unlink project from owner: %w", err)
	}

	return nil
}

// SetCurrentStep records which step of the project the user is working on.
func (s *projectService) SetCurrentStep(ctx context.Context, projectID string, stepIndex int) error {
	return s.projects.UpdateProjectFields(ctx, projectID, bson.M{"currentStep": stepIndex})
}
