package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"

	"go.uber.org/zap"
)

var (
	ErrDirectionNotFound   = errors.New("direction not found in project")
	ErrAchievementNotFound = errors.New("achievement not found in project")
	ErrToggleConflict      = errors.New("toggle abandoned after repeated concurrent modification")
)

// Number of read-then-write attempts before a toggle gives up. A second
// attempt only happens when another writer flipped the same element between
// our read and our conditional write.
const maxToggleAttempts = 3

// CompletionService flips the completion flags nested inside a project
// document. Every call is an unconditional flip; there is no set-to-true
// operation. Writes are conditional element updates that pin the flag value
// the preceding read observed, so a racing flip cannot be silently lost:
// the losing writer re-reads and retries instead.
type CompletionService interface {
	// ToggleDirection flips the named direction's flag and returns the new
	// value.
	ToggleDirection(ctx context.Context, projectID string, directionID string) (bool, error)

	// ToggleAchievement flips the named achievement's flag and returns the
	// new value. On the transition into complete it also appends a record to
	// the owner's achievement history; a later flip back to incomplete
	// leaves the history untouched. The owner is validated before any scan.
	ToggleAchievement(ctx context.Context, projectID string, achievementID string, userID string) (bool, error)
}

type completionService struct {
	projects repo.ProjectRepository
	users    repo.UserRepository
	logger   *zap.Logger
}

func NewCompletionService(projects repo.ProjectRepository, users repo.UserRepository, logger *zap.Logger) CompletionService {
	return &completionService{
		projects: projects,
		users:    users,
		logger:   logger,
	}
}

func (s *completionService) ToggleDirection(ctx context.Context, projectID string, directionID string) (bool, error) {
	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		project, err := s.projects.GetProject(ctx, projectID)
		if err != nil {
			return false, err
		}

		current, found := findDirection(project, directionID)
		if !found {
			return false, ErrDirectionNotFound
		}

		applied, err := s.projects.SetDirectionComplete(ctx, projectID, directionID, current, !current)
		if err != nil {
			return false, err
		}
		if applied {
			s.logger.Info("direction toggled",
				zap.String("project_id", projectID),
				zap.String("direction_id", directionID),
				zap.Bool("complete", !current),
			)
			return !current, nil
		}

		s.logger.Warn("direction toggle lost a race, retrying",
			zap.String("project_id", projectID),
			zap.String("direction_id", directionID),
			zap.Int("attempt", attempt+1),
		)
	}

	return false, ErrToggleConflict
}

func (s *completionService) ToggleAchievement(ctx context.Context, projectID string, achievementID string, userID string) (bool, error) {
	// The owner must exist before anything else happens. The history append
	// below depends on it, and checking late would leave the project flag
	// flipped with the history write failing afterwards.
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, repo.ErrUserNotFound
	}

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		project, err := s.projects.GetProject(ctx, projectID)
		if err != nil {
			return false, err
		}

		achievement, found := findAchievement(project, achievementID)
		if !found {
			return false, ErrAchievementNotFound
		}

		applied, err := s.projects.SetAchievementComplete(ctx, projectID, achievementID, achievement.Complete, !achievement.Complete)
		if err != nil {
			return false, err
		}
		if !applied {
			s.logger.Warn("achievement toggle lost a race, retrying",
				zap.String("project_id", projectID),
				zap.String("achievement_id", achievementID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		complete := !achievement.Complete
		if complete {
			record := model.AchievementRecord{
				ID:   achievementID,
				Name: achievement.Name,
				Date: time.Now().UTC(),
			}
			if err := s.users.AppendAchievement(ctx, userID, record); err != nil {
				// The flag flip already landed; surface the failed history
				// append rather than pretending the call never happened.
				return false, fmt.Errorf("achievement toggled but history append failed: %w", err)
			}
		}

		s.logger.Info("achievement toggled",
			zap.String("project_id", projectID),
			zap.String("achievement_id", achievementID),
			zap.String("user_id", userID),
			zap.Bool("complete", complete),
		)
		return complete, nil
	}

	return false, ErrToggleConflict
}

// findDirection scans steps in order, then directions within each step in
// order. The first ID match wins; duplicate IDs are not expected but must
// resolve deterministically.
func findDirection(project *model.Project, directionID string) (complete bool, found bool) {
	for _, step := range project.Steps {
		for _, direction := range step.Directions {
			if direction.ID == directionID {
				return direction.Complete, true
			}
		}
	}
	return false, false
}

func findAchievement(project *model.Project, achievementID string) (*model.Achievement, bool) {
	for i := range project.Achievement {
		if project.Achievement[i].ID == achievementID {
			return &project.Achievement[i], true
		}
	}
	return nil, false
}
