package service

import (
	"context"
	"sync"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"

	"go.mongodb.org/mongo-driver/bson"
)

// -------- in-memory repository fakes --------

type fakeProjectRepo struct {
	mu       sync.RWMutex
	projects map[string]model.Project

	// Forces the next N conditional updates to report a miss, simulating a
	// concurrent writer landing between read and write.
	forcedConflicts int

	getCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]model.Project)}
}

var _ repo.ProjectRepository = (*fakeProjectRepo)(nil)

func (f *fakeProjectRepo) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	project, ok := f.projects[projectID]
	if !ok {
		return nil, repo.ErrProjectNotFound
	}
	copied := cloneProject(project)
	return &copied, nil
}

func (f *fakeProjectRepo) SetProject(ctx context.Context, project model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.projects[project.ID] = cloneProject(project)
	return nil
}

func (f *fakeProjectRepo) UpdateProjectFields(ctx context.Context, projectID string, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	project, ok := f.projects[projectID]
	if !ok {
		return repo.ErrProjectNotFound
	}
	if step, ok := fields["currentStep"]; ok {
		project.CurrentStep = step.(int)
	}
	if name, ok := fields["name"]; ok {
		project.Name = name.(string)
	}
	f.projects[projectID] = project
	return nil
}

func (f *fakeProjectRepo) DeleteProject(ctx context.Context, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.projects, projectID)
	return nil
}

func (f *fakeProjectRepo) SetDirectionComplete(ctx context.Context, projectID string, directionID string, from bool, to bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forcedConflicts > 0 {
		f.forcedConflicts--
		return false, nil
	}

	project, ok := f.projects[projectID]
	if !ok {
		return false, nil
	}
	for si := range project.Steps {
		for di := range project.Steps[si].Directions {
			d := &project.Steps[si].Directions[di]
			if d.ID == directionID && d.Complete == from {
				d.Complete = to
				f.projects[projectID] = project
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) SetAchievementComplete(ctx context.Context, projectID string, achievementID string, from bool, to bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forcedConflicts > 0 {
		f.forcedConflicts--
		return false, nil
	}

	project, ok := f.projects[projectID]
	if !ok {
		return false, nil
	}
	for i := range project.Achievement {
		a := &project.Achievement[i]
		if a.ID == achievementID && a.Complete == from {
			a.Complete = to
			f.projects[projectID] = project
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetUser(ctx context.Context, userID string) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, repo.ErrUserNotFound
	}
	copied := cloneUser(user)
	return &copied, nil
}

func (f *fakeUserRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users[user.ID] = cloneUser(user)
	return nil
}

func (f *fakeUserRepo) AppendCurrentProject(ctx context.Context, userID string, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrUserNotFound
	}
	user.CurrentProjects = append(user.CurrentProjects, projectID)
	f.users[userID] = user
	return nil
}

func (f *fakeUserRepo) RemoveCurrentProject(ctx context.Context, userID string, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrUserNotFound
	}
	filtered := user.CurrentProjects[:0:0]
	for _, id := range user.CurrentProjects {
		if id != projectID {
			filtered = append(filtered, id)
		}
	}
	user.CurrentProjects = filtered
	f.users[userID] = user
	return nil
}

func (f *fakeUserRepo) AppendAchievement(ctx context.Context, userID string, record model.AchievementRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrUserNotFound
	}
	user.Achievements = append(user.Achievements, record)
	f.users[userID] = user
	return nil
}

func (f *fakeUserRepo) SetProfilePicture(ctx context.Context, userID string, picture string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrUserNotFound
	}
	user.ProfilePicture = picture
	f.users[userID] = user
	return nil
}

// -------- helpers --------

func cloneProject(p model.Project) model.Project {
	copied := p
	copied.Steps = make([]model.Step, len(p.Steps))
	for i, step := range p.Steps {
		copied.Steps[i] = step
		copied.Steps[i].Directions = append([]model.Direction(nil), step.Directions...)
	}
	copied.Achievement = append([]model.Achievement(nil), p.Achievement...)
	return copied
}

func cloneUser(u model.User) model.User {
	copied := u
	copied.Achievements = append([]model.AchievementRecord(nil), u.Achievements...)
	copied.CurrentProjects = append([]string(nil), u.CurrentProjects...)
	copied.CompletedProjects = append([]string(nil), u.CompletedProjects...)
	return copied
}
