package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture() (*fakeUserRepo, UserService) {
	users := newFakeUserRepo()
	return users, NewUserService(users, zap.NewNop())
}

func TestEnsureUserCreatesDocument(t *testing.T) {
	users, svc := newUserFixture()
	ctx := context.Background()

	created, err := svc.EnsureUser(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, created)

	user, err := users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Regexp(t, regexp.MustCompile(`^profile_picture_[1-9]\.png$`), user.ProfilePicture)
	assert.WithinDuration(t, time.Now().UTC(), user.JoinedDate, time.Minute)
	assert.Empty(t, user.Achievements)
	assert.Empty(t, user.CurrentProjects)
	assert.Empty(t, user.CompletedProjects)
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	users, svc := newUserFixture()
	ctx := context.Background()

	created, err := svc.EnsureUser(ctx, "u1")
	require.NoError(t, err)
	require.True(t, created)

	original, err := users.GetUser(ctx, "u1")
	require.NoError(t, err)

	created, err = svc.EnsureUser(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, created)

	after, err := users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, original.ProfilePicture, after.ProfilePicture)
	assert.Equal(t, original.JoinedDate, after.JoinedDate)
}

func TestListCurrentProjectsEmptyIsNotAnError(t *testing.T) {
	users, svc := newUserFixture()
	ctx := context.Background()
	require.NoError(t, users.CreateUser(ctx, model.User{ID: "u1", CurrentProjects: []string{}}))

	list, err := svc.ListCurrentProjects(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ListCurrentProjects(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestListAchievementsPreservesInsertionOrder(t *testing.T) {
	users, svc := newUserFixture()
	ctx := context.Background()
	require.NoError(t, users.CreateUser(ctx, model.User{ID: "u1"}))

	first := model.AchievementRecord{ID: "a1", Name: "First Boot", Date: time.Now().UTC()}
	second := model.AchievementRecord{ID: "a2", Name: "Finisher", Date: time.Now().UTC()}
	require.NoError(t, users.AppendAchievement(ctx, "u1", first))
	require.NoError(t, users.AppendAchievement(ctx, "u1", second))

	records, err := svc.ListAchievements(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a1", records[0].ID)
	assert.Equal(t, "a2", records[1].ID)

	_, err = svc.ListAchievements(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestProfilePictureRoundTrip(t *testing.T) {
	users, svc := newUserFixture()
	ctx := context.Background()
	require.NoError(t, users.CreateUser(ctx, model.User{ID: "u1", ProfilePicture: "profile_picture_1.png"}))

	require.NoError(t, svc.SetProfilePicture(ctx, "u1", "profile_picture_7.png"))

	picture, err := svc.GetProfilePicture(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "profile_picture_7.png", picture)

	assert.ErrorIs(t, svc.SetProfilePicture(ctx, "missing", "profile_picture_2.png"), repo.ErrUserNotFound)
}
