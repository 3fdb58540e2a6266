package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/domain/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupService_CreateTrimsName(t *testing.T) {
	repos, m := setupRepos(t)
	svc := NewGroupService(repos)
	ctx := context.Background()

	m.group.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, g *group.FormGroup) error {
		assert.Equal(t, "Newsletters", g.Name)
		g.ID = 4
		return nil
	})

	g, err := svc.Create(ctx, group.GroupInput{Name: "  Newsletters "})
	require.NoError(t, err)
	assert.Equal(t, uint(4), g.ID)
}

func TestGroupService_CreateRequiresName(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewGroupService(repos)

	_, err := svc.Create(context.Background(), group.GroupInput{Name: "   "})
	assert.True(t, IsValidation(err))
}

func TestGroupService_Rename(t *testing.T) {
	repos, m := setupRepos(t)
	svc := NewGroupService(repos)
	ctx := context.Background()

	m.group.EXPECT().FindByID(ctx, uint(4)).Return(&group.FormGroup{ID: 4, Name: "Old"}, nil)
	m.group.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	g, err := svc.Rename(ctx, 4, group.GroupInput{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", g.Name)
}

func TestGroupService_RenameUnknown(t *testing.T) {
	repos, m := setupRepos(t)
	svc := NewGroupService(repos)
	ctx := context.Background()

	m.group.EXPECT().FindByID(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Rename(ctx, 9, group.GroupInput{Name: "New"})
	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_Delete(t *testing.T) {
	repos, m := setupRepos(t)
	svc := NewGroupService(repos)
	ctx := context.Background()

	m.group.EXPECT().FindByID(ctx, uint(4)).Return(&group.FormGroup{ID: 4}, nil)
	m.group.EXPECT().Delete(ctx, uint(4)).Return(errors.New("db down"))

	assert.EqualError(t, svc.Delete(ctx, 4), "db down")
}
