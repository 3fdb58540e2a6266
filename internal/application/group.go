package application

import (
	"context"
	"strings"

	"github.com/linskybing/forms-go/internal/domain/group"
	"github.com/linskybing/forms-go/internal/repository"
)

type GroupService struct {
	Repos *repository.Repos
}

func NewGroupService(repos *repository.Repos) *GroupService {
	return &GroupService{
		Repos: repos,
	}
}

func (s *GroupService) List(ctx context.Context) ([]group.FormGroup, error) {
	return s.Repos.Group.List(ctx)
}

func (s *GroupService) Get(ctx context.Context, id uint) (*group.FormGroup, error) {
	g, err := s.Repos.Group.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	return g, nil
}

func (s *GroupService) Create(ctx context.Context, input group.GroupInput) (*group.FormGroup, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("group name is required")
	}
	g := &group.FormGroup{Name: name}
	if err := s.Repos.Group.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GroupService) Rename(ctx context.Context, id uint, input group.GroupInput) (*group.FormGroup, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("group name is required")
	}
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = name
	if err := s.Repos.Group.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes the group. Its forms stay, ungrouped.
func (s *GroupService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repos.Group.Delete(ctx, id)
}
