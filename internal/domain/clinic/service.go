package clinic

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) About(ctx context.Context) (*About, error) {
	return s.repo.Get(ctx)
}

func (s *Service) UpdateAbout(ctx context.Context, a *About) error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Upsert(ctx, a)
}
