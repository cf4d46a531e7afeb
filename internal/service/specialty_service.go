package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/specialty"
)

type SpecialtyService struct {
	repo specialty.Repository
	log  *zap.Logger
}

func NewSpecialtyService(repo specialty.Repository, log *zap.Logger) *SpecialtyService {
	return &SpecialtyService{repo: repo, log: log}
}

func (s *SpecialtyService) Create(ctx context.Context, cmd *specialty.CreateSpecialtyCommand) (*specialty.Specialty, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, &ValidationError{Fields: []string{"name is required"}}
	}

	sp := &specialty.Specialty{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		s.log.Error("failed to create specialty", zap.Error(err))
		return nil, err
	}

	s.log.Info("specialty created", zap.Uint("specialty_id", sp.ID), zap.String("name", sp.Name))
	return sp, nil
}

func (s *SpecialtyService) Get(ctx context.Context, id uint) (*specialty.Specialty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpecialtyService) List(ctx context.Context) ([]*specialty.Specialty, error) {
	return s.repo.List(ctx)
}

func (s *SpecialtyService) Update(ctx context.Context, id uint, cmd *specialty.UpdateSpecialtyCommand) error {
	if err := s.repo.Update(ctx, id, cmd); err != nil {
		return err
	}
	s.log.Info("specialty updated", zap.Uint("specialty_id", id))
	return nil
}

func (s *SpecialtyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("specialty deleted", zap.Uint("specialty_id", id))
	return nil
}
