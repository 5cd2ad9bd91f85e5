package faqservice

import (
	"context"
	"strings"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

type FAQRepository interface {
	Create(ctx context.Context, f domain.FAQ) error
	FindByID(ctx context.Context, id domain.ID) (domain.FAQ, error)
	List(ctx context.Context) ([]domain.FAQ, error)
	Update(ctx context.Context, f domain.FAQ) error
	Delete(ctx context.Context, id domain.ID) error
}

type Service struct {
	repo   FAQRepository
	logger logger.Logger
}

func NewService(repo FAQRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.FAQ, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.FAQ, error) {
	fid, err := domain.ParseID(id)
	if err != nil {
		return domain.FAQ{}, err
	}
	return s.repo.FindByID(ctx, fid)
}

func (s *Service) Create(ctx context.Context, f domain.FAQ) (domain.FAQ, error) {
	if err := validate(f); err != nil {
		return domain.FAQ{}, err
	}
	f.ID = domain.NewID()
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	if err := s.repo.Create(ctx, f); err != nil {
		return domain.FAQ{}, err
	}
	s.logger.Info("FAQ criada.", map[string]interface{}{"id": f.ID})
	return f, nil
}

func (s *Service) Update(ctx context.Context, id string, f domain.FAQ) (domain.FAQ, error) {
	fid, err := domain.ParseID(id)
	if err != nil {
		return domain.FAQ{}, err
	}
	if err := validate(f); err != nil {
		return domain.FAQ{}, err
	}
	f.ID = fid
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	if err := s.repo.Update(ctx, f); err != nil {
		return domain.FAQ{}, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	fid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, fid); err != nil {
		return err
	}
	s.logger.Info("FAQ removida.", map[string]interface{}{"id": fid})
	return nil
}

func validate(f domain.FAQ) error {
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		return apperror.NewValidationError("La pregunta y la respuesta son obligatorias.")
	}
	return nil
}
