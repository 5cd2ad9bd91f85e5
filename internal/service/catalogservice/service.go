package catalogservice

import (
	"context"

	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

// CatalogRepository é a leitura do catálogo (com cache na implementação Postgres).
type CatalogRepository interface {
	ListStylists(ctx context.Context) ([]domain.Stylist, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	FindStylist(ctx context.Context, id domain.ID) (domain.Stylist, error)
	FindService(ctx context.Context, id domain.ID) (domain.Service, error)
}

// Service expõe estilistas e serviços e resolve nomes para o enriquecimento de citas.
type Service struct {
	repo   CatalogRepository
	logger logger.Logger
}

func NewService(repo CatalogRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListStylists(ctx context.Context) ([]domain.Stylist, error) {
	return s.repo.ListStylists(ctx)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) FindStylist(ctx context.Context, id domain.ID) (domain.Stylist, error) {
	return s.repo.FindStylist(ctx, id)
}

func (s *Service) FindService(ctx context.Context, id domain.ID) (domain.Service, error) {
	return s.repo.FindService(ctx, id)
}

// StylistName devolve o nome do estilista ou MissingName se ele não existir.
func (s *Service) StylistName(ctx context.Context, id domain.ID) string {
	st, err := s.repo.FindStylist(ctx, id)
	if err != nil {
		s.logger.Debug("Estilista não resolvido.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.MissingName
	}
	return st.Name
}

// ServiceName devolve o nome do serviço ou MissingName se ele não existir.
func (s *Service) ServiceName(ctx context.Context, id domain.ID) string {
	sv, err := s.repo.FindService(ctx, id)
	if err != nil {
		s.logger.Debug("Serviço não resolvido.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.MissingName
	}
	return sv.Name
}
