package suggestionservice

import (
	"context"
	"strings"
	"time"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// SuggestionRepository define o contrato que o Serviço de Sugerencias espera da camada de Persistência.
type SuggestionRepository interface {
	Create(ctx context.Context, s domain.Suggestion) error
	List(ctx context.Context) ([]domain.Suggestion, error)
	MarkReviewed(ctx context.Context, id domain.ID) error
}

type Service struct {
	repo   SuggestionRepository
	now    func() time.Time
	logger logger.Logger
}

func NewService(repo SuggestionRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, now: time.Now, logger: logger}
}

// Create registra a sugerencia com a data de hoje, ainda não revisada.
func (s *Service) Create(ctx context.Context, req domain.CreateSuggestionRequest) (domain.ID, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "", apperror.NewValidationError("El nombre es obligatorio.")
	case !strings.Contains(req.Email, "@"):
		return "", apperror.NewValidationError("El email no es válido.")
	case strings.TrimSpace(req.Message) == "":
		return "", apperror.NewValidationError("El mensaje es obligatorio.")
	}

	suggestion := domain.Suggestion{
		ID:      domain.NewID(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Reason:  strings.TrimSpace(req.Reason),
		Message: strings.TrimSpace(req.Message),
		Date:    s.now().Format(domain.DateLayout),
	}
	if err := s.repo.Create(ctx, suggestion); err != nil {
		return "", err
	}
	return suggestion.ID, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Suggestion, error) {
	return s.repo.List(ctx)
}

func (s *Service) MarkReviewed(ctx context.Context, id string) error {
	sid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.MarkReviewed(ctx, sid); err != nil {
		return err
	}
	s.logger.Info("Sugerencia revisada.", map[string]interface{}{"id": sid})
	return nil
}
