package complaintservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// ComplaintRepository define o contrato que o Serviço de Quejas espera da camada de Persistência.
type ComplaintRepository interface {
	Create(ctx context.Context, c domain.Complaint) error
	FindByID(ctx context.Context, id domain.ID) (domain.Complaint, error)
	Update(ctx context.Context, c domain.Complaint) error
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByClient(ctx context.Context, clientID domain.ID) ([]domain.Complaint, error)
	ListByServiceName(ctx context.Context, serviceName string) ([]domain.Complaint, error)
	ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Complaint, error)
}

type Service struct {
	repo   ComplaintRepository
	now    func() time.Time
	logger logger.Logger
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado na data da queja e da resposta.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo ComplaintRepository, logger logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registra uma queja SIN_RESPONDER com a data atual.
func (s *Service) Create(ctx context.Context, req domain.CreateComplaintRequest) (domain.ID, error) {
	clientID, err := domain.ParseID(req.ClientID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Description) == "" {
		return "", apperror.NewValidationError("La descripción de la queja es obligatoria.")
	}

	c := domain.Complaint{
		ID:          domain.NewID(),
		ClientID:    clientID,
		ClientName:  strings.TrimSpace(req.ClientName),
		Description: strings.TrimSpace(req.Description),
		Date:        s.now(),
		Status:      domain.ComplaintUnanswered,
		ServiceName: strings.TrimSpace(req.ServiceName),
		StylistName: strings.TrimSpace(req.StylistName),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return "", err
	}

	s.logger.Info("Queja registrada.", map[string]interface{}{"id": c.ID, "client_id": clientID})
	return c.ID, nil
}

// Delete faz o soft-delete. Quejas respondidas ou já eliminadas não podem ser eliminadas.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case c.Status == domain.ComplaintDeleted:
		return apperror.NewValidationError("La queja ya fue eliminada.")
	case !c.Status.CanTransitionTo(domain.ComplaintDeleted):
		return apperror.NewValidationError("No se puede eliminar una queja respondida.")
	}

	c.Status = domain.ComplaintDeleted
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}

	s.logger.Info("Queja eliminada.", map[string]interface{}{"id": c.ID})
	return nil
}

// Get devolve uma queja. Quejas eliminadas não são encontradas.
func (s *Service) Get(ctx context.Context, id string) (domain.Complaint, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return domain.Complaint{}, err
	}
	if c.Status == domain.ComplaintDeleted {
		return domain.Complaint{}, apperror.NewNotFoundError(fmt.Sprintf("La queja %s no existe.", c.ID))
	}
	return c, nil
}

// Respond grava a resposta do admin. Só é válido a partir de SIN_RESPONDER.
func (s *Service) Respond(ctx context.Context, req domain.RespondComplaintRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return apperror.NewValidationError("La respuesta es obligatoria.")
	}

	c, err := s.Get(ctx, req.ComplaintID)
	if err != nil {
		return err
	}
	if !c.Status.CanTransitionTo(domain.ComplaintAnswered) {
		return apperror.NewValidationError("La queja ya fue respondida.")
	}

	c.Status = domain.ComplaintAnswered
	c.Response = &domain.ComplaintResponse{Text: strings.TrimSpace(req.Text), RespondedAt: s.now()}
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}

	s.logger.Info("Queja respondida.", map[string]interface{}{"id": c.ID})
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]domain.Complaint, error) {
	id, err := domain.ParseID(clientID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByClient(ctx, id)
}

func (s *Service) ListByService(ctx context.Context, serviceName string) ([]domain.Complaint, error) {
	if strings.TrimSpace(serviceName) == "" {
		return nil, apperror.NewValidationError("El nombre del servicio es obligatorio.")
	}
	return s.repo.ListByServiceName(ctx, strings.TrimSpace(serviceName))
}

// ListByStatus aceita o estado sem diferenciar maiúsculas; estados desconhecidos devolvem lista vazia.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Complaint, error) {
	st, ok := domain.ParseComplaintStatus(status)
	if !ok {
		return []domain.Complaint{}, nil
	}
	return s.repo.ListByStatus(ctx, st)
}

// ListByDateRange lista as quejas entre as datas (AAAA-MM-DD), ambas inclusivas.
func (s *Service) ListByDateRange(ctx context.Context, from, to string) ([]domain.Complaint, error) {
	start, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperror.NewValidationError("La fecha final no puede ser anterior a la inicial.")
	}
	return s.repo.ListBetween(ctx, start, end.AddDate(0, 0, 1))
}

// ListByDay lista as quejas de um dia.
func (s *Service) ListByDay(ctx context.Context, day string) ([]domain.Complaint, error) {
	return s.ListByDateRange(ctx, day, day)
}

func (s *Service) find(ctx context.Context, rawID string) (domain.Complaint, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.Complaint{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperror.NewValidationError(fmt.Sprintf("La fecha '%s' debe tener el formato AAAA-MM-DD.", raw))
	}
	return t, nil
}
