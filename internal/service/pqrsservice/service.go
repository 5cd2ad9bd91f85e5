package pqrsservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// PQRSRepository define o contrato que o Serviço PQRS espera da camada de Persistência.
type PQRSRepository interface {
	Create(ctx context.Context, t domain.PQRSTicket) error
	FindByID(ctx context.Context, id domain.ID) (domain.PQRSTicket, error)
	UpdateStatus(ctx context.Context, t domain.PQRSTicket) error
	List(ctx context.Context) ([]domain.PQRSTicket, error)
	CountByType(ctx context.Context) ([]domain.CountEntry, error)
	CountByAccount(ctx context.Context) ([]domain.CountEntry, error)
	CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error)
}

// AccountLookup confirma que o cliente informado no ticket existe.
type AccountLookup interface {
	FindByID(ctx context.Context, id domain.ID) (domain.Account, error)
}

type Service struct {
	repo     PQRSRepository
	accounts AccountLookup
	now      func() time.Time
	logger   logger.Logger
}

func NewService(repo PQRSRepository, accounts AccountLookup, logger logger.Logger) *Service {
	return &Service{repo: repo, accounts: accounts, now: time.Now, logger: logger}
}

// Register cria um ticket PENDIENTE. O cliente é opcional, mas se vier precisa existir.
func (s *Service) Register(ctx context.Context, req domain.CreatePQRSRequest) (domain.PQRSTicket, error) {
	typ, ok := domain.ParsePQRSType(req.Type)
	if !ok {
		return domain.PQRSTicket{}, apperror.NewValidationError(fmt.Sprintf("El tipo '%s' no es válido.", req.Type))
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.PQRSTicket{}, apperror.NewValidationError("La descripción es obligatoria.")
	}

	var accountID domain.ID
	if strings.TrimSpace(req.AccountID) != "" {
		id, err := domain.ParseID(req.AccountID)
		if err != nil {
			return domain.PQRSTicket{}, err
		}
		account, err := s.accounts.FindByID(ctx, id)
		if err != nil {
			return domain.PQRSTicket{}, err
		}
		if account.Status == domain.AccountDeleted {
			return domain.PQRSTicket{}, apperror.NewNotFoundError(fmt.Sprintf("La cuenta %s no existe.", id))
		}
		accountID = id
	}

	ticket := domain.PQRSTicket{
		ID:          domain.NewID(),
		Type:        typ,
		AccountID:   accountID,
		Description: strings.TrimSpace(req.Description),
		Status:      domain.PQRSPending,
		SentAt:      s.now(),
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return domain.PQRSTicket{}, err
	}
	return ticket, nil
}

// UpdateStatus altera o estado e, quando houver, grava a resposta com a data atual.
func (s *Service) UpdateStatus(ctx context.Context, id string, req domain.UpdatePQRSStatusRequest) (domain.PQRSTicket, error) {
	tid, err := domain.ParseID(id)
	if err != nil {
		return domain.PQRSTicket{}, err
	}
	status, ok := domain.ParsePQRSStatus(req.Status)
	if !ok {
		return domain.PQRSTicket{}, apperror.NewValidationError(fmt.Sprintf("El estado '%s' no es válido.", req.Status))
	}

	ticket, err := s.repo.FindByID(ctx, tid)
	if err != nil {
		return domain.PQRSTicket{}, err
	}

	ticket.Status = status
	if text := strings.TrimSpace(req.Response); text != "" {
		now := s.now()
		ticket.Response = text
		ticket.RespondedAt = &now
	}
	if err := s.repo.UpdateStatus(ctx, ticket); err != nil {
		return domain.PQRSTicket{}, err
	}

	s.logger.Info("Estado da PQRS atualizado.", map[string]interface{}{"id": tid, "status": status})
	return ticket, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PQRSTicket, error) {
	return s.repo.List(ctx)
}

// CountByType devolve todos os tipos, inclusive os que não têm tickets.
func (s *Service) CountByType(ctx context.Context) ([]domain.CountEntry, error) {
	rows, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	out := make([]domain.CountEntry, 0, len(domain.PQRSTypes))
	for _, t := range domain.PQRSTypes {
		out = append(out, domain.CountEntry{Key: string(t), Count: counts[string(t)]})
	}
	return out, nil
}

func (s *Service) CountByAccount(ctx context.Context) ([]domain.CountEntry, error) {
	return s.repo.CountByAccount(ctx)
}

func (s *Service) CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error) {
	return s.repo.CountByAccountAndType(ctx)
}

func (s *Service) Types() []domain.PQRSType {
	return domain.PQRSTypes
}

func (s *Service) Statuses() []domain.PQRSStatus {
	return domain.PQRSStatuses
}
