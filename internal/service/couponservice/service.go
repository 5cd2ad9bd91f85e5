package couponservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/textutil"
)

// CouponRepository define o contrato que o Serviço de Cupones espera da camada de Persistência.
type CouponRepository interface {
	Create(ctx context.Context, c domain.Coupon) error
	Update(ctx context.Context, c domain.Coupon) error
	FindByID(ctx context.Context, id domain.ID) (domain.Coupon, error)
	FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error)
	FindActiveByCodeAndAccount(ctx context.Context, code string, accountID domain.ID) (domain.Coupon, error)
	ExistsActiveByCode(ctx context.Context, code string) (bool, error)
	ListByAccount(ctx context.Context, accountID domain.ID) ([]domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
}

const (
	codeLength       = 6
	maxCodeAttempts  = 10
	duplicateCodeMsg = "Ya existe un cupón activo con el código %s."
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	repo   CouponRepository
	logger logger.Logger
}

func NewService(repo CouponRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create valida e grava um cupón ACTIVO. Código e nome são normalizados sem acentos.
func (s *Service) Create(ctx context.Context, req domain.CouponRequest) (domain.Coupon, error) {
	coupon, err := fromRequest(req)
	if err != nil {
		return domain.Coupon{}, err
	}

	exists, err := s.repo.ExistsActiveByCode(ctx, coupon.Code)
	if err != nil {
		return domain.Coupon{}, err
	}
	if exists {
		return domain.Coupon{}, apperror.NewConflictError(fmt.Sprintf(duplicateCodeMsg, coupon.Code))
	}

	coupon.ID = domain.NewID()
	coupon.Status = domain.CouponActive
	if err := s.repo.Create(ctx, coupon); err != nil {
		return domain.Coupon{}, err
	}

	s.logger.Info("Cupón criado.", map[string]interface{}{"id": coupon.ID, "code": coupon.Code})
	return coupon, nil
}

// Update substitui os dados de um cupón ativo.
func (s *Service) Update(ctx context.Context, id string, req domain.CouponRequest) (domain.Coupon, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}

	updated, err := fromRequest(req)
	if err != nil {
		return domain.Coupon{}, err
	}

	if updated.Code != current.Code {
		exists, err := s.repo.ExistsActiveByCode(ctx, updated.Code)
		if err != nil {
			return domain.Coupon{}, err
		}
		if exists {
			return domain.Coupon{}, apperror.NewConflictError(fmt.Sprintf(duplicateCodeMsg, updated.Code))
		}
	}

	updated.ID = current.ID
	updated.Status = current.Status
	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.Coupon{}, err
	}
	return updated, nil
}

// Delete faz o soft-delete do cupón.
func (s *Service) Delete(ctx context.Context, id string) error {
	coupon, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !coupon.Status.CanTransitionTo(domain.CouponDeleted) {
		return apperror.NewValidationError("El cupón no puede ser eliminado.")
	}

	coupon.Status = domain.CouponDeleted
	if err := s.repo.Update(ctx, coupon); err != nil {
		return err
	}

	s.logger.Info("Cupón eliminado.", map[string]interface{}{"id": coupon.ID})
	return nil
}

// GetByID busca um cupón. Cupones eliminados não são encontrados.
func (s *Service) GetByID(ctx context.Context, id string) (domain.Coupon, error) {
	cid, err := domain.ParseID(id)
	if err != nil {
		return domain.Coupon{}, err
	}
	coupon, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		return domain.Coupon{}, err
	}
	if coupon.Status == domain.CouponDeleted {
		return domain.Coupon{}, apperror.NewNotFoundError(fmt.Sprintf("El cupón %s no existe.", cid))
	}
	return coupon, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (domain.Coupon, error) {
	return s.repo.FindActiveByCode(ctx, normalizeCode(code))
}

func (s *Service) GetByCodeAndAccount(ctx context.Context, code, accountID string) (domain.Coupon, error) {
	aid, err := domain.ParseID(accountID)
	if err != nil {
		return domain.Coupon{}, err
	}
	return s.repo.FindActiveByCodeAndAccount(ctx, normalizeCode(code), aid)
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]domain.Coupon, error) {
	aid, err := domain.ParseID(accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAccount(ctx, aid)
}

func (s *Service) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.List(ctx)
}

// GenerateCode sorteia um código de 6 caracteres que ainda não está em uso.
func (s *Service) GenerateCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := textutil.RandomCode(codeLength)
		if err != nil {
			return "", apperror.NewInternalError("No fue posible generar el código.", err)
		}
		exists, err := s.repo.ExistsActiveByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperror.NewInternalError("No fue posible generar un código único.", nil)
}

func fromRequest(req domain.CouponRequest) (domain.Coupon, error) {
	code := normalizeCode(req.Code)
	name := textutil.StripAccents(req.Name)

	if code == "" {
		return domain.Coupon{}, apperror.NewValidationError("El código del cupón es obligatorio.")
	}
	if name == "" {
		return domain.Coupon{}, apperror.NewValidationError("El nombre del cupón es obligatorio.")
	}
	if !req.DiscountPercentage.IsPositive() || req.DiscountPercentage.GreaterThan(hundred) {
		return domain.Coupon{}, apperror.NewValidationError("El porcentaje de descuento debe ser mayor que 0 y menor o igual a 100.")
	}

	expiration, err := time.Parse(domain.DateLayout, strings.TrimSpace(req.ExpirationDate))
	if err != nil {
		return domain.Coupon{}, apperror.NewValidationError("La fecha de vencimiento debe tener el formato AAAA-MM-DD.")
	}

	var accountID domain.ID
	if strings.TrimSpace(req.AccountID) != "" {
		if accountID, err = domain.ParseID(req.AccountID); err != nil {
			return domain.Coupon{}, err
		}
	}

	return domain.Coupon{
		Code:               code,
		Name:               name,
		DiscountPercentage: req.DiscountPercentage,
		ExpirationDate:     expiration,
		AccountID:          accountID,
	}, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(textutil.StripAccents(code))
}
