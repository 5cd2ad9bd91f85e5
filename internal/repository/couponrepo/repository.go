package couponrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/database"
	"gosalon/internal/pkg/logger"
)

const (
	couponColumns   = `id, code, name, discount_percentage, expiration_date, status, account_id`
	activeCodeIndex = "coupons_active_code_idx"
	duplicateMsg    = "Ya existe un cupón activo con ese código."
)

// CouponRepository implementa a persistência de cupones. Consultas ignoram
// cupones eliminados, exceto FindByID que é usado pelo Update/Delete.
type CouponRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewCouponRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CouponRepository {
	return &CouponRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func (r *CouponRepository) Create(ctx context.Context, c domain.Coupon) error {
	r.logger.Debug("Iniciando Create no repositório de cupones.", map[string]interface{}{"code": c.Code})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `INSERT INTO coupons (` + couponColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		c.ID, c.Code, c.Name, c.DiscountPercentage, c.ExpirationDate, c.Status, nullID(c.AccountID))
	if err != nil {
		if database.IsUniqueViolation(err, activeCodeIndex) {
			return errors.NewConflictError(duplicateMsg)
		}
		r.logger.Error("Falha ao inserir cupón no DB.", err)
		return errors.NewDBError("Falha ao criar cupón", err)
	}

	r.logger.Info("Cupón criado com sucesso.", map[string]interface{}{"id": c.ID, "code": c.Code})
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c domain.Coupon) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		UPDATE coupons SET code = $2, name = $3, discount_percentage = $4, expiration_date = $5,
			status = $6, account_id = $7
		WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, query,
		c.ID, c.Code, c.Name, c.DiscountPercentage, c.ExpirationDate, c.Status, nullID(c.AccountID))
	if err != nil {
		if database.IsUniqueViolation(err, activeCodeIndex) {
			return errors.NewConflictError(duplicateMsg)
		}
		r.logger.Error("Falha ao atualizar cupón no DB.", err)
		return errors.NewDBError("Falha ao atualizar cupón", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("El cupón %s no existe.", c.ID))
	}
	return nil
}

// FindByID busca um cupón pelo ID em qualquer estado.
func (r *CouponRepository) FindByID(ctx context.Context, id domain.ID) (domain.Coupon, error) {
	return r.one(ctx, `WHERE id = $1`, fmt.Sprintf("El cupón %s no existe.", id), id)
}

// FindActiveByCode busca o cupón não eliminado com o código.
func (r *CouponRepository) FindActiveByCode(ctx context.Context, code string) (domain.Coupon, error) {
	return r.one(ctx, `WHERE code = $1 AND status <> $2`, fmt.Sprintf("No existe un cupón con el código %s.", code), code, domain.CouponDeleted)
}

// FindActiveByCodeAndAccount busca o cupón do cliente com o código.
func (r *CouponRepository) FindActiveByCodeAndAccount(ctx context.Context, code string, accountID domain.ID) (domain.Coupon, error) {
	return r.one(ctx, `WHERE code = $1 AND account_id = $2 AND status <> $3`,
		fmt.Sprintf("El cliente no tiene un cupón con el código %s.", code), code, accountID, domain.CouponDeleted)
}

// ExistsActiveByCode indica se o código já está em uso.
func (r *CouponRepository) ExistsActiveByCode(ctx context.Context, code string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var found bool
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1 AND status <> $2)`, code, domain.CouponDeleted).Scan(&found)
	if err != nil {
		r.logger.Error("Falha ao verificar código do cupón.", err)
		return false, errors.NewDBError("Falha ao verificar cupón", err)
	}
	return found, nil
}

// ListByAccount lista os cupones ativos de um cliente.
func (r *CouponRepository) ListByAccount(ctx context.Context, accountID domain.ID) ([]domain.Coupon, error) {
	return r.list(ctx, `WHERE account_id = $1 AND status <> $2 ORDER BY expiration_date`, accountID, domain.CouponDeleted)
}

// List lista todos os cupones ativos.
func (r *CouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	return r.list(ctx, `WHERE status <> $1 ORDER BY expiration_date`, domain.CouponDeleted)
}

func (r *CouponRepository) one(ctx context.Context, where, notFoundMsg string, args ...interface{}) (domain.Coupon, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	c, err := scanCoupon(r.DB.QueryRowContext(ctxTimeout, `SELECT `+couponColumns+` FROM coupons `+where, args...))
	if err == sql.ErrNoRows {
		return domain.Coupon{}, errors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cupón no DB.", err)
		return domain.Coupon{}, errors.NewDBError("Falha ao buscar cupón", err)
	}
	return c, nil
}

func (r *CouponRepository) list(ctx context.Context, where string, args ...interface{}) ([]domain.Coupon, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+couponColumns+` FROM coupons `+where, args...)
	if err != nil {
		r.logger.Error("Falha ao listar cupones.", err)
		return nil, errors.NewDBError("Falha ao listar cupones", err)
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear cupones do DB", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de cupones", err)
	}
	return coupons, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCoupon(s scanner) (domain.Coupon, error) {
	var (
		c         domain.Coupon
		accountID sql.NullString
	)
	err := s.Scan(&c.ID, &c.Code, &c.Name, &c.DiscountPercentage, &c.ExpirationDate, &c.Status, &accountID)
	if err != nil {
		return domain.Coupon{}, err
	}
	c.AccountID = domain.ID(accountID.String)
	return c, nil
}

func nullID(id domain.ID) sql.NullString {
	return sql.NullString{String: id.String(), Valid: !id.IsZero()}
}
