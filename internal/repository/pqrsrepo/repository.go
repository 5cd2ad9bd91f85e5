package pqrsrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

const ticketColumns = `id, type, account_id, description, status, response, sent_at, responded_at`

// PQRSRepository implementa a persistência dos tickets PQRS e os relatórios agregados.
type PQRSRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewPQRSRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PQRSRepository {
	return &PQRSRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func (r *PQRSRepository) Create(ctx context.Context, t domain.PQRSTicket) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `INSERT INTO pqrs_tickets (` + ticketColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		t.ID, t.Type, sql.NullString{String: t.AccountID.String(), Valid: !t.AccountID.IsZero()},
		t.Description, t.Status, t.Response, t.SentAt, nullTime(t.RespondedAt))
	if err != nil {
		r.logger.Error("Falha ao inserir ticket PQRS no DB.", err)
		return errors.NewDBError("Falha ao criar PQRS", err)
	}

	r.logger.Info("Ticket PQRS registrado.", map[string]interface{}{"id": t.ID, "type": t.Type})
	return nil
}

func (r *PQRSRepository) FindByID(ctx context.Context, id domain.ID) (domain.PQRSTicket, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	t, err := scanTicket(r.DB.QueryRowContext(ctxTimeout, `SELECT `+ticketColumns+` FROM pqrs_tickets WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return domain.PQRSTicket{}, errors.NewNotFoundError(fmt.Sprintf("La PQRS %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar ticket PQRS.", err)
		return domain.PQRSTicket{}, errors.NewDBError("Falha ao buscar PQRS", err)
	}
	return t, nil
}

// UpdateStatus grava estado, resposta e data da resposta.
func (r *PQRSRepository) UpdateStatus(ctx context.Context, t domain.PQRSTicket) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE pqrs_tickets SET status = $2, response = $3, responded_at = $4 WHERE id = $1`,
		t.ID, t.Status, t.Response, nullTime(t.RespondedAt))
	if err != nil {
		r.logger.Error("Falha ao atualizar ticket PQRS.", err)
		return errors.NewDBError("Falha ao atualizar PQRS", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La PQRS %s no existe.", t.ID))
	}
	return nil
}

func (r *PQRSRepository) List(ctx context.Context) ([]domain.PQRSTicket, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+ticketColumns+` FROM pqrs_tickets ORDER BY sent_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao listar tickets PQRS.", err)
		return nil, errors.NewDBError("Falha ao listar PQRS", err)
	}
	defer rows.Close()

	tickets := []domain.PQRSTicket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear PQRS do DB", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de PQRS", err)
	}
	return tickets, nil
}

// CountByType conta os tickets por tipo.
func (r *PQRSRepository) CountByType(ctx context.Context) ([]domain.CountEntry, error) {
	return r.count(ctx, `SELECT type, COUNT(*) FROM pqrs_tickets GROUP BY type ORDER BY type`)
}

// CountByAccount conta os tickets por cliente; tickets anônimos caem em ANONIMO.
func (r *PQRSRepository) CountByAccount(ctx context.Context) ([]domain.CountEntry, error) {
	return r.count(ctx,
		`SELECT COALESCE(account_id, $1), COUNT(*) FROM pqrs_tickets GROUP BY 1 ORDER BY 1`, domain.AnonymousBucket)
}

// CountByAccountAndType conta por cliente e tipo, com chave "cliente:TIPO".
func (r *PQRSRepository) CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error) {
	return r.count(ctx,
		`SELECT COALESCE(account_id, $1) || ':' || type, COUNT(*) FROM pqrs_tickets GROUP BY 1 ORDER BY 1`, domain.AnonymousBucket)
}

func (r *PQRSRepository) count(ctx context.Context, query string, args ...interface{}) ([]domain.CountEntry, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao gerar relatório PQRS.", err)
		return nil, errors.NewDBError("Falha ao gerar relatório PQRS", err)
	}
	defer rows.Close()

	entries := []domain.CountEntry{}
	for rows.Next() {
		var e domain.CountEntry
		if err := rows.Scan(&e.Key, &e.Count); err != nil {
			return nil, errors.NewDBError("Falha ao mapear relatório PQRS", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração do relatório PQRS", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(s scanner) (domain.PQRSTicket, error) {
	var (
		t           domain.PQRSTicket
		accountID   sql.NullString
		respondedAt sql.NullTime
	)
	err := s.Scan(&t.ID, &t.Type, &accountID, &t.Description, &t.Status, &t.Response, &t.SentAt, &respondedAt)
	if err != nil {
		return domain.PQRSTicket{}, err
	}
	t.AccountID = domain.ID(accountID.String)
	if respondedAt.Valid {
		at := respondedAt.Time
		t.RespondedAt = &at
	}
	return t, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
