package faqrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// FAQRepository implementa a persistência de perguntas frequentes.
type FAQRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewFAQRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *FAQRepository {
	return &FAQRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func (r *FAQRepository) Create(ctx context.Context, f domain.FAQ) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if _, err := r.DB.ExecContext(ctxTimeout, `INSERT INTO faqs (id, question, answer) VALUES ($1, $2, $3)`, f.ID, f.Question, f.Answer); err != nil {
		r.logger.Error("Falha ao inserir FAQ no DB.", err)
		return errors.NewDBError("Falha ao criar FAQ", err)
	}
	return nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id domain.ID) (domain.FAQ, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var f domain.FAQ
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT id, question, answer FROM faqs WHERE id = $1`, id).Scan(&f.ID, &f.Question, &f.Answer)
	if err == sql.ErrNoRows {
		return domain.FAQ{}, errors.NewNotFoundError(fmt.Sprintf("La pregunta %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar FAQ no DB.", err)
		return domain.FAQ{}, errors.NewDBError("Falha ao buscar FAQ", err)
	}
	return f, nil
}

func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT id, question, answer FROM faqs ORDER BY id`)
	if err != nil {
		r.logger.Error("Falha ao listar FAQs.", err)
		return nil, errors.NewDBError("Falha ao listar FAQs", err)
	}
	defer rows.Close()

	faqs := []domain.FAQ{}
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return nil, errors.NewDBError("Falha ao mapear FAQs do DB", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de FAQs", err)
	}
	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, f domain.FAQ) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `UPDATE faqs SET question = $2, answer = $3 WHERE id = $1`, f.ID, f.Question, f.Answer)
	if err != nil {
		r.logger.Error("Falha ao atualizar FAQ no DB.", err)
		return errors.NewDBError("Falha ao atualizar FAQ", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La pregunta %s no existe.", f.ID))
	}
	return nil
}

// Delete remove fisicamente a FAQ.
func (r *FAQRepository) Delete(ctx context.Context, id domain.ID) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover FAQ do DB.", err)
		return errors.NewDBError("Falha ao remover FAQ", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La pregunta %s no existe.", id))
	}
	return nil
}
