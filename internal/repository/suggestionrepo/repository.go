package suggestionrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// SuggestionRepository implementa a persistência de sugerencias.
type SuggestionRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewSuggestionRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *SuggestionRepository {
	return &SuggestionRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

func (r *SuggestionRepository) Create(ctx context.Context, s domain.Suggestion) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		INSERT INTO suggestions (id, name, email, reason, message, date, reviewed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.DB.ExecContext(ctxTimeout, query, s.ID, s.Name, s.Email, s.Reason, s.Message, s.Date, s.Reviewed); err != nil {
		r.logger.Error("Falha ao inserir sugerencia no DB.", err)
		return errors.NewDBError("Falha ao criar sugerencia", err)
	}

	r.logger.Info("Sugerencia registrada.", map[string]interface{}{"id": s.ID})
	return nil
}

func (r *SuggestionRepository) List(ctx context.Context) ([]domain.Suggestion, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT id, name, email, reason, message, date, reviewed FROM suggestions ORDER BY date DESC`)
	if err != nil {
		r.logger.Error("Falha ao listar sugerencias.", err)
		return nil, errors.NewDBError("Falha ao listar sugerencias", err)
	}
	defer rows.Close()

	suggestions := []domain.Suggestion{}
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Reason, &s.Message, &s.Date, &s.Reviewed); err != nil {
			return nil, errors.NewDBError("Falha ao mapear sugerencias do DB", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de sugerencias", err)
	}
	return suggestions, nil
}

// MarkReviewed marca a sugerencia como revisada.
func (r *SuggestionRepository) MarkReviewed(ctx context.Context, id domain.ID) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `UPDATE suggestions SET reviewed = TRUE WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao marcar sugerencia como revisada.", err)
		return errors.NewDBError("Falha ao atualizar sugerencia", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La sugerencia %s no existe.", id))
	}
	return nil
}
