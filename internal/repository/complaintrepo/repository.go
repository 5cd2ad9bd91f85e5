package complaintrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

const complaintColumns = `id, client_id, client_name, description, date, status, service_name, stylist_name, response_text, responded_at`

// ComplaintRepository implementa a persistência de quejas no PostgreSQL.
type ComplaintRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewComplaintRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ComplaintRepository {
	return &ComplaintRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere uma nova queja.
func (r *ComplaintRepository) Create(ctx context.Context, c domain.Complaint) error {
	r.logger.Debug("Iniciando Create no repositório de quejas.", map[string]interface{}{"client_id": c.ClientID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	text, respondedAt := responseArgs(c.Response)
	query := `INSERT INTO complaints (` + complaintColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		c.ID, c.ClientID, c.ClientName, c.Description, c.Date, c.Status, c.ServiceName, c.StylistName, text, respondedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir queja no DB.", err)
		return errors.NewDBError("Falha ao criar queja", err)
	}

	r.logger.Info("Queja criada com sucesso.", map[string]interface{}{"id": c.ID})
	return nil
}

// FindByID busca uma queja pelo ID em qualquer estado.
func (r *ComplaintRepository) FindByID(ctx context.Context, id domain.ID) (domain.Complaint, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`

	c, err := scanComplaint(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.Complaint{}, errors.NewNotFoundError(fmt.Sprintf("La queja %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar queja no DB.", err)
		return domain.Complaint{}, errors.NewDBError("Falha ao buscar queja", err)
	}
	return c, nil
}

// Update grava estado e resposta.
func (r *ComplaintRepository) Update(ctx context.Context, c domain.Complaint) error {
	r.logger.Debug("Iniciando Update no repositório de quejas.", map[string]interface{}{"id": c.ID, "status": c.Status})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	text, respondedAt := responseArgs(c.Response)
	query := `UPDATE complaints SET status = $2, response_text = $3, responded_at = $4 WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, query, c.ID, c.Status, text, respondedAt)
	if err != nil {
		r.logger.Error("Falha ao atualizar queja no DB.", err)
		return errors.NewDBError("Falha ao atualizar queja", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La queja %s no existe.", c.ID))
	}
	return nil
}

// ListAll lista as quejas não eliminadas.
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return r.list(ctx, `WHERE status <> $1 ORDER BY date DESC`, domain.ComplaintDeleted)
}

// ListByClient lista as quejas não eliminadas de um cliente.
func (r *ComplaintRepository) ListByClient(ctx context.Context, clientID domain.ID) ([]domain.Complaint, error) {
	return r.list(ctx, `WHERE client_id = $1 AND status <> $2 ORDER BY date DESC`, clientID, domain.ComplaintDeleted)
}

// ListByServiceName filtra pelo nome do serviço, sem diferenciar maiúsculas.
func (r *ComplaintRepository) ListByServiceName(ctx context.Context, serviceName string) ([]domain.Complaint, error) {
	return r.list(ctx, `WHERE LOWER(service_name) = LOWER($1) AND status <> $2 ORDER BY date DESC`, serviceName, domain.ComplaintDeleted)
}

// ListByStatus lista as quejas num estado.
func (r *ComplaintRepository) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	return r.list(ctx, `WHERE status = $1 ORDER BY date DESC`, status)
}

// ListBetween lista as quejas não eliminadas com from <= date < to.
func (r *ComplaintRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Complaint, error) {
	return r.list(ctx, `WHERE date >= $1 AND date < $2 AND status <> $3 ORDER BY date`, from, to, domain.ComplaintDeleted)
}

func (r *ComplaintRepository) list(ctx context.Context, where string, args ...interface{}) ([]domain.Complaint, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+complaintColumns+` FROM complaints `+where, args...)
	if err != nil {
		r.logger.Error("Falha ao listar quejas.", err)
		return nil, errors.NewDBError("Falha ao listar quejas", err)
	}
	defer rows.Close()

	complaints := []domain.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear quejas do DB", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de quejas", err)
	}
	return complaints, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComplaint(s scanner) (domain.Complaint, error) {
	var (
		c           domain.Complaint
		text        sql.NullString
		respondedAt sql.NullTime
	)
	err := s.Scan(&c.ID, &c.ClientID, &c.ClientName, &c.Description, &c.Date, &c.Status,
		&c.ServiceName, &c.StylistName, &text, &respondedAt)
	if err != nil {
		return domain.Complaint{}, err
	}
	if text.Valid {
		c.Response = &domain.ComplaintResponse{Text: text.String, RespondedAt: respondedAt.Time}
	}
	return c, nil
}

func responseArgs(resp *domain.ComplaintResponse) (sql.NullString, sql.NullTime) {
	if resp == nil {
		return sql.NullString{}, sql.NullTime{}
	}
	return sql.NullString{String: resp.Text, Valid: true}, sql.NullTime{Time: resp.RespondedAt, Valid: true}
}
