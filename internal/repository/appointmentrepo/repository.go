package appointmentrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"gosalon/internal/domain"
	"gosalon/internal/errors"
	"gosalon/internal/pkg/database"
	"gosalon/internal/pkg/logger"
)

// slotIndex é o índice único parcial que impede dois agendamentos no mesmo horário.
const slotIndex = "appointments_active_slot_idx"

const slotTakenMsg = "El estilista ya tiene una cita en ese horario."

// AppointmentRepository implementa a persistência de citas no PostgreSQL.
type AppointmentRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAppointmentRepository cria e retorna uma nova instância do Repositório de Citas.
func NewAppointmentRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere a cita. Se outro agendamento ocupou o horário entre a verificação
// do serviço e este INSERT, o índice único rejeita e devolvemos SlotTakenError.
func (r *AppointmentRepository) Create(ctx context.Context, a domain.Appointment) error {
	r.logger.Debug("Iniciando Create no repositório de citas.", map[string]interface{}{"stylist_id": a.StylistID, "date_time": a.DateTime})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		INSERT INTO appointments (id, client_id, stylist_id, service_id, date_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(ctxTimeout, query, a.ID, a.ClientID, a.StylistID, a.ServiceID, a.DateTime, a.Status)
	if err != nil {
		if database.IsUniqueViolation(err, slotIndex) {
			r.logger.Info("Horário ocupado detectado pelo índice único.", map[string]interface{}{"stylist_id": a.StylistID})
			return errors.NewSlotTakenError(slotTakenMsg)
		}
		r.logger.Error("Falha ao inserir cita no DB.", err)
		return errors.NewDBError("Falha ao criar cita", err)
	}

	r.logger.Info("Cita criada com sucesso.", map[string]interface{}{"id": a.ID})
	return nil
}

// FindByID busca uma cita pelo ID.
func (r *AppointmentRepository) FindByID(ctx context.Context, id domain.ID) (domain.Appointment, error) {
	r.logger.Debug("Iniciando FindByID no repositório de citas.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		SELECT id, client_id, stylist_id, service_id, date_time, status
		FROM appointments
		WHERE id = $1`

	var a domain.Appointment
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&a.ID, &a.ClientID, &a.StylistID, &a.ServiceID, &a.DateTime, &a.Status)
	if err == sql.ErrNoRows {
		return domain.Appointment{}, errors.NewNotFoundError(fmt.Sprintf("La cita %s no existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cita no DB.", err)
		return domain.Appointment{}, errors.NewDBError("Falha ao buscar cita", err)
	}
	return a, nil
}

// SlotTaken indica se o estilista já tem uma cita não cancelada em dateTime,
// ignorando a própria cita excludeID (vazio para novas citas).
func (r *AppointmentRepository) SlotTaken(ctx context.Context, stylistID domain.ID, dateTime time.Time, excludeID domain.ID) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE stylist_id = $1 AND date_time = $2 AND status <> $3 AND id <> $4
		)`

	var taken bool
	if err := r.DB.QueryRowContext(ctxTimeout, query, stylistID, dateTime, domain.AppointmentCancelled, excludeID).Scan(&taken); err != nil {
		r.logger.Error("Falha ao verificar disponibilidade do horário.", err)
		return false, errors.NewDBError("Falha ao verificar horário", err)
	}
	return taken, nil
}

// Update grava data/hora e estado. O índice único também protege a reprogramação.
func (r *AppointmentRepository) Update(ctx context.Context, a domain.Appointment) error {
	r.logger.Debug("Iniciando Update no repositório de citas.", map[string]interface{}{"id": a.ID, "status": a.Status})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `UPDATE appointments SET date_time = $2, status = $3 WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, query, a.ID, a.DateTime, a.Status)
	if err != nil {
		if database.IsUniqueViolation(err, slotIndex) {
			return errors.NewSlotTakenError(slotTakenMsg)
		}
		r.logger.Error("Falha ao atualizar cita no DB.", err)
		return errors.NewDBError("Falha ao atualizar cita", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("La cita %s no existe.", a.ID))
	}

	r.logger.Info("Cita atualizada.", map[string]interface{}{"id": a.ID, "status": a.Status})
	return nil
}

// ListByClient lista as citas do cliente nos estados informados.
func (r *AppointmentRepository) ListByClient(ctx context.Context, clientID domain.ID, statuses ...domain.AppointmentStatus) ([]domain.Appointment, error) {
	return r.list(ctx, "ListByClient", `WHERE client_id = $1 AND status = ANY($2) ORDER BY date_time`, clientID, statusArray(statuses))
}

// ListByStylist lista todas as citas do estilista.
func (r *AppointmentRepository) ListByStylist(ctx context.Context, stylistID domain.ID) ([]domain.Appointment, error) {
	return r.list(ctx, "ListByStylist", `WHERE stylist_id = $1 ORDER BY date_time`, stylistID)
}

// ListByStatus lista as citas em qualquer um dos estados informados.
func (r *AppointmentRepository) ListByStatus(ctx context.Context, statuses ...domain.AppointmentStatus) ([]domain.Appointment, error) {
	return r.list(ctx, "ListByStatus", `WHERE status = ANY($1) ORDER BY date_time`, statusArray(statuses))
}

// ListAll lista todas as citas.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, "ListAll", `ORDER BY date_time`)
}

func (r *AppointmentRepository) list(ctx context.Context, op, where string, args ...interface{}) ([]domain.Appointment, error) {
	r.logger.Debug("Iniciando "+op+" no repositório de citas.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT id, client_id, stylist_id, service_id, date_time, status FROM appointments ` + where

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar "+op+".", err)
		return nil, errors.NewDBError("Falha ao listar citas", err)
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.ClientID, &a.StylistID, &a.ServiceID, &a.DateTime, &a.Status); err != nil {
			r.logger.Error("Falha ao mapear cita.", err)
			return nil, errors.NewDBError("Falha ao mapear citas do DB", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de citas", err)
	}

	r.logger.Info(op+" concluído.", map[string]interface{}{"total": len(appointments)})
	return appointments, nil
}

func statusArray(statuses []domain.AppointmentStatus) interface{} {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return pq.Array(out)
}
