package appointmentservice

import (
	"context"
	"strings"
	"time"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// AppointmentRepository define o contrato que o Serviço de Citas espera da camada de Persistência.
type AppointmentRepository interface {
	Create(ctx context.Context, a domain.Appointment) error
	FindByID(ctx context.Context, id domain.ID) (domain.Appointment, error)
	SlotTaken(ctx context.Context, stylistID domain.ID, dateTime time.Time, excludeID domain.ID) (bool, error)
	Update(ctx context.Context, a domain.Appointment) error
	ListByClient(ctx context.Context, clientID domain.ID, statuses ...domain.AppointmentStatus) ([]domain.Appointment, error)
	ListByStylist(ctx context.Context, stylistID domain.ID) ([]domain.Appointment, error)
	ListByStatus(ctx context.Context, statuses ...domain.AppointmentStatus) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
}

// CatalogReader resolve estilistas e serviços por ID. Os métodos *Name devolvem
// domain.MissingName quando a referência não existe mais.
type CatalogReader interface {
	FindStylist(ctx context.Context, id domain.ID) (domain.Stylist, error)
	FindService(ctx context.Context, id domain.ID) (domain.Service, error)
	StylistName(ctx context.Context, id domain.ID) string
	ServiceName(ctx context.Context, id domain.ID) string
}

const slotTakenMsg = "El estilista ya tiene una cita en ese horario."

// Service implementa o agendamento de citas.
type Service struct {
	repo    AppointmentRepository
	catalog CatalogReader
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Citas.
func NewService(repo AppointmentRepository, catalog CatalogReader, logger logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, logger: logger}
}

// Create agenda uma cita CONFIRMADA se o horário do estilista estiver livre.
func (s *Service) Create(ctx context.Context, req domain.CreateAppointmentRequest) (domain.ID, error) {
	s.logger.Debug("Iniciando criação de cita no serviço.", map[string]interface{}{"stylist_id": req.StylistID, "date_time": req.DateTime})

	clientID, err := domain.ParseID(req.ClientID)
	if err != nil {
		return "", err
	}
	stylistID, err := domain.ParseID(req.StylistID)
	if err != nil {
		return "", err
	}
	serviceID, err := domain.ParseID(req.ServiceID)
	if err != nil {
		return "", err
	}
	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		return "", err
	}

	if _, err := s.catalog.FindStylist(ctx, stylistID); err != nil {
		return "", err
	}
	if _, err := s.catalog.FindService(ctx, serviceID); err != nil {
		return "", err
	}

	taken, err := s.repo.SlotTaken(ctx, stylistID, dateTime, "")
	if err != nil {
		return "", err
	}
	if taken {
		s.logger.Info("Horário já ocupado.", map[string]interface{}{"stylist_id": stylistID, "date_time": req.DateTime})
		return "", apperror.NewSlotTakenError(slotTakenMsg)
	}

	a := domain.Appointment{
		ID:        domain.NewID(),
		ClientID:  clientID,
		StylistID: stylistID,
		ServiceID: serviceID,
		DateTime:  dateTime,
		Status:    domain.AppointmentConfirmed,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return "", err
	}

	s.logger.Info("Cita criada com sucesso.", map[string]interface{}{"id": a.ID})
	return a.ID, nil
}

// Cancel cancela a cita. Cancelar uma cita já cancelada é um no-op bem-sucedido.
func (s *Service) Cancel(ctx context.Context, id string) (domain.ID, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}

	if a.Status == domain.AppointmentCancelled {
		s.logger.Debug("Cita já cancelada, nada a fazer.", map[string]interface{}{"id": a.ID})
		return a.ID, nil
	}
	if !a.Status.CanTransitionTo(domain.AppointmentCancelled) {
		return "", apperror.NewValidationError("No se puede cancelar una cita completada.")
	}

	a.Status = domain.AppointmentCancelled
	if err := s.repo.Update(ctx, a); err != nil {
		return "", err
	}

	s.logger.Info("Cita cancelada.", map[string]interface{}{"id": a.ID})
	return a.ID, nil
}

// Reschedule move a cita para outro horário. Em caso de falha a cita original não muda.
func (s *Service) Reschedule(ctx context.Context, req domain.RescheduleRequest) (domain.ID, error) {
	a, err := s.find(ctx, req.AppointmentID)
	if err != nil {
		return "", err
	}
	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		return "", err
	}

	if !a.Status.CanTransitionTo(domain.AppointmentRescheduled) {
		return "", apperror.NewValidationError("Solo se pueden reprogramar citas confirmadas o reprogramadas.")
	}

	taken, err := s.repo.SlotTaken(ctx, a.StylistID, dateTime, a.ID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", apperror.NewSlotTakenError(slotTakenMsg)
	}

	a.DateTime = dateTime
	a.Status = domain.AppointmentRescheduled
	if err := s.repo.Update(ctx, a); err != nil {
		return "", err
	}

	s.logger.Info("Cita reprogramada.", map[string]interface{}{"id": a.ID, "date_time": req.DateTime})
	return a.ID, nil
}

// Complete marca a cita como atendida.
func (s *Service) Complete(ctx context.Context, id string) (domain.ID, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	if !a.Status.CanTransitionTo(domain.AppointmentCompleted) {
		return "", apperror.NewValidationError("Solo se pueden completar citas confirmadas o reprogramadas.")
	}

	a.Status = domain.AppointmentCompleted
	if err := s.repo.Update(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// Get devolve uma cita enriquecida.
func (s *Service) Get(ctx context.Context, id string) (domain.AppointmentInfo, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return domain.AppointmentInfo{}, err
	}
	return s.enrich(ctx, []domain.Appointment{a})[0], nil
}

// ListByClient lista as citas ativas (CONFIRMADA/REPROGRAMADA) do cliente.
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error) {
	id, err := domain.ParseID(clientID)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListByClient(ctx, id, domain.AppointmentConfirmed, domain.AppointmentRescheduled)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list), nil
}

// ListHistoryByClient lista as citas encerradas (CANCELADA/COMPLETADA) do cliente.
func (s *Service) ListHistoryByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error) {
	id, err := domain.ParseID(clientID)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListByClient(ctx, id, domain.AppointmentCancelled, domain.AppointmentCompleted)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list), nil
}

func (s *Service) ListByStylist(ctx context.Context, stylistID string) ([]domain.AppointmentInfo, error) {
	id, err := domain.ParseID(stylistID)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListByStylist(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list), nil
}

// ListByStatus filtra pelo estado sem diferenciar maiúsculas. Estados desconhecidos
// devolvem lista vazia.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.AppointmentInfo, error) {
	st, ok := domain.ParseAppointmentStatus(status)
	if !ok {
		s.logger.Debug("Estado de cita desconhecido.", map[string]interface{}{"status": status})
		return []domain.AppointmentInfo{}, nil
	}
	list, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list), nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.AppointmentInfo, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, list), nil
}

// Calendar devolve os blocos ocupados de todas as citas ativas.
func (s *Service) Calendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	list, err := s.repo.ListByStatus(ctx, domain.AppointmentConfirmed, domain.AppointmentRescheduled)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.CalendarEntry, 0, len(list))
	for _, a := range list {
		entries = append(entries, domain.CalendarEntryFor(a))
	}
	return entries, nil
}

func (s *Service) find(ctx context.Context, rawID string) (domain.Appointment, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return domain.Appointment{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// enrich resolve os nomes de estilista e serviço uma vez por ID.
func (s *Service) enrich(ctx context.Context, list []domain.Appointment) []domain.AppointmentInfo {
	stylists := map[domain.ID]string{}
	services := map[domain.ID]string{}

	out := make([]domain.AppointmentInfo, 0, len(list))
	for _, a := range list {
		stylistName, ok := stylists[a.StylistID]
		if !ok {
			stylistName = s.catalog.StylistName(ctx, a.StylistID)
			stylists[a.StylistID] = stylistName
		}

		serviceName, ok := services[a.ServiceID]
		if !ok {
			serviceName = s.catalog.ServiceName(ctx, a.ServiceID)
			services[a.ServiceID] = serviceName
		}

		out = append(out, domain.AppointmentInfo{
			ID:          a.ID,
			ClientID:    a.ClientID,
			StylistID:   a.StylistID,
			StylistName: stylistName,
			ServiceID:   a.ServiceID,
			ServiceName: serviceName,
			DateTime:    a.DateTime.Format(domain.DateTimeLayout),
			Status:      a.Status,
		})
	}
	return out
}

func parseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(domain.DateTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperror.NewValidationError("La fecha y hora deben tener el formato AAAA-MM-DD HH:MM.")
	}
	return t, nil
}
