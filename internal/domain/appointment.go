package domain

import (
	"strings"
	"time"
)

// DateTimeLayout é o formato de data/hora aceito na criação e reprogramação de citas.
const DateTimeLayout = "2006-01-02 15:04"

// calendarLayout é o formato ISO local (sem zona) usado no calendário.
const calendarLayout = "2006-01-02T15:04:05"

// MissingName é o valor usado quando o estilista ou serviço referenciado não existe mais.
const MissingName = "Vacio"

type AppointmentStatus string

const (
	AppointmentConfirmed   AppointmentStatus = "CONFIRMADA"
	AppointmentCancelled   AppointmentStatus = "CANCELADA"
	AppointmentRescheduled AppointmentStatus = "REPROGRAMADA"
	AppointmentCompleted   AppointmentStatus = "COMPLETADA"
)

var appointmentTransitions = transitionTable[AppointmentStatus]{
	AppointmentConfirmed:   {AppointmentRescheduled, AppointmentCancelled, AppointmentCompleted},
	AppointmentRescheduled: {AppointmentRescheduled, AppointmentCancelled, AppointmentCompleted},
}

// CanTransitionTo indica se a mudança de estado é permitida. CANCELADA e COMPLETADA são terminais.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return appointmentTransitions.allows(s, next)
}

// Active indica que a cita ocupa o horário do estilista.
func (s AppointmentStatus) Active() bool {
	return s == AppointmentConfirmed || s == AppointmentRescheduled
}

// ParseAppointmentStatus compara sem diferenciar maiúsculas. ok=false para valores desconhecidos.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch st := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case AppointmentConfirmed, AppointmentCancelled, AppointmentRescheduled, AppointmentCompleted:
		return st, true
	default:
		return "", false
	}
}

// Appointment representa uma cita agendada.
type Appointment struct {
	ID        ID                `json:"id"`
	ClientID  ID                `json:"usuarioId"`
	StylistID ID                `json:"estilistaId"`
	ServiceID ID                `json:"servicioId"`
	DateTime  time.Time         `json:"fechaHora"`
	Status    AppointmentStatus `json:"estado"`
}

// CreateAppointmentRequest usa o formato DateTimeLayout em DateTime.
type CreateAppointmentRequest struct {
	ClientID  string `json:"usuarioId"`
	StylistID string `json:"estilistaId"`
	ServiceID string `json:"servicioId"`
	DateTime  string `json:"fechaHora"`
}

type RescheduleRequest struct {
	AppointmentID string `json:"citaId"`
	DateTime      string `json:"nuevaFechaHora"`
}

// AppointmentInfo é a cita enriquecida com os nomes do estilista e do serviço.
type AppointmentInfo struct {
	ID          ID                `json:"citaId"`
	ClientID    ID                `json:"usuarioId"`
	StylistID   ID                `json:"estilistaId"`
	StylistName string            `json:"estilistaNombre"`
	ServiceID   ID                `json:"servicioId"`
	ServiceName string            `json:"servicioNombre"`
	DateTime    string            `json:"fechaHora"`
	Status      AppointmentStatus `json:"estado"`
}

// CalendarEntry é um bloco ocupado de uma hora.
type CalendarEntry struct {
	Start string `json:"fechaHoraInicio"`
	End   string `json:"fechaHoraFin"`
}

// CalendarEntryFor monta o bloco [início, início+1h) de uma cita.
func CalendarEntryFor(a Appointment) CalendarEntry {
	return CalendarEntry{
		Start: a.DateTime.Format(calendarLayout),
		End:   a.DateTime.Add(time.Hour).Format(calendarLayout),
	}
}
