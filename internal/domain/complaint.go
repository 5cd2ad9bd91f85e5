package domain

import (
	"strings"
	"time"
)

// ComplaintStatus é o estado de uma queja.
type ComplaintStatus string

const (
	ComplaintUnanswered ComplaintStatus = "SIN_RESPONDER"
	ComplaintAnswered   ComplaintStatus = "RESPONDIDA"
	ComplaintDeleted    ComplaintStatus = "ELIMINADA"
)

var complaintTransitions = transitionTable[ComplaintStatus]{
	ComplaintUnanswered: {ComplaintAnswered, ComplaintDeleted},
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	return complaintTransitions.allows(s, next)
}

// ParseComplaintStatus compara sem diferenciar maiúsculas.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch st := ComplaintStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case ComplaintUnanswered, ComplaintAnswered, ComplaintDeleted:
		return st, true
	default:
		return "", false
	}
}

// ComplaintResponse é a resposta do admin a uma queja.
type ComplaintResponse struct {
	Text        string    `json:"mensaje"`
	RespondedAt time.Time `json:"fechaRespuesta"`
}

// Complaint representa uma queja de um cliente.
// Os nomes de serviço e estilista são desnormalizados no momento da criação.
type Complaint struct {
	ID          ID                 `json:"id"`
	ClientID    ID                 `json:"clienteId"`
	ClientName  string             `json:"nombreCliente"`
	Description string             `json:"descripcion"`
	Date        time.Time          `json:"fecha"`
	Status      ComplaintStatus    `json:"estadoQueja"`
	ServiceName string             `json:"nombreServicio"`
	StylistName string             `json:"nombreEstilista"`
	Response    *ComplaintResponse `json:"respuestaQueja,omitempty"`
}

type CreateComplaintRequest struct {
	ClientID    string `json:"clienteId"`
	ClientName  string `json:"nombreCliente"`
	Description string `json:"descripcion"`
	ServiceName string `json:"nombreServicio"`
	StylistName string `json:"nombreEstilista"`
}

type RespondComplaintRequest struct {
	ComplaintID string `json:"quejaId"`
	Text        string `json:"respuesta"`
}
