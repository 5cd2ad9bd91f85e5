package domain

import (
	"strings"
	"time"
)

// AnonymousBucket agrupa os tickets PQRS enviados sem conta nos relatórios.
const AnonymousBucket = "ANONIMO"

// PQRSType é o tipo de ticket: petición, queja, reclamo ou sugerencia.
type PQRSType string

const (
	PQRSPetition   PQRSType = "PETICION"
	PQRSComplaint  PQRSType = "QUEJA"
	PQRSClaim      PQRSType = "RECLAMO"
	PQRSSuggestion PQRSType = "SUGERENCIA"
)

// PQRSTypes lista os tipos na ordem de exibição.
var PQRSTypes = []PQRSType{PQRSPetition, PQRSComplaint, PQRSClaim, PQRSSuggestion}

func ParsePQRSType(s string) (PQRSType, bool) {
	t := PQRSType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range PQRSTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

type PQRSStatus string

const (
	PQRSPending    PQRSStatus = "PENDIENTE"
	PQRSInProgress PQRSStatus = "EN_PROCESO"
	PQRSResolved   PQRSStatus = "RESUELTO"
)

var PQRSStatuses = []PQRSStatus{PQRSPending, PQRSInProgress, PQRSResolved}

func ParsePQRSStatus(s string) (PQRSStatus, bool) {
	st := PQRSStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range PQRSStatuses {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// PQRSTicket representa uma petición/queja/reclamo/sugerencia.
type PQRSTicket struct {
	ID          ID         `json:"id"`
	Type        PQRSType   `json:"tipo"`
	AccountID   ID         `json:"cliente,omitempty"`
	Description string     `json:"descripcion"`
	Status      PQRSStatus `json:"estado"`
	Response    string     `json:"respuesta,omitempty"`
	SentAt      time.Time  `json:"fechaEnvio"`
	RespondedAt *time.Time `json:"fechaRespuesta,omitempty"`
}

type CreatePQRSRequest struct {
	Type        string `json:"tipo"`
	AccountID   string `json:"cliente,omitempty"`
	Description string `json:"descripcion"`
}

type UpdatePQRSStatusRequest struct {
	Status   string `json:"estado"`
	Response string `json:"respuesta,omitempty"`
}

// CountEntry é uma linha de relatório agregado.
type CountEntry struct {
	Key   string `json:"clave"`
	Count int    `json:"cantidad"`
}
