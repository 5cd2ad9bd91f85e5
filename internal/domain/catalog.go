package domain

import "github.com/shopspring/decimal"

// Stylist é um registro de referência somente leitura para as citas.
type Stylist struct {
	ID          ID     `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Email       string `json:"correo"`
}

// Service é um serviço oferecido pelo salão.
type Service struct {
	ID              ID              `json:"id"`
	Name            string          `json:"nombre"`
	Price           decimal.Decimal `json:"precio"`
	DurationMinutes int             `json:"duracionMinutos"`
}
