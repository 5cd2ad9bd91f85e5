package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperror "gosalon/internal/errors"
)

// ID é o identificador de documento: 24 caracteres hexadecimais minúsculos.
type ID string

// NewID gera um novo identificador.
func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// ParseID valida um identificador vindo do cliente. Entradas fora do formato
// são rejeitadas; nunca completamos nem truncamos o valor.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return "", apperror.NewValidationError("El id '" + s + "' no es válido.")
	}
	return ID(oid.Hex()), nil
}

func (id ID) String() string { return string(id) }

// IsZero indica um ID vazio (referência opcional ausente).
func (id ID) IsZero() bool { return id == "" }
