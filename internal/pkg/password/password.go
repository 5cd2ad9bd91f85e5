package password

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperror "gosalon/internal/errors"
)

const (
	minLength = 8
	maxLength = 24
)

// Hasher define o contrato de hashing de senhas usado pelo serviço de autenticação.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// BcryptHasher implementa Hasher com bcrypt (salt embutido no hash).
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher. cost <= 0 usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// Validate aplica a política de senha: 8 a 24 caracteres, começando com
// letra maiúscula e terminando com um caractere especial (!@#$%^&*).
func Validate(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minLength || n > maxLength {
		return apperror.NewValidationError("La contraseña debe tener entre 8 y 24 caracteres.")
	}
	first, _ := utf8.DecodeRuneInString(password)
	last, _ := utf8.DecodeLastRuneInString(password)
	if !unicode.IsUpper(first) || !isSpecial(last) {
		return apperror.NewValidationError("La contraseña debe comenzar con una letra mayúscula y terminar con un carácter especial.")
	}
	return nil
}

func isSpecial(r rune) bool {
	switch r {
	case '!', '@', '#', '$', '%', '^', '&', '*':
		return true
	}
	return false
}
