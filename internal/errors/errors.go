package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do GoSalon.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Erros de Validação ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// InvalidCodeError indica que um código de ativação/recuperação não confere.
type InvalidCodeError struct {
	Msg string
}

func (e *InvalidCodeError) Error() string    { return e.Msg }
func (e *InvalidCodeError) Category() string { return "INVALID_CODE" }
func (e *InvalidCodeError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *InvalidCodeError) Unwrap() error    { return nil }

func NewInvalidCodeError(msg string) AppError {
	return &InvalidCodeError{Msg: msg}
}

// MismatchError indica que senha nova e confirmação são diferentes.
type MismatchError struct {
	Msg string
}

func (e *MismatchError) Error() string    { return e.Msg }
func (e *MismatchError) Category() string { return "PASSWORD_MISMATCH" }
func (e *MismatchError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *MismatchError) Unwrap() error    { return nil }

func NewMismatchError(msg string) AppError {
	return &MismatchError{Msg: msg}
}

// ExpiredError representa um código temporário que passou da validade.
type ExpiredError struct {
	Msg string
}

func (e *ExpiredError) Error() string    { return e.Msg }
func (e *ExpiredError) Category() string { return "EXPIRED" }
func (e *ExpiredError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ExpiredError) Unwrap() error    { return nil }

func NewExpiredError(msg string) AppError {
	return &ExpiredError{Msg: msg}
}

// --- Erros de Recurso ---

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um recurso duplicado (cédula, email, código de cupom).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// SlotTakenError indica que o estilista já tem uma cita ativa no mesmo horário.
type SlotTakenError struct {
	Msg string
}

func (e *SlotTakenError) Error() string    { return e.Msg }
func (e *SlotTakenError) Category() string { return "SLOT_TAKEN" }
func (e *SlotTakenError) HTTPStatus() int  { return http.StatusConflict }
func (e *SlotTakenError) Unwrap() error    { return nil }

func NewSlotTakenError(msg string) AppError {
	return &SlotTakenError{Msg: msg}
}

// --- Erros de Autenticação/Autorização ---

// UnauthorizedError representa ausência de credenciais ou token vencido.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um papel (rol) sem permissão para o recurso.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return e.Msg }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// IncorrectPasswordError indica senha incorreta no login ou na troca de senha.
type IncorrectPasswordError struct {
	Msg string
}

func (e *IncorrectPasswordError) Error() string    { return e.Msg }
func (e *IncorrectPasswordError) Category() string { return "INCORRECT_PASSWORD" }
func (e *IncorrectPasswordError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *IncorrectPasswordError) Unwrap() error    { return nil }

func NewIncorrectPasswordError(msg string) AppError {
	return &IncorrectPasswordError{Msg: msg}
}

// InactiveOrDeletedError indica conta ainda não ativada ou eliminada.
type InactiveOrDeletedError struct {
	Msg string
}

func (e *InactiveOrDeletedError) Error() string    { return e.Msg }
func (e *InactiveOrDeletedError) Category() string { return "ACCOUNT_INACTIVE" }
func (e *InactiveOrDeletedError) HTTPStatus() int  { return http.StatusForbidden }
func (e *InactiveOrDeletedError) Unwrap() error    { return nil }

func NewInactiveOrDeletedError(msg string) AppError {
	return &InactiveOrDeletedError{Msg: msg}
}

// LockedError indica conta bloqueada por excesso de tentativas.
type LockedError struct {
	Msg string
}

func (e *LockedError) Error() string    { return e.Msg }
func (e *LockedError) Category() string { return "ACCOUNT_LOCKED" }
func (e *LockedError) HTTPStatus() int  { return http.StatusLocked } // 423
func (e *LockedError) Unwrap() error    { return nil }

func NewLockedError(msg string) AppError {
	return &LockedError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Error interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocurrió un error inesperado."
}
