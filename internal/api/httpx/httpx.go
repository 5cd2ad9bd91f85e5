// Package httpx reúne o que todos os handlers compartilham: o envelope de resposta,
// a decodificação do corpo e a leitura das claims do token.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/middleware"
)

const maxBodyBytes = 1 << 20

// Respond escreve o envelope {"error", "respuesta"}. Com err != nil o status vem
// da tradução do AppError e o successStatus é ignorado.
func Respond(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		writeJSON(w, log, successStatus, domain.OK(data))
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	writeJSON(w, log, status, domain.Fail(message))
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, body domain.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// DecodeJSON lê o corpo no destino. Qualquer falha vira erro de validação.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

// Claims devolve as claims anexadas pelo filtro de autenticação.
func Claims(r *http.Request) (middleware.UserClaims, error) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		return middleware.UserClaims{}, apperror.NewUnauthorizedError("No se encontró el token de autorización.")
	}
	return claims, nil
}

// SameAccount garante que o recurso pedido pertence à conta do token.
// Administradores podem acessar qualquer conta.
func SameAccount(r *http.Request, accountID string) error {
	claims, err := Claims(r)
	if err != nil {
		return err
	}
	if claims.Role == domain.RoleAdmin || claims.AccountID.String() == accountID {
		return nil
	}
	return apperror.NewForbiddenError("No tiene permisos para acceder a este recurso.")
}
