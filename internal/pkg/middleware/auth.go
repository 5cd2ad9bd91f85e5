package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
// Context Keys devem ser de um tipo próprio para não colidir com outras chaves.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
	RequestIDKey
)

// UserClaims representa os dados da conta extraídos do token JWT,
// que serão anexados ao contexto.
type UserClaims struct {
	AccountID domain.ID
	Email     string
	Name      string
	Role      domain.Role
}

// TokenParser define o contrato de validação necessário para o filtro.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// Rule associa um prefixo de rota à exigência de token.
// Role vazio aceita qualquer papel; AllowExpired aceita token vencido (refresh).
type Rule struct {
	Prefix       string
	Role         domain.Role
	AllowExpired bool
}

// DefaultRules são as regras da API. Rotas fora destes prefixos são públicas.
var DefaultRules = []Rule{
	{Prefix: "/api/auth", AllowExpired: true},
	{Prefix: "/api/usuario", Role: domain.RoleClient},
	{Prefix: "/api/estilista", Role: domain.RoleStylist},
	{Prefix: "/api/admin", Role: domain.RoleAdmin},
}

// NewAuthFilter classifica cada requisição pelo prefixo da rota e valida o token
// conforme a regra encontrada. Sem regra, a requisição segue sem verificação.
func NewAuthFilter(tokens TokenParser, rules []Rule, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			rule, ok := matchRule(rules, r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			// 1. Extrair o Token do Header Authorization: Bearer <token>
			raw := bearerToken(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "No se encontró el token de autorización.")
				return
			}

			// 2. Validar o Token
			claims, err := tokens.Parse(raw)
			switch {
			case err == nil:
			case errors.Is(err, token.ErrExpired):
				if !rule.AllowExpired {
					writeError(w, http.StatusUnauthorized, "El token está vencido.")
					return
				}
			default:
				log.Debug("Token rejeitado pelo filtro.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				writeError(w, http.StatusInternalServerError, "El token es incorrecto.")
				return
			}

			// 3. Verificar Permissão (AuthZ)
			if rule.Role != "" && domain.Role(claims.Role) != rule.Role {
				writeError(w, http.StatusForbidden, "No tiene permisos para acceder a este recurso.")
				return
			}

			// 4. Anexar Claims ao Contexto
			userClaims := UserClaims{
				AccountID: domain.ID(claims.AccountID),
				Email:     claims.Subject,
				Name:      claims.Name,
				Role:      domain.Role(claims.Role),
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// WithUserClaims anexa claims ao contexto (usado pelos testes de handler).
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

func matchRule(rules []Rule, path string) (Rule, bool) {
	for _, rule := range rules {
		if path == rule.Prefix || strings.HasPrefix(path, rule.Prefix+"/") {
			return rule, true
		}
	}
	return Rule{}, false
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.Fail(msg))
}
