package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Erros de validação expostos para o filtro de autorização.
var (
	ErrExpired          = errors.New("token expirado")
	ErrMalformed        = errors.New("token malformado")
	ErrInvalidSignature = errors.New("assinatura do token inválida")
)

// TokenService define o contrato para manipulação de JWTs.
type TokenService interface {
	Issue(subject string, claims Claims) (string, error)
	Parse(tokenString string) (*Claims, error)
	Refresh(tokenString string) (string, error)
}

// Claims são as informações da conta gravadas no JWT.
// É obrigatório incorporar jwt.RegisteredClaims.
type Claims struct {
	Role      string `json:"rol"`
	Name      string `json:"nombre"`
	AccountID string `json:"id"`
	jwt.RegisteredClaims
}

// Service implementa a interface TokenService com HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	issuer    string
	now       func() time.Time
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado na emissão e na validação.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIssuer define o claim "iss".
func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		issuer:    "GoSalon-API",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue cria um novo JWT assinado para o subject (email da conta) com os claims rol, nombre e id.
func (s *Service) Issue(subject string, claims Claims) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Assina o token com a chave secreta
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// Parse valida o token e retorna as claims.
// Para um token apenas expirado, retorna as claims junto com ErrExpired:
// a assinatura já foi verificada antes da validação dos claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return claims, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return nil, ErrInvalidSignature
	default:
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}

// Refresh reemite o token com o mesmo subject e claims, aceitando tokens expirados.
// Qualquer outra falha de validação é devolvida sem token.
func (s *Service) Refresh(tokenString string) (string, error) {
	claims, err := s.Parse(tokenString)
	if err != nil && !errors.Is(err, ErrExpired) {
		return "", err
	}
	return s.Issue(claims.Subject, Claims{
		Role:      claims.Role,
		Name:      claims.Name,
		AccountID: claims.AccountID,
	})
}
