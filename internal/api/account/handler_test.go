package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosalon/internal/api/account"
	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/middleware"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, req domain.RegisterRequest) (domain.ID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockAccountService) SendActivationCode(ctx context.Context, email string) {
	m.Called(ctx, email)
}

func (m *MockAccountService) SendRecoveryCode(ctx context.Context, email string) {
	m.Called(ctx, email)
}

func (m *MockAccountService) Activate(ctx context.Context, req domain.ActivateRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAccountService) RecoverPassword(ctx context.Context, req domain.RecoverPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAccountService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAccountService) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.TokenResponse), args.Error(1)
}

func (m *MockAccountService) RefreshToken(tokenString string) (domain.TokenResponse, error) {
	args := m.Called(tokenString)
	return args.Get(0).(domain.TokenResponse), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, id domain.ID) (domain.AccountInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AccountInfo), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.AccountInfo, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AccountInfo), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) domain.Response {
	t.Helper()
	var body domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func asClient(req *http.Request, id domain.ID) *http.Request {
	ctx := middleware.WithUserClaims(req.Context(), middleware.UserClaims{AccountID: id, Role: domain.RoleClient, Name: "Ana"})
	return req.WithContext(ctx)
}

func TestLoginHandler(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	svc.On("Login", mock.Anything, domain.LoginRequest{Email: "ana@mail.com", Password: "Secreta#1"}).
		Return(domain.TokenResponse{Token: "jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/publico/iniciar-sesion", strings.NewReader(`{"email":"ana@mail.com","contrasenia":"Secreta#1"}`))
	rec := httptest.NewRecorder()
	h.LoginHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Error)
	assert.Equal(t, map[string]interface{}{"token": "jwt"}, body.Respuesta)
	svc.AssertExpectations(t)
}

func TestLoginHandler_Locked(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	svc.On("Login", mock.Anything, mock.Anything).
		Return(domain.TokenResponse{}, apperror.NewLockedError("La cuenta está bloqueada."))

	req := httptest.NewRequest(http.MethodPost, "/api/publico/iniciar-sesion", strings.NewReader(`{"email":"a@b.co","contrasenia":"x"}`))
	rec := httptest.NewRecorder()
	h.LoginHandler(rec, req)

	assert.Equal(t, http.StatusLocked, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Error)
	assert.Equal(t, "La cuenta está bloqueada.", body.Respuesta)
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/publico/crear-usuario", strings.NewReader(`{"cedula":`))
	rec := httptest.NewRecorder()
	h.RegisterHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_Created(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	svc.On("Register", mock.Anything, mock.MatchedBy(func(r domain.RegisterRequest) bool {
		return r.Cedula == "1094" && r.Email == "ana@mail.com"
	})).Return(domain.NewID(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/publico/crear-usuario", strings.NewReader(`{"cedula":"1094","email":"ana@mail.com"}`))
	rec := httptest.NewRecorder()
	h.RegisterHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Usuario registrado correctamente", decode(t, rec).Respuesta)
}

func TestSendRecoveryCodeHandler(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())
	svc.On("SendRecoveryCode", mock.Anything, "ana@mail.com").Return()

	req := httptest.NewRequest(http.MethodGet, "/api/publico/enviar-codigo-recuperacion?correo=ana@mail.com", nil)
	rec := httptest.NewRecorder()
	h.SendRecoveryCodeHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)

	// Sem correo não chega ao serviço.
	rec = httptest.NewRecorder()
	h.SendRecoveryCodeHandler(rec, httptest.NewRequest(http.MethodGet, "/api/publico/enviar-codigo-recuperacion", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "SendRecoveryCode", 1)
}

func TestRefreshHandler_HeaderAndQuery(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())
	svc.On("RefreshToken", "old-header").Return(domain.TokenResponse{Token: "new"}, nil)
	svc.On("RefreshToken", "old-query").Return(domain.TokenResponse{Token: "new"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer old-header")
	rec := httptest.NewRecorder()
	h.RefreshHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.RefreshHandler(rec, httptest.NewRequest(http.MethodGet, "/api/auth/refresh?token=old-query", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestProfileHandlers_UseTokenAccount(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())
	me := domain.NewID()

	svc.On("GetAccount", mock.Anything, me).Return(domain.AccountInfo{ID: me, FullName: "Ana"}, nil)
	svc.On("UpdateProfile", mock.Anything, domain.UpdateProfileRequest{ID: me, FullName: "Ana María"}).
		Return(domain.AccountInfo{ID: me, FullName: "Ana María"}, nil)
	svc.On("ChangePassword", mock.Anything, mock.MatchedBy(func(r domain.ChangePasswordRequest) bool { return r.ID == me })).Return(nil)
	svc.On("DeleteAccount", mock.Anything, me).Return(nil)

	rec := httptest.NewRecorder()
	h.ProfileHandler(rec, asClient(httptest.NewRequest(http.MethodGet, "/api/usuario/perfil", nil), me))
	assert.Equal(t, http.StatusOK, rec.Code)

	// O id do corpo é ignorado.
	other := domain.NewID()
	rec = httptest.NewRecorder()
	body := `{"id":"` + other.String() + `","nombreCompleto":"Ana María"}`
	h.UpdateProfileHandler(rec, asClient(httptest.NewRequest(http.MethodPut, "/api/usuario/editar-perfil", strings.NewReader(body)), me))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ChangePasswordHandler(rec, asClient(httptest.NewRequest(http.MethodPut, "/api/usuario/cambiar-contrasenia", strings.NewReader(`{"contraseniaActual":"a"}`)), me))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.DeleteAccountHandler(rec, asClient(httptest.NewRequest(http.MethodDelete, "/api/usuario/eliminar-cuenta", nil), me))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestProfileHandler_WithoutClaims(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.ProfileHandler(rec, httptest.NewRequest(http.MethodGet, "/api/usuario/perfil", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAccountHandler_BadID(t *testing.T) {
	svc := new(MockAccountService)
	h := account.NewHandler(svc, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/obtener-usuario/123", nil)
	req.SetPathValue("id", "123")
	rec := httptest.NewRecorder()
	h.GetAccountHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}
