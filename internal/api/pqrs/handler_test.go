package pqrs_test

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

	"gosalon/internal/api/pqrs"
	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

type MockPQRSService struct {
	mock.Mock
}

func (m *MockPQRSService) Register(ctx context.Context, req domain.CreatePQRSRequest) (domain.PQRSTicket, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.PQRSTicket), args.Error(1)
}

func (m *MockPQRSService) UpdateStatus(ctx context.Context, id string, req domain.UpdatePQRSStatusRequest) (domain.PQRSTicket, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.PQRSTicket), args.Error(1)
}

func (m *MockPQRSService) List(ctx context.Context) ([]domain.PQRSTicket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PQRSTicket), args.Error(1)
}

func (m *MockPQRSService) CountByType(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

func (m *MockPQRSService) CountByAccount(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

func (m *MockPQRSService) CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

func (m *MockPQRSService) Types() []domain.PQRSType {
	return m.Called().Get(0).([]domain.PQRSType)
}

func (m *MockPQRSService) Statuses() []domain.PQRSStatus {
	return m.Called().Get(0).([]domain.PQRSStatus)
}

func TestCreateHandler(t *testing.T) {
	svc := new(MockPQRSService)
	h := pqrs.NewHandler(svc, logger.Nop())
	svc.On("Register", mock.Anything, domain.CreatePQRSRequest{Type: "reclamo", Description: "Cobro doble"}).
		Return(domain.PQRSTicket{ID: domain.NewID(), Type: domain.PQRSClaim, Status: domain.PQRSPending}, nil)

	rec := httptest.NewRecorder()
	h.CreateHandler(rec, httptest.NewRequest(http.MethodPost, "/quejas-sugerencias/crear", strings.NewReader(`{"tipo":"reclamo","descripcion":"Cobro doble"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateHandler_UnknownAccount(t *testing.T) {
	svc := new(MockPQRSService)
	h := pqrs.NewHandler(svc, logger.Nop())
	svc.On("Register", mock.Anything, mock.Anything).Return(domain.PQRSTicket{}, apperror.NewNotFoundError("El cliente no existe."))

	rec := httptest.NewRecorder()
	h.CreateHandler(rec, httptest.NewRequest(http.MethodPost, "/quejas-sugerencias/crear", strings.NewReader(`{"tipo":"QUEJA","cliente":"x"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTypesHandler(t *testing.T) {
	svc := new(MockPQRSService)
	h := pqrs.NewHandler(svc, logger.Nop())
	svc.On("Types").Return(domain.PQRSTypes)

	rec := httptest.NewRecorder()
	h.TypesHandler(rec, httptest.NewRequest(http.MethodGet, "/quejas-sugerencias/tipos", nil))

	var body struct {
		Error     bool     `json:"error"`
		Respuesta []string `json:"respuesta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"PETICION", "QUEJA", "RECLAMO", "SUGERENCIA"}, body.Respuesta)
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := new(MockPQRSService)
	h := pqrs.NewHandler(svc, logger.Nop())
	id := domain.NewID().String()
	svc.On("UpdateStatus", mock.Anything, id, domain.UpdatePQRSStatusRequest{Status: "RESUELTO", Response: "Listo"}).
		Return(domain.PQRSTicket{Status: domain.PQRSResolved}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/pqrs/"+id+"/estado", strings.NewReader(`{"estado":"RESUELTO","respuesta":"Listo"}`))
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.UpdateStatusHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCountByTypeHandler(t *testing.T) {
	svc := new(MockPQRSService)
	h := pqrs.NewHandler(svc, logger.Nop())
	svc.On("CountByType", mock.Anything).Return([]domain.CountEntry{{Key: "QUEJA", Count: 2}}, nil)

	rec := httptest.NewRecorder()
	h.CountByTypeHandler(rec, httptest.NewRequest(http.MethodGet, "/api/admin/reportes/quejas-por-tipo", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clave":"QUEJA"`)
}
