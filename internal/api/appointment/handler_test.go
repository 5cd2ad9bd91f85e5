package appointment_test

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

	"gosalon/internal/api/appointment"
	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/middleware"
)

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) Create(ctx context.Context, req domain.CreateAppointmentRequest) (domain.ID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockAppointmentService) Cancel(ctx context.Context, id string) (domain.ID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockAppointmentService) Reschedule(ctx context.Context, req domain.RescheduleRequest) (domain.ID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockAppointmentService) Complete(ctx context.Context, id string) (domain.ID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockAppointmentService) Get(ctx context.Context, id string) (domain.AppointmentInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) ListByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) ListHistoryByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) ListByStylist(ctx context.Context, stylistID string) ([]domain.AppointmentInfo, error) {
	args := m.Called(ctx, stylistID)
	return args.Get(0).([]domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) ListByStatus(ctx context.Context, status string) ([]domain.AppointmentInfo, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) ListAll(ctx context.Context) ([]domain.AppointmentInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AppointmentInfo), args.Error(1)
}

func (m *MockAppointmentService) Calendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CalendarEntry), args.Error(1)
}

func withClaims(req *http.Request, id domain.ID, role domain.Role) *http.Request {
	ctx := middleware.WithUserClaims(req.Context(), middleware.UserClaims{AccountID: id, Role: role})
	return req.WithContext(ctx)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) domain.Response {
	t.Helper()
	var body domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateHandler_DefaultsClientToToken(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	me := domain.NewID()
	created := domain.NewID()

	svc.On("Create", mock.Anything, mock.MatchedBy(func(r domain.CreateAppointmentRequest) bool {
		return r.ClientID == me.String() && r.DateTime == "2026-11-02 10:00"
	})).Return(created, nil)

	body := `{"estilistaId":"` + domain.NewID().String() + `","servicioId":"` + domain.NewID().String() + `","fechaHora":"2026-11-02 10:00"}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/usuario/citas/crear", strings.NewReader(body)), me, domain.RoleClient)
	rec := httptest.NewRecorder()
	h.CreateHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Cita creada con éxito. ID: "+created.String(), decode(t, rec).Respuesta)
	svc.AssertExpectations(t)
}

func TestCreateHandler_OtherClientForbidden(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())

	body := `{"usuarioId":"` + domain.NewID().String() + `","fechaHora":"2026-11-02 10:00"}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/usuario/citas/crear", strings.NewReader(body)), domain.NewID(), domain.RoleClient)
	rec := httptest.NewRecorder()
	h.CreateHandler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateHandler_SlotTaken(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	me := domain.NewID()

	svc.On("Create", mock.Anything, mock.Anything).
		Return(domain.ID(""), apperror.NewSlotTakenError("El estilista ya tiene una cita en ese horario."))

	body := `{"usuarioId":"` + me.String() + `","fechaHora":"2026-11-02 10:00"}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/usuario/citas/crear", strings.NewReader(body)), me, domain.RoleClient)
	rec := httptest.NewRecorder()
	h.CreateHandler(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, "El estilista ya tiene una cita en ese horario.", resp.Respuesta)
}

func TestCancelHandler_UsesPathValue(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	id := domain.NewID()
	me := domain.NewID()

	svc.On("Get", mock.Anything, id.String()).Return(domain.AppointmentInfo{ID: id, ClientID: me}, nil)
	svc.On("Cancel", mock.Anything, id.String()).Return(id, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/usuario/citas/cancelar/"+id.String(), nil)
	req.SetPathValue("citaId", id.String())
	rec := httptest.NewRecorder()
	h.CancelHandler(rec, withClaims(req, me, domain.RoleClient))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestSingleAppointmentRoutes_OtherClientForbidden(t *testing.T) {
	id := domain.NewID()
	owner := domain.NewID()
	intruder := domain.NewID()

	tests := []struct {
		name    string
		request func() *http.Request
		call    func(h *appointment.Handler, w http.ResponseWriter, r *http.Request)
	}{
		{
			name: "obter",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/usuario/citas/"+id.String(), nil)
			},
			call: (*appointment.Handler).GetHandler,
		},
		{
			name: "reprogramar",
			request: func() *http.Request {
				body := `{"citaId":"` + id.String() + `","nuevaFechaHora":"2026-01-02 11:00"}`
				return httptest.NewRequest(http.MethodPut, "/api/usuario/citas/reprogramar", strings.NewReader(body))
			},
			call: (*appointment.Handler).RescheduleHandler,
		},
		{
			name: "cancelar",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPut, "/api/usuario/citas/cancelar/"+id.String(), nil)
			},
			call: (*appointment.Handler).CancelHandler,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAppointmentService)
			h := appointment.NewHandler(svc, logger.Nop())
			svc.On("Get", mock.Anything, id.String()).Return(domain.AppointmentInfo{ID: id, ClientID: owner}, nil)

			req := tc.request()
			req.SetPathValue("citaId", id.String())
			rec := httptest.NewRecorder()
			tc.call(h, rec, withClaims(req, intruder, domain.RoleClient))

			assert.Equal(t, http.StatusForbidden, rec.Code)
			svc.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
		})
	}
}

func TestSingleAppointmentRoutes_AdminAndStylistSkipOwnership(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	id := domain.NewID()
	svc.On("Cancel", mock.Anything, id.String()).Return(id, nil)
	svc.On("Get", mock.Anything, id.String()).Return(domain.AppointmentInfo{ID: id, ClientID: domain.NewID()}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/citas/cancelar/"+id.String(), nil)
	req.SetPathValue("citaId", id.String())
	rec := httptest.NewRecorder()
	h.CancelHandler(rec, withClaims(req, domain.NewID(), domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/estilista/citas/"+id.String(), nil)
	req.SetPathValue("citaId", id.String())
	rec = httptest.NewRecorder()
	h.GetHandler(rec, withClaims(req, domain.NewID(), domain.RoleStylist))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertNumberOfCalls(t, "Get", 1)
}

func TestListByClientHandler_Ownership(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	me := domain.NewID()

	svc.On("ListByClient", mock.Anything, me.String()).Return([]domain.AppointmentInfo{{ID: domain.NewID(), StylistName: "Laura"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/usuario/citas/mis-citas/"+me.String(), nil)
	req.SetPathValue("clienteId", me.String())
	rec := httptest.NewRecorder()
	h.ListByClientHandler(rec, withClaims(req, me, domain.RoleClient))
	assert.Equal(t, http.StatusOK, rec.Code)

	other := domain.NewID()
	req = httptest.NewRequest(http.MethodGet, "/api/usuario/citas/mis-citas/"+other.String(), nil)
	req.SetPathValue("clienteId", other.String())
	rec = httptest.NewRecorder()
	h.ListByClientHandler(rec, withClaims(req, me, domain.RoleClient))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	svc.AssertNumberOfCalls(t, "ListByClient", 1)
}

func TestListByStatusHandler_PathOrQuery(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	svc.On("ListByStatus", mock.Anything, "confirmada").Return([]domain.AppointmentInfo{}, nil)
	svc.On("ListByStatus", mock.Anything, "CANCELADA").Return([]domain.AppointmentInfo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/estilista/citas/estado/confirmada", nil)
	req.SetPathValue("estado", "confirmada")
	rec := httptest.NewRecorder()
	h.ListByStatusHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ListByStatusHandler(rec, httptest.NewRequest(http.MethodGet, "/api/admin/citas/por-estado?estado=CANCELADA", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestCompleteHandler_InvalidTransition(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	id := domain.NewID()
	svc.On("Complete", mock.Anything, id.String()).
		Return(domain.ID(""), apperror.NewValidationError("Solo se pueden completar citas confirmadas o reprogramadas."))

	req := httptest.NewRequest(http.MethodPut, "/api/estilista/citas/completar/"+id.String(), nil)
	req.SetPathValue("citaId", id.String())
	rec := httptest.NewRecorder()
	h.CompleteHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler(t *testing.T) {
	svc := new(MockAppointmentService)
	h := appointment.NewHandler(svc, logger.Nop())
	svc.On("Calendar", mock.Anything).Return([]domain.CalendarEntry{{}}, nil)

	rec := httptest.NewRecorder()
	h.CalendarHandler(rec, httptest.NewRequest(http.MethodGet, "/api/usuario/citas/calendario", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	list, ok := decode(t, rec).Respuesta.([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)
}
