package appointment

import (
	"context"
	"fmt"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

// AppointmentService define o contrato que o Handler espera da camada de Serviço.
type AppointmentService interface {
	Create(ctx context.Context, req domain.CreateAppointmentRequest) (domain.ID, error)
	Cancel(ctx context.Context, id string) (domain.ID, error)
	Reschedule(ctx context.Context, req domain.RescheduleRequest) (domain.ID, error)
	Complete(ctx context.Context, id string) (domain.ID, error)
	Get(ctx context.Context, id string) (domain.AppointmentInfo, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error)
	ListHistoryByClient(ctx context.Context, clientID string) ([]domain.AppointmentInfo, error)
	ListByStylist(ctx context.Context, stylistID string) ([]domain.AppointmentInfo, error)
	ListByStatus(ctx context.Context, status string) ([]domain.AppointmentInfo, error)
	ListAll(ctx context.Context) ([]domain.AppointmentInfo, error)
	Calendar(ctx context.Context) ([]domain.CalendarEntry, error)
}

// Handler agrupa os handlers de citas usados por clientes, estilistas e administradores.
type Handler struct {
	Service AppointmentService
	Logger  logger.Logger
}

func NewHandler(svc AppointmentService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// CreateHandler lida com a requisição POST /api/usuario/citas/crear.
// Sem usuarioId no corpo a cita é criada para a conta do token.
// @Summary Agenda uma cita
// @Description Cria uma cita CONFIRMADA se o estilista estiver livre no horário (formato AAAA-MM-DD HH:MM).
// @Tags citas
// @Accept json
// @Produce json
// @Param cita body domain.CreateAppointmentRequest true "Dados da cita"
// @Success 201 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Payload ou data inválidos"
// @Failure 404 {object} domain.ErrorResponse "Estilista ou serviço inexistente"
// @Failure 409 {object} domain.ErrorResponse "Horário ocupado"
// @Security ApiKeyAuth
// @Router /api/usuario/citas/crear [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAppointmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if req.ClientID == "" {
		if claims, err := httpx.Claims(r); err == nil {
			req.ClientID = claims.AccountID.String()
		}
	}
	if err := httpx.SameAccount(r, req.ClientID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	id, err := h.Service.Create(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, fmt.Sprintf("Cita creada con éxito. ID: %s", id), nil, http.StatusCreated)
}

// RescheduleHandler lida com a requisição PUT /api/usuario/citas/reprogramar.
// @Summary Reprograma uma cita
// @Tags citas
// @Accept json
// @Produce json
// @Param datos body domain.RescheduleRequest true "Cita e novo horário"
// @Success 200 {object} domain.Response
// @Failure 409 {object} domain.ErrorResponse "Horário ocupado"
// @Security ApiKeyAuth
// @Router /api/usuario/citas/reprogramar [put]
func (h *Handler) RescheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RescheduleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	if err := h.authorizeClient(r, req.AppointmentID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	id, err := h.Service.Reschedule(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, fmt.Sprintf("Cita reprogramada correctamente. ID: %s", id), nil, http.StatusOK)
}

// CancelHandler lida com PUT /api/usuario/citas/cancelar/{citaId} e /api/admin/citas/cancelar/{citaId}.
// @Summary Cancela uma cita
// @Tags citas
// @Produce json
// @Param citaId path string true "ID da cita"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Cita completada"
// @Failure 404 {object} domain.ErrorResponse "Cita não encontrada"
// @Security ApiKeyAuth
// @Router /api/usuario/citas/cancelar/{citaId} [put]
func (h *Handler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	citaID := r.PathValue("citaId")
	if err := h.authorizeClient(r, citaID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	id, err := h.Service.Cancel(r.Context(), citaID)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, fmt.Sprintf("Cita cancelada correctamente. ID: %s", id), nil, http.StatusOK)
}

// CompleteHandler lida com a requisição PUT /api/estilista/citas/completar/{citaId}.
// @Summary Marca a cita como atendida
// @Tags citas
// @Produce json
// @Param citaId path string true "ID da cita"
// @Success 200 {object} domain.Response
// @Security ApiKeyAuth
// @Router /api/estilista/citas/completar/{citaId} [put]
func (h *Handler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.Service.Complete(r.Context(), r.PathValue("citaId"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, fmt.Sprintf("Cita completada correctamente. ID: %s", id), nil, http.StatusOK)
}

// GetHandler lida com GET .../citas/{citaId} nos três perfis.
// @Summary Obtém uma cita
// @Tags citas
// @Produce json
// @Param citaId path string true "ID da cita"
// @Success 200 {object} domain.Response{respuesta=domain.AppointmentInfo}
// @Failure 404 {object} domain.ErrorResponse "Cita não encontrada"
// @Security ApiKeyAuth
// @Router /api/usuario/citas/{citaId} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.Get(r.Context(), r.PathValue("citaId"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	if err := ownedByCaller(r, info); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, info, nil, http.StatusOK)
}

// ListByClientHandler lida com a requisição GET /api/usuario/citas/mis-citas/{clienteId}.
// @Summary Citas ativas do cliente
// @Tags citas
// @Produce json
// @Param clienteId path string true "ID do cliente"
// @Success 200 {object} domain.Response{respuesta=[]domain.AppointmentInfo}
// @Failure 403 {object} domain.ErrorResponse "Outra conta"
// @Security ApiKeyAuth
// @Router /api/usuario/citas/mis-citas/{clienteId} [get]
func (h *Handler) ListByClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clienteId")
	if err := httpx.SameAccount(r, clientID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	list, err := h.Service.ListByClient(r.Context(), clientID)
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// HistoryHandler lida com a requisição GET /api/usuario/citas/historial/{clienteId}.
// @Summary Citas canceladas e completadas do cliente
// @Tags citas
// @Produce json
// @Param clienteId path string true "ID do cliente"
// @Success 200 {object} domain.Response{respuesta=[]domain.AppointmentInfo}
// @Security ApiKeyAuth
// @Router /api/usuario/citas/historial/{clienteId} [get]
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clienteId")
	if err := httpx.SameAccount(r, clientID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	list, err := h.Service.ListHistoryByClient(r.Context(), clientID)
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByStylistHandler lida com GET /api/estilista/citas/mis-citas/{estilistaId}
// e /api/admin/citas/por-estilista/{estilistaId}.
// @Summary Citas do estilista
// @Tags citas
// @Produce json
// @Param estilistaId path string true "ID do estilista"
// @Success 200 {object} domain.Response{respuesta=[]domain.AppointmentInfo}
// @Security ApiKeyAuth
// @Router /api/estilista/citas/mis-citas/{estilistaId} [get]
//
// Estilistas vivem no catálogo, sem vínculo com a conta do token, então a rota
// não restringe o estilistaId ao chamador.
func (h *Handler) ListByStylistHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByStylist(r.Context(), r.PathValue("estilistaId"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByStatusHandler lida com GET /api/estilista/citas/estado/{estado} e
// /api/admin/citas/por-estado?estado=. Estado desconhecido devolve lista vazia.
// @Summary Citas por estado
// @Tags citas
// @Produce json
// @Param estado path string true "CONFIRMADA, CANCELADA, REPROGRAMADA ou COMPLETADA"
// @Success 200 {object} domain.Response{respuesta=[]domain.AppointmentInfo}
// @Security ApiKeyAuth
// @Router /api/estilista/citas/estado/{estado} [get]
func (h *Handler) ListByStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := r.PathValue("estado")
	if status == "" {
		status = r.URL.Query().Get("estado")
	}

	list, err := h.Service.ListByStatus(r.Context(), status)
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListAllHandler lida com a requisição GET /api/admin/citas/todas.
// @Summary Lista todas as citas
// @Tags admin
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.AppointmentInfo}
// @Security ApiKeyAuth
// @Router /api/admin/citas/todas [get]
func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListAll(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// CalendarHandler lida com a requisição GET /api/usuario/citas/calendario.
// @Summary Horários ocupados
// @Description Blocos de uma hora de todas as citas ativas, sem dados do cliente.
// @Tags citas
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.CalendarEntry}
// @Security ApiKeyAuth
// @Router /api/usuario/citas/calendario [get]
func (h *Handler) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.Calendar(r.Context())
	h.handleServiceResponse(w, r, entries, err, http.StatusOK)
}

// authorizeClient carrega a cita e exige que um CLIENTE seja o dono dela.
// Estilistas e administradores já foram filtrados pelo prefixo da rota.
func (h *Handler) authorizeClient(r *http.Request, citaID string) error {
	claims, err := httpx.Claims(r)
	if err != nil {
		return err
	}
	if claims.Role != domain.RoleClient {
		return nil
	}

	info, err := h.Service.Get(r.Context(), citaID)
	if err != nil {
		return err
	}
	return httpx.SameAccount(r, info.ClientID.String())
}

func ownedByCaller(r *http.Request, info domain.AppointmentInfo) error {
	claims, err := httpx.Claims(r)
	if err != nil {
		return err
	}
	if claims.Role != domain.RoleClient {
		return nil
	}
	return httpx.SameAccount(r, info.ClientID.String())
}
