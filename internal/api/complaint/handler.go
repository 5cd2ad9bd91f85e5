package complaint

import (
	"context"
	"fmt"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

// ComplaintService define o contrato que o Handler espera da camada de Serviço.
type ComplaintService interface {
	Create(ctx context.Context, req domain.CreateComplaintRequest) (domain.ID, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (domain.Complaint, error)
	Respond(ctx context.Context, req domain.RespondComplaintRequest) error
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Complaint, error)
	ListByService(ctx context.Context, serviceName string) ([]domain.Complaint, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Complaint, error)
	ListByDateRange(ctx context.Context, from, to string) ([]domain.Complaint, error)
	ListByDay(ctx context.Context, day string) ([]domain.Complaint, error)
}

// Handler agrupa os handlers de quejas.
type Handler struct {
	Service ComplaintService
	Logger  logger.Logger
}

func NewHandler(svc ComplaintService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// CreateHandler lida com a requisição POST /api/usuario/crear-queja.
// Cliente e nome ausentes no corpo são preenchidos a partir do token.
// @Summary Registra uma queja
// @Tags quejas
// @Accept json
// @Produce json
// @Param queja body domain.CreateComplaintRequest true "Dados da queja"
// @Success 201 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /api/usuario/crear-queja [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateComplaintRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if claims, err := httpx.Claims(r); err == nil {
		if req.ClientID == "" {
			req.ClientID = claims.AccountID.String()
		}
		if req.ClientName == "" {
			req.ClientName = claims.Name
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
	h.handleServiceResponse(w, r, fmt.Sprintf("Queja creada correctamente con ID: %s", id), nil, http.StatusCreated)
}

// ListMineHandler lida com a requisição GET /api/usuario/quejas/{clienteId}.
// @Summary Quejas do cliente
// @Tags quejas
// @Produce json
// @Param clienteId path string true "ID do cliente"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Failure 403 {object} domain.ErrorResponse "Outra conta"
// @Security ApiKeyAuth
// @Router /api/usuario/quejas/{clienteId} [get]
func (h *Handler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("clienteId")
	if err := httpx.SameAccount(r, clientID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	list, err := h.Service.ListByClient(r.Context(), clientID)
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// GetHandler lida com a requisição GET /api/admin/obtener-queja/{id}.
// @Summary Obtém uma queja
// @Tags admin
// @Produce json
// @Param id path string true "ID da queja"
// @Success 200 {object} domain.Response{respuesta=domain.Complaint}
// @Failure 404 {object} domain.ErrorResponse "Queja não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/obtener-queja/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Get(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, c, err, http.StatusOK)
}

// DeleteHandler lida com a requisição DELETE /api/admin/eliminar-queja/{id}.
// @Summary Elimina uma queja sem resposta
// @Tags admin
// @Produce json
// @Param id path string true "ID da queja"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Queja já respondida ou eliminada"
// @Security ApiKeyAuth
// @Router /api/admin/eliminar-queja/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, "Queja eliminada correctamente", err, http.StatusOK)
}

// RespondHandler lida com a requisição PUT /api/admin/responder-queja/{idQueja}.
// @Summary Responde uma queja
// @Tags admin
// @Accept json
// @Produce json
// @Param idQueja path string true "ID da queja"
// @Param respuesta body domain.RespondComplaintRequest true "Texto da resposta"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Queja já respondida"
// @Security ApiKeyAuth
// @Router /api/admin/responder-queja/{idQueja} [put]
func (h *Handler) RespondHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RespondComplaintRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	req.ComplaintID = r.PathValue("idQueja")

	err := h.Service.Respond(r.Context(), req)
	h.handleServiceResponse(w, r, "Queja resuelta correctamente", err, http.StatusOK)
}

// ListAllHandler lida com a requisição GET /api/admin/obtener-quejas.
// @Summary Lista as quejas não eliminadas
// @Tags admin
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas [get]
func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListAll(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByServiceHandler lida com a requisição GET /api/admin/obtener-quejas-por/servicio?servicio=.
// @Summary Quejas por nome de serviço
// @Tags admin
// @Produce json
// @Param servicio query string true "Nome do serviço"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas-por/servicio [get]
func (h *Handler) ListByServiceHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByService(r.Context(), r.URL.Query().Get("servicio"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByClientHandler lida com a requisição GET /api/admin/obtener-quejas-por/cliente?clienteId=.
// @Summary Quejas de um cliente
// @Tags admin
// @Produce json
// @Param clienteId query string true "ID do cliente"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas-por/cliente [get]
func (h *Handler) ListByClientHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByClient(r.Context(), r.URL.Query().Get("clienteId"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByStatusHandler lida com a requisição GET /api/admin/obtener-quejas-por/estado?estado=.
// @Summary Quejas por estado
// @Tags admin
// @Produce json
// @Param estado query string true "SIN_RESPONDER, RESPONDIDA ou ELIMINADA"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas-por/estado [get]
func (h *Handler) ListByStatusHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByStatus(r.Context(), r.URL.Query().Get("estado"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByDateRangeHandler lida com a requisição GET /api/admin/obtener-quejas-por/fecha?desde=&hasta=.
// @Summary Quejas num intervalo de datas (inclusivo)
// @Tags admin
// @Produce json
// @Param desde query string true "AAAA-MM-DD"
// @Param hasta query string true "AAAA-MM-DD"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Failure 400 {object} domain.ErrorResponse "Data inválida"
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas-por/fecha [get]
func (h *Handler) ListByDateRangeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Service.ListByDateRange(r.Context(), q.Get("desde"), q.Get("hasta"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// ListByDayHandler lida com a requisição GET /api/admin/obtener-quejas-por/fecha-unica?fecha=.
// @Summary Quejas de um dia
// @Tags admin
// @Produce json
// @Param fecha query string true "AAAA-MM-DD"
// @Success 200 {object} domain.Response{respuesta=[]domain.Complaint}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-quejas-por/fecha-unica [get]
func (h *Handler) ListByDayHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByDay(r.Context(), r.URL.Query().Get("fecha"))
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}
