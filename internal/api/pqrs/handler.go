package pqrs

import (
	"context"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

// PQRSService define o contrato que o Handler espera da camada de Serviço.
type PQRSService interface {
	Register(ctx context.Context, req domain.CreatePQRSRequest) (domain.PQRSTicket, error)
	UpdateStatus(ctx context.Context, id string, req domain.UpdatePQRSStatusRequest) (domain.PQRSTicket, error)
	List(ctx context.Context) ([]domain.PQRSTicket, error)
	CountByType(ctx context.Context) ([]domain.CountEntry, error)
	CountByAccount(ctx context.Context) ([]domain.CountEntry, error)
	CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error)
	Types() []domain.PQRSType
	Statuses() []domain.PQRSStatus
}

// Handler agrupa os handlers de PQRS e dos relatórios.
type Handler struct {
	Service PQRSService
	Logger  logger.Logger
}

func NewHandler(svc PQRSService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// CreateHandler lida com a requisição POST /quejas-sugerencias/crear.
// @Summary Registra uma PQRS
// @Description Cria um ticket PENDIENTE. O cliente é opcional; se informado precisa existir.
// @Tags pqrs
// @Accept json
// @Produce json
// @Param pqrs body domain.CreatePQRSRequest true "Tipo, cliente e descrição"
// @Success 201 {object} domain.Response{respuesta=domain.PQRSTicket}
// @Failure 400 {object} domain.ErrorResponse "Tipo inválido"
// @Failure 404 {object} domain.ErrorResponse "Cliente não encontrado"
// @Router /quejas-sugerencias/crear [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePQRSRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	t, err := h.Service.Register(r.Context(), req)
	h.handleServiceResponse(w, r, t, err, http.StatusCreated)
}

// ListHandler lida com a requisição GET /quejas-sugerencias/listar-todos.
// @Summary Lista as PQRS
// @Tags pqrs
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.PQRSTicket}
// @Router /quejas-sugerencias/listar-todos [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// TypesHandler lida com a requisição GET /quejas-sugerencias/tipos.
// @Summary Tipos de PQRS
// @Tags pqrs
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]string}
// @Router /quejas-sugerencias/tipos [get]
func (h *Handler) TypesHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.Types(), nil, http.StatusOK)
}

// StatusesHandler lida com a requisição GET /quejas-sugerencias/estados.
// @Summary Estados de PQRS
// @Tags pqrs
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]string}
// @Router /quejas-sugerencias/estados [get]
func (h *Handler) StatusesHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.Statuses(), nil, http.StatusOK)
}

// UpdateStatusHandler lida com a requisição PUT /api/admin/pqrs/{id}/estado.
// @Summary Atualiza o estado de uma PQRS
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID da PQRS"
// @Param estado body domain.UpdatePQRSStatusRequest true "Novo estado e resposta opcional"
// @Success 200 {object} domain.Response{respuesta=domain.PQRSTicket}
// @Failure 400 {object} domain.ErrorResponse "Estado inválido"
// @Failure 404 {object} domain.ErrorResponse "PQRS não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/pqrs/{id}/estado [put]
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePQRSStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	t, err := h.Service.UpdateStatus(r.Context(), r.PathValue("id"), req)
	h.handleServiceResponse(w, r, t, err, http.StatusOK)
}

// CountByTypeHandler lida com a requisição GET /api/admin/reportes/quejas-por-tipo.
// @Summary Relatório de PQRS por tipo
// @Tags reportes
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.CountEntry}
// @Security ApiKeyAuth
// @Router /api/admin/reportes/quejas-por-tipo [get]
func (h *Handler) CountByTypeHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountByType(r.Context())
	h.handleServiceResponse(w, r, counts, err, http.StatusOK)
}

// CountByAccountHandler lida com a requisição GET /api/admin/reportes/quejas-por-cliente.
// @Summary Relatório de PQRS por cliente
// @Tags reportes
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.CountEntry}
// @Security ApiKeyAuth
// @Router /api/admin/reportes/quejas-por-cliente [get]
func (h *Handler) CountByAccountHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountByAccount(r.Context())
	h.handleServiceResponse(w, r, counts, err, http.StatusOK)
}

// CountByAccountAndTypeHandler lida com a requisição GET /api/admin/reportes/quejas-por-cliente-y-tipo.
// @Summary Relatório de PQRS por cliente e tipo
// @Tags reportes
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.CountEntry}
// @Security ApiKeyAuth
// @Router /api/admin/reportes/quejas-por-cliente-y-tipo [get]
func (h *Handler) CountByAccountAndTypeHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountByAccountAndType(r.Context())
	h.handleServiceResponse(w, r, counts, err, http.StatusOK)
}
