package faq

import (
	"context"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

type FAQService interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	Get(ctx context.Context, id string) (domain.FAQ, error)
	Create(ctx context.Context, f domain.FAQ) (domain.FAQ, error)
	Update(ctx context.Context, id string, f domain.FAQ) (domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Service FAQService
	Logger  logger.Logger
}

func NewHandler(svc FAQService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// ListHandler lida com a requisição GET /api/publico/faqs.
// @Summary Lista as perguntas frequentes
// @Tags publico
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.FAQ}
// @Router /api/publico/faqs [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// GetHandler lida com a requisição GET /api/publico/faqs/{id}.
// @Summary Obtém uma pergunta frequente
// @Tags publico
// @Produce json
// @Param id path string true "ID da FAQ"
// @Success 200 {object} domain.Response{respuesta=domain.FAQ}
// @Failure 404 {object} domain.ErrorResponse "FAQ não encontrada"
// @Router /api/publico/faqs/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	f, err := h.Service.Get(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, f, err, http.StatusOK)
}

// CreateHandler lida com a requisição POST /api/admin/faqs/crear.
// @Summary Cria uma FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Param faq body domain.FAQ true "Pergunta e resposta"
// @Success 201 {object} domain.Response{respuesta=domain.FAQ}
// @Failure 400 {object} domain.ErrorResponse "Campos vazios"
// @Security ApiKeyAuth
// @Router /api/admin/faqs/crear [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var f domain.FAQ
	if err := httpx.DecodeJSON(r, &f); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	created, err := h.Service.Create(r.Context(), f)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// UpdateHandler lida com a requisição PUT /api/admin/faqs/actualizar/{id}.
// @Summary Atualiza uma FAQ
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID da FAQ"
// @Param faq body domain.FAQ true "Pergunta e resposta"
// @Success 200 {object} domain.Response{respuesta=domain.FAQ}
// @Failure 404 {object} domain.ErrorResponse "FAQ não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/faqs/actualizar/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var f domain.FAQ
	if err := httpx.DecodeJSON(r, &f); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	updated, err := h.Service.Update(r.Context(), r.PathValue("id"), f)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteHandler lida com a requisição DELETE /api/admin/faqs/eliminar/{id}.
// @Summary Remove uma FAQ
// @Tags admin
// @Produce json
// @Param id path string true "ID da FAQ"
// @Success 200 {object} domain.Response
// @Failure 404 {object} domain.ErrorResponse "FAQ não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/faqs/eliminar/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, "FAQ eliminada exitosamente", err, http.StatusOK)
}
