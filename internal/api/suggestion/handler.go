package suggestion

import (
	"context"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

type SuggestionService interface {
	Create(ctx context.Context, req domain.CreateSuggestionRequest) (domain.ID, error)
	List(ctx context.Context) ([]domain.Suggestion, error)
	MarkReviewed(ctx context.Context, id string) error
}

type Handler struct {
	Service SuggestionService
	Logger  logger.Logger
}

func NewHandler(svc SuggestionService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// CreateHandler lida com a requisição POST /api/publico/sugerencias.
// @Summary Envia uma sugerencia
// @Tags publico
// @Accept json
// @Produce json
// @Param sugerencia body domain.CreateSuggestionRequest true "Formulário de contato"
// @Success 201 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Campos obrigatórios ausentes"
// @Router /api/publico/sugerencias [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSuggestionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if _, err := h.Service.Create(r.Context(), req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, "Sugerencia creada correctamente", nil, http.StatusCreated)
}

// ListHandler lida com a requisição GET /api/admin/obtener-sugerencias.
// @Summary Lista as sugerencias
// @Tags admin
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.Suggestion}
// @Security ApiKeyAuth
// @Router /api/admin/obtener-sugerencias [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// MarkReviewedHandler lida com a requisição PUT /api/admin/sugerencias/marcar-revisado/{id}.
// @Summary Marca uma sugerencia como revisada
// @Tags admin
// @Produce json
// @Param id path string true "ID da sugerencia"
// @Success 200 {object} domain.Response
// @Failure 404 {object} domain.ErrorResponse "Sugerencia não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/sugerencias/marcar-revisado/{id} [put]
func (h *Handler) MarkReviewedHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.MarkReviewed(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, "Sugerencia marcada como revisada correctamente", err, http.StatusOK)
}
