package catalog

import (
	"context"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

type CatalogService interface {
	ListStylists(ctx context.Context) ([]domain.Stylist, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
}

// Handler expõe estilistas e serviços. As mesmas funções atendem
// /api/publico e /api/usuario.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListStylistsHandler lida com a requisição GET /api/publico/estilistas.
// @Summary Lista os estilistas
// @Tags catalogo
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.Stylist}
// @Router /api/publico/estilistas [get]
func (h *Handler) ListStylistsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListStylists(r.Context())
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}

// ListServicesHandler lida com a requisição GET /api/publico/servicios.
// @Summary Lista os serviços com preço e duração
// @Tags catalogo
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.Service}
// @Router /api/publico/servicios [get]
func (h *Handler) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListServices(r.Context())
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}
