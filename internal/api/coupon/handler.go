package coupon

import (
	"context"
	"net/http"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	"gosalon/internal/pkg/logger"
)

// CouponService define o contrato que o Handler espera da camada de Serviço.
type CouponService interface {
	Create(ctx context.Context, req domain.CouponRequest) (domain.Coupon, error)
	Update(ctx context.Context, id string, req domain.CouponRequest) (domain.Coupon, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Coupon, error)
	GetByCode(ctx context.Context, code string) (domain.Coupon, error)
	GetByCodeAndAccount(ctx context.Context, code, accountID string) (domain.Coupon, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	GenerateCode(ctx context.Context) (string, error)
}

// Handler agrupa os handlers de cupones.
type Handler struct {
	Service CouponService
	Logger  logger.Logger
}

func NewHandler(svc CouponService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// CreateHandler lida com a requisição POST /api/admin/cupon/crear-cupon.
// @Summary Cria um cupom
// @Description O código é normalizado (maiúsculas, sem acentos) e deve ser único entre os cupons ativos.
// @Tags cupones
// @Accept json
// @Produce json
// @Param cupon body domain.CouponRequest true "Dados do cupom"
// @Success 201 {object} domain.Response{respuesta=domain.Coupon}
// @Failure 400 {object} domain.ErrorResponse "Porcentagem ou data inválidas"
// @Failure 409 {object} domain.ErrorResponse "Código duplicado"
// @Security ApiKeyAuth
// @Router /api/admin/cupon/crear-cupon [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CouponRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	c, err := h.Service.Create(r.Context(), req)
	h.handleServiceResponse(w, r, c, err, http.StatusCreated)
}

// UpdateHandler lida com a requisição PUT /api/admin/cupon/editar-cupon/{idCupon}.
// @Summary Edita um cupom
// @Tags cupones
// @Accept json
// @Produce json
// @Param idCupon path string true "ID do cupom"
// @Param cupon body domain.CouponRequest true "Dados do cupom"
// @Success 200 {object} domain.Response{respuesta=domain.Coupon}
// @Failure 404 {object} domain.ErrorResponse "Cupom não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Código duplicado"
// @Security ApiKeyAuth
// @Router /api/admin/cupon/editar-cupon/{idCupon} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CouponRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	c, err := h.Service.Update(r.Context(), r.PathValue("idCupon"), req)
	h.handleServiceResponse(w, r, c, err, http.StatusOK)
}

// DeleteHandler lida com a requisição DELETE /api/admin/cupon/eliminar-cupon/{idCupon}.
// @Summary Elimina um cupom
// @Tags cupones
// @Produce json
// @Param idCupon path string true "ID do cupom"
// @Success 200 {object} domain.Response
// @Security ApiKeyAuth
// @Router /api/admin/cupon/eliminar-cupon/{idCupon} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), r.PathValue("idCupon"))
	h.handleServiceResponse(w, r, "Cupón eliminado correctamente", err, http.StatusOK)
}

// GetHandler lida com a requisição GET /api/admin/cupon/obtener-cupon/{idCupon}.
// @Summary Obtém um cupom
// @Tags cupones
// @Produce json
// @Param idCupon path string true "ID do cupom"
// @Success 200 {object} domain.Response{respuesta=domain.Coupon}
// @Failure 404 {object} domain.ErrorResponse "Cupom não encontrado"
// @Security ApiKeyAuth
// @Router /api/admin/cupon/obtener-cupon/{idCupon} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetByID(r.Context(), r.PathValue("idCupon"))
	h.handleServiceResponse(w, r, c, err, http.StatusOK)
}

// GetByCodeHandler lida com a requisição GET /api/admin/cupon/obtener-por-codigo/{codigo}.
// @Summary Obtém um cupom ativo pelo código
// @Tags cupones
// @Produce json
// @Param codigo path string true "Código do cupom"
// @Success 200 {object} domain.Response{respuesta=domain.Coupon}
// @Failure 404 {object} domain.ErrorResponse "Cupom não encontrado"
// @Security ApiKeyAuth
// @Router /api/admin/cupon/obtener-por-codigo/{codigo} [get]
func (h *Handler) GetByCodeHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetByCode(r.Context(), r.PathValue("codigo"))
	h.handleServiceResponse(w, r, c, err, http.StatusOK)
}

// ListHandler lida com a requisição GET /api/admin/cupon/listar-cupones.
// @Summary Lista os cupons ativos
// @Tags cupones
// @Produce json
// @Success 200 {object} domain.Response{respuesta=[]domain.Coupon}
// @Security ApiKeyAuth
// @Router /api/admin/cupon/listar-cupones [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// GenerateCodeHandler lida com a requisição GET /api/admin/cupon/generar-codigo.
// @Summary Gera um código livre de 6 caracteres
// @Tags cupones
// @Produce json
// @Success 200 {object} domain.Response{respuesta=string}
// @Security ApiKeyAuth
// @Router /api/admin/cupon/generar-codigo [get]
func (h *Handler) GenerateCodeHandler(w http.ResponseWriter, r *http.Request) {
	code, err := h.Service.GenerateCode(r.Context())
	h.handleServiceResponse(w, r, code, err, http.StatusOK)
}

// ListByAccountHandler lida com a requisição GET /api/usuario/cupones/{clienteId}.
// @Summary Cupons do cliente
// @Tags cupones
// @Produce json
// @Param clienteId path string true "ID do cliente"
// @Success 200 {object} domain.Response{respuesta=[]domain.Coupon}
// @Failure 403 {object} domain.ErrorResponse "Outra conta"
// @Security ApiKeyAuth
// @Router /api/usuario/cupones/{clienteId} [get]
func (h *Handler) ListByAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("clienteId")
	if err := httpx.SameAccount(r, accountID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	list, err := h.Service.ListByAccount(r.Context(), accountID)
	h.handleServiceResponse(w, r, list, err, http.StatusOK)
}

// GetByCodeAndAccountHandler lida com a requisição GET /api/usuario/cupones/{clienteId}/{codigo}.
// @Summary Cupom do cliente por código
// @Tags cupones
// @Produce json
// @Param clienteId path string true "ID do cliente"
// @Param codigo path string true "Código do cupom"
// @Success 200 {object} domain.Response{respuesta=domain.Coupon}
// @Failure 404 {object} domain.ErrorResponse "Cupom não encontrado"
// @Security ApiKeyAuth
// @Router /api/usuario/cupones/{clienteId}/{codigo} [get]
func (h *Handler) GetByCodeAndAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("clienteId")
	if err := httpx.SameAccount(r, accountID); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	c, err := h.Service.GetByCodeAndAccount(r.Context(), r.PathValue("codigo"), accountID)
	h.handleServiceResponse(w, r, c, err, http.StatusOK)
}
