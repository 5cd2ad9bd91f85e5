package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gosalon/docs" // registra o documento OpenAPI
	"gosalon/internal/api/account"
	"gosalon/internal/api/appointment"
	"gosalon/internal/api/catalog"
	"gosalon/internal/api/complaint"
	"gosalon/internal/api/coupon"
	"gosalon/internal/api/faq"
	"gosalon/internal/api/pqrs"
	"gosalon/internal/api/suggestion"
	"gosalon/internal/pkg/cache"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Account     *account.Handler
	Appointment *appointment.Handler
	Catalog     *catalog.Handler
	Complaint   *complaint.Handler
	Coupon      *coupon.Handler
	FAQ         *faq.Handler
	PQRS        *pqrs.Handler
	Suggestion  *suggestion.Handler
}

// Options configura a cadeia de middlewares.
// Cache nil desliga o rate limiter.
type Options struct {
	Tokens          middleware.TokenParser
	Rules           []middleware.Rule
	Cache           cache.Client
	RateLimit       int
	RateLimitPeriod time.Duration
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// Ordem: request-id/log -> CORS -> filtro de autenticação -> rate limit -> rotas.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	registerPublic(mux, h)
	registerClient(mux, h)
	registerStylist(mux, h)
	registerAdmin(mux, h)

	rules := opts.Rules
	if rules == nil {
		rules = middleware.DefaultRules
	}

	var handler http.Handler = mux
	if opts.Cache != nil && opts.RateLimit > 0 {
		handler = middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateLimitPeriod, opts.Logger)(handler)
	}
	handler = middleware.NewAuthFilter(opts.Tokens, rules, opts.Logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.RequestLogger(opts.Logger)(handler)
	return handler
}

func registerPublic(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("POST /api/publico/iniciar-sesion", h.Account.LoginHandler)
	mux.HandleFunc("POST /api/publico/crear-usuario", h.Account.RegisterHandler)
	mux.HandleFunc("POST /api/publico/recuperar-contrasenia", h.Account.RecoverPasswordHandler)
	mux.HandleFunc("GET /api/publico/enviar-codigo-recuperacion", h.Account.SendRecoveryCodeHandler)
	mux.HandleFunc("GET /api/publico/enviar-codigo-activacion", h.Account.SendActivationCodeHandler)
	mux.HandleFunc("POST /api/publico/activar-cuenta", h.Account.ActivateHandler)

	mux.HandleFunc("GET /api/publico/faqs", h.FAQ.ListHandler)
	mux.HandleFunc("GET /api/publico/faqs/{id}", h.FAQ.GetHandler)
	mux.HandleFunc("POST /api/publico/sugerencias", h.Suggestion.CreateHandler)
	mux.HandleFunc("GET /api/publico/estilistas", h.Catalog.ListStylistsHandler)
	mux.HandleFunc("GET /api/publico/servicios", h.Catalog.ListServicesHandler)

	mux.HandleFunc("POST /quejas-sugerencias/crear", h.PQRS.CreateHandler)
	mux.HandleFunc("GET /quejas-sugerencias/listar-todos", h.PQRS.ListHandler)
	mux.HandleFunc("GET /quejas-sugerencias/tipos", h.PQRS.TypesHandler)
	mux.HandleFunc("GET /quejas-sugerencias/estados", h.PQRS.StatusesHandler)

	// Aceita token vencido (ver middleware.DefaultRules).
	mux.HandleFunc("GET /api/auth/refresh", h.Account.RefreshHandler)
}

func registerClient(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /api/usuario/perfil", h.Account.ProfileHandler)
	mux.HandleFunc("PUT /api/usuario/editar-perfil", h.Account.UpdateProfileHandler)
	mux.HandleFunc("DELETE /api/usuario/eliminar-cuenta", h.Account.DeleteAccountHandler)
	mux.HandleFunc("PUT /api/usuario/cambiar-contrasenia", h.Account.ChangePasswordHandler)

	mux.HandleFunc("POST /api/usuario/crear-queja", h.Complaint.CreateHandler)
	mux.HandleFunc("GET /api/usuario/quejas/{clienteId}", h.Complaint.ListMineHandler)

	mux.HandleFunc("POST /api/usuario/citas/crear", h.Appointment.CreateHandler)
	mux.HandleFunc("PUT /api/usuario/citas/reprogramar", h.Appointment.RescheduleHandler)
	mux.HandleFunc("PUT /api/usuario/citas/cancelar/{citaId}", h.Appointment.CancelHandler)
	mux.HandleFunc("GET /api/usuario/citas/mis-citas/{clienteId}", h.Appointment.ListByClientHandler)
	mux.HandleFunc("GET /api/usuario/citas/historial/{clienteId}", h.Appointment.HistoryHandler)
	mux.HandleFunc("GET /api/usuario/citas/calendario", h.Appointment.CalendarHandler)
	mux.HandleFunc("GET /api/usuario/citas/{citaId}", h.Appointment.GetHandler)

	mux.HandleFunc("GET /api/usuario/cupones/{clienteId}", h.Coupon.ListByAccountHandler)
	mux.HandleFunc("GET /api/usuario/cupones/{clienteId}/{codigo}", h.Coupon.GetByCodeAndAccountHandler)

	mux.HandleFunc("GET /api/usuario/obtener-estilistas", h.Catalog.ListStylistsHandler)
	mux.HandleFunc("GET /api/usuario/obtener-servicios", h.Catalog.ListServicesHandler)
}

func registerStylist(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /api/estilista/citas/mis-citas/{estilistaId}", h.Appointment.ListByStylistHandler)
	mux.HandleFunc("GET /api/estilista/citas/estado/{estado}", h.Appointment.ListByStatusHandler)
	mux.HandleFunc("PUT /api/estilista/citas/completar/{citaId}", h.Appointment.CompleteHandler)
	mux.HandleFunc("GET /api/estilista/citas/{citaId}", h.Appointment.GetHandler)
}

func registerAdmin(mux *http.ServeMux, h Handlers) {
	// Sugerencias
	mux.HandleFunc("GET /api/admin/obtener-sugerencias", h.Suggestion.ListHandler)
	mux.HandleFunc("PUT /api/admin/sugerencias/marcar-revisado/{id}", h.Suggestion.MarkReviewedHandler)

	// Quejas
	mux.HandleFunc("GET /api/admin/obtener-quejas", h.Complaint.ListAllHandler)
	mux.HandleFunc("GET /api/admin/obtener-queja/{id}", h.Complaint.GetHandler)
	mux.HandleFunc("DELETE /api/admin/eliminar-queja/{id}", h.Complaint.DeleteHandler)
	mux.HandleFunc("PUT /api/admin/responder-queja/{idQueja}", h.Complaint.RespondHandler)
	mux.HandleFunc("GET /api/admin/obtener-quejas-por/servicio", h.Complaint.ListByServiceHandler)
	mux.HandleFunc("GET /api/admin/obtener-quejas-por/cliente", h.Complaint.ListByClientHandler)
	mux.HandleFunc("GET /api/admin/obtener-quejas-por/estado", h.Complaint.ListByStatusHandler)
	mux.HandleFunc("GET /api/admin/obtener-quejas-por/fecha", h.Complaint.ListByDateRangeHandler)
	mux.HandleFunc("GET /api/admin/obtener-quejas-por/fecha-unica", h.Complaint.ListByDayHandler)

	// Citas
	mux.HandleFunc("GET /api/admin/citas/todas", h.Appointment.ListAllHandler)
	mux.HandleFunc("GET /api/admin/citas/por-estado", h.Appointment.ListByStatusHandler)
	mux.HandleFunc("GET /api/admin/citas/por-estilista/{estilistaId}", h.Appointment.ListByStylistHandler)
	mux.HandleFunc("GET /api/admin/citas/por-cliente/{clienteId}", h.Appointment.ListByClientHandler)
	mux.HandleFunc("GET /api/admin/citas/{citaId}", h.Appointment.GetHandler)
	mux.HandleFunc("PUT /api/admin/citas/cancelar/{citaId}", h.Appointment.CancelHandler)

	// Contas
	mux.HandleFunc("GET /api/admin/obtener-usuario/{id}", h.Account.GetAccountHandler)
	mux.HandleFunc("PUT /api/admin/editar-perfil", h.Account.UpdateAccountHandler)

	// Cupones
	mux.HandleFunc("POST /api/admin/cupon/crear-cupon", h.Coupon.CreateHandler)
	mux.HandleFunc("PUT /api/admin/cupon/editar-cupon/{idCupon}", h.Coupon.UpdateHandler)
	mux.HandleFunc("DELETE /api/admin/cupon/eliminar-cupon/{idCupon}", h.Coupon.DeleteHandler)
	mux.HandleFunc("GET /api/admin/cupon/obtener-cupon/{idCupon}", h.Coupon.GetHandler)
	mux.HandleFunc("GET /api/admin/cupon/obtener-por-codigo/{codigo}", h.Coupon.GetByCodeHandler)
	mux.HandleFunc("GET /api/admin/cupon/listar-cupones", h.Coupon.ListHandler)
	mux.HandleFunc("GET /api/admin/cupon/generar-codigo", h.Coupon.GenerateCodeHandler)

	// FAQs
	mux.HandleFunc("POST /api/admin/faqs/crear", h.FAQ.CreateHandler)
	mux.HandleFunc("PUT /api/admin/faqs/actualizar/{id}", h.FAQ.UpdateHandler)
	mux.HandleFunc("DELETE /api/admin/faqs/eliminar/{id}", h.FAQ.DeleteHandler)

	// PQRS e relatórios
	mux.HandleFunc("PUT /api/admin/pqrs/{id}/estado", h.PQRS.UpdateStatusHandler)
	mux.HandleFunc("GET /api/admin/reportes/quejas-por-tipo", h.PQRS.CountByTypeHandler)
	mux.HandleFunc("GET /api/admin/reportes/quejas-por-cliente", h.PQRS.CountByAccountHandler)
	mux.HandleFunc("GET /api/admin/reportes/quejas-por-cliente-y-tipo", h.PQRS.CountByAccountAndTypeHandler)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
