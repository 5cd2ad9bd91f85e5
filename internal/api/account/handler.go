package account

import (
	"context"
	"net/http"
	"strings"

	"gosalon/internal/api/httpx"
	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
)

// AccountService define o contrato que o Handler espera da camada de Serviço.
type AccountService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (domain.ID, error)
	SendActivationCode(ctx context.Context, email string)
	SendRecoveryCode(ctx context.Context, email string)
	Activate(ctx context.Context, req domain.ActivateRequest) error
	RecoverPassword(ctx context.Context, req domain.RecoverPasswordRequest) error
	ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error
	Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error)
	RefreshToken(tokenString string) (domain.TokenResponse, error)
	GetAccount(ctx context.Context, id domain.ID) (domain.AccountInfo, error)
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.AccountInfo, error)
	DeleteAccount(ctx context.Context, id domain.ID) error
}

// Handler agrupa os handlers de autenticação e perfil.
type Handler struct {
	Service AccountService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AccountService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	httpx.Respond(w, r, h.Logger, data, err, successStatus)
}

// LoginHandler lida com a requisição POST /api/publico/iniciar-sesion.
// @Summary Inicia sessão
// @Description Valida as credenciais e devolve um token JWT. Após 5 falhas seguidas a conta fica bloqueada por 5 minutos.
// @Tags publico
// @Accept json
// @Produce json
// @Param credenciales body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.Response{respuesta=domain.TokenResponse}
// @Failure 401 {object} domain.ErrorResponse "Senha incorreta"
// @Failure 403 {object} domain.ErrorResponse "Conta inativa ou eliminada"
// @Failure 423 {object} domain.ErrorResponse "Conta bloqueada"
// @Router /api/publico/iniciar-sesion [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	tok, err := h.Service.Login(r.Context(), req)
	h.handleServiceResponse(w, r, tok, err, http.StatusOK)
}

// RegisterHandler lida com a requisição POST /api/publico/crear-usuario.
// @Summary Registra um cliente
// @Description Cria a conta INACTIVO e envia o código de ativação por email.
// @Tags publico
// @Accept json
// @Produce json
// @Param usuario body domain.RegisterRequest true "Dados da conta"
// @Success 201 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Cédula ou email já cadastrados"
// @Router /api/publico/crear-usuario [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	if _, err := h.Service.Register(r.Context(), req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, "Usuario registrado correctamente", nil, http.StatusCreated)
}

// RecoverPasswordHandler lida com a requisição POST /api/publico/recuperar-contrasenia.
// @Summary Recupera a senha com o código enviado por email
// @Tags publico
// @Accept json
// @Produce json
// @Param datos body domain.RecoverPasswordRequest true "Código e nova senha"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Código inválido, vencido ou senhas diferentes"
// @Router /api/publico/recuperar-contrasenia [post]
func (h *Handler) RecoverPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RecoverPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	err := h.Service.RecoverPassword(r.Context(), req)
	h.handleServiceResponse(w, r, "Contraseña recuperada correctamente", err, http.StatusOK)
}

// SendRecoveryCodeHandler lida com a requisição GET /api/publico/enviar-codigo-recuperacion?correo=.
// A resposta é a mesma exista ou não a conta.
// @Summary Envia o código de recuperação
// @Tags publico
// @Produce json
// @Param correo query string true "Email da conta"
// @Success 200 {object} domain.Response
// @Router /api/publico/enviar-codigo-recuperacion [get]
func (h *Handler) SendRecoveryCodeHandler(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.Service.SendRecoveryCode(r.Context(), email)
	h.handleServiceResponse(w, r, "Si su Correo está registrado con nosotros, su código de recuperacion fue enviado correctamente", nil, http.StatusOK)
}

// SendActivationCodeHandler lida com a requisição GET /api/publico/enviar-codigo-activacion?correo=.
// @Summary Reenvia o código de ativação
// @Tags publico
// @Produce json
// @Param correo query string true "Email da conta"
// @Success 200 {object} domain.Response
// @Router /api/publico/enviar-codigo-activacion [get]
func (h *Handler) SendActivationCodeHandler(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.Service.SendActivationCode(r.Context(), email)
	h.handleServiceResponse(w, r, "Si su Correo está registrado con nosotros, su código de activacion fue enviado correctamente", nil, http.StatusOK)
}

// ActivateHandler lida com a requisição POST /api/publico/activar-cuenta.
// @Summary Ativa a conta
// @Tags publico
// @Accept json
// @Produce json
// @Param datos body domain.ActivateRequest true "Email e código de ativação"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Código inválido ou vencido"
// @Failure 404 {object} domain.ErrorResponse "Conta não encontrada"
// @Router /api/publico/activar-cuenta [post]
func (h *Handler) ActivateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ActivateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	err := h.Service.Activate(r.Context(), req)
	h.handleServiceResponse(w, r, "Cuenta activada correctamente", err, http.StatusOK)
}

// RefreshHandler lida com a requisição GET /api/auth/refresh.
// Aceita token vencido com assinatura válida.
// @Summary Renova o token
// @Tags auth
// @Produce json
// @Param token query string false "Token (alternativa ao header Authorization)"
// @Success 200 {object} domain.Response{respuesta=domain.TokenResponse}
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security ApiKeyAuth
// @Router /api/auth/refresh [get]
func (h *Handler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if raw == "" {
		raw = r.URL.Query().Get("token")
	}

	tok, err := h.Service.RefreshToken(raw)
	h.handleServiceResponse(w, r, tok, err, http.StatusOK)
}

// ProfileHandler lida com a requisição GET /api/usuario/perfil.
// @Summary Perfil da conta autenticada
// @Tags usuario
// @Produce json
// @Success 200 {object} domain.Response{respuesta=domain.AccountInfo}
// @Failure 404 {object} domain.ErrorResponse "Conta não encontrada"
// @Security ApiKeyAuth
// @Router /api/usuario/perfil [get]
func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := httpx.Claims(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	info, err := h.Service.GetAccount(r.Context(), claims.AccountID)
	h.handleServiceResponse(w, r, info, err, http.StatusOK)
}

// UpdateProfileHandler lida com a requisição PUT /api/usuario/editar-perfil.
// O ID sempre vem do token.
// @Summary Edita o perfil da conta autenticada
// @Tags usuario
// @Accept json
// @Produce json
// @Param perfil body domain.UpdateProfileRequest true "Dados de contato"
// @Success 200 {object} domain.Response{respuesta=domain.AccountInfo}
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security ApiKeyAuth
// @Router /api/usuario/editar-perfil [put]
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := httpx.Claims(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	var req domain.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	req.ID = claims.AccountID

	info, err := h.Service.UpdateProfile(r.Context(), req)
	h.handleServiceResponse(w, r, info, err, http.StatusOK)
}

// DeleteAccountHandler lida com a requisição DELETE /api/usuario/eliminar-cuenta.
// @Summary Elimina a conta autenticada
// @Tags usuario
// @Produce json
// @Success 200 {object} domain.Response
// @Security ApiKeyAuth
// @Router /api/usuario/eliminar-cuenta [delete]
func (h *Handler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := httpx.Claims(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	err = h.Service.DeleteAccount(r.Context(), claims.AccountID)
	h.handleServiceResponse(w, r, "Usuario eliminado correctamente", err, http.StatusOK)
}

// ChangePasswordHandler lida com a requisição PUT /api/usuario/cambiar-contrasenia.
// @Summary Troca a senha da conta autenticada
// @Tags usuario
// @Accept json
// @Produce json
// @Param datos body domain.ChangePasswordRequest true "Senha atual e nova"
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.ErrorResponse "Senhas diferentes ou fora da política"
// @Failure 401 {object} domain.ErrorResponse "Senha atual incorreta"
// @Security ApiKeyAuth
// @Router /api/usuario/cambiar-contrasenia [put]
func (h *Handler) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := httpx.Claims(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	var req domain.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	req.ID = claims.AccountID

	err = h.Service.ChangePassword(r.Context(), req)
	h.handleServiceResponse(w, r, "Contraseña cambiada correctamente", err, http.StatusOK)
}

// GetAccountHandler lida com a requisição GET /api/admin/obtener-usuario/{id}.
// @Summary Obtém uma conta por ID
// @Tags admin
// @Produce json
// @Param id path string true "ID da conta"
// @Success 200 {object} domain.Response{respuesta=domain.AccountInfo}
// @Failure 404 {object} domain.ErrorResponse "Conta não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/obtener-usuario/{id} [get]
func (h *Handler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	info, err := h.Service.GetAccount(r.Context(), id)
	h.handleServiceResponse(w, r, info, err, http.StatusOK)
}

// UpdateAccountHandler lida com a requisição PUT /api/admin/editar-perfil.
// O ID da conta vem no corpo.
// @Summary Edita o perfil de qualquer conta
// @Tags admin
// @Accept json
// @Produce json
// @Param perfil body domain.UpdateProfileRequest true "ID e dados de contato"
// @Success 200 {object} domain.Response
// @Failure 404 {object} domain.ErrorResponse "Conta não encontrada"
// @Security ApiKeyAuth
// @Router /api/admin/editar-perfil [put]
func (h *Handler) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	id, err := domain.ParseID(req.ID.String())
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	req.ID = id

	_, err = h.Service.UpdateProfile(r.Context(), req)
	h.handleServiceResponse(w, r, "Cliente actualizado correctamente", err, http.StatusOK)
}

func emailParam(r *http.Request) (string, error) {
	email := strings.TrimSpace(r.URL.Query().Get("correo"))
	if email == "" {
		return "", apperror.NewValidationError("El correo es obligatorio.")
	}
	return email, nil
}
