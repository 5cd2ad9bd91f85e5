package authservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/notify"
	"gosalon/internal/pkg/password"
	"gosalon/internal/pkg/textutil"
	"gosalon/internal/pkg/token"
)

// AccountRepository define o contrato que o Serviço de Autenticação espera da camada de Persistência.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	FindByID(ctx context.Context, id domain.ID) (domain.Account, error)
	FindActiveByEmail(ctx context.Context, email string) (domain.Account, error)
	ExistsActiveByCedula(ctx context.Context, cedula string) (bool, error)
	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, account domain.Account) error
}

// TokenIssuer é a parte do token.Service usada aqui.
type TokenIssuer interface {
	Issue(subject string, claims token.Claims) (string, error)
	Refresh(tokenString string) (string, error)
}

// MailQueue recebe os e-mails de código. Submit não bloqueia.
type MailQueue interface {
	Submit(msg notify.Email) bool
}

// Policy agrupa as constantes de bloqueio e de códigos.
type Policy struct {
	MaxFailedAttempts int
	LockDuration      time.Duration
	CodeTTL           time.Duration
	CodeLength        int
}

// DefaultPolicy: 5 tentativas, bloqueio de 5 minutos, códigos de 6 caracteres válidos por 15 minutos.
func DefaultPolicy() Policy {
	return Policy{
		MaxFailedAttempts: 5,
		LockDuration:      5 * time.Minute,
		CodeTTL:           15 * time.Minute,
		CodeLength:        6,
	}
}

// Service implementa cadastro, ativação, recuperação de senha e login.
type Service struct {
	repo   AccountRepository
	hasher password.Hasher
	tokens TokenIssuer
	mail   MailQueue
	policy Policy
	now    func() time.Time
	logger logger.Logger
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio (usado nos testes de expiração e bloqueio).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria e retorna uma nova instância do Serviço de Autenticação.
func NewService(repo AccountRepository, hasher password.Hasher, tokens TokenIssuer, mail MailQueue, policy Policy, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		mail:   mail,
		policy: policy,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register cria uma conta de cliente INACTIVO e dispara o envio do código de ativação.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.ID, error) {
	s.logger.Debug("Iniciando cadastro de conta no serviço.", map[string]interface{}{"email": req.Email})

	req.Email = normalizeEmail(req.Email)
	req.Cedula = strings.TrimSpace(req.Cedula)
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Falha na validação do cadastro.", map[string]interface{}{"email": req.Email, "error": err.Error()})
		return "", err
	}

	exists, err := s.repo.ExistsActiveByCedula(ctx, req.Cedula)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperror.NewConflictError(fmt.Sprintf("La cédula %s ya se encuentra registrada.", req.Cedula))
	}

	exists, err = s.repo.ExistsActiveByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperror.NewConflictError(fmt.Sprintf("El correo %s ya se encuentra registrado.", req.Email))
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return "", err
	}

	account := domain.Account{
		ID:           domain.NewID(),
		Cedula:       req.Cedula,
		FullName:     strings.TrimSpace(req.FullName),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		Status:       domain.AccountInactive,
		RegisteredAt: s.now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Error("Falha ao criar conta no repositório.", err)
		return "", err
	}

	s.SendActivationCode(ctx, account.Email)

	s.logger.Info("Conta cadastrada com sucesso.", map[string]interface{}{"id": account.ID})
	return account.ID, nil
}

// SendActivationCode gera e envia um novo código de ativação.
// Nenhuma falha é devolvida ao chamador, para não revelar quais emails existem.
func (s *Service) SendActivationCode(ctx context.Context, email string) {
	s.sendCode(ctx, email, "Activacion de Cuenta", "Su Codigo de Activacion es: %s",
		func(a *domain.Account, c *domain.VerificationCode) { a.ActivationCode = c })
}

// SendRecoveryCode gera e envia um novo código de recuperação, com as mesmas garantias de SendActivationCode.
func (s *Service) SendRecoveryCode(ctx context.Context, email string) {
	s.sendCode(ctx, email, "Recuperacion de Cuenta", "Su Codigo de Recuperacion es: %s",
		func(a *domain.Account, c *domain.VerificationCode) { a.RecoveryCode = c })
}

func (s *Service) sendCode(ctx context.Context, email, subject, bodyFormat string, assign func(*domain.Account, *domain.VerificationCode)) {
	email = normalizeEmail(email)

	account, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		s.logger.Debug("Envio de código ignorado: conta não encontrada.", map[string]interface{}{"email": email})
		return
	}

	code, err := textutil.RandomCode(s.policy.CodeLength)
	if err != nil {
		s.logger.Warn("Falha ao gerar código.", map[string]interface{}{"error": err.Error()})
		return
	}

	assign(&account, &domain.VerificationCode{Code: code, CreatedAt: s.now()})
	if err := s.repo.Update(ctx, account); err != nil {
		s.logger.Warn("Falha ao gravar código na conta.", map[string]interface{}{"id": account.ID, "error": err.Error()})
		return
	}

	if !s.mail.Submit(notify.Email{To: account.Email, Subject: subject, Body: fmt.Sprintf(bodyFormat, code)}) {
		s.logger.Warn("E-mail de código não enfileirado.", map[string]interface{}{"email": account.Email})
	}
}

// Activate ativa a conta com um código correto e dentro da validade.
func (s *Service) Activate(ctx context.Context, req domain.ActivateRequest) error {
	account, err := s.repo.FindActiveByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}

	if err := s.checkCode(account.ActivationCode, req.Code, "activación"); err != nil {
		s.logger.Warn("Código de ativação rejeitado.", map[string]interface{}{"id": account.ID, "error": err.Error()})
		return err
	}

	if !account.Status.CanTransitionTo(domain.AccountActive) {
		return apperror.NewValidationError("La cuenta ya se encuentra activa.")
	}

	account.Status = domain.AccountActive
	account.ActivationCode = nil
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info("Conta ativada.", map[string]interface{}{"id": account.ID})
	return nil
}

// RecoverPassword troca a senha usando o código de recuperação.
func (s *Service) RecoverPassword(ctx context.Context, req domain.RecoverPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperror.NewMismatchError("Las contraseñas no coinciden.")
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return err
	}

	account, err := s.repo.FindActiveByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}

	if err := s.checkCode(account.RecoveryCode, req.Code, "recuperación"); err != nil {
		s.logger.Warn("Código de recuperação rejeitado.", map[string]interface{}{"id": account.ID, "error": err.Error()})
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	account.PasswordHash = hash
	account.RecoveryCode = nil
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info("Senha recuperada.", map[string]interface{}{"id": account.ID})
	return nil
}

// ChangePassword troca a senha de uma conta autenticada.
func (s *Service) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperror.NewMismatchError("Las contraseñas no coinciden.")
	}

	account, err := s.findLiving(ctx, req.ID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(account.PasswordHash, req.OldPassword) {
		return apperror.NewIncorrectPasswordError("La contraseña actual es incorrecta.")
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	account.PasswordHash = hash
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info("Senha alterada.", map[string]interface{}{"id": account.ID})
	return nil
}

// Login autentica a conta e aplica a política de bloqueio por tentativas falhas.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Debug("Iniciando login no serviço.", map[string]interface{}{"email": email})

	account, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	if account.Status != domain.AccountActive {
		return domain.TokenResponse{}, apperror.NewInactiveOrDeletedError("La cuenta no está activa o fue eliminada.")
	}

	now := s.now()
	dirty := false
	if account.LockedUntil != nil {
		if now.Before(*account.LockedUntil) {
			s.logger.Info("Login recusado: conta bloqueada.", map[string]interface{}{"id": account.ID})
			return domain.TokenResponse{}, apperror.NewLockedError(
				fmt.Sprintf("Cuenta bloqueada por intentos fallidos. Intente de nuevo después de %s.", account.LockedUntil.Format(domain.DateTimeLayout)))
		}
		account.FailedLogins = 0
		account.LockedUntil = nil
		dirty = true
	}

	if !s.hasher.Verify(account.PasswordHash, req.Password) {
		account.FailedLogins++
		if account.FailedLogins >= s.policy.MaxFailedAttempts {
			until := now.Add(s.policy.LockDuration)
			account.LockedUntil = &until
			s.logger.Warn("Conta bloqueada após tentativas falhas.", map[string]interface{}{"id": account.ID, "until": until})
		}
		if err := s.repo.Update(ctx, account); err != nil {
			return domain.TokenResponse{}, err
		}
		return domain.TokenResponse{}, apperror.NewIncorrectPasswordError("La contraseña es incorrecta.")
	}

	if account.FailedLogins != 0 || dirty {
		account.FailedLogins = 0
		account.LockedUntil = nil
		if err := s.repo.Update(ctx, account); err != nil {
			return domain.TokenResponse{}, err
		}
	}

	signed, err := s.tokens.Issue(account.Email, token.Claims{
		Role:      string(account.Role),
		Name:      account.FullName,
		AccountID: account.ID.String(),
	})
	if err != nil {
		s.logger.Error("Falha ao emitir token.", err)
		return domain.TokenResponse{}, apperror.NewInternalError("No fue posible generar el token.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"id": account.ID})
	return domain.TokenResponse{Token: signed}, nil
}

// RefreshToken reemite o token, aceitando tokens expirados.
func (s *Service) RefreshToken(tokenString string) (domain.TokenResponse, error) {
	if tokenString == "" {
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Token no proporcionado.")
	}
	signed, err := s.tokens.Refresh(tokenString)
	if err != nil {
		s.logger.Warn("Refresh de token recusado.", map[string]interface{}{"error": err.Error()})
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("El token no es válido.")
	}
	return domain.TokenResponse{Token: signed}, nil
}

// GetAccount devolve o perfil. Contas eliminadas não são encontradas.
func (s *Service) GetAccount(ctx context.Context, id domain.ID) (domain.AccountInfo, error) {
	account, err := s.findLiving(ctx, id)
	if err != nil {
		return domain.AccountInfo{}, err
	}
	return account.Info(), nil
}

// UpdateProfile edita nome, endereço e telefone.
func (s *Service) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.AccountInfo, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return domain.AccountInfo{}, apperror.NewValidationError("El nombre completo es obligatorio.")
	}

	account, err := s.findLiving(ctx, req.ID)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account.FullName = strings.TrimSpace(req.FullName)
	account.Address = strings.TrimSpace(req.Address)
	account.Phone = strings.TrimSpace(req.Phone)
	if err := s.repo.Update(ctx, account); err != nil {
		return domain.AccountInfo{}, err
	}

	s.logger.Info("Perfil atualizado.", map[string]interface{}{"id": account.ID})
	return account.Info(), nil
}

// DeleteAccount faz o soft-delete da conta.
func (s *Service) DeleteAccount(ctx context.Context, id domain.ID) error {
	account, err := s.findLiving(ctx, id)
	if err != nil {
		return err
	}
	if !account.Status.CanTransitionTo(domain.AccountDeleted) {
		return apperror.NewValidationError("La cuenta no puede ser eliminada.")
	}

	account.Status = domain.AccountDeleted
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.logger.Info("Conta eliminada.", map[string]interface{}{"id": account.ID})
	return nil
}

func (s *Service) findLiving(ctx context.Context, id domain.ID) (domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	if account.Status == domain.AccountDeleted {
		return domain.Account{}, apperror.NewNotFoundError(fmt.Sprintf("La cuenta %s no existe.", id))
	}
	return account, nil
}

// checkCode valida presença, validade e valor do código, nessa ordem.
func (s *Service) checkCode(stored *domain.VerificationCode, given, kind string) error {
	if stored == nil {
		return apperror.NewInvalidCodeError(fmt.Sprintf("No hay un código de %s vigente.", kind))
	}
	if stored.ExpiredAt(s.now(), s.policy.CodeTTL) {
		return apperror.NewExpiredError(fmt.Sprintf("El código de %s ha expirado.", kind))
	}
	if !strings.EqualFold(stored.Code, strings.TrimSpace(given)) {
		return apperror.NewInvalidCodeError(fmt.Sprintf("El código de %s es incorrecto.", kind))
	}
	return nil
}

func validateRegister(req domain.RegisterRequest) error {
	switch {
	case strings.TrimSpace(req.Cedula) == "":
		return apperror.NewValidationError("La cédula es obligatoria.")
	case strings.TrimSpace(req.FullName) == "":
		return apperror.NewValidationError("El nombre completo es obligatorio.")
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		return apperror.NewValidationError("El email no es válido.")
	}
	return password.Validate(req.Password)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
