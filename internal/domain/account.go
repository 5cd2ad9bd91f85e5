package domain

import "time"

// Role é o papel (rol) da conta. O valor é o mesmo gravado no claim "rol" do token.
type Role string

const (
	RoleClient  Role = "CLIENTE"
	RoleStylist Role = "ESTILISTA"
	RoleAdmin   Role = "ADMIN"
)

// AccountStatus controla o soft-delete e a ativação da conta.
type AccountStatus string

const (
	AccountInactive AccountStatus = "INACTIVO"
	AccountActive   AccountStatus = "ACTIVO"
	AccountDeleted  AccountStatus = "ELIMINADO"
)

var accountTransitions = transitionTable[AccountStatus]{
	AccountInactive: {AccountActive, AccountDeleted},
	AccountActive:   {AccountDeleted},
}

// CanTransitionTo indica se a mudança de estado é permitida. ELIMINADO é terminal.
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	return accountTransitions.allows(s, next)
}

// VerificationCode é um código temporário (ativação ou recuperação).
type VerificationCode struct {
	Code      string    `json:"codigo"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// ExpiredAt indica se o código passou da validade no instante now.
func (c VerificationCode) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.CreatedAt) > ttl
}

// Account representa a conta de um usuário (cliente, estilista ou admin).
type Account struct {
	ID             ID                `json:"id"`
	Cedula         string            `json:"cedula"`
	FullName       string            `json:"nombreCompleto"`
	Address        string            `json:"direccion"`
	Phone          string            `json:"telefono"`
	Email          string            `json:"email"`
	PasswordHash   string            `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role           Role              `json:"rol"`
	Status         AccountStatus     `json:"estado"`
	RegisteredAt   time.Time         `json:"fechaRegistro"`
	ActivationCode *VerificationCode `json:"-"`
	RecoveryCode   *VerificationCode `json:"-"`
	FailedLogins   int               `json:"-"`
	LockedUntil    *time.Time        `json:"-"`
}

// RegisterRequest é o payload de criação de conta.
type RegisterRequest struct {
	Cedula   string `json:"cedula"`
	FullName string `json:"nombreCompleto"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Password string `json:"contrasenia"`
}

// LoginRequest é o payload de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"contrasenia"`
}

type ActivateRequest struct {
	Email string `json:"email"`
	Code  string `json:"codigoActivacion"`
}

type RecoverPasswordRequest struct {
	Email           string `json:"correoUsuario"`
	Code            string `json:"codigoVerificacion"`
	NewPassword     string `json:"contraseniaNueva"`
	ConfirmPassword string `json:"confirmarContraseniaNueva"`
}

// ChangePasswordRequest troca a senha de uma conta autenticada.
// O ID vem do token no fluxo do cliente e do corpo no fluxo do admin.
type ChangePasswordRequest struct {
	ID              ID     `json:"id"`
	OldPassword     string `json:"contraseniaActual"`
	NewPassword     string `json:"contraseniaNueva"`
	ConfirmPassword string `json:"confirmarContraseniaNueva"`
}

// UpdateProfileRequest edita os dados de contato da conta.
type UpdateProfileRequest struct {
	ID       ID     `json:"id"`
	FullName string `json:"nombreCompleto"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
}

// AccountInfo é a visão pública do perfil.
type AccountInfo struct {
	ID       ID     `json:"id"`
	Cedula   string `json:"cedula"`
	FullName string `json:"nombreCompleto"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono"`
	Email    string `json:"email"`
	Role     Role   `json:"rol"`
}

// Info converte a conta para a visão pública.
func (a Account) Info() AccountInfo {
	return AccountInfo{
		ID:       a.ID,
		Cedula:   a.Cedula,
		FullName: a.FullName,
		Address:  a.Address,
		Phone:    a.Phone,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// TokenResponse é devolvido pelo login e pelo refresh.
type TokenResponse struct {
	Token string `json:"token"`
}
