package authservice_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/pkg/notify"
	"gosalon/internal/pkg/password"
	"gosalon/internal/pkg/token"
	"gosalon/internal/service/authservice"
)

const (
	testPassword = "Secreta123!"
	testSecret   = "clave-de-pruebas"
)

// --- Fakes ---

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// memoryRepo é um AccountRepository em memória para os cenários completos.
type memoryRepo struct {
	mu       sync.Mutex
	accounts map[domain.ID]domain.Account
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{accounts: map[domain.ID]domain.Account{}}
}

func (r *memoryRepo) Create(_ context.Context, a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = a
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id domain.ID) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, apperror.NewNotFoundError("no existe")
	}
	return a, nil
}

func (r *memoryRepo) FindActiveByEmail(_ context.Context, email string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email && a.Status != domain.AccountDeleted {
			return a, nil
		}
	}
	return domain.Account{}, apperror.NewNotFoundError("no existe")
}

func (r *memoryRepo) ExistsActiveByCedula(_ context.Context, cedula string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Cedula == cedula && a.Status != domain.AccountDeleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindActiveByEmail(ctx, email)
	return err == nil, nil
}

func (r *memoryRepo) Update(_ context.Context, a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = a
	return nil
}

// outbox captura os e-mails enfileirados.
type outbox struct {
	mu   sync.Mutex
	sent []notify.Email
}

func (o *outbox) Submit(msg notify.Email) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return true
}

func (o *outbox) lastCode(t *testing.T) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.sent)
	body := o.sent[len(o.sent)-1].Body
	return body[strings.LastIndex(body, " ")+1:]
}

// MockAccountRepository é uma implementação mock da interface AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id domain.ID) (domain.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindActiveByEmail(ctx context.Context, email string) (domain.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsActiveByCedula(ctx context.Context, cedula string) (bool, error) {
	args := m.Called(ctx, cedula)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, a domain.Account) error {
	return m.Called(ctx, a).Error(0)
}

type fixture struct {
	svc    *authservice.Service
	repo   *memoryRepo
	mail   *outbox
	clock  *fakeClock
	tokens *token.Service
	hasher *password.BcryptHasher
}

func newFixture() *fixture {
	clock := &fakeClock{t: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	f := &fixture{
		repo:   newMemoryRepo(),
		mail:   &outbox{},
		clock:  clock,
		tokens: token.NewService(testSecret, time.Hour, token.WithClock(clock.Now)),
		hasher: password.NewBcryptHasher(4),
	}
	f.svc = authservice.NewService(f.repo, f.hasher, f.tokens, f.mail, authservice.DefaultPolicy(), logger.Nop(), authservice.WithClock(clock.Now))
	return f
}

func (f *fixture) activeAccount(t *testing.T, email string) domain.Account {
	hash, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)
	a := domain.Account{
		ID:           domain.NewID(),
		Cedula:       "C-" + email,
		FullName:     "Ana Pérez",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		Status:       domain.AccountActive,
		RegisteredAt: f.clock.Now(),
	}
	require.NoError(t, f.repo.Create(context.Background(), a))
	return a
}

func validRegister() domain.RegisterRequest {
	return domain.RegisterRequest{
		Cedula:   "12345",
		FullName: "Ana Pérez",
		Address:  "Calle 1",
		Phone:    "3001234567",
		Email:    "a@x.com",
		Password: testPassword,
	}
}

// --- Cenários ---

func TestRegisterActivateLogin_Scenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	stored, err := f.repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountInactive, stored.Status)
	assert.Equal(t, domain.RoleClient, stored.Role)
	assert.NotEqual(t, testPassword, stored.PasswordHash)

	_, err = f.svc.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: testPassword})
	assert.IsType(t, &apperror.InactiveOrDeletedError{}, err)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "Activacion de Cuenta", f.mail.sent[0].Subject)
	code := f.mail.lastCode(t)
	assert.Len(t, code, 6)

	require.NoError(t, f.svc.Activate(ctx, domain.ActivateRequest{Email: "a@x.com", Code: code}))

	resp, err := f.svc.Login(ctx, domain.LoginRequest{Email: "a@x.com", Password: testPassword})
	require.NoError(t, err)

	claims, err := f.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE", claims.Role)
	assert.Equal(t, id.String(), claims.AccountID)
	assert.Equal(t, "Ana Pérez", claims.Name)
}

func TestRegister_Fail_DuplicateCedula(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	req := validRegister()
	req.Email = "otro@x.com"
	_, err = f.svc.Register(ctx, req)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestRegister_Fail_DuplicateCedulaWithSpaces(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	req := validRegister()
	req.Email = "otro@x.com"
	req.Cedula = " 12345 "
	_, err = f.svc.Register(ctx, req)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, err.Error(), "La cédula 12345 ya")
}

func TestRegister_Fail_DuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	req := validRegister()
	req.Cedula = "99999"
	req.Email = " A@X.com "
	_, err = f.svc.Register(ctx, req)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestRegister_Fail_WeakPassword(t *testing.T) {
	f := newFixture()
	req := validRegister()
	req.Password = "secreta123"

	_, err := f.svc.Register(context.Background(), req)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Empty(t, f.repo.accounts)
}

func TestActivate_ExpiredAfter16Minutes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)
	code := f.mail.lastCode(t)

	f.clock.Advance(16 * time.Minute)
	err = f.svc.Activate(ctx, domain.ActivateRequest{Email: "a@x.com", Code: code})
	assert.IsType(t, &apperror.ExpiredError{}, err)
}

func TestActivate_ValidAt15Minutes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)
	code := f.mail.lastCode(t)

	f.clock.Advance(15 * time.Minute)
	assert.NoError(t, f.svc.Activate(ctx, domain.ActivateRequest{Email: "a@x.com", Code: code}))
}

func TestActivate_WrongCode(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, validRegister())
	require.NoError(t, err)

	err = f.svc.Activate(ctx, domain.ActivateRequest{Email: "a@x.com", Code: "ZZZZZZ!"})
	assert.IsType(t, &apperror.InvalidCodeError{}, err)
}

func TestActivate_UnknownEmail(t *testing.T) {
	f := newFixture()
	err := f.svc.Activate(context.Background(), domain.ActivateRequest{Email: "nadie@x.com", Code: "ABC123"})
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestLogin_LockoutAndRecovery(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.activeAccount(t, "b@x.com")

	for i := 0; i < 5; i++ {
		_, err := f.svc.Login(ctx, domain.LoginRequest{Email: "b@x.com", Password: "Errada123!"})
		require.IsType(t, &apperror.IncorrectPasswordError{}, err, "tentativa %d", i+1)
	}

	_, err := f.svc.Login(ctx, domain.LoginRequest{Email: "b@x.com", Password: testPassword})
	assert.IsType(t, &apperror.LockedError{}, err)

	f.clock.Advance(4*time.Minute + 59*time.Second)
	_, err = f.svc.Login(ctx, domain.LoginRequest{Email: "b@x.com", Password: testPassword})
	assert.IsType(t, &apperror.LockedError{}, err)

	f.clock.Advance(time.Second)
	resp, err := f.svc.Login(ctx, domain.LoginRequest{Email: "b@x.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	stored, _ := f.repo.FindByID(ctx, a.ID)
	assert.Equal(t, 0, stored.FailedLogins)
	assert.Nil(t, stored.LockedUntil)
}

func TestLogin_SuccessResetsCounterBeforeLock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.activeAccount(t, "c@x.com")

	for i := 0; i < 3; i++ {
		_, _ = f.svc.Login(ctx, domain.LoginRequest{Email: "c@x.com", Password: "Errada123!"})
	}
	stored, _ := f.repo.FindByID(ctx, a.ID)
	assert.Equal(t, 3, stored.FailedLogins)

	_, err := f.svc.Login(ctx, domain.LoginRequest{Email: "c@x.com", Password: testPassword})
	require.NoError(t, err)

	stored, _ = f.repo.FindByID(ctx, a.ID)
	assert.Equal(t, 0, stored.FailedLogins)
}

func TestRecoverPassword_Flow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.activeAccount(t, "d@x.com")

	f.svc.SendRecoveryCode(ctx, "d@x.com")
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "Recuperacion de Cuenta", f.mail.sent[0].Subject)
	code := f.mail.lastCode(t)

	err := f.svc.RecoverPassword(ctx, domain.RecoverPasswordRequest{
		Email: "d@x.com", Code: code, NewPassword: "Nueva123!", ConfirmPassword: "Otra123!",
	})
	assert.IsType(t, &apperror.MismatchError{}, err)

	err = f.svc.RecoverPassword(ctx, domain.RecoverPasswordRequest{
		Email: "d@x.com", Code: "XXXXXX", NewPassword: "Nueva123!", ConfirmPassword: "Nueva123!",
	})
	assert.IsType(t, &apperror.InvalidCodeError{}, err)

	require.NoError(t, f.svc.RecoverPassword(ctx, domain.RecoverPasswordRequest{
		Email: "d@x.com", Code: code, NewPassword: "Nueva123!", ConfirmPassword: "Nueva123!",
	}))

	_, err = f.svc.Login(ctx, domain.LoginRequest{Email: "d@x.com", Password: "Nueva123!"})
	assert.NoError(t, err)
}

func TestRecoverPassword_Expired(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.activeAccount(t, "e@x.com")

	f.svc.SendRecoveryCode(ctx, "e@x.com")
	code := f.mail.lastCode(t)
	f.clock.Advance(16 * time.Minute)

	err := f.svc.RecoverPassword(ctx, domain.RecoverPasswordRequest{
		Email: "e@x.com", Code: code, NewPassword: "Nueva123!", ConfirmPassword: "Nueva123!",
	})
	assert.IsType(t, &apperror.ExpiredError{}, err)
}

func TestChangePassword(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.activeAccount(t, "f@x.com")

	err := f.svc.ChangePassword(ctx, domain.ChangePasswordRequest{
		ID: a.ID, OldPassword: "Errada123!", NewPassword: "Nueva123!", ConfirmPassword: "Nueva123!",
	})
	assert.IsType(t, &apperror.IncorrectPasswordError{}, err)

	err = f.svc.ChangePassword(ctx, domain.ChangePasswordRequest{
		ID: a.ID, OldPassword: testPassword, NewPassword: "Nueva123!", ConfirmPassword: "Nueva124!",
	})
	assert.IsType(t, &apperror.MismatchError{}, err)

	require.NoError(t, f.svc.ChangePassword(ctx, domain.ChangePasswordRequest{
		ID: a.ID, OldPassword: testPassword, NewPassword: "Nueva123!", ConfirmPassword: "Nueva123!",
	}))
	stored, _ := f.repo.FindByID(ctx, a.ID)
	assert.True(t, f.hasher.Verify(stored.PasswordHash, "Nueva123!"))
}

func TestProfileAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.activeAccount(t, "g@x.com")

	info, err := f.svc.UpdateProfile(ctx, domain.UpdateProfileRequest{ID: a.ID, FullName: "Ana María", Address: "Cra 7", Phone: "311"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", info.FullName)

	require.NoError(t, f.svc.DeleteAccount(ctx, a.ID))

	_, err = f.svc.GetAccount(ctx, a.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	// Email liberado para um novo cadastro.
	req := validRegister()
	req.Email = "g@x.com"
	req.Cedula = a.Cedula
	_, err = f.svc.Register(ctx, req)
	assert.NoError(t, err)
}

func TestRefreshToken(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.activeAccount(t, "h@x.com")

	resp, err := f.svc.Login(ctx, domain.LoginRequest{Email: "h@x.com", Password: testPassword})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	refreshed, err := f.svc.RefreshToken(resp.Token)
	require.NoError(t, err)

	claims, err := f.tokens.Parse(refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, "h@x.com", claims.Subject)

	_, err = f.svc.RefreshToken("not-a-token")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

// --- Falhas absorvidas no envio de códigos ---

func TestSendActivationCode_SwallowsLookupFailure(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mail := &outbox{}
	svc := authservice.NewService(mockRepo, password.NewBcryptHasher(4), token.NewService(testSecret, time.Hour), mail, authservice.DefaultPolicy(), logger.Nop())

	mockRepo.On("FindActiveByEmail", mock.Anything, "nadie@x.com").Return(domain.Account{}, apperror.NewNotFoundError("no existe"))

	assert.NotPanics(t, func() { svc.SendActivationCode(context.Background(), "nadie@x.com") })
	assert.Empty(t, mail.sent)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSendRecoveryCode_SwallowsUpdateFailure(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mail := &outbox{}
	svc := authservice.NewService(mockRepo, password.NewBcryptHasher(4), token.NewService(testSecret, time.Hour), mail, authservice.DefaultPolicy(), logger.Nop())

	account := domain.Account{ID: domain.NewID(), Email: "i@x.com", Status: domain.AccountActive}
	mockRepo.On("FindActiveByEmail", mock.Anything, "i@x.com").Return(account, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("database connection failed"))

	svc.SendRecoveryCode(context.Background(), "i@x.com")
	assert.Empty(t, mail.sent)
	mockRepo.AssertExpectations(t)
}

func TestRegister_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := authservice.NewService(mockRepo, password.NewBcryptHasher(4), token.NewService(testSecret, time.Hour), &outbox{}, authservice.DefaultPolicy(), logger.Nop())

	repoErr := apperror.NewDBError("Falha ao verificar conta", errors.New("boom"))
	mockRepo.On("ExistsActiveByCedula", mock.Anything, "12345").Return(false, repoErr)

	_, err := svc.Register(context.Background(), validRegister())
	assert.IsType(t, &apperror.InternalError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
