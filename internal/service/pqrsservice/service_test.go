package pqrsservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/service/pqrsservice"
)

type MockPQRSRepository struct {
	mock.Mock
}

func (m *MockPQRSRepository) Create(ctx context.Context, t domain.PQRSTicket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockPQRSRepository) FindByID(ctx context.Context, id domain.ID) (domain.PQRSTicket, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PQRSTicket), args.Error(1)
}

func (m *MockPQRSRepository) UpdateStatus(ctx context.Context, t domain.PQRSTicket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockPQRSRepository) List(ctx context.Context) ([]domain.PQRSTicket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PQRSTicket), args.Error(1)
}

func (m *MockPQRSRepository) CountByType(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

func (m *MockPQRSRepository) CountByAccount(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

func (m *MockPQRSRepository) CountByAccountAndType(ctx context.Context) ([]domain.CountEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CountEntry), args.Error(1)
}

type MockAccountLookup struct {
	mock.Mock
}

func (m *MockAccountLookup) FindByID(ctx context.Context, id domain.ID) (domain.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func TestRegister_Anonymous(t *testing.T) {
	repo, accounts := new(MockPQRSRepository), new(MockAccountLookup)
	svc := pqrsservice.NewService(repo, accounts, logger.Nop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tk domain.PQRSTicket) bool {
		return tk.Type == domain.PQRSClaim && tk.AccountID.IsZero() && tk.Status == domain.PQRSPending
	})).Return(nil)

	ticket, err := svc.Register(context.Background(), domain.CreatePQRSRequest{Type: "reclamo", Description: "Cobro doble"})
	require.NoError(t, err)
	assert.Equal(t, domain.PQRSClaim, ticket.Type)
	accounts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestRegister_Fail_UnknownAccount(t *testing.T) {
	repo, accounts := new(MockPQRSRepository), new(MockAccountLookup)
	svc := pqrsservice.NewService(repo, accounts, logger.Nop())

	id := domain.NewID()
	accounts.On("FindByID", mock.Anything, id).Return(domain.Account{}, apperror.NewNotFoundError("no existe"))

	_, err := svc.Register(context.Background(), domain.CreatePQRSRequest{Type: "PETICION", AccountID: id.String(), Description: "x"})
	assert.IsType(t, &apperror.NotFoundError{}, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Fail_InvalidType(t *testing.T) {
	svc := pqrsservice.NewService(new(MockPQRSRepository), new(MockAccountLookup), logger.Nop())

	_, err := svc.Register(context.Background(), domain.CreatePQRSRequest{Type: "FELICITACION", Description: "x"})
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestUpdateStatus_WithResponse(t *testing.T) {
	repo := new(MockPQRSRepository)
	svc := pqrsservice.NewService(repo, new(MockAccountLookup), logger.Nop())

	ticket := domain.PQRSTicket{ID: domain.NewID(), Type: domain.PQRSPetition, Status: domain.PQRSPending}
	repo.On("FindByID", mock.Anything, ticket.ID).Return(ticket, nil)
	repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tk domain.PQRSTicket) bool {
		return tk.Status == domain.PQRSResolved && tk.Response == "Listo" && tk.RespondedAt != nil
	})).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), ticket.ID.String(), domain.UpdatePQRSStatusRequest{Status: "resuelto", Response: "Listo"})
	require.NoError(t, err)
	assert.Equal(t, domain.PQRSResolved, updated.Status)
	repo.AssertExpectations(t)
}

func TestCountByType_FillsMissingTypes(t *testing.T) {
	repo := new(MockPQRSRepository)
	svc := pqrsservice.NewService(repo, new(MockAccountLookup), logger.Nop())

	repo.On("CountByType", mock.Anything).Return([]domain.CountEntry{{Key: "QUEJA", Count: 3}}, nil)

	counts, err := svc.CountByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CountEntry{
		{Key: "PETICION", Count: 0},
		{Key: "QUEJA", Count: 3},
		{Key: "RECLAMO", Count: 0},
		{Key: "SUGERENCIA", Count: 0},
	}, counts)
}
