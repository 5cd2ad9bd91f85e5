package complaintservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/service/complaintservice"
)

// MockComplaintRepository é uma implementação mock da interface ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, c domain.Complaint) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id domain.ID) (domain.Complaint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Update(ctx context.Context, c domain.Complaint) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockComplaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListByClient(ctx context.Context, id domain.ID) ([]domain.Complaint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListByServiceName(ctx context.Context, name string) ([]domain.Complaint, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListByStatus(ctx context.Context, st domain.ComplaintStatus) ([]domain.Complaint, error) {
	args := m.Called(ctx, st)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Complaint, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

var fixedNow = time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

func newService(repo *MockComplaintRepository) *complaintservice.Service {
	return complaintservice.NewService(repo, logger.Nop(), complaintservice.WithClock(func() time.Time { return fixedNow }))
}

func complaintIn(status domain.ComplaintStatus) domain.Complaint {
	return domain.Complaint{ID: domain.NewID(), ClientID: domain.NewID(), Description: "Demora", Status: status}
}

func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)

	clientID := domain.NewID()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Complaint) bool {
		return c.ClientID == clientID && c.Status == domain.ComplaintUnanswered && c.Date.Equal(fixedNow) && c.Response == nil
	})).Return(nil)

	id, err := svc.Create(context.Background(), domain.CreateComplaintRequest{
		ClientID: clientID.String(), ClientName: "Ana", Description: " Demora en la atención ", ServiceName: "Manicure",
	})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCreate_Fail_EmptyDescription(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)

	_, err := svc.Create(context.Background(), domain.CreateComplaintRequest{ClientID: domain.NewID().String(), Description: "  "})
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelete_Guards(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ComplaintStatus
		wantErr bool
	}{
		{"sin responder", domain.ComplaintUnanswered, false},
		{"respondida", domain.ComplaintAnswered, true},
		{"eliminada", domain.ComplaintDeleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockComplaintRepository)
			svc := newService(mockRepo)
			c := complaintIn(tt.status)

			mockRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
			if !tt.wantErr {
				mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u domain.Complaint) bool {
					return u.Status == domain.ComplaintDeleted
				})).Return(nil)
			}

			err := svc.Delete(context.Background(), c.ID.String())
			if tt.wantErr {
				assert.IsType(t, &apperror.ValidationError{}, err)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGet_DeletedIsNotFound(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)
	c := complaintIn(domain.ComplaintDeleted)

	mockRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	_, err := svc.Get(context.Background(), c.ID.String())
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestRespond(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)
	c := complaintIn(domain.ComplaintUnanswered)

	mockRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u domain.Complaint) bool {
		return u.Status == domain.ComplaintAnswered && u.Response != nil &&
			u.Response.Text == "Lo sentimos" && u.Response.RespondedAt.Equal(fixedNow)
	})).Return(nil)

	err := svc.Respond(context.Background(), domain.RespondComplaintRequest{ComplaintID: c.ID.String(), Text: "Lo sentimos"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRespond_Fail_AlreadyAnswered(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)
	c := complaintIn(domain.ComplaintAnswered)

	mockRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	err := svc.Respond(context.Background(), domain.RespondComplaintRequest{ComplaintID: c.ID.String(), Text: "Otra vez"})
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListByDateRange(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	mockRepo.On("ListBetween", mock.Anything, from, to).Return([]domain.Complaint{complaintIn(domain.ComplaintUnanswered)}, nil)

	list, err := svc.ListByDateRange(context.Background(), "2024-06-01", "2024-06-03")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByDateRange(context.Background(), "2024-06-03", "2024-06-01")
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.ListByDay(context.Background(), "01/06/2024")
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertExpectations(t)
}

func TestListByDay(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockRepo.On("ListBetween", mock.Anything, day, day.AddDate(0, 0, 1)).Return([]domain.Complaint{}, nil)

	list, err := svc.ListByDay(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, list)
	mockRepo.AssertExpectations(t)
}

func TestListByStatus(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	svc := newService(mockRepo)

	mockRepo.On("ListByStatus", mock.Anything, domain.ComplaintAnswered).Return([]domain.Complaint{complaintIn(domain.ComplaintAnswered)}, nil)

	list, err := svc.ListByStatus(context.Background(), "respondida")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListByStatus(context.Background(), "OLVIDADA")
	require.NoError(t, err)
	assert.Empty(t, list)
	mockRepo.AssertExpectations(t)
}
