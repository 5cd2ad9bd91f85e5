package suggestionservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gosalon/internal/domain"
	apperror "gosalon/internal/errors"
	"gosalon/internal/pkg/logger"
	"gosalon/internal/service/suggestionservice"
)

type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) Create(ctx context.Context, s domain.Suggestion) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSuggestionRepository) List(ctx context.Context) ([]domain.Suggestion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) MarkReviewed(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate_SetsTodayAndNotReviewed(t *testing.T) {
	mockRepo := new(MockSuggestionRepository)
	svc := suggestionservice.NewService(mockRepo, logger.Nop())

	today := time.Now().Format(domain.DateLayout)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s domain.Suggestion) bool {
		return s.Date == today && !s.Reviewed && s.Email == "ana@x.com"
	})).Return(nil)

	id, err := svc.Create(context.Background(), domain.CreateSuggestionRequest{
		Name: "Ana", Email: "Ana@X.com", Reason: "Horario", Message: "Abrir los domingos",
	})
	assert.NoError(t, err)
	assert.False(t, id.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCreate_Fail_Validation(t *testing.T) {
	mockRepo := new(MockSuggestionRepository)
	svc := suggestionservice.NewService(mockRepo, logger.Nop())

	_, err := svc.Create(context.Background(), domain.CreateSuggestionRequest{Name: "Ana", Email: "sin-arroba", Message: "x"})
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMarkReviewed_NotFound(t *testing.T) {
	mockRepo := new(MockSuggestionRepository)
	svc := suggestionservice.NewService(mockRepo, logger.Nop())

	id := domain.NewID()
	mockRepo.On("MarkReviewed", mock.Anything, id).Return(apperror.NewNotFoundError("no existe"))

	err := svc.MarkReviewed(context.Background(), id.String())
	assert.IsType(t, &apperror.NotFoundError{}, err)

	err = svc.MarkReviewed(context.Background(), "xyz")
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertExpectations(t)
}
