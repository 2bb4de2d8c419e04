package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chasethilleman/application-tracker-api/internal/domain"
	"github.com/chasethilleman/application-tracker-api/internal/usecase"
	"github.com/chasethilleman/application-tracker-api/pkg/apperror"
)

// Mock Repository
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockApplicationRepo) CountByStatus(ctx context.Context, userID string) ([]domain.StatusCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func validPayload() map[string]any {
	return map[string]any{
		"company":         "Acme",
		"jobTitle":        "Engineer",
		"status":          "Applied",
		"applicationDate": "2024-03-01",
		"salary":          "120000",
		"link":            "",
		"notes":           "",
	}
}

// stampOnCreate fills the fields the real repository assigns on insert.
func stampOnCreate(args mock.Arguments) {
	app := args.Get(1).(*domain.Application)
	app.ID = uuid.NewString()
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
}

func TestCreateApplication(t *testing.T) {
	validate := validator.New()

	t.Run("persists record owned by requesting user", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, "user1", app.UserID)
			assert.Equal(t, "Acme", app.Company)
			assert.Equal(t, "Engineer", app.JobTitle)
			assert.Equal(t, domain.StatusApplied, app.Status)
			require.NotNil(t, app.Salary)
			assert.Equal(t, "120000", *app.Salary)
			assert.Nil(t, app.Link)
			assert.Nil(t, app.Notes)
			stampOnCreate(args)
		})

		record, err := uc.Create(context.Background(), "user1", validPayload())
		require.NoError(t, err)

		assert.Equal(t, "2024-03-01", record.ApplicationDate)
		assert.Equal(t, "120000", record.Salary)
		// Absent optional fields render as empty string on output
		assert.Equal(t, "", record.Link)
		assert.Equal(t, "", record.Notes)
		assert.NotEmpty(t, record.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed payload without touching storage", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		body := validPayload()
		delete(body, "company")

		_, err := uc.Create(context.Background(), "user1", body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid request body")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		body := validPayload()
		body["status"] = "Ghosted"

		_, err := uc.Create(context.Background(), "user1", body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unparseable date", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		body := validPayload()
		body["applicationDate"] = "soon"

		_, err := uc.Create(context.Background(), "user1", body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application date")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("empty salary round-trips as empty string", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			// Stored as absent, not empty string
			assert.Nil(t, app.Salary)
			stampOnCreate(args)
		})

		body := validPayload()
		body["salary"] = ""

		record, err := uc.Create(context.Background(), "user1", body)
		require.NoError(t, err)
		assert.Equal(t, "", record.Salary)
	})
}

func TestListApplications(t *testing.T) {
	validate := validator.New()
	mockRepo := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockRepo, validate)

	salary := "90000"
	apps := []domain.Application{
		{
			ID: "b", UserID: "user1", Company: "Beta", JobTitle: "Engineer",
			Status:          domain.StatusInterviewing,
			ApplicationDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Salary:          &salary,
			CreatedAt:       time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "a", UserID: "user1", Company: "Acme", JobTitle: "Engineer",
			Status:          domain.StatusApplied,
			ApplicationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	mockRepo.On("GetByUserID", mock.Anything, "user1").Return(apps, nil)

	records, err := uc.List(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Repository order (newest first) is preserved
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "2024-03-02", records[0].ApplicationDate)
	assert.Equal(t, "90000", records[0].Salary)
	assert.Equal(t, "2024-03-02T10:00:00Z", records[0].CreatedAt)
	assert.Equal(t, "", records[1].Salary)
}

func TestUpdateScoping(t *testing.T) {
	validate := validator.New()

	t.Run("record owned by another user reads as not found", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(domain.ErrNotFound)

		_, err := uc.Update(context.Background(), "record-of-user-b", "userA", validPayload())
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("validation failure leaves storage untouched", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		body := validPayload()
		body["status"] = 7

		_, err := uc.Update(context.Background(), "some-id", "user1", body)
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("successful update returns refreshed record", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, "some-id", app.ID)
			assert.Equal(t, "user1", app.UserID)
			app.CreatedAt = created
			app.UpdatedAt = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
		})

		record, err := uc.Update(context.Background(), "some-id", "user1", validPayload())
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T09:00:00Z", record.CreatedAt)
		assert.Equal(t, "2024-03-05T12:00:00Z", record.UpdatedAt)
	})
}

func TestDeleteApplication(t *testing.T) {
	validate := validator.New()

	t.Run("second delete of the same id reads as not found", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, validate)

		mockRepo.On("Delete", mock.Anything, "app1", "user1").Return(nil).Once()
		mockRepo.On("Delete", mock.Anything, "app1", "user1").Return(domain.ErrNotFound).Once()

		require.NoError(t, uc.Delete(context.Background(), "app1", "user1"))

		err := uc.Delete(context.Background(), "app1", "user1")
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestStats(t *testing.T) {
	validate := validator.New()
	mockRepo := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockRepo, validate)

	mockRepo.On("CountByStatus", mock.Anything, "user1").Return([]domain.StatusCount{
		{Status: domain.StatusApplied, Count: 3},
		{Status: domain.StatusRejected, Count: 1},
	}, nil)

	counts, err := uc.Stats(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, counts, 4)

	assert.Equal(t, domain.StatusCount{Status: "Applied", Count: 3}, counts[0])
	assert.Equal(t, domain.StatusCount{Status: "Interviewing", Count: 0}, counts[1])
	assert.Equal(t, domain.StatusCount{Status: "Offered", Count: 0}, counts[2])
	assert.Equal(t, domain.StatusCount{Status: "Rejected", Count: 1}, counts[3])
}
