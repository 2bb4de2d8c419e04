package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/chasethilleman/application-tracker-api/internal/domain"
	"github.com/chasethilleman/application-tracker-api/internal/validation"
	"github.com/chasethilleman/application-tracker-api/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	validate        *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		validate:        validate,
	}
}

// List returns all applications owned by the user, newest first
func (uc *applicationUsecase) List(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	records := make([]domain.ApplicationRecord, 0, len(apps))
	for i := range apps {
		records = append(records, apps[i].Record())
	}
	return records, nil
}

// Create validates the payload and persists a new application owned by userID.
// Validation runs before any storage access; nothing is written on rejection.
func (uc *applicationUsecase) Create(ctx context.Context, userID string, raw any) (*domain.ApplicationRecord, error) {
	input, err := validation.Payload(raw, uc.validate)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		UserID:          userID,
		Company:         input.Company,
		JobTitle:        input.JobTitle,
		Status:          input.Status,
		ApplicationDate: input.ApplicationDate,
		Salary:          input.Salary,
		Link:            input.Link,
		Notes:           input.Notes,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	record := app.Record()
	return &record, nil
}

// Update validates the payload and replaces the editable fields of the
// application matching both id and userID. A record that does not exist and
// a record owned by someone else are both reported as not found.
func (uc *applicationUsecase) Update(ctx context.Context, id, userID string, raw any) (*domain.ApplicationRecord, error) {
	input, err := validation.Payload(raw, uc.validate)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		ID:              id,
		UserID:          userID,
		Company:         input.Company,
		JobTitle:        input.JobTitle,
		Status:          input.Status,
		ApplicationDate: input.ApplicationDate,
		Salary:          input.Salary,
		Link:            input.Link,
		Notes:           input.Notes,
	}

	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	record := app.Record()
	return &record, nil
}

// Delete removes the application matching both id and userID. Deleting an
// already-deleted application reports not found, so repeating a delete never
// reads as a second success.
func (uc *applicationUsecase) Delete(ctx context.Context, id, userID string) error {
	if err := uc.applicationRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// Stats returns per-status counts for the user's board. Statuses with no
// applications are included with a zero count.
func (uc *applicationUsecase) Stats(ctx context.Context, userID string) ([]domain.StatusCount, error) {
	counts, err := uc.applicationRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	result := make([]domain.StatusCount, 0, 4)
	for _, status := range domain.StatusOptions() {
		result = append(result, domain.StatusCount{Status: status, Count: byStatus[status]})
	}
	return result, nil
}
