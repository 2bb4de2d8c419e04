package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("resource not found")

// Application status options, fixed set shared with the frontend
const (
	StatusApplied      = "Applied"
	StatusInterviewing = "Interviewing"
	StatusOffered      = "Offered"
	StatusRejected     = "Rejected"
)

// StatusOptions lists every valid application status in display order.
func StatusOptions() []string {
	return []string{StatusApplied, StatusInterviewing, StatusOffered, StatusRejected}
}

// IsValidStatus reports whether value is one of the fixed status options.
func IsValidStatus(value string) bool {
	switch value {
	case StatusApplied, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Application is one tracked job application, exclusively owned by UserID.
// Optional fields are nil when absent; the wire shape renders them as "".
type Application struct {
	ID              string
	UserID          string
	Company         string
	JobTitle        string
	Status          string
	ApplicationDate time.Time
	Salary          *string
	Link            *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ApplicationRecord is the JSON shape returned to clients. Dates carry only
// the calendar day, timestamps are ISO-8601, absent optionals are "".
type ApplicationRecord struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Company         string `json:"company"`
	JobTitle        string `json:"jobTitle"`
	Status          string `json:"status"`
	ApplicationDate string `json:"applicationDate"`
	Salary          string `json:"salary"`
	Link            string `json:"link"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// Record converts the stored application into its wire shape.
func (a *Application) Record() ApplicationRecord {
	return ApplicationRecord{
		ID:              a.ID,
		UserID:          a.UserID,
		Company:         a.Company,
		JobTitle:        a.JobTitle,
		Status:          a.Status,
		ApplicationDate: a.ApplicationDate.UTC().Format("2006-01-02"),
		Salary:          orEmpty(a.Salary),
		Link:            orEmpty(a.Link),
		Notes:           orEmpty(a.Notes),
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StatusCount is one row of the per-status aggregate for a user's board.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ApplicationRepository defines data access methods for applications.
// Every method that touches an existing row is scoped by owning user;
// a scoped update or delete matching zero rows returns ErrNotFound.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id, userID string) error
	CountByStatus(ctx context.Context, userID string) ([]StatusCount, error)
}

// ApplicationUsecase defines business logic for applications. The raw
// payload is the decoded JSON body; validation happens before any storage
// access.
type ApplicationUsecase interface {
	List(ctx context.Context, userID string) ([]ApplicationRecord, error)
	Create(ctx context.Context, userID string, raw any) (*ApplicationRecord, error)
	Update(ctx context.Context, id, userID string, raw any) (*ApplicationRecord, error)
	Delete(ctx context.Context, id, userID string) error
	Stats(ctx context.Context, userID string) ([]StatusCount, error)
}
