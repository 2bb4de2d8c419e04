package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chasethilleman/application-tracker-api/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application owned by app.UserID
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, user_id, company, job_title, status, application_date, salary, link, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		app.ID,
		app.UserID,
		app.Company,
		app.JobTitle,
		app.Status,
		app.ApplicationDate,
		app.Salary,
		app.Link,
		app.Notes,
		app.CreatedAt,
		app.UpdatedAt,
	)
	return err
}

// GetByUserID retrieves all applications owned by a user, newest first
func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT id, user_id, company, job_title, status, application_date, salary, link, notes, created_at, updated_at
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.Company, &app.JobTitle, &app.Status,
			&app.ApplicationDate, &app.Salary, &app.Link, &app.Notes,
			&app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// Update replaces the editable fields of an application, matching both id
// and owning user. Returns domain.ErrNotFound when no row matches, whether
// the id is unknown or the row belongs to another user.
func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `
		UPDATE applications
		SET company = $3, job_title = $4, status = $5, application_date = $6,
		    salary = $7, link = $8, notes = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2
		RETURNING created_at`

	app.UpdatedAt = time.Now()

	err := r.db.QueryRow(ctx, query,
		app.ID,
		app.UserID,
		app.Company,
		app.JobTitle,
		app.Status,
		app.ApplicationDate,
		app.Salary,
		app.Link,
		app.Notes,
		app.UpdatedAt,
	).Scan(&app.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// Delete removes an application, matching both id and owning user
func (r *applicationRepo) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM applications WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus returns per-status application counts for a user
func (r *applicationRepo) CountByStatus(ctx context.Context, userID string) ([]domain.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM applications
		WHERE user_id = $1
		GROUP BY status`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}
