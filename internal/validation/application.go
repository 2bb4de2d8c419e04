// Package validation turns raw request payloads into normalized application
// input. It is pure: no storage access, same input always yields the same
// normalized output or the same rejection.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chasethilleman/application-tracker-api/internal/domain"
	"github.com/chasethilleman/application-tracker-api/pkg/apperror"
)

// Rejection messages, mirrored by the frontend
const (
	MsgInvalidBody   = "Invalid request body"
	MsgInvalidStatus = "Invalid application status"
	MsgInvalidDate   = "Invalid application date"
)

// requiredFields must all be present as strings in the payload. Optional
// values still arrive as strings; the form always submits every field.
var requiredFields = []string{
	"company",
	"jobTitle",
	"status",
	"applicationDate",
	"salary",
	"link",
	"notes",
}

// Accepted applicationDate layouts. The date component is all that is kept.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// NormalizedInput is a validated, trimmed application payload ready to
// persist. Optional fields are nil when empty after trimming.
type NormalizedInput struct {
	Company         string `validate:"required"`
	JobTitle        string `validate:"required"`
	Status          string `validate:"required"`
	ApplicationDate time.Time
	Salary          *string
	Link            *string
	Notes           *string
}

// Payload validates and normalizes a decoded JSON body. Checks run in
// order: shape, field types, status enum, date parse, then required-after-trim
// via the validator instance. Returns an *apperror.AppError on rejection.
func Payload(raw any, validate *validator.Validate) (*NormalizedInput, error) {
	body, ok := raw.(map[string]any)
	if !ok || body == nil {
		return nil, apperror.BadRequest(MsgInvalidBody)
	}

	fields := make(map[string]string, len(requiredFields))
	for _, name := range requiredFields {
		value, ok := body[name].(string)
		if !ok {
			return nil, apperror.BadRequest(MsgInvalidBody)
		}
		fields[name] = value
	}

	if !domain.IsValidStatus(fields["status"]) {
		return nil, apperror.BadRequest(MsgInvalidStatus)
	}

	date, err := parseDate(fields["applicationDate"])
	if err != nil {
		return nil, apperror.BadRequest(MsgInvalidDate)
	}

	input := &NormalizedInput{
		Company:         strings.TrimSpace(fields["company"]),
		JobTitle:        strings.TrimSpace(fields["jobTitle"]),
		Status:          fields["status"],
		ApplicationDate: date,
		Salary:          toNullable(fields["salary"]),
		Link:            toNullable(fields["link"]),
		Notes:           toNullable(fields["notes"]),
	}

	// Empty-after-trim company/jobTitle means the form was submitted with
	// whitespace only; treat as missing required fields.
	if err := validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(MsgInvalidBody)
	}

	return input, nil
}

// parseDate parses the payload date and keeps only the calendar day, in UTC.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// toNullable trims an optional field, mapping whitespace-only to absent.
func toNullable(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
