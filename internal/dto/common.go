package dto

import (
	"fmt"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
)

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for filters where an empty value means no bound.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MessageResponse is the body of operations that only confirm success.
type MessageResponse struct {
	Message string `json:"mensaje"`
}

// SearchParams are the query parameters of the /buscar endpoints.
type SearchParams struct {
	Tipo   string `form:"tipo" binding:"required"`
	Nombre string `form:"nombre"`
	Desde  string `form:"desde" binding:"omitempty,datetime=2006-01-02"`
	Hasta  string `form:"hasta" binding:"omitempty,datetime=2006-01-02"`
}

// ListByTypeParams is the ?tipo= filter of list endpoints.
type ListByTypeParams struct {
	Tipo string `form:"tipo" binding:"required"`
}
