package usecase

import (
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
)

// parseDate aceita "2006-01-02" ou RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

// parseOptionalDate devolve nil para string vazia.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
