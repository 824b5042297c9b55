package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementação de EventRepository (usável com pool ou tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, user_id, title, description, location, starts_at, ends_at, created_at, updated_at`

// Create persiste um novo evento.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.UserID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtém um evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var e entity.Event
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description, &e.Location,
		&e.StartsAt, &e.EndsAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// ListByUser lista eventos do tenant, ordenados pela data de início.
func (r *EventRepo) ListByUser(userID string, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE user_id = $1 ORDER BY starts_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Description, &e.Location,
			&e.StartsAt, &e.EndsAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza os dados do evento.
func (r *EventRepo) Update(event *entity.Event) error {
	query := `
		UPDATE events SET title = $2, description = $3, location = $4,
			starts_at = $5, ends_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete remove o evento.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
