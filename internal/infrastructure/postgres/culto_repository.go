package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.CultoRepository = (*CultoRepo)(nil)

// CultoRepo implementação de CultoRepository (usável com pool ou tx).
type CultoRepo struct {
	q Querier
}

// NewCultoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCultoRepository(q Querier) *CultoRepo {
	return &CultoRepo{q: q}
}

const cultoColumns = `id, user_id, title, date, preacher, theme, notes, created_at, updated_at`

// Create persiste um novo culto.
func (r *CultoRepo) Create(culto *entity.Culto) error {
	query := `
		INSERT INTO cultos (` + cultoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		culto.ID, culto.UserID, culto.Title, culto.Date, culto.Preacher,
		culto.Theme, culto.Notes, culto.CreatedAt, culto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert culto: %w", err)
	}
	return nil
}

// GetByID obtém um culto por ID.
func (r *CultoRepo) GetByID(id string) (*entity.Culto, error) {
	query := `SELECT ` + cultoColumns + ` FROM cultos WHERE id = $1`
	var c entity.Culto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.UserID, &c.Title, &c.Date, &c.Preacher,
		&c.Theme, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get culto: %w", err)
	}
	return &c, nil
}

// ListByUser lista cultos do tenant, mais recentes primeiro.
func (r *CultoRepo) ListByUser(userID string, limit, offset int) ([]*entity.Culto, error) {
	query := `
		SELECT ` + cultoColumns + ` FROM cultos
		WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cultos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Culto
	for rows.Next() {
		var c entity.Culto
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Title, &c.Date, &c.Preacher,
			&c.Theme, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan culto: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza os dados do culto.
func (r *CultoRepo) Update(culto *entity.Culto) error {
	query := `
		UPDATE cultos SET title = $2, date = $3, preacher = $4,
			theme = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		culto.ID, culto.Title, culto.Date, culto.Preacher,
		culto.Theme, culto.Notes, culto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update culto: %w", err)
	}
	return nil
}

// Delete remove o culto.
func (r *CultoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cultos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete culto: %w", err)
	}
	return nil
}
