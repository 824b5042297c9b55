package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

// VisitorRepo implementação de VisitorRepository (usável com pool ou tx).
type VisitorRepo struct {
	q Querier
}

// NewVisitorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVisitorRepository(q Querier) *VisitorRepo {
	return &VisitorRepo{q: q}
}

const visitorColumns = `id, user_id, name, phone, visit_date, invited_by, notes, created_at, updated_at`

// Create persiste um novo visitante.
func (r *VisitorRepo) Create(visitor *entity.Visitor) error {
	query := `
		INSERT INTO visitors (` + visitorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		visitor.ID, visitor.UserID, visitor.Name, visitor.Phone, visitor.VisitDate,
		visitor.InvitedBy, visitor.Notes, visitor.CreatedAt, visitor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// GetByID obtém um visitante por ID.
func (r *VisitorRepo) GetByID(id string) (*entity.Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`
	var v entity.Visitor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UserID, &v.Name, &v.Phone, &v.VisitDate,
		&v.InvitedBy, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visitor: %w", err)
	}
	return &v, nil
}

// ListByUser lista visitantes do tenant, mais recentes primeiro.
func (r *VisitorRepo) ListByUser(userID string, limit, offset int) ([]*entity.Visitor, error) {
	query := `
		SELECT ` + visitorColumns + ` FROM visitors
		WHERE user_id = $1 ORDER BY visit_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visitor
	for rows.Next() {
		var v entity.Visitor
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Name, &v.Phone, &v.VisitDate,
			&v.InvitedBy, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update atualiza os dados do visitante.
func (r *VisitorRepo) Update(visitor *entity.Visitor) error {
	query := `
		UPDATE visitors SET name = $2, phone = $3, visit_date = $4,
			invited_by = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		visitor.ID, visitor.Name, visitor.Phone, visitor.VisitDate,
		visitor.InvitedBy, visitor.Notes, visitor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	return nil
}

// Delete remove o visitante.
func (r *VisitorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM visitors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}
	return nil
}
