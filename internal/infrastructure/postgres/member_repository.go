package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementação de MemberRepository (usável com pool ou tx).
type MemberRepo struct {
	q Querier
}

// NewMemberRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `id, user_id, name, email, phone, address, birth_date, baptism_date, status, created_at, updated_at`

// Create persiste um novo membro.
func (r *MemberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.UserID, member.Name, member.Email, member.Phone, member.Address,
		member.BirthDate, member.BaptismDate, member.Status, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtém um membro por ID.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	var m entity.Member
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Email, &m.Phone, &m.Address,
		&m.BirthDate, &m.BaptismDate, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// ListByUser lista membros do tenant com paginação, ordenados por nome.
func (r *MemberRepo) ListByUser(userID string, limit, offset int) ([]*entity.Member, error) {
	query := `
		SELECT ` + memberColumns + ` FROM members
		WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Email, &m.Phone, &m.Address,
			&m.BirthDate, &m.BaptismDate, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByUser conta os membros do tenant.
func (r *MemberRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM members WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}

// Update atualiza os dados do membro.
func (r *MemberRepo) Update(member *entity.Member) error {
	query := `
		UPDATE members SET name = $2, email = $3, phone = $4, address = $5,
			birth_date = $6, baptism_date = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Email, member.Phone, member.Address,
		member.BirthDate, member.BaptismDate, member.Status, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// Delete remove o membro.
func (r *MemberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
