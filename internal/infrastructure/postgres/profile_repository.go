package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação de ProfileRepository (usável com pool ou tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste um novo perfil.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, church_name, active_plan, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.ChurchName, string(profile.ActivePlan), profile.Theme,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtém um perfil por ID. O plano persistido passa por ParsePlan,
// então valores desconhecidos viram Experimental.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `
		SELECT id, church_name, active_plan, theme, created_at, updated_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	var rawPlan string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ChurchName, &rawPlan, &p.Theme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.ActivePlan = entity.ParsePlan(rawPlan)
	return &p, nil
}

// UpdateSettings altera nome da igreja e tema.
func (r *ProfileRepo) UpdateSettings(id, churchName, theme string) error {
	query := `
		UPDATE profiles SET church_name = $2, theme = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, churchName, theme, time.Now())
	if err != nil {
		return fmt.Errorf("update profile settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateActivePlan grava o plano confirmado pelo reconciliador de webhook.
func (r *ProfileRepo) UpdateActivePlan(id string, plan entity.Plan) error {
	query := `
		UPDATE profiles SET active_plan = $2, updated_at = $3
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, string(plan), time.Now())
	if err != nil {
		return fmt.Errorf("update active plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
