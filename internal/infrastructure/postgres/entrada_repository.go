package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

// EntradaRepo implementação de EntradaRepository (usável com pool ou tx).
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

const entradaColumns = `id, user_id, tipo, member_name, valor, date, notes, created_at, updated_at`

// Create persiste uma nova entrada.
func (r *EntradaRepo) Create(entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (` + entradaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.UserID, entrada.Tipo, entrada.MemberName, entrada.Valor,
		entrada.Date, entrada.Notes, entrada.CreatedAt, entrada.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetByID obtém uma entrada por ID.
func (r *EntradaRepo) GetByID(id string) (*entity.Entrada, error) {
	query := `SELECT ` + entradaColumns + ` FROM entradas WHERE id = $1`
	var e entity.Entrada
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.Tipo, &e.MemberName, &e.Valor,
		&e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return &e, nil
}

// ListByUser lista entradas do tenant, mais recentes primeiro.
func (r *EntradaRepo) ListByUser(userID string, limit, offset int) ([]*entity.Entrada, error) {
	query := `
		SELECT ` + entradaColumns + ` FROM entradas
		WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	return scanEntradas(rows)
}

// ListByPeriod lista entradas do período [from, to] ordenadas por data.
func (r *EntradaRepo) ListByPeriod(userID string, from, to time.Time) ([]*entity.Entrada, error) {
	query := `
		SELECT ` + entradaColumns + ` FROM entradas
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entradas por período: %w", err)
	}
	return scanEntradas(rows)
}

// SumByPeriod soma os valores do período [from, to].
func (r *EntradaRepo) SumByPeriod(userID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor), 0) FROM entradas
		WHERE user_id = $1 AND date >= $2 AND date <= $3`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum entradas: %w", err)
	}
	return total, nil
}

// Update atualiza os dados da entrada.
func (r *EntradaRepo) Update(entrada *entity.Entrada) error {
	query := `
		UPDATE entradas SET tipo = $2, member_name = $3, valor = $4,
			date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.Tipo, entrada.MemberName, entrada.Valor,
		entrada.Date, entrada.Notes, entrada.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entrada: %w", err)
	}
	return nil
}

// Delete remove a entrada.
func (r *EntradaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entradas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entrada: %w", err)
	}
	return nil
}

func scanEntradas(rows pgx.Rows) ([]*entity.Entrada, error) {
	defer rows.Close()
	var list []*entity.Entrada
	for rows.Next() {
		var e entity.Entrada
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Tipo, &e.MemberName, &e.Valor,
			&e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
