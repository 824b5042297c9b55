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

var _ repository.SaidaRepository = (*SaidaRepo)(nil)

// SaidaRepo implementação de SaidaRepository (usável com pool ou tx).
type SaidaRepo struct {
	q Querier
}

// NewSaidaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaidaRepository(q Querier) *SaidaRepo {
	return &SaidaRepo{q: q}
}

const saidaColumns = `id, user_id, descricao, categoria, valor, date, created_at, updated_at`

// Create persiste uma nova saída.
func (r *SaidaRepo) Create(saida *entity.Saida) error {
	query := `
		INSERT INTO saidas (` + saidaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		saida.ID, saida.UserID, saida.Descricao, saida.Categoria, saida.Valor,
		saida.Date, saida.CreatedAt, saida.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saida: %w", err)
	}
	return nil
}

// GetByID obtém uma saída por ID.
func (r *SaidaRepo) GetByID(id string) (*entity.Saida, error) {
	query := `SELECT ` + saidaColumns + ` FROM saidas WHERE id = $1`
	var s entity.Saida
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Descricao, &s.Categoria, &s.Valor,
		&s.Date, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saida: %w", err)
	}
	return &s, nil
}

// ListByUser lista saídas do tenant, mais recentes primeiro.
func (r *SaidaRepo) ListByUser(userID string, limit, offset int) ([]*entity.Saida, error) {
	query := `
		SELECT ` + saidaColumns + ` FROM saidas
		WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	return scanSaidas(rows)
}

// ListByPeriod lista saídas do período [from, to] ordenadas por data.
func (r *SaidaRepo) ListByPeriod(userID string, from, to time.Time) ([]*entity.Saida, error) {
	query := `
		SELECT ` + saidaColumns + ` FROM saidas
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list saidas por período: %w", err)
	}
	return scanSaidas(rows)
}

// SumByPeriod soma os valores do período [from, to].
func (r *SaidaRepo) SumByPeriod(userID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor), 0) FROM saidas
		WHERE user_id = $1 AND date >= $2 AND date <= $3`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum saidas: %w", err)
	}
	return total, nil
}

// Update atualiza os dados da saída.
func (r *SaidaRepo) Update(saida *entity.Saida) error {
	query := `
		UPDATE saidas SET descricao = $2, categoria = $3, valor = $4,
			date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		saida.ID, saida.Descricao, saida.Categoria, saida.Valor,
		saida.Date, saida.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update saida: %w", err)
	}
	return nil
}

// Delete remove a saída.
func (r *SaidaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM saidas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saida: %w", err)
	}
	return nil
}

func scanSaidas(rows pgx.Rows) ([]*entity.Saida, error) {
	defer rows.Close()
	var list []*entity.Saida
	for rows.Next() {
		var s entity.Saida
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Descricao, &s.Categoria, &s.Valor,
			&s.Date, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
