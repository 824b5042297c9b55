package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

var _ repository.WebhookEventRepository = (*WebhookEventRepo)(nil)

// WebhookEventRepo registro de eventos de webhook processados (deduplicação).
type WebhookEventRepo struct {
	q Querier
}

// NewWebhookEventRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWebhookEventRepository(q Querier) *WebhookEventRepo {
	return &WebhookEventRepo{q: q}
}

// Exists verifica se o evento (provider, event_id) já foi processado.
func (r *WebhookEventRepo) Exists(provider, eventID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM webhook_events WHERE provider = $1 AND event_id = $2)`,
		provider, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check webhook event: %w", err)
	}
	return exists, nil
}

// Record registra o evento processado. A constraint única em
// (provider, event_id) fecha a corrida entre entregas simultâneas.
func (r *WebhookEventRepo) Record(event *entity.WebhookEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO webhook_events (id, provider, event_id, event_type, processed_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Provider, event.EventID, event.EventType, event.ProcessedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}
