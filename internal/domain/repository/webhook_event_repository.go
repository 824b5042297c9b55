package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// WebhookEventRepository registro de eventos de webhook já processados
// (deduplicação de entregas repetidas do mesmo evento).
type WebhookEventRepository interface {
	Exists(provider, eventID string) (bool, error)
	Record(event *entity.WebhookEvent) error
}
