package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// EventRepository contrato de persistência para eventos.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Event, error)
	Update(event *entity.Event) error
	Delete(id string) error
}
