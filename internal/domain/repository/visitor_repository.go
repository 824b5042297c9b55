package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// VisitorRepository contrato de persistência para visitantes.
type VisitorRepository interface {
	Create(visitor *entity.Visitor) error
	GetByID(id string) (*entity.Visitor, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Visitor, error)
	Update(visitor *entity.Visitor) error
	Delete(id string) error
}
