package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// CultoRepository contrato de persistência para cultos.
type CultoRepository interface {
	Create(culto *entity.Culto) error
	GetByID(id string) (*entity.Culto, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Culto, error)
	Update(culto *entity.Culto) error
	Delete(id string) error
}
