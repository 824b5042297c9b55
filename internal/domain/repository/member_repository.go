package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// MemberRepository contrato de persistência para membros.
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByID(id string) (*entity.Member, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Member, error)
	CountByUser(userID string) (int, error)
	Update(member *entity.Member) error
	Delete(id string) error
}
