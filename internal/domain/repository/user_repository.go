package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// UserRepository contrato de persistência para usuários de auth.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail retorna (nil, nil) quando não há usuário com o email.
	// Usado também pelo reconciliador da Stripe como fallback quando o
	// evento chega sem client_reference_id.
	FindByEmail(email string) (*entity.User, error)
}
