package entity

import "time"

// User representa o usuário de autenticação (dono da conta da igreja).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro depois de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
