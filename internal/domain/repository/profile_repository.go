package repository

import "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"

// ProfileRepository contrato de persistência para perfis (tenants).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	// UpdateSettings altera apenas os campos editáveis pela tela de ajustes.
	UpdateSettings(id, churchName, theme string) error
	// UpdateActivePlan é o único caminho de escrita do plano; usado pelos
	// reconciliadores de webhook. Last-write-wins, sem token de concorrência.
	UpdateActivePlan(id string, plan entity.Plan) error
}
