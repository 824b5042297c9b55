package usecase

import (
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// DashboardUseCase totais do mês corrente para a tela inicial.
type DashboardUseCase struct {
	entradaRepo repository.EntradaRepository
	saidaRepo   repository.SaidaRepository
	memberRepo  repository.MemberRepository
	now         func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	entradaRepo repository.EntradaRepository,
	saidaRepo repository.SaidaRepository,
	memberRepo repository.MemberRepository,
) *DashboardUseCase {
	return &DashboardUseCase{entradaRepo: entradaRepo, saidaRepo: saidaRepo, memberRepo: memberRepo, now: time.Now}
}

// Summary soma entradas e saídas do mês corrente e conta os membros.
func (uc *DashboardUseCase) Summary(userID string) (*dto.DashboardResponse, error) {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entradas, err := uc.entradaRepo.SumByPeriod(userID, from, to)
	if err != nil {
		return nil, err
	}
	saidas, err := uc.saidaRepo.SumByPeriod(userID, from, to)
	if err != nil {
		return nil, err
	}
	members, err := uc.memberRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Month:       from.Format("2006-01"),
		Entradas:    entradas,
		Saidas:      saidas,
		Saldo:       entradas.Sub(saidas),
		MemberCount: members,
	}, nil
}
