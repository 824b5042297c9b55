package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// memberReportLimit teto de linhas do relatório de membros.
const memberReportLimit = 5000

// ReportUseCase monta os dados e gera os PDFs de relatório do tenant.
type ReportUseCase struct {
	profileRepo repository.ProfileRepository
	entradaRepo repository.EntradaRepository
	saidaRepo   repository.SaidaRepository
	memberRepo  repository.MemberRepository
	generator   ReportGenerator
}

// NewReportUseCase constrói o caso de uso injetando as dependências.
func NewReportUseCase(
	profileRepo repository.ProfileRepository,
	entradaRepo repository.EntradaRepository,
	saidaRepo repository.SaidaRepository,
	memberRepo repository.MemberRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		profileRepo: profileRepo,
		entradaRepo: entradaRepo,
		saidaRepo:   saidaRepo,
		memberRepo:  memberRepo,
		generator:   generator,
	}
}

// FinancePDF gera o relatório financeiro do período [from, to].
// Devolve (pdf, nome do arquivo, erro).
func (uc *ReportUseCase) FinancePDF(ctx context.Context, userID string, from, to time.Time) ([]byte, string, error) {
	if to.Before(from) {
		return nil, "", domain.ErrInvalidInput
	}
	profile, err := uc.loadProfile(userID)
	if err != nil {
		return nil, "", err
	}
	entradas, err := uc.entradaRepo.ListByPeriod(userID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar entradas: %w", err)
	}
	saidas, err := uc.saidaRepo.ListByPeriod(userID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar saídas: %w", err)
	}
	totalEntradas, err := uc.entradaRepo.SumByPeriod(userID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("report: somar entradas: %w", err)
	}
	totalSaidas, err := uc.saidaRepo.SumByPeriod(userID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("report: somar saídas: %w", err)
	}

	pdf, err := uc.generator.FinanceReport(ctx, profile, FinancePeriod{From: from, To: to}, entradas, saidas, FinanceTotals{
		Entradas: totalEntradas,
		Saidas:   totalSaidas,
		Saldo:    totalEntradas.Sub(totalSaidas),
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: geração do PDF: %w", err)
	}
	filename := fmt.Sprintf("financeiro_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdf, filename, nil
}

// MembersPDF gera a lista de membros em PDF.
func (uc *ReportUseCase) MembersPDF(ctx context.Context, userID string) ([]byte, string, error) {
	profile, err := uc.loadProfile(userID)
	if err != nil {
		return nil, "", err
	}
	members, err := uc.memberRepo.ListByUser(userID, memberReportLimit, 0)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar membros: %w", err)
	}
	pdf, err := uc.generator.MemberReport(ctx, profile, members)
	if err != nil {
		return nil, "", fmt.Errorf("report: geração do PDF: %w", err)
	}
	return pdf, "membros.pdf", nil
}

func (uc *ReportUseCase) loadProfile(userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("report: obter perfil: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}
