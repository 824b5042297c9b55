package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// SaidaUseCase casos de uso de despesas.
type SaidaUseCase struct {
	repo repository.SaidaRepository
}

// NewSaidaUseCase constrói o caso de uso.
func NewSaidaUseCase(repo repository.SaidaRepository) *SaidaUseCase {
	return &SaidaUseCase{repo: repo}
}

// Create registra uma despesa. Valor deve ser positivo.
func (uc *SaidaUseCase) Create(userID string, in dto.SaveSaidaRequest) (*dto.SaidaResponse, error) {
	if in.Descricao == "" || in.Date == "" || !in.Valor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	saida := &entity.Saida{
		ID:        uuid.New().String(),
		UserID:    userID,
		Descricao: in.Descricao,
		Categoria: in.Categoria,
		Valor:     in.Valor,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(saida); err != nil {
		return nil, err
	}
	return toSaidaResponse(saida), nil
}

// List lista despesas do tenant com paginação.
func (uc *SaidaUseCase) List(userID string, limit, offset int) ([]*dto.SaidaResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaidaResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaidaResponse(s))
	}
	return out, nil
}

// Update atualiza uma despesa do tenant.
func (uc *SaidaUseCase) Update(userID, id string, in dto.SaveSaidaRequest) (*dto.SaidaResponse, error) {
	saida, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Descricao == "" || !in.Valor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Date != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, err
		}
		saida.Date = date
	}
	saida.Descricao = in.Descricao
	saida.Categoria = in.Categoria
	saida.Valor = in.Valor
	saida.UpdatedAt = time.Now()
	if err := uc.repo.Update(saida); err != nil {
		return nil, err
	}
	return toSaidaResponse(saida), nil
}

// Delete remove uma despesa do tenant.
func (uc *SaidaUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *SaidaUseCase) getOwned(userID, id string) (*entity.Saida, error) {
	saida, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if saida == nil {
		return nil, domain.ErrNotFound
	}
	if saida.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return saida, nil
}

func toSaidaResponse(s *entity.Saida) *dto.SaidaResponse {
	return &dto.SaidaResponse{
		ID:        s.ID,
		Descricao: s.Descricao,
		Categoria: s.Categoria,
		Valor:     s.Valor,
		Date:      s.Date,
		CreatedAt: s.CreatedAt,
	}
}
