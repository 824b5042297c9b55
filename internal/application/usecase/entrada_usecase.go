package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// EntradaUseCase casos de uso de dízimos e ofertas.
type EntradaUseCase struct {
	repo repository.EntradaRepository
}

// NewEntradaUseCase constrói o caso de uso.
func NewEntradaUseCase(repo repository.EntradaRepository) *EntradaUseCase {
	return &EntradaUseCase{repo: repo}
}

// Create registra uma entrada. Valor deve ser positivo; dízimo exige o nome
// do membro.
func (uc *EntradaUseCase) Create(userID string, in dto.SaveEntradaRequest) (*dto.EntradaResponse, error) {
	if err := validateEntrada(in); err != nil {
		return nil, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	entrada := &entity.Entrada{
		ID:         uuid.New().String(),
		UserID:     userID,
		Tipo:       in.Tipo,
		MemberName: in.MemberName,
		Valor:      in.Valor,
		Date:       date,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(entrada); err != nil {
		return nil, err
	}
	return toEntradaResponse(entrada), nil
}

// List lista entradas do tenant com paginação.
func (uc *EntradaUseCase) List(userID string, limit, offset int) ([]*dto.EntradaResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntradaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntradaResponse(e))
	}
	return out, nil
}

// Update atualiza uma entrada do tenant.
func (uc *EntradaUseCase) Update(userID, id string, in dto.SaveEntradaRequest) (*dto.EntradaResponse, error) {
	entrada, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := validateEntrada(in); err != nil {
		return nil, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	entrada.Tipo = in.Tipo
	entrada.MemberName = in.MemberName
	entrada.Valor = in.Valor
	entrada.Date = date
	entrada.Notes = in.Notes
	entrada.UpdatedAt = time.Now()
	if err := uc.repo.Update(entrada); err != nil {
		return nil, err
	}
	return toEntradaResponse(entrada), nil
}

// Delete remove uma entrada do tenant.
func (uc *EntradaUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func validateEntrada(in dto.SaveEntradaRequest) error {
	if in.Date == "" || !in.Valor.IsPositive() {
		return domain.ErrInvalidInput
	}
	switch in.Tipo {
	case entity.EntradaTipoDizimo:
		if in.MemberName == "" {
			return domain.ErrInvalidInput
		}
	case entity.EntradaTipoOferta:
		// ofertas podem ser anônimas
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *EntradaUseCase) getOwned(userID, id string) (*entity.Entrada, error) {
	entrada, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entrada == nil {
		return nil, domain.ErrNotFound
	}
	if entrada.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return entrada, nil
}

func toEntradaResponse(e *entity.Entrada) *dto.EntradaResponse {
	return &dto.EntradaResponse{
		ID:         e.ID,
		Tipo:       e.Tipo,
		MemberName: e.MemberName,
		Valor:      e.Valor,
		Date:       e.Date,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
	}
}
