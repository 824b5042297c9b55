package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// CultoUseCase casos de uso de cultos.
type CultoUseCase struct {
	repo repository.CultoRepository
}

// NewCultoUseCase constrói o caso de uso.
func NewCultoUseCase(repo repository.CultoRepository) *CultoUseCase {
	return &CultoUseCase{repo: repo}
}

// Create cadastra um culto.
func (uc *CultoUseCase) Create(userID string, in dto.SaveCultoRequest) (*dto.CultoResponse, error) {
	if in.Title == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	culto := &entity.Culto{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		Date:      date,
		Preacher:  in.Preacher,
		Theme:     in.Theme,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(culto); err != nil {
		return nil, err
	}
	return toCultoResponse(culto), nil
}

// List lista cultos do tenant com paginação.
func (uc *CultoUseCase) List(userID string, limit, offset int) ([]*dto.CultoResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CultoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCultoResponse(c))
	}
	return out, nil
}

// Update atualiza um culto do tenant.
func (uc *CultoUseCase) Update(userID, id string, in dto.SaveCultoRequest) (*dto.CultoResponse, error) {
	culto, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Date != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, err
		}
		culto.Date = date
	}
	culto.Title = in.Title
	culto.Preacher = in.Preacher
	culto.Theme = in.Theme
	culto.Notes = in.Notes
	culto.UpdatedAt = time.Now()
	if err := uc.repo.Update(culto); err != nil {
		return nil, err
	}
	return toCultoResponse(culto), nil
}

// Delete remove um culto do tenant.
func (uc *CultoUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *CultoUseCase) getOwned(userID, id string) (*entity.Culto, error) {
	culto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if culto == nil {
		return nil, domain.ErrNotFound
	}
	if culto.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return culto, nil
}

func toCultoResponse(c *entity.Culto) *dto.CultoResponse {
	return &dto.CultoResponse{
		ID:        c.ID,
		Title:     c.Title,
		Date:      c.Date,
		Preacher:  c.Preacher,
		Theme:     c.Theme,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
