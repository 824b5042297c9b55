package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// VisitorUseCase casos de uso de visitantes.
type VisitorUseCase struct {
	repo repository.VisitorRepository
}

// NewVisitorUseCase constrói o caso de uso.
func NewVisitorUseCase(repo repository.VisitorRepository) *VisitorUseCase {
	return &VisitorUseCase{repo: repo}
}

// Create registra um visitante.
func (uc *VisitorUseCase) Create(userID string, in dto.SaveVisitorRequest) (*dto.VisitorResponse, error) {
	if in.Name == "" || in.VisitDate == "" {
		return nil, domain.ErrInvalidInput
	}
	visitDate, err := parseDate(in.VisitDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	visitor := &entity.Visitor{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Phone:     in.Phone,
		VisitDate: visitDate,
		InvitedBy: in.InvitedBy,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(visitor); err != nil {
		return nil, err
	}
	return toVisitorResponse(visitor), nil
}

// List lista visitantes do tenant com paginação.
func (uc *VisitorUseCase) List(userID string, limit, offset int) ([]*dto.VisitorResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VisitorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVisitorResponse(v))
	}
	return out, nil
}

// Update atualiza um visitante do tenant.
func (uc *VisitorUseCase) Update(userID, id string, in dto.SaveVisitorRequest) (*dto.VisitorResponse, error) {
	visitor, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.VisitDate != "" {
		visitDate, err := parseDate(in.VisitDate)
		if err != nil {
			return nil, err
		}
		visitor.VisitDate = visitDate
	}
	visitor.Name = in.Name
	visitor.Phone = in.Phone
	visitor.InvitedBy = in.InvitedBy
	visitor.Notes = in.Notes
	visitor.UpdatedAt = time.Now()
	if err := uc.repo.Update(visitor); err != nil {
		return nil, err
	}
	return toVisitorResponse(visitor), nil
}

// Delete remove um visitante do tenant.
func (uc *VisitorUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *VisitorUseCase) getOwned(userID, id string) (*entity.Visitor, error) {
	visitor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, domain.ErrNotFound
	}
	if visitor.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return visitor, nil
}

func toVisitorResponse(v *entity.Visitor) *dto.VisitorResponse {
	return &dto.VisitorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Phone:     v.Phone,
		VisitDate: v.VisitDate,
		InvitedBy: v.InvitedBy,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}
