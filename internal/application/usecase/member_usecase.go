package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// MemberUseCase casos de uso de membros.
type MemberUseCase struct {
	repo repository.MemberRepository
}

// NewMemberUseCase constrói o caso de uso.
func NewMemberUseCase(repo repository.MemberRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo}
}

// Create cadastra um membro do tenant.
func (uc *MemberUseCase) Create(userID string, in dto.SaveMemberRequest) (*dto.MemberResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	birth, err := parseOptionalDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	baptism, err := parseOptionalDate(in.BaptismDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.MemberStatusAtivo
	}
	if status != entity.MemberStatusAtivo && status != entity.MemberStatusInativo {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	member := &entity.Member{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		BirthDate:   birth,
		BaptismDate: baptism,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// List lista os membros do tenant com paginação.
func (uc *MemberUseCase) List(userID string, limit, offset int) ([]*dto.MemberResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMemberResponse(m))
	}
	return out, nil
}

// GetByID obtém um membro verificando o dono.
func (uc *MemberUseCase) GetByID(userID, id string) (*dto.MemberResponse, error) {
	member, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// Update atualiza um membro do tenant.
func (uc *MemberUseCase) Update(userID, id string, in dto.SaveMemberRequest) (*dto.MemberResponse, error) {
	member, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	birth, err := parseOptionalDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	baptism, err := parseOptionalDate(in.BaptismDate)
	if err != nil {
		return nil, err
	}
	member.Name = in.Name
	member.Email = in.Email
	member.Phone = in.Phone
	member.Address = in.Address
	member.BirthDate = birth
	member.BaptismDate = baptism
	if in.Status != "" {
		if in.Status != entity.MemberStatusAtivo && in.Status != entity.MemberStatusInativo {
			return nil, domain.ErrInvalidInput
		}
		member.Status = in.Status
	}
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// Delete remove um membro do tenant.
func (uc *MemberUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *MemberUseCase) getOwned(userID, id string) (*entity.Member, error) {
	member, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if member.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return member, nil
}

func toMemberResponse(m *entity.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		BirthDate:   m.BirthDate,
		BaptismDate: m.BaptismDate,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}
