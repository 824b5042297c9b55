package usecase

import (
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// ProfileUseCase casos de uso do perfil da igreja. O plano não é editável
// por aqui: active_plan só muda pelos reconciliadores de webhook.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase constrói o caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devolve o perfil do usuário autenticado.
func (uc *ProfileUseCase) Get(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProfileResponse{
		ID:         profile.ID,
		ChurchName: profile.ChurchName,
		ActivePlan: string(profile.ActivePlan),
		Theme:      profile.Theme,
		CreatedAt:  profile.CreatedAt,
	}, nil
}

// UpdateSettings altera nome da igreja e tema.
func (uc *ProfileUseCase) UpdateSettings(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if in.ChurchName == "" {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	theme := in.Theme
	if theme == "" {
		theme = profile.Theme
	}
	if err := uc.repo.UpdateSettings(userID, in.ChurchName, theme); err != nil {
		return nil, err
	}
	profile.ChurchName = in.ChurchName
	profile.Theme = theme
	return &dto.ProfileResponse{
		ID:         profile.ID,
		ChurchName: profile.ChurchName,
		ActivePlan: string(profile.ActivePlan),
		Theme:      profile.Theme,
		CreatedAt:  profile.CreatedAt,
	}, nil
}
