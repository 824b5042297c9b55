package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
)

// EventUseCase casos de uso de eventos.
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase constrói o caso de uso.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// Create cadastra um evento. EndsAt, quando informado, deve ser após StartsAt.
func (uc *EventUseCase) Create(userID string, in dto.SaveEventRequest) (*dto.EventResponse, error) {
	if in.Title == "" || in.StartsAt == "" {
		return nil, domain.ErrInvalidInput
	}
	startsAt, err := parseDate(in.StartsAt)
	if err != nil {
		return nil, err
	}
	endsAt, err := parseOptionalDate(in.EndsAt)
	if err != nil {
		return nil, err
	}
	if endsAt != nil && !endsAt.After(startsAt) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	event := &entity.Event{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// List lista eventos do tenant com paginação.
func (uc *EventUseCase) List(userID string, limit, offset int) ([]*dto.EventResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// Update atualiza um evento do tenant.
func (uc *EventUseCase) Update(userID, id string, in dto.SaveEventRequest) (*dto.EventResponse, error) {
	event, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StartsAt != "" {
		startsAt, err := parseDate(in.StartsAt)
		if err != nil {
			return nil, err
		}
		event.StartsAt = startsAt
	}
	endsAt, err := parseOptionalDate(in.EndsAt)
	if err != nil {
		return nil, err
	}
	if endsAt != nil && !endsAt.After(event.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	event.Title = in.Title
	event.Description = in.Description
	event.Location = in.Location
	event.EndsAt = endsAt
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// Delete remove um evento do tenant.
func (uc *EventUseCase) Delete(userID, id string) error {
	if _, err := uc.getOwned(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *EventUseCase) getOwned(userID, id string) (*entity.Event, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if event.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CreatedAt:   e.CreatedAt,
	}
}
