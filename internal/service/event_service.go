package service

import (
	"context"
	"strings"

	"community-site-api/internal/model"
	"community-site-api/internal/repository"
	apperrors "community-site-api/pkg/app_errors"
	"community-site-api/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	// List never fails: when the store is unreachable the site still gets
	// an empty collection and renders its empty state.
	List(ctx context.Context) []*model.Event
	Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error)
	Update(ctx context.Context, id string, input model.UpdateEventInput) (*model.Event, error)
	Delete(ctx context.Context, id string) (*model.DeletedEvent, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
	log  *zap.Logger
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{
		repo: repo,
		log:  logger.WithComponent("service"),
	}
}

func (s *EventServiceImpl) List(ctx context.Context) []*model.Event {
	events, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("Event list unavailable, serving empty result", zap.Error(err))
		return []*model.Event{}
	}
	return events
}

func (s *EventServiceImpl) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	params.Title = strings.TrimSpace(params.Title)
	if missing := params.MissingFields(); len(missing) > 0 {
		return nil, &apperrors.ValidationError{Fields: missing}
	}

	date, err := model.ParseDate(params.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date")
	}

	event := &model.Event{
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
		Date:        date,
		Venue:       params.Venue,
		Image:       params.Image,
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, input model.UpdateEventInput) (*model.Event, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	if empty := input.EmptyFields(); len(empty) > 0 {
		return nil, &apperrors.ValidationError{Fields: empty}
	}

	params := model.UpdateEventParams{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Venue:       input.Venue,
		Image:       input.Image,
	}
	if input.Date != nil {
		date, err := model.ParseDate(*input.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date")
		}
		params.Date = &date
	}

	return s.repo.Update(ctx, oid, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) (*model.DeletedEvent, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &model.DeletedEvent{
		ID:    event.ID,
		Title: event.Title,
		Venue: event.Venue,
	}, nil
}
