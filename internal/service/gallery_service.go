package service

import (
	"context"

	"community-site-api/internal/model"
	"community-site-api/internal/repository"
	apperrors "community-site-api/pkg/app_errors"
	"community-site-api/pkg/logger"

	"go.uber.org/zap"
)

type GalleryService interface {
	// List carries the same degrade-on-failure contract as the event list.
	List(ctx context.Context) []*model.GalleryItem
	Create(ctx context.Context, params model.CreateGalleryItemParams) (*model.GalleryItem, error)
	Update(ctx context.Context, id string, params model.UpdateGalleryItemParams) (*model.GalleryItem, error)
	Delete(ctx context.Context, id string) (*model.DeletedGalleryItem, error)
}

type GalleryServiceImpl struct {
	repo repository.GalleryRepository
	log  *zap.Logger
}

func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &GalleryServiceImpl{
		repo: repo,
		log:  logger.WithComponent("service"),
	}
}

func (s *GalleryServiceImpl) List(ctx context.Context) []*model.GalleryItem {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn("Gallery list unavailable, serving empty result", zap.Error(err))
		return []*model.GalleryItem{}
	}
	return items
}

func (s *GalleryServiceImpl) Create(ctx context.Context, params model.CreateGalleryItemParams) (*model.GalleryItem, error) {
	if missing := params.MissingFields(); len(missing) > 0 {
		return nil, &apperrors.ValidationError{Fields: missing}
	}

	item := &model.GalleryItem{
		Title:     params.Title,
		Category:  params.Category,
		Src:       params.Src,
		DriveLink: params.DriveLink,
	}
	return s.repo.Create(ctx, item)
}

func (s *GalleryServiceImpl) Update(ctx context.Context, id string, params model.UpdateGalleryItemParams) (*model.GalleryItem, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	if empty := params.EmptyFields(); len(empty) > 0 {
		return nil, &apperrors.ValidationError{Fields: empty}
	}
	return s.repo.Update(ctx, oid, params)
}

func (s *GalleryServiceImpl) Delete(ctx context.Context, id string) (*model.DeletedGalleryItem, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &model.DeletedGalleryItem{
		ID:       item.ID,
		Title:    item.Title,
		Category: item.Category,
	}, nil
}
