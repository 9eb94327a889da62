package mocks

import (
	"context"

	"community-site-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type GalleryServiceMock struct {
	mock.Mock
}

func NewGalleryServiceMock() *GalleryServiceMock {
	return &GalleryServiceMock{}
}

func (m *GalleryServiceMock) List(ctx context.Context) []*model.GalleryItem {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return []*model.GalleryItem{}
	}
	return args.Get(0).([]*model.GalleryItem)
}

func (m *GalleryServiceMock) Create(ctx context.Context, params model.CreateGalleryItemParams) (*model.GalleryItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *GalleryServiceMock) Update(ctx context.Context, id string, params model.UpdateGalleryItemParams) (*model.GalleryItem, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *GalleryServiceMock) Delete(ctx context.Context, id string) (*model.DeletedGalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeletedGalleryItem), args.Error(1)
}
