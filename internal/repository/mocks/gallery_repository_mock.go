package mocks

import (
	"context"

	"community-site-api/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GalleryRepositoryMock struct {
	mock.Mock
}

func NewGalleryRepositoryMock() *GalleryRepositoryMock {
	return &GalleryRepositoryMock{}
}

func (m *GalleryRepositoryMock) Create(ctx context.Context, item *model.GalleryItem) (*model.GalleryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *GalleryRepositoryMock) List(ctx context.Context) ([]*model.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GalleryItem), args.Error(1)
}

func (m *GalleryRepositoryMock) Update(ctx context.Context, id primitive.ObjectID, params model.UpdateGalleryItemParams) (*model.GalleryItem, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *GalleryRepositoryMock) Delete(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}
