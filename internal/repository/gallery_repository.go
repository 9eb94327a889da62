package repository

import (
	"context"
	"errors"
	"time"

	"community-site-api/internal/database"
	"community-site-api/internal/model"
	apperrors "community-site-api/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GalleryRepository interface {
	Create(ctx context.Context, item *model.GalleryItem) (*model.GalleryItem, error)
	List(ctx context.Context) ([]*model.GalleryItem, error)
	Update(ctx context.Context, id primitive.ObjectID, params model.UpdateGalleryItemParams) (*model.GalleryItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error)
}

type GalleryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) GalleryRepository {
	return &GalleryRepositoryImpl{
		collection: db.Collection(database.GalleryCollection),
	}
}

func (r *GalleryRepositoryImpl) Create(ctx context.Context, item *model.GalleryItem) (*model.GalleryItem, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GalleryRepositoryImpl) List(ctx context.Context) ([]*model.GalleryItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]*model.GalleryItem, 0)
	for cursor.Next(ctx) {
		var item model.GalleryItem
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, params model.UpdateGalleryItemParams) (*model.GalleryItem, error) {
	set := bson.M{}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Category != nil {
		set["category"] = *params.Category
	}
	if params.Src != nil {
		set["src"] = *params.Src
	}
	if params.DriveLink != nil {
		set["driveLink"] = *params.DriveLink
	}
	set["updatedAt"] = time.Now().UTC().Truncate(time.Millisecond)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item model.GalleryItem
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
