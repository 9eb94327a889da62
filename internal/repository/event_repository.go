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

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
}

type EventRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &EventRepositoryImpl{
		collection: db.Collection(database.EventCollection),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	// Mongo stores times at millisecond precision; truncating keeps the
	// returned record equal to a later re-read.
	now := time.Now().UTC().Truncate(time.Millisecond)
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	// Upcoming first: ascending by event date.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*model.Event, 0)
	for cursor.Next(ctx) {
		var event model.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, params model.UpdateEventParams) (*model.Event, error) {
	set := bson.M{}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Price != nil {
		set["price"] = *params.Price
	}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.Venue != nil {
		set["venue"] = *params.Venue
	}
	if params.Image != nil {
		set["image"] = *params.Image
	}
	set["updatedAt"] = time.Now().UTC().Truncate(time.Millisecond)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event model.Event
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event model.Event
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}
