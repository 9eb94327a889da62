package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is one entry of the site's upcoming-events section. Field names in
// the store and on the wire follow the collection's existing documents.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Date        time.Time          `bson:"date" json:"date"`
	Venue       string             `bson:"venue" json:"venue"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEventParams carries a candidate event as it arrives from the client,
// date still in its textual form.
type CreateEventParams struct {
	Title       string
	Description string
	Price       float64
	Date        string
	Venue       string
	Image       string
}

// MissingFields returns the names of required fields that are absent or
// empty. The check is shallow: empty string and zero price count as missing.
func (p CreateEventParams) MissingFields() []string {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Price == 0 {
		missing = append(missing, "price")
	}
	if p.Date == "" {
		missing = append(missing, "date")
	}
	if p.Venue == "" {
		missing = append(missing, "venue")
	}
	if p.Image == "" {
		missing = append(missing, "image")
	}
	return missing
}

// UpdateEventInput is a partial update as sent by the client. Nil means the
// field was not sent and keeps its stored value.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Price       *float64
	Date        *string
	Venue       *string
	Image       *string
}

// EmptyFields returns required text fields that were sent but empty. A
// partial update may omit a required field, but must not blank it out.
func (p UpdateEventInput) EmptyFields() []string {
	var empty []string
	if p.Title != nil && *p.Title == "" {
		empty = append(empty, "title")
	}
	if p.Description != nil && *p.Description == "" {
		empty = append(empty, "description")
	}
	if p.Venue != nil && *p.Venue == "" {
		empty = append(empty, "venue")
	}
	if p.Image != nil && *p.Image == "" {
		empty = append(empty, "image")
	}
	return empty
}

// UpdateEventParams is the store-side form of an update, date already
// normalized to a time value.
type UpdateEventParams struct {
	Title       *string
	Description *string
	Price       *float64
	Date        *time.Time
	Venue       *string
	Image       *string
}

// DeletedEvent is the summary returned after a delete: the identifier plus
// enough to name what was removed.
type DeletedEvent struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title"`
	Venue string             `json:"venue"`
}
