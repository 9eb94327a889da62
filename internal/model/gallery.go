package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is one album card in the site's gallery section. Src is the
// cover image URL, DriveLink points at the external album.
type GalleryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	Src       string             `bson:"src" json:"src"`
	DriveLink string             `bson:"driveLink" json:"driveLink"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateGalleryItemParams struct {
	Title     string
	Category  string
	Src       string
	DriveLink string
}

func (p CreateGalleryItemParams) MissingFields() []string {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Src == "" {
		missing = append(missing, "src")
	}
	if p.DriveLink == "" {
		missing = append(missing, "driveLink")
	}
	return missing
}

type UpdateGalleryItemParams struct {
	Title     *string
	Category  *string
	Src       *string
	DriveLink *string
}

func (p UpdateGalleryItemParams) EmptyFields() []string {
	var empty []string
	if p.Title != nil && *p.Title == "" {
		empty = append(empty, "title")
	}
	if p.Category != nil && *p.Category == "" {
		empty = append(empty, "category")
	}
	if p.Src != nil && *p.Src == "" {
		empty = append(empty, "src")
	}
	if p.DriveLink != nil && *p.DriveLink == "" {
		empty = append(empty, "driveLink")
	}
	return empty
}

type DeletedGalleryItem struct {
	ID       primitive.ObjectID `json:"id"`
	Title    string             `json:"title"`
	Category string             `json:"category"`
}
