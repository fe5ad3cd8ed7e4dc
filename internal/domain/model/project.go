package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"designermonk/internal/domain/entity"
)

const (
	StatusDelivered = "delivered"
	StatusOngoing   = "ongoing"
	StatusUpcoming  = "upcoming"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusDelivered, StatusOngoing, StatusUpcoming:
		return true
	default:
		return false
	}
}

type Project struct {
	ID           primitive.ObjectID  `json:"_id"                    bson:"_id,omitempty"`
	Title        string              `json:"title"                  bson:"title"`
	ProjectName  string              `json:"projectName,omitempty"  bson:"projectName,omitempty"`
	Category     string              `json:"category,omitempty"     bson:"category,omitempty"`
	Style        string              `json:"style,omitempty"        bson:"style,omitempty"`
	Layout       string              `json:"layout,omitempty"       bson:"layout,omitempty"`
	Location     string              `json:"location,omitempty"     bson:"location,omitempty"`
	Pricing      string              `json:"pricing,omitempty"      bson:"pricing,omitempty"`
	BHK          string              `json:"bhk,omitempty"          bson:"bhk,omitempty"`
	Scope        string              `json:"scope,omitempty"        bson:"scope,omitempty"`
	PropertyType string              `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	Size         string              `json:"size,omitempty"         bson:"size,omitempty"`
	Status       string              `json:"status"                 bson:"status"`
	PriceMin     *float64            `json:"priceMin,omitempty"     bson:"priceMin,omitempty"`
	PriceMax     *float64            `json:"priceMax,omitempty"     bson:"priceMax,omitempty"`
	ImageURL     string              `json:"imageUrl"               bson:"imageUrl"`
	Image        *entity.StoredImage `json:"image,omitempty"        bson:"image,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"              bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"              bson:"updatedAt"`
}
