package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Vendor          primitive.ObjectID `bson:"vendor" json:"vendor"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Category        string             `bson:"category" json:"category"`
	IsAvailable     bool               `bson:"isAvailable" json:"isAvailable"`
	PreparationTime int                `bson:"preparationTime" json:"preparationTime"`
	Tags            []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsVeg           bool               `bson:"isVeg" json:"isVeg"`
	IsSpicy         bool               `bson:"isSpicy" json:"isSpicy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
