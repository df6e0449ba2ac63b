package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DaySchedule struct {
	Open  string `bson:"open,omitempty" json:"open,omitempty"`
	Close string `bson:"close,omitempty" json:"close,omitempty"`
}

type Schedule struct {
	Monday    DaySchedule `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   DaySchedule `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday DaySchedule `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  DaySchedule `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    DaySchedule `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  DaySchedule `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    DaySchedule `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

type Vendor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Location     string             `bson:"location" json:"location"`
	Logo         string             `bson:"logo,omitempty" json:"logo,omitempty"`
	IsOpen       bool               `bson:"isOpen" json:"isOpen"`
	Rating       float64            `bson:"rating" json:"rating"`
	Schedule     Schedule           `bson:"schedule,omitempty" json:"schedule,omitempty"`
	ContactPhone string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VendorSummary is the public listing shape; schedule and contact email
// are not exposed on the browse endpoint.
type VendorSummary struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location"`
	Logo        string             `json:"logo,omitempty"`
	IsOpen      bool               `json:"isOpen"`
	Rating      float64            `json:"rating"`
}
