package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measure is a value with its display unit ("cm"/"in", "kg"/"lbs").
type Measure struct {
	Value float64 `bson:"value,omitempty" json:"value,omitempty"`
	Unit  string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

type Dimensions struct {
	Height Measure `bson:"height,omitempty" json:"height,omitempty"`
	Width  Measure `bson:"width,omitempty" json:"width,omitempty"`
	Depth  Measure `bson:"depth,omitempty" json:"depth,omitempty"`
}

// Rating keeps one entry per user; a repeat rating overwrites the old one.
type Rating struct {
	User   primitive.ObjectID `bson:"user" json:"user"`
	Rating int                `bson:"rating" json:"rating"`
}

type Review struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Dimensions  Dimensions         `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Weight      Measure            `bson:"weight,omitempty" json:"weight,omitempty"`
	Photo       Photo              `bson:"photo,omitempty" json:"-"`
	Ratings     []Rating           `bson:"ratings" json:"ratings"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
