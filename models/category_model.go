package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Photo stores an uploaded image directly on the document.
type Photo struct {
	Data        []byte `bson:"data,omitempty" json:"-"`
	ContentType string `bson:"contentType,omitempty" json:"contentType,omitempty"`
}

type Category struct {
	Id    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slug  string             `bson:"slug" json:"slug"`
	Photo Photo              `bson:"photo,omitempty" json:"-"`
}
