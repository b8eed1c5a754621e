package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine references a live product; a product appears at most once per cart.
type CartLine struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart is created lazily on first add, one per user.
type Cart struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User     primitive.ObjectID `bson:"user" json:"user"`
	Products []CartLine         `bson:"products" json:"products"`
}
