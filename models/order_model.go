package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Admin updates walk them forward only; Cancelled is reached
// solely through the cancellation flow.
const (
	StatusNotProcessed = "Not Processed"
	StatusProcessing   = "Processing"
	StatusShipped      = "Shipped"
	StatusDelivered    = "Delivered"
	StatusCancelled    = "Cancelled"
)

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// OrderItem snapshots name and price at purchase time; ProductId stays a weak
// reference to the live product for stock adjustment.
type OrderItem struct {
	ProductId primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type PaymentDetails struct {
	PaymentId string `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	OrderId   string `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Method    string `bson:"method,omitempty" json:"method,omitempty"`
	Status    string `bson:"status" json:"status"`
}

// StatusEntry is an append-only audit record; current state lives on Status.
type StatusEntry struct {
	Status string    `bson:"status" json:"status"`
	Date   time.Time `bson:"date" json:"date"`
}

type Order struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId          primitive.ObjectID `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	SelectedAddress Address            `bson:"selectedAddress" json:"selectedAddress"`
	PaymentDetails  PaymentDetails     `bson:"paymentDetails" json:"paymentDetails"`
	Status          string             `bson:"status" json:"status"`
	StatusHistory   []StatusEntry      `bson:"statusHistory" json:"statusHistory"`
	ShippingDate    *time.Time         `bson:"shippingDate,omitempty" json:"shippingDate,omitempty"`
	CancelRequested bool               `bson:"cancelRequested" json:"cancelRequested"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
