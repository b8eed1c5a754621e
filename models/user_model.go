package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

// Address is embedded in the user document. A user keeps at most two.
type Address struct {
	ApartmentNo      string `bson:"apartmentNo" json:"apartmentNo"`
	ResidencyAddress string `bson:"residencyAddress" json:"residencyAddress"`
	District         string `bson:"district" json:"district"`
	State            string `bson:"state" json:"state"`
	Pincode          string `bson:"pincode" json:"pincode"`
	Phone            string `bson:"phone" json:"phone"`
}

type User struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	Role            int                `bson:"role" json:"role"`
	EmailVerified   bool               `bson:"emailVerified" json:"emailVerified"`
	OTP             string             `bson:"otp,omitempty" json:"-"`
	OTPExpires      *time.Time         `bson:"otpExpires,omitempty" json:"-"`
	Addresses       []Address          `bson:"addresses" json:"addresses"`
	SelectedAddress *Address           `bson:"selectedAddress,omitempty" json:"selectedAddress,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
