package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the typed view of a stored payment document, used to render the
// confirmation email.
type Payment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	AppointmentID string `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Email         string `bson:"email" json:"email"`
	Name          string `bson:"name,omitempty" json:"name,omitempty"`
	TransactionID string `bson:"transactionId" json:"transactionId"`

	Service string  `bson:"service,omitempty" json:"service,omitempty"`
	Date    string  `bson:"date,omitempty" json:"date,omitempty"`
	Slot    string  `bson:"slot,omitempty" json:"slot,omitempty"`
	Price   float64 `bson:"price,omitempty" json:"price,omitempty"`

	PaidAt time.Time `bson:"paidAt" json:"paidAt"`
}
