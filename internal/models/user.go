package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by Email. Role is "manager", "barber" or empty; Position is
// "chairman" or empty.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Img      string             `bson:"img,omitempty" json:"img,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Position string             `bson:"position,omitempty" json:"position,omitempty"`
}
