package models

import "go.mongodb.org/mongo-driver/bson"

// Document is a free-form record. Services, barbers, appointments, reviews,
// payments, managers and features are stored and returned exactly as
// received; only the fields a handler reads are ever interpreted.
type Document = bson.M
