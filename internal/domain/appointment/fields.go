package appointment

import (
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ===============================
// Document fields
// ===============================

const (
	FieldID            = "_id"
	FieldDate          = "date"
	FieldBarber        = "barber"
	FieldSlot          = "slot"
	FieldSlots         = "slots"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldService       = "service"
	FieldPrice         = "price"
	FieldPayment       = "payment"
	FieldTransactionID = "transactionId"
	FieldAppointmentID = "appointmentId"
	FieldPaidAt        = "paidAt"
)

// Text reads a field as a string. Missing fields and values cast cannot
// convert read as "".
func Text(doc models.Document, field string) string {
	return cast.ToString(doc[field])
}

// Strings reads an array field. Arrays decoded from the store arrive as
// primitive.A, arrays from JSON bodies as []any.
func Strings(doc models.Document, field string) []string {
	switch v := doc[field].(type) {
	case nil:
		return nil
	case primitive.A:
		return cast.ToStringSlice([]any(v))
	default:
		return cast.ToStringSlice(v)
	}
}

// IDString renders an _id value (ObjectID or anything else) as text.
func IDString(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return cast.ToString(v)
}

// SlotKey is the raw (date, barber, slot) triple of a booking. Values are
// kept untyped so a missing field matches the store's null semantics.
type SlotKey struct {
	Date   any
	Barber any
	Slot   any
}

func KeyOf(doc models.Document) SlotKey {
	return SlotKey{
		Date:   doc[FieldDate],
		Barber: doc[FieldBarber],
		Slot:   doc[FieldSlot],
	}
}
