package appointment

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = ""
	PaymentPaid    PaymentStatus = "paid"
)

func IsPaid(status string) bool {
	return PaymentStatus(status) == PaymentPaid
}

// AlreadyFinalized reports whether an appointment was marked paid with this
// transaction. An empty transaction id never counts.
func AlreadyFinalized(payment, storedTx, transactionID string) bool {
	return transactionID != "" && IsPaid(payment) && storedTx == transactionID
}
