package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// ======================================================
// OUTPUT
// ======================================================

// CreateResult is the booking response: either the insert acknowledgement
// or the appointment already holding the slot.
type CreateResult struct {
	Success     bool                `json:"success"`
	Appointment models.Document     `json:"appointment,omitempty"`
	Result      *store.InsertResult `json:"result,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment books a slot. The body is stored as received; only
// date, barber and slot are read, to find an existing booking.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	doc models.Document,
) (*CreateResult, error) {

	key := domain.KeyOf(doc)

	// --------------------------------------------------
	// 1️⃣ Slot already taken?
	// --------------------------------------------------
	existing, err := uc.repo.FindBySlot(ctx, key)
	if err == nil {
		return &CreateResult{Success: false, Appointment: existing}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Insert; the unique index settles concurrent bookings
	// --------------------------------------------------
	res, err := uc.repo.Create(ctx, doc)
	if errors.Is(err, store.ErrDuplicate) {
		winner, findErr := uc.repo.FindBySlot(ctx, key)
		if findErr != nil {
			return nil, findErr
		}
		return &CreateResult{Success: false, Appointment: winner}, nil
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    domain.Text(doc, domain.FieldEmail),
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: domain.IDString(res.InsertedID),
		Metadata: map[string]string{
			"date":   domain.Text(doc, domain.FieldDate),
			"barber": domain.Text(doc, domain.FieldBarber),
			"slot":   domain.Text(doc, domain.FieldSlot),
		},
	})

	return &CreateResult{Success: true, Result: res}, nil
}
