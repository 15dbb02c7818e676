package mortgage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoredPayment is a persisted schedule row of a property
type StoredPayment struct {
	PaymentID  uuid.UUID
	PropertyID uuid.UUID
	Payment
}

// StoredSummary is the persisted summary of a property's schedule
type StoredSummary struct {
	PropertyID uuid.UUID
	Summary
	MonthlyPaymentPITI  decimal.Decimal
	YearlyPropertyTaxes decimal.Decimal
	YearlyHOI           decimal.Decimal
	MonthlyPMI          decimal.Decimal
	UpdatedAt           time.Time
}

// Attach assigns the property and deterministic ids to a schedule
func Attach(propertyID uuid.UUID, schedule []Payment) []StoredPayment {
	out := make([]StoredPayment, len(schedule))
	for i, p := range schedule {
		out[i] = StoredPayment{
			PaymentID:  PaymentID(propertyID, p.PaymentNumber),
			PropertyID: propertyID,
			Payment:    p,
		}
	}
	return out
}

// ScheduleRepository defines the interface for schedule persistence
type ScheduleRepository interface {
	// Replace deletes the property's schedule and summary and stores the new
	// ones in one transaction
	Replace(ctx context.Context, propertyID uuid.UUID, payments []StoredPayment, summary StoredSummary) error

	// FindPayments lists the schedule ordered by payment number; year 0 means
	// every year and limit 0 means no limit
	FindPayments(ctx context.Context, propertyID uuid.UUID, year, limit int) ([]StoredPayment, error)

	// FindSummary finds the stored summary, or shared.ErrNotFound
	FindSummary(ctx context.Context, propertyID uuid.UUID) (*StoredSummary, error)

	// Delete removes the schedule and summary of a property
	Delete(ctx context.Context, propertyID uuid.UUID) error
}
