package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type FieldView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	FieldID      uuid.UUID `json:"field_id"`
	FieldName    string    `json:"field_name"`
	Class        string    `json:"class"`
	AnchorDate   string    `json:"anchor_date"`
	Weekday      string    `json:"weekday"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	OwnerName    string    `json:"owner_name"`
	OwnerContact string    `json:"owner_contact"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ScheduleEntryView struct {
	BookingID uuid.UUID `json:"booking_id"`
	OwnerName string    `json:"owner_name"`
	Class     string    `json:"class"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type DayScheduleView struct {
	FieldID uuid.UUID           `json:"field_id"`
	Date    string              `json:"date"`
	Entries []ScheduleEntryView `json:"entries"`
}

type FreeSlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BillingStatusView struct {
	BookingID uuid.UUID `json:"booking_id"`
	NextDue   string    `json:"next_due"`
	State     string    `json:"state"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	PaidOn      string    `json:"paid_on"`
	CreatedAt   time.Time `json:"created_at"`
}

type StudentView struct {
	ID              uuid.UUID `json:"id"`
	BookingID       uuid.UUID `json:"booking_id"`
	Name            string    `json:"name"`
	GuardianName    string    `json:"guardian_name"`
	GuardianContact string    `json:"guardian_contact"`
	Age             int       `json:"age"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StudentPaymentView struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	AmountCents int64     `json:"amount_cents"`
	PaidOn      string    `json:"paid_on"`
	CreatedAt   time.Time `json:"created_at"`
}

type StudentBillingView struct {
	StudentID uuid.UUID `json:"student_id"`
	NextDue   string    `json:"next_due"`
	State     string    `json:"state"`
}

type OperatingHoursView struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type PriceView struct {
	Class       string `json:"class"`
	AmountCents int64  `json:"amount_cents"`
}
