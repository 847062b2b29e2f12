package response

import (
	"time"

	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"bookingId"`
	AmountCents int64     `json:"amountCents"`
	PaidOn      string    `json:"paidOn"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BillingStatusResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	NextDue   string    `json:"nextDue"`
	State     string    `json:"state"`
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	resps := make([]*PaymentResponse, len(views))
	for i, v := range views {
		var resp PaymentResponse
		_ = copier.Copy(&resp, v)
		resps[i] = &resp
	}
	return resps
}

func FromBillingStatusView(view *queries.BillingStatusView) *BillingStatusResponse {
	return &BillingStatusResponse{
		BookingID: view.BookingID,
		NextDue:   view.NextDue,
		State:     view.State,
	}
}
