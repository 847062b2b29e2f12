package response

import (
	"time"

	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StudentResponse struct {
	ID              uuid.UUID `json:"id"`
	BookingID       uuid.UUID `json:"bookingId"`
	Name            string    `json:"name"`
	GuardianName    string    `json:"guardianName"`
	GuardianContact string    `json:"guardianContact"`
	Age             int       `json:"age"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type StudentPaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"studentId"`
	AmountCents int64     `json:"amountCents"`
	PaidOn      string    `json:"paidOn"`
	CreatedAt   time.Time `json:"createdAt"`
}

type StudentBillingResponse struct {
	StudentID uuid.UUID `json:"studentId"`
	NextDue   string    `json:"nextDue"`
	State     string    `json:"state"`
}

func FromStudentView(view *queries.StudentView) *StudentResponse {
	var resp StudentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromStudentViews(views []*queries.StudentView) []*StudentResponse {
	resps := make([]*StudentResponse, len(views))
	for i, v := range views {
		resps[i] = FromStudentView(v)
	}
	return resps
}

func FromStudentPaymentViews(views []*queries.StudentPaymentView) []*StudentPaymentResponse {
	resps := make([]*StudentPaymentResponse, len(views))
	for i, v := range views {
		var resp StudentPaymentResponse
		_ = copier.Copy(&resp, v)
		resps[i] = &resp
	}
	return resps
}

func FromStudentBillingView(view *queries.StudentBillingView) *StudentBillingResponse {
	return &StudentBillingResponse{
		StudentID: view.StudentID,
		NextDue:   view.NextDue,
		State:     view.State,
	}
}
