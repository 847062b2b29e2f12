package response

import (
	"time"

	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	FieldID      uuid.UUID `json:"fieldId"`
	FieldName    string    `json:"fieldName"`
	Class        string    `json:"class"`
	AnchorDate   string    `json:"anchorDate"`
	Weekday      string    `json:"weekday"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	OwnerName    string    `json:"ownerName"`
	OwnerContact string    `json:"ownerContact"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(views))
	for i, v := range views {
		resps[i] = FromBookingView(v)
	}
	return resps
}
