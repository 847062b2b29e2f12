package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	FieldID      uuid.UUID `json:"fieldId" binding:"required"`
	Class        string    `json:"class" binding:"required"`
	AnchorDate   string    `json:"anchorDate" binding:"required"`
	StartTime    string    `json:"startTime" binding:"required"`
	EndTime      string    `json:"endTime" binding:"required"`
	OwnerName    string    `json:"ownerName" binding:"required"`
	OwnerContact string    `json:"ownerContact" binding:"required"`
}

// Update is partial: absent fields keep their stored values.
type UpdateBookingRequest struct {
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
	OwnerName    *string `json:"ownerName"`
	OwnerContact *string `json:"ownerContact"`
}
