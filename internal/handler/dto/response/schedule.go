package response

import (
	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleEntryResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	OwnerName string    `json:"ownerName"`
	Class     string    `json:"class"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

type DayScheduleResponse struct {
	FieldID uuid.UUID               `json:"fieldId"`
	Date    string                  `json:"date"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

type FreeSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func FromDayScheduleView(view *queries.DayScheduleView) *DayScheduleResponse {
	entries := make([]ScheduleEntryResponse, len(view.Entries))
	for i, e := range view.Entries {
		entries[i] = ScheduleEntryResponse{
			BookingID: e.BookingID,
			OwnerName: e.OwnerName,
			Class:     e.Class,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}
	return &DayScheduleResponse{
		FieldID: view.FieldID,
		Date:    view.Date,
		Entries: entries,
	}
}

func FromFreeSlotViews(views []queries.FreeSlotView) []FreeSlotResponse {
	resps := make([]FreeSlotResponse, len(views))
	for i, v := range views {
		resps[i] = FreeSlotResponse{StartTime: v.StartTime, EndTime: v.EndTime}
	}
	return resps
}
