package response

import "campo-agenda/internal/usecase/queries"

type OperatingHoursResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type PriceResponse struct {
	Class       string `json:"class"`
	AmountCents int64  `json:"amountCents"`
}

func FromOperatingHoursView(view *queries.OperatingHoursView) *OperatingHoursResponse {
	return &OperatingHoursResponse{Open: view.Open, Close: view.Close}
}

func FromPriceViews(views []*queries.PriceView) []*PriceResponse {
	resps := make([]*PriceResponse, len(views))
	for i, v := range views {
		resps[i] = &PriceResponse{Class: v.Class, AmountCents: v.AmountCents}
	}
	return resps
}
