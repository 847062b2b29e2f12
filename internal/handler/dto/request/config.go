package request

type SetOperatingHoursRequest struct {
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}

type SetPriceRequest struct {
	Class       string `json:"class" binding:"required"`
	AmountCents int64  `json:"amountCents" binding:"required,min=0"`
}
