package request

type RegisterPaymentRequest struct {
	AmountCents int64  `json:"amountCents" binding:"required,min=0"`
	PaidOn      string `json:"paidOn" binding:"required"`
}
