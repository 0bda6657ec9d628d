package entities

// PaymentNotification is the instant payment notification sent by the
// MoMo gateway once a payment is settled.
type PaymentNotification struct {
	PartnerCode  string `json:"partnerCode" validate:"required"`
	OrderID      string `json:"orderId" validate:"required"`
	RequestID    string `json:"requestId" validate:"required"`
	Amount       int64  `json:"amount" validate:"gte=0"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature" validate:"required,hexadecimal"`
}

// Succeeded reports whether the gateway settled the payment.
func (p PaymentNotification) Succeeded() bool {
	return p.ResultCode == 0
}
