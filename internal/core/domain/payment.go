package domain

// PaymentMethod is a card an advertiser pays with.
type PaymentMethod struct {
	PaymentID  string `json:"paymentId"`
	BankName   string `json:"bankName"`
	CardNumber string `json:"cardNumber"`
}
