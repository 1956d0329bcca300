package entities

// Payment request shapes sent to the processor. They mirror the PayPal
// REST v1 "payment" resource and are built in one struct literal each.

const (
	PaymentIntentSale = "sale"

	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"
)

type PaymentRequest struct {
	Intent       string        `json:"intent"`
	Payer        Payer         `json:"payer"`
	Transactions []Transfer    `json:"transactions"`
	RedirectURLs *RedirectURLs `json:"redirect_urls,omitempty"`
}

type Payer struct {
	PaymentMethod      string              `json:"payment_method"`
	FundingInstruments []FundingInstrument `json:"funding_instruments,omitempty"`
}

type FundingInstrument struct {
	CreditCard *CreditCard `json:"credit_card,omitempty"`
}

// Transfer is one processor-side transaction (amount + items) of a payment.
type Transfer struct {
	Amount        Amount   `json:"amount"`
	ItemList      ItemList `json:"item_list"`
	Description   string   `json:"description"`
	InvoiceNumber string   `json:"invoice_number"`
}

type Amount struct {
	Currency string        `json:"currency"`
	Total    float64       `json:"total"`
	Details  AmountDetails `json:"details"`
}

type AmountDetails struct {
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Subtotal float64 `json:"subtotal"`
}

type ItemList struct {
	Items []Item `json:"items"`
}

type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Currency    string  `json:"currency"`
	Quantity    int     `json:"quantity"`
	Tax         float64 `json:"tax"`
	Price       float64 `json:"price"`
}

type RedirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

// ProcessorPayment is the processor's view of a payment after create/get/execute.
type ProcessorPayment struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	ApprovalURL string `json:"approval_url,omitempty"`
}

// PaymentExecution finalizes an approved payment. InvoiceNumber and Total
// name the order it must settle, for processors that do not bind the
// approval to the created payment themselves.
type PaymentExecution struct {
	PaymentID     string
	PayerID       string
	InvoiceNumber string
	Total         float64
	Currency      string
}
