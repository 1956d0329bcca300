package request

import (
	"errors"
	"strings"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase"
)

var ErrInvalidOrderTotal = errors.New("invalid order total")

type LineItemRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	SKU         string  `json:"sku"`
	Currency    string  `json:"currency"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Tax         float64 `json:"tax"`
	Price       float64 `json:"price"`
}

// OrderRequest is the order snapshot sent by the shop. Amounts are passed to
// the processor as received.
type OrderRequest struct {
	ID            string            `json:"id" binding:"required"`
	Items         []LineItemRequest `json:"items" binding:"dive"`
	TotalShipping float64           `json:"total_shipping"`
	TotalTax      float64           `json:"total_tax"`
	TotalPrice    float64           `json:"total_price"`
	Total         *float64          `json:"total" binding:"required"`
	Currency      string            `json:"currency"`
}

func (r OrderRequest) ToEntity() (entities.OrderSnapshot, error) {
	if r.Total == nil || *r.Total < 0 {
		return entities.OrderSnapshot{}, ErrInvalidOrderTotal
	}
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			DisplayName: strings.TrimSpace(it.DisplayName),
			SKU:         strings.TrimSpace(it.SKU),
			Currency:    strings.ToUpper(strings.TrimSpace(it.Currency)),
			Quantity:    it.Quantity,
			Tax:         it.Tax,
			Price:       it.Price,
		})
	}
	return entities.OrderSnapshot{
		ID:            strings.TrimSpace(r.ID),
		Items:         items,
		TotalShipping: r.TotalShipping,
		TotalTax:      r.TotalTax,
		TotalPrice:    r.TotalPrice,
		Total:         *r.Total,
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
	}, nil
}

type CardRequest struct {
	Type        string `json:"type" binding:"required"`
	Number      string `json:"number" binding:"required"`
	ExpireMonth int    `json:"expire_month" binding:"required,min=1,max=12"`
	ExpireYear  int    `json:"expire_year" binding:"required"`
	CVV2        string `json:"cvv2"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

func (r CardRequest) ToEntity() entities.CreditCard {
	return entities.CreditCard{
		Brand:       entities.CardBrand(strings.ToLower(strings.TrimSpace(r.Type))),
		Number:      strings.TrimSpace(r.Number),
		ExpireMonth: r.ExpireMonth,
		ExpireYear:  r.ExpireYear,
		CVV:         strings.TrimSpace(r.CVV2),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
	}
}

// DirectCheckoutRequest charges a card in one request.
type DirectCheckoutRequest struct {
	Card  CardRequest  `json:"card" binding:"required"`
	Order OrderRequest `json:"order" binding:"required"`
}

// ExpressCheckoutRequest starts a redirect checkout.
type ExpressCheckoutRequest struct {
	Order OrderRequest `json:"order" binding:"required"`
}

// CallbackQuery is the query string the customer returns with. PayPal sends
// paymentId and PayerID; Mercado Pago sends preference_id and payment_id.
type CallbackQuery struct {
	TransactionID string `form:"tx"`
	PaymentID     string `form:"paymentId"`
	PayerID       string `form:"PayerID"`
	Token         string `form:"token"`
	PreferenceID  string `form:"preference_id"`
	MPPaymentID   string `form:"payment_id"`
	CollectionID  string `form:"collection_id"`
}

func (q CallbackQuery) ToCallbackData() usecase.CallbackData {
	return usecase.CallbackData{
		PaymentID: firstNonEmpty(q.PaymentID, q.PreferenceID),
		PayerID:   firstNonEmpty(q.PayerID, q.MPPaymentID, q.CollectionID),
	}
}

// Reference is what a cancel callback identifies itself with.
func (q CallbackQuery) Reference() string {
	return firstNonEmpty(q.PaymentID, q.PreferenceID, q.Token)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
