package entities

// OrderSnapshot is the read-only view of an order (or cart) handed to a gateway.
//
// Monetary values are passed through to the processor verbatim: no rounding,
// tax computation or currency conversion happens on this side.
type OrderSnapshot struct {
	ID            string     `json:"id"`
	Items         []LineItem `json:"items"`
	TotalShipping float64    `json:"total_shipping"`
	TotalTax      float64    `json:"total_tax"`
	TotalPrice    float64    `json:"total_price"`
	Total         float64    `json:"total"`
	Currency      string     `json:"currency"`
}

type LineItem struct {
	DisplayName string  `json:"display_name"`
	SKU         string  `json:"sku"`
	Currency    string  `json:"currency"`
	Quantity    int     `json:"quantity"`
	Tax         float64 `json:"tax"`
	Price       float64 `json:"price"`
}
