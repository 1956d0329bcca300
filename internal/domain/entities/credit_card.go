package entities

import "strings"

// CardBrand is the card network a number belongs to.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "visa"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandJCB        CardBrand = "jcb"
	CardBrandMaestro    CardBrand = "maestro"
	CardBrandSolo       CardBrand = "solo"
	CardBrandSwitch     CardBrand = "switch"
	CardBrandUnknown    CardBrand = "unknown"
)

// CreditCard is the card data attached to a direct charge attempt.
//
// It lives only for one attempt: it is never persisted and must be masked
// before it reaches a log line.
type CreditCard struct {
	Brand       CardBrand `json:"type"`
	Number      string    `json:"number"`
	ExpireMonth int       `json:"expire_month"`
	ExpireYear  int       `json:"expire_year"`
	CVV         string    `json:"cvv2"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
}

// Masked returns the card number with all but the last four digits hidden.
func (c CreditCard) Masked() string {
	n := strings.ReplaceAll(c.Number, " ", "")
	if len(n) < 4 {
		return "****"
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
