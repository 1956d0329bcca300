package usecase

import (
	"regexp"
	"slices"
	"strings"

	"paypal_checkout/internal/domain/entities"
)

// AcceptedCardBrands are the brands the processor charges directly.
var AcceptedCardBrands = []entities.CardBrand{
	entities.CardBrandVisa,
	entities.CardBrandMastercard,
	entities.CardBrandAmex,
	entities.CardBrandDiscover,
}

// Order matters: a number is attributed to the first alternative that
// matches it whole (visa wins over the 49xx switch ranges).
var cardBrandPatterns = []struct {
	brand   entities.CardBrand
	pattern string
}{
	{entities.CardBrandVisa, `4\d{12}(?:\d{3})?`},
	{entities.CardBrandAmex, `3[47]\d{13}`},
	{entities.CardBrandJCB, `35[2-8][89]\d\d\d{10}`},
	{entities.CardBrandMaestro, `(?:5020|5038|6304|6579|6761)\d{12}(?:\d\d)?`},
	{entities.CardBrandSolo, `(?:6334|6767)\d{12}(?:\d\d)?\d?`},
	{entities.CardBrandMastercard, `5[1-5]\d{14}`},
	{entities.CardBrandSwitch, `(?:(?:4903|4905|4911|4936|6333|6759)\d{12})|(?:(?:564182|633110)\d{10}(?:\d\d)?\d?)`},
	{entities.CardBrandDiscover, `(?:6011|64[4-9]\d|65(?:[0-68-9]\d|7[0-8]))\d{12}`},
}

var cardBrandRegexp = compileCardBrandRegexp()

func compileCardBrandRegexp() *regexp.Regexp {
	alts := make([]string, 0, len(cardBrandPatterns))
	for _, p := range cardBrandPatterns {
		alts = append(alts, "(?P<"+string(p.brand)+">"+p.pattern+")")
	}
	return regexp.MustCompile(`^(?:` + strings.Join(alts, "|") + `)$`)
}

// DetectCardBrand returns the brand whose pattern matches the whole number
// (spaces ignored), or CardBrandUnknown.
func DetectCardBrand(number string) entities.CardBrand {
	number = strings.ReplaceAll(number, " ", "")
	if number == "" {
		return entities.CardBrandUnknown
	}

	m := cardBrandRegexp.FindStringSubmatchIndex(number)
	if m == nil {
		return entities.CardBrandUnknown
	}
	for i, name := range cardBrandRegexp.SubexpNames() {
		if name != "" && m[2*i] >= 0 {
			return entities.CardBrand(name)
		}
	}
	return entities.CardBrandUnknown
}

// IsAcceptedCardBrand reports whether brand can be charged.
func IsAcceptedCardBrand(brand entities.CardBrand) bool {
	return slices.Contains(AcceptedCardBrands, brand)
}

// ValidateCard checks a card before any charge request is built.
func ValidateCard(card *entities.CreditCard) error {
	if card == nil {
		return ErrCardNotSet
	}
	if !IsAcceptedCardBrand(card.Brand) {
		return ErrUnsupportedBrand
	}
	if DetectCardBrand(card.Number) != card.Brand {
		return ErrInvalidNumber
	}
	return nil
}
