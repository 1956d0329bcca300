package usecase

import (
	"fmt"

	"paypal_checkout/internal/domain/entities"
)

// maxItemNameLength is the processor's limit for line item names.
const maxItemNameLength = 127

// ToPaymentRequest maps an order snapshot into a "sale" payment request.
//
// Values are passed through verbatim; the mapping is pure, so identical
// inputs produce identical requests.
func ToPaymentRequest(order entities.OrderSnapshot, cfg entities.GatewayConfig, payer entities.Payer, redirects *entities.RedirectURLs) entities.PaymentRequest {
	return entities.PaymentRequest{
		Intent:       entities.PaymentIntentSale,
		Payer:        payer,
		Transactions: []entities.Transfer{toTransfer(order, cfg)},
		RedirectURLs: redirects,
	}
}

func toTransfer(order entities.OrderSnapshot, cfg entities.GatewayConfig) entities.Transfer {
	return entities.Transfer{
		Amount: entities.Amount{
			Currency: cfg.Currency,
			Total:    order.Total,
			Details: entities.AmountDetails{
				Shipping: order.TotalShipping,
				Tax:      order.TotalTax,
				Subtotal: order.TotalPrice,
			},
		},
		ItemList:      entities.ItemList{Items: toItems(order.Items)},
		Description:   PaymentDescription(cfg.MerchantName, order.ID),
		InvoiceNumber: order.ID,
	}
}

func toItems(lines []entities.LineItem) []entities.Item {
	items := make([]entities.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, entities.Item{
			Name:        truncate(line.DisplayName, maxItemNameLength),
			Description: line.SKU,
			Currency:    line.Currency,
			Quantity:    line.Quantity,
			Tax:         line.Tax,
			Price:       line.Price,
		})
	}
	return items
}

// PaymentDescription is the human readable payment description.
func PaymentDescription(merchantName, orderID string) string {
	return fmt.Sprintf("%s payment, Order #%s", merchantName, orderID)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ToPaymentExecution binds the customer's approval to the order it settles.
func ToPaymentExecution(order entities.OrderSnapshot, cfg entities.GatewayConfig, cb CallbackData) entities.PaymentExecution {
	return entities.PaymentExecution{
		PaymentID:     cb.PaymentID,
		PayerID:       cb.PayerID,
		InvoiceNumber: order.ID,
		Total:         order.Total,
		Currency:      cfg.Currency,
	}
}
