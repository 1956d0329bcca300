package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"paypal_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() entities.OrderSnapshot {
	return entities.OrderSnapshot{
		ID: "1042",
		Items: []entities.LineItem{
			{DisplayName: "Mug", SKU: "MUG-1", Currency: "USD", Quantity: 2, Tax: 0.1, Price: 4.45},
			{DisplayName: "Sticker", SKU: "STK-9", Currency: "USD", Quantity: 1, Price: 0.99},
		},
		TotalShipping: 1.5,
		TotalTax:      0.2,
		TotalPrice:    9.89,
		Total:         11.59,
		Currency:      "USD",
	}
}

func sampleConfig() entities.GatewayConfig {
	return entities.GatewayConfig{
		ClientID:     "client",
		Secret:       "secret",
		Sandbox:      true,
		Currency:     "USD",
		MerchantName: "Acme",
		SuccessURL:   "https://shop.test/success",
		CancelURL:    "https://shop.test/cancel",
	}
}

func TestToPaymentRequest(t *testing.T) {
	payer := entities.Payer{PaymentMethod: entities.PaymentMethodPayPal}
	req := ToPaymentRequest(sampleOrder(), sampleConfig(), payer, nil)

	assert.Equal(t, entities.PaymentIntentSale, req.Intent)
	require.Len(t, req.Transactions, 1)
	tr := req.Transactions[0]
	assert.Equal(t, "Acme payment, Order #1042", tr.Description)
	assert.Equal(t, "1042", tr.InvoiceNumber)
	assert.Equal(t, "USD", tr.Amount.Currency)
	assert.Equal(t, 11.59, tr.Amount.Total)
	assert.Equal(t, entities.AmountDetails{Shipping: 1.5, Tax: 0.2, Subtotal: 9.89}, tr.Amount.Details)

	require.Len(t, tr.ItemList.Items, 2)
	assert.Equal(t, entities.Item{Name: "Mug", Description: "MUG-1", Currency: "USD", Quantity: 2, Tax: 0.1, Price: 4.45}, tr.ItemList.Items[0])
	assert.Nil(t, req.RedirectURLs)
}

func TestToPaymentRequest_Deterministic(t *testing.T) {
	payer := entities.Payer{PaymentMethod: entities.PaymentMethodPayPal}
	redirects := &entities.RedirectURLs{ReturnURL: "https://shop.test/success", CancelURL: "https://shop.test/cancel"}

	a, err := json.Marshal(ToPaymentRequest(sampleOrder(), sampleConfig(), payer, redirects))
	require.NoError(t, err)
	b, err := json.Marshal(ToPaymentRequest(sampleOrder(), sampleConfig(), payer, redirects))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestToPaymentRequest_TruncatesLongNames(t *testing.T) {
	order := sampleOrder()
	order.Items[0].DisplayName = strings.Repeat("é", 200)

	req := ToPaymentRequest(order, sampleConfig(), entities.Payer{}, nil)

	name := req.Transactions[0].ItemList.Items[0].Name
	assert.Equal(t, 127, len([]rune(name)))
	assert.Equal(t, "Sticker", req.Transactions[0].ItemList.Items[1].Name)
}

func TestToPaymentExecution(t *testing.T) {
	exec := ToPaymentExecution(sampleOrder(), sampleConfig(), CallbackData{PaymentID: "PAY-1", PayerID: "PAYER-1"})

	assert.Equal(t, entities.PaymentExecution{
		PaymentID:     "PAY-1",
		PayerID:       "PAYER-1",
		InvoiceNumber: "1042",
		Total:         sampleOrder().Total,
		Currency:      "USD",
	}, exec)
}
