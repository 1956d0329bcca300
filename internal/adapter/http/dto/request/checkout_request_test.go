package request

import (
	"errors"
	"testing"

	"paypal_checkout/internal/domain/entities"
)

func TestOrderRequest_ToEntity(t *testing.T) {
	total := 12.5
	r := OrderRequest{
		ID:       " order-1 ",
		Currency: "usd",
		Total:    &total,
		Items: []LineItemRequest{
			{DisplayName: " Mug ", SKU: "MUG-1", Currency: "usd", Quantity: 2, Price: 5, Tax: 0.5},
		},
		TotalShipping: 1.5,
	}

	got, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "order-1" || got.Currency != "USD" || got.Total != 12.5 || got.TotalShipping != 1.5 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].DisplayName != "Mug" || got.Items[0].Currency != "USD" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}

	t.Run("missing total", func(t *testing.T) {
		_, err := OrderRequest{ID: "order-1"}.ToEntity()
		if !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		neg := -1.0
		_, err := OrderRequest{ID: "order-1", Total: &neg}.ToEntity()
		if !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})
}

func TestCardRequest_ToEntity(t *testing.T) {
	c := CardRequest{Type: " VISA ", Number: " 4111111111111111 ", ExpireMonth: 11, ExpireYear: 2030, CVV2: "874"}.ToEntity()
	if c.Brand != entities.CardBrandVisa || c.Number != "4111111111111111" || c.CVV != "874" {
		t.Fatalf("unexpected card: %+v", c)
	}
}

func TestCallbackQuery(t *testing.T) {
	t.Run("paypal", func(t *testing.T) {
		q := CallbackQuery{TransactionID: "tx-1", PaymentID: "PAY-1", PayerID: "PAYER-1", Token: "EC-1"}
		cb := q.ToCallbackData()
		if cb.PaymentID != "PAY-1" || cb.PayerID != "PAYER-1" {
			t.Fatalf("unexpected callback: %+v", cb)
		}
		if q.Reference() != "PAY-1" {
			t.Fatalf("unexpected reference: %s", q.Reference())
		}
	})

	t.Run("mercadopago", func(t *testing.T) {
		q := CallbackQuery{PreferenceID: "pref-1", MPPaymentID: "123"}
		cb := q.ToCallbackData()
		if cb.PaymentID != "pref-1" || cb.PayerID != "123" {
			t.Fatalf("unexpected callback: %+v", cb)
		}
	})

	t.Run("cancel with token only", func(t *testing.T) {
		if got := (CallbackQuery{Token: "EC-9"}).Reference(); got != "EC-9" {
			t.Fatalf("unexpected reference: %s", got)
		}
	})
}
