package payments

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"paypal_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProcessor_CardPaymentApprovedOnCreate(t *testing.T) {
	p := NewMockProcessor(nil)
	req := entities.PaymentRequest{Payer: entities.Payer{PaymentMethod: entities.PaymentMethodCreditCard}}

	payment, err := p.CreatePayment(context.Background(), entities.ClientHandle{}, req)
	require.NoError(t, err)
	assert.Equal(t, "approved", payment.State)
	assert.Empty(t, payment.ApprovalURL)
}

func TestMockProcessor_ExpressFlow(t *testing.T) {
	ctx := context.Background()
	p := NewMockProcessor(nil)
	req := entities.PaymentRequest{
		Payer:        entities.Payer{PaymentMethod: entities.PaymentMethodPayPal},
		RedirectURLs: &entities.RedirectURLs{ReturnURL: "http://localhost:8080/v1/checkout/express/callback/success?tx=tx-1", CancelURL: "http://localhost:8080/v1/checkout/express/callback/cancel?tx=tx-1"},
	}

	created, err := p.CreatePayment(ctx, entities.ClientHandle{}, req)
	require.NoError(t, err)
	assert.Equal(t, "created", created.State)

	// The approval link lands on the success callback ready to execute.
	u, err := url.Parse(created.ApprovalURL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/checkout/express/callback/success", u.Path)
	assert.Equal(t, "tx-1", u.Query().Get("tx"))
	assert.Equal(t, created.ID, u.Query().Get("paymentId"))
	assert.Equal(t, MockPayerID, u.Query().Get("PayerID"))

	_, err = p.ExecutePayment(ctx, entities.ClientHandle{}, entities.PaymentExecution{PaymentID: created.ID})
	var procErr *entities.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "VALIDATION_ERROR", procErr.Name)

	exec := entities.PaymentExecution{PaymentID: created.ID, PayerID: u.Query().Get("PayerID")}
	executed, err := p.ExecutePayment(ctx, entities.ClientHandle{}, exec)
	require.NoError(t, err)
	assert.Equal(t, "approved", executed.State)

	got, err := p.GetPayment(ctx, entities.ClientHandle{}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", got.State)

	_, err = p.ExecutePayment(ctx, entities.ClientHandle{}, exec)
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "PAYMENT_ALREADY_DONE", procErr.Name)
}

func TestMockProcessor_ExpressNeedsReturnURL(t *testing.T) {
	req := entities.PaymentRequest{Payer: entities.Payer{PaymentMethod: entities.PaymentMethodPayPal}}
	_, err := NewMockProcessor(nil).CreatePayment(context.Background(), entities.ClientHandle{}, req)
	var procErr *entities.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "VALIDATION_ERROR", procErr.Name)
}

func TestMockProcessor_UnknownPayment(t *testing.T) {
	_, err := NewMockProcessor(nil).GetPayment(context.Background(), entities.ClientHandle{}, "nope")
	var procErr *entities.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "INVALID_RESOURCE_ID", procErr.Name)
}

func TestIsMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYPAL_MOCK", "")
	assert.False(t, IsMockEnabled())

	t.Setenv("PAYPAL_MOCK", "true")
	assert.True(t, IsMockEnabled())
}

func TestMockClientProvider(t *testing.T) {
	handle, err := MockClientProvider{}.BuildClient(entities.GatewayConfig{Sandbox: true})
	require.NoError(t, err)
	assert.Equal(t, entities.ProcessorModeSandbox, handle.Mode)
}
