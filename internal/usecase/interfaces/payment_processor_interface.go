package interfaces

//go:generate mockgen -source=payment_processor_interface.go -destination=mocks/mock_payment_processor_interface.go -package=mock_interfaces

import (
	"context"

	"paypal_checkout/internal/domain/entities"
)

// IPaymentProcessor abstracts the payment processor's API (PayPal REST,
// Mercado Pago, or the local mock).
//
// Processor-side failures are returned as *entities.ProcessorError; anything
// else (transport, decoding) is returned as-is.
type IPaymentProcessor interface {
	Name() string
	CreatePayment(ctx context.Context, client entities.ClientHandle, req entities.PaymentRequest) (entities.ProcessorPayment, error)
	GetPayment(ctx context.Context, client entities.ClientHandle, paymentID string) (entities.ProcessorPayment, error)
	ExecutePayment(ctx context.Context, client entities.ClientHandle, exec entities.PaymentExecution) (entities.ProcessorPayment, error)
}
