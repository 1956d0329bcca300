package usecase

import (
	"errors"
	"fmt"

	"paypal_checkout/internal/domain/entities"
)

// CheckoutError is a pre-charge validation failure. It never involves the
// processor and the caller can fix the card and retry.
type CheckoutError struct {
	Code    int
	Message string
}

func (e *CheckoutError) Error() string { return e.Message }

var (
	ErrCardNotSet       = &CheckoutError{Code: 0, Message: "Credit Card is not set."}
	ErrUnsupportedBrand = &CheckoutError{Code: 1, Message: "Credit Card is not supported."}
	ErrInvalidNumber    = &CheckoutError{Code: 2, Message: "Credit Card is invalid."}
)

// ErrMissingApprovalURL is raised when the processor created a redirect
// payment without a link to send the customer to.
var ErrMissingApprovalURL = errors.New("processor returned no approval url")

// Gateway error classes.
const (
	GatewayErrorUnexpected = 1000
	GatewayErrorProcessor  = 1001
)

const defaultProcessorMessage = "Paypal payment Failed."

// GatewayError is a failure of a network-involving gateway operation. It is
// terminal for the current attempt; Err keeps the original fault.
type GatewayError struct {
	Code    int
	Name    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string { return e.Message }

func (e *GatewayError) Unwrap() error { return e.Err }

// IsProcessorError reports whether the processor itself rejected the call.
func (e *GatewayError) IsProcessorError() bool { return e.Code == GatewayErrorProcessor }

// toGatewayError normalizes any fault raised while talking to the processor.
func toGatewayError(err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}

	var procErr *entities.ProcessorError
	if errors.As(err, &procErr) {
		msg := procErr.Message
		if msg == "" {
			msg = defaultProcessorMessage
		}
		return &GatewayError{
			Code:    GatewayErrorProcessor,
			Name:    procErr.Name,
			Message: fmt.Sprintf("%s: %s", procErr.Name, msg),
			Err:     err,
		}
	}

	return &GatewayError{Code: GatewayErrorUnexpected, Message: err.Error(), Err: err}
}
