package usecase

import (
	"context"
	"fmt"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// RedirectChargeGateway runs the two-phase express flow:
// OnCharge creates a pending payment and exposes the approval URL, the caller
// redirects the customer, and OnCallbackSuccess executes the approved payment.
type RedirectChargeGateway struct {
	gatewayDeps

	redirects   entities.RedirectURLs
	paymentID   string
	approvalURL string
	result      entities.TransactionResult
}

var _ IGateway = (*RedirectChargeGateway)(nil)

// NewRedirectChargeGateway builds a gateway whose return/cancel URLs default to
// the configured callbacks.
func NewRedirectChargeGateway(cfg entities.GatewayConfig, clients interfaces.IClientProvider, processor interfaces.IPaymentProcessor, logger *zap.Logger) *RedirectChargeGateway {
	return &RedirectChargeGateway{
		gatewayDeps: newGatewayDeps(cfg, clients, processor, logger),
		redirects:   entities.RedirectURLs{ReturnURL: cfg.SuccessURL, CancelURL: cfg.CancelURL},
	}
}

func (g *RedirectChargeGateway) Name() string { return "express" }

// SetRedirectURLs overrides the callbacks for this attempt.
func (g *RedirectChargeGateway) SetRedirectURLs(returnURL, cancelURL string) *RedirectChargeGateway {
	g.redirects = entities.RedirectURLs{ReturnURL: returnURL, CancelURL: cancelURL}
	return g
}

// OnCheckout has nothing to validate: the customer picks the funding
// instrument on the processor's page.
func (g *RedirectChargeGateway) OnCheckout(_ entities.OrderSnapshot) error { return nil }

// OnCharge creates the pending payment. The caller must redirect the customer
// to ApprovalURL.
func (g *RedirectChargeGateway) OnCharge(ctx context.Context, order entities.OrderSnapshot) error {
	g.result = entities.TransactionResult{StatusCode: entities.TransactionStatusPending}
	log := g.logger.With(zap.String("order_id", order.ID))
	log.Info("[checkout][express] charge start", zap.Float64("total", order.Total))

	client, err := g.client()
	if err != nil {
		return g.fail(log, err)
	}

	redirects := g.redirects
	req := ToPaymentRequest(order, g.cfg, entities.Payer{PaymentMethod: entities.PaymentMethodPayPal}, &redirects)

	payment, err := g.processor.CreatePayment(ctx, client, req)
	if err != nil {
		return g.fail(log, err)
	}
	if payment.ApprovalURL == "" {
		return g.fail(log.With(zap.String("payment_id", payment.ID)), ErrMissingApprovalURL)
	}

	g.paymentID = payment.ID
	g.approvalURL = payment.ApprovalURL
	g.result.ApprovalURL = payment.ApprovalURL
	g.result.Detail = fmt.Sprintf("Pending approval: %s", payment.ApprovalURL)
	log.Info("[checkout][express] charge pending", zap.String("payment_id", payment.ID))
	return nil
}

// OnCallbackSuccess executes the payment the customer approved.
//
// The result is set to failed before any call is made, so an error at any
// step leaves the attempt marked failed.
func (g *RedirectChargeGateway) OnCallbackSuccess(ctx context.Context, order entities.OrderSnapshot, data any) error {
	log := g.logger.With(zap.String("order_id", order.ID))

	cb, err := ParseCallbackData(data)
	if err != nil {
		g.result = entities.TransactionResult{
			StatusCode: entities.TransactionStatusFailed,
			Detail:     fmt.Sprintf("Payment failed. Ref: %s", cb.PaymentID),
		}
		return g.fail(log, err)
	}

	g.result = entities.TransactionResult{
		StatusCode:  entities.TransactionStatusFailed,
		Detail:      fmt.Sprintf("Payment failed. Ref: %s", cb.PaymentID),
		ApprovalURL: g.approvalURL,
	}
	log = log.With(zap.String("payment_id", cb.PaymentID))
	log.Info("[checkout][express] callback start")

	client, err := g.client()
	if err != nil {
		return g.fail(log, err)
	}
	if _, err := g.processor.GetPayment(ctx, client, cb.PaymentID); err != nil {
		return g.fail(log, err)
	}
	if _, err := g.processor.ExecutePayment(ctx, client, ToPaymentExecution(order, g.cfg, cb)); err != nil {
		return g.fail(log, err)
	}
	payment, err := g.processor.GetPayment(ctx, client, cb.PaymentID)
	if err != nil {
		return g.fail(log, err)
	}

	g.paymentID = payment.ID
	g.result.StatusCode = entities.TransactionStatusCompleted
	g.result.TransactionID = payment.ID
	g.result.Detail = "Success"
	log.Info("[checkout][express] callback success", zap.String("state", payment.State))
	return nil
}

// OnCallbackFail records a customer cancellation on the processor's page.
func (g *RedirectChargeGateway) OnCallbackFail(order entities.OrderSnapshot, ref string) {
	g.result = entities.TransactionResult{
		StatusCode:  entities.TransactionStatusFailed,
		Detail:      fmt.Sprintf("Payment canceled. Ref: %s", ref),
		ApprovalURL: g.approvalURL,
	}
	g.logger.Info("[checkout][express] canceled", zap.String("order_id", order.ID), zap.String("ref", ref))
}

// fail keeps whatever status the phase already set; only the create phase
// leaves pending behind, which becomes failed here.
func (g *RedirectChargeGateway) fail(log *zap.Logger, err error) error {
	gwErr := toGatewayError(err)
	if g.result.StatusCode != entities.TransactionStatusFailed {
		g.result = entities.TransactionResult{
			StatusCode: entities.TransactionStatusFailed,
			Detail:     gwErr.Message,
		}
	}
	log.Warn("[checkout][express] processor call failed", zap.Int("code", gwErr.Code), zap.Error(err))
	return gwErr
}

func (g *RedirectChargeGateway) ApprovalURL() string { return g.approvalURL }

// PaymentID is the processor's payment id once OnCharge or OnCallbackSuccess succeeded.
func (g *RedirectChargeGateway) PaymentID() string { return g.paymentID }

func (g *RedirectChargeGateway) Result() entities.TransactionResult { return g.result }
