package usecase

import (
	"context"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DirectChargeGateway charges a credit card in one shot.
//
// States: uninitialized -> OnCheckout (validated) -> OnCharge -> completed | failed.
type DirectChargeGateway struct {
	gatewayDeps

	card   *entities.CreditCard
	result entities.TransactionResult
}

var _ IGateway = (*DirectChargeGateway)(nil)

func NewDirectChargeGateway(cfg entities.GatewayConfig, clients interfaces.IClientProvider, processor interfaces.IPaymentProcessor, logger *zap.Logger) *DirectChargeGateway {
	return &DirectChargeGateway{gatewayDeps: newGatewayDeps(cfg, clients, processor, logger)}
}

func (g *DirectChargeGateway) Name() string { return "direct" }

// SetCreditCard attaches the card used by the next charge attempt.
func (g *DirectChargeGateway) SetCreditCard(brand entities.CardBrand, number string, expireMonth, expireYear int, cvv, firstName, lastName string) *DirectChargeGateway {
	g.card = &entities.CreditCard{
		Brand:       brand,
		Number:      number,
		ExpireMonth: expireMonth,
		ExpireYear:  expireYear,
		CVV:         cvv,
		FirstName:   firstName,
		LastName:    lastName,
	}
	return g
}

// OnCheckout validates the attached card. No network call is made.
func (g *DirectChargeGateway) OnCheckout(_ entities.OrderSnapshot) error {
	if err := ValidateCard(g.card); err != nil {
		g.logger.Info("[checkout][direct] checkout rejected", zap.String("reason", err.Error()))
		return err
	}
	return nil
}

// OnCharge submits the card payment for the order.
func (g *DirectChargeGateway) OnCharge(ctx context.Context, order entities.OrderSnapshot) error {
	if g.card == nil {
		g.result = entities.TransactionResult{
			StatusCode: entities.TransactionStatusFailed,
			Detail:     ErrCardNotSet.Message,
		}
		return ErrCardNotSet
	}
	log := g.logger.With(zap.String("order_id", order.ID), zap.String("card", g.card.Masked()))
	log.Info("[checkout][direct] charge start", zap.Float64("total", order.Total))

	client, err := g.client()
	if err != nil {
		return g.fail(log, err)
	}

	payer := entities.Payer{
		PaymentMethod:      entities.PaymentMethodCreditCard,
		FundingInstruments: []entities.FundingInstrument{{CreditCard: g.card}},
	}
	req := ToPaymentRequest(order, g.cfg, payer, nil)

	payment, err := g.processor.CreatePayment(ctx, client, req)
	if err != nil {
		return g.fail(log, err)
	}

	g.result = entities.TransactionResult{
		StatusCode:    entities.TransactionStatusCompleted,
		TransactionID: payment.ID,
		Detail:        "Success",
	}
	log.Info("[checkout][direct] charge success", zap.String("payment_id", payment.ID))
	return nil
}

func (g *DirectChargeGateway) fail(log *zap.Logger, err error) error {
	gwErr := toGatewayError(err)
	g.result = entities.TransactionResult{
		StatusCode: entities.TransactionStatusFailed,
		Detail:     gwErr.Message,
	}
	log.Warn("[checkout][direct] charge failed", zap.Int("code", gwErr.Code), zap.Error(err))
	return gwErr
}

func (g *DirectChargeGateway) Result() entities.TransactionResult { return g.result }
