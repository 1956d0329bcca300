package usecase

import (
	"context"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IGateway is the contract shared by the direct and redirect gateways.
//
// A gateway instance serves a single charge attempt. Result is valid after
// every phase, including failed ones.
type IGateway interface {
	Name() string
	OnCheckout(cart entities.OrderSnapshot) error
	OnCharge(ctx context.Context, order entities.OrderSnapshot) error
	Result() entities.TransactionResult
}

// gatewayDeps are the collaborators both gateways need.
type gatewayDeps struct {
	cfg       entities.GatewayConfig
	clients   interfaces.IClientProvider
	processor interfaces.IPaymentProcessor
	logger    *zap.Logger
}

func newGatewayDeps(cfg entities.GatewayConfig, clients interfaces.IClientProvider, processor interfaces.IPaymentProcessor, logger *zap.Logger) gatewayDeps {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gatewayDeps{cfg: cfg, clients: clients, processor: processor, logger: logger}
}

func (d gatewayDeps) client() (entities.ClientHandle, error) {
	if d.clients == nil || d.processor == nil {
		return entities.ClientHandle{}, ErrProcessorNotConfigured
	}
	return d.clients.BuildClient(d.cfg)
}
