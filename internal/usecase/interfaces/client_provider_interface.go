package interfaces

//go:generate mockgen -source=client_provider_interface.go -destination=mocks/mock_client_provider_interface.go -package=mock_interfaces

import "paypal_checkout/internal/domain/entities"

// IClientProvider hands out an authenticated processor client for a config.
type IClientProvider interface {
	BuildClient(cfg entities.GatewayConfig) (entities.ClientHandle, error)
}
