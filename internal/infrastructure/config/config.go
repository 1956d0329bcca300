package config

import (
	"fmt"
	"strings"
	"time"

	"paypal_checkout/internal/domain/entities"

	"github.com/caarlos0/env/v10"
)

// Config is the process configuration, read from the environment (a local
// .env file is loaded by godotenv/autoload in cmd/api).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	PayPal      PayPalConfig
	Shop        ShopConfig
	Payment     PaymentConfig
	MercadoPago MercadoPagoConfig
	DynamoDB    DynamoDBConfig
	Log         LogConfig
}

type AppConfig struct {
	Name string `env:"APP_NAME" envDefault:"paypal-checkout"`
	// Env is local or docker.
	Env string `env:"APP_ENV" envDefault:"local"`
}

type HTTPConfig struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type PayPalConfig struct {
	ClientID string `env:"PAYPAL_CLIENT_ID"`
	Secret   string `env:"PAYPAL_SECRET"`
	Sandbox  bool   `env:"PAYPAL_SANDBOX" envDefault:"true"`
	// Where the customer lands after approving or canceling on PayPal.
	ReturnURL string `env:"PAYPAL_RETURN_URL" envDefault:"http://localhost:8080/v1/checkout/express/callback/success"`
	CancelURL string `env:"PAYPAL_CANCEL_URL" envDefault:"http://localhost:8080/v1/checkout/express/callback/cancel"`
}

type ShopConfig struct {
	Name     string `env:"SHOP_NAME" envDefault:"Shop"`
	Currency string `env:"SHOP_CURRENCY" envDefault:"USD"`
}

type PaymentConfig struct {
	// Processor is paypal, mercadopago or mock.
	Processor string        `env:"PAYMENT_PROCESSOR" envDefault:"paypal"`
	Timeout   time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"30s"`
}

type MercadoPagoConfig struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
}

type DynamoDBConfig struct {
	Region            string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID       string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey   string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint          string `env:"DYNAMODB_ENDPOINT"`
	TransactionsTable string `env:"TRANSACTIONS_TABLE" envDefault:"transactions"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Payment.Processor = strings.ToLower(strings.TrimSpace(cfg.Payment.Processor))
	return cfg, nil
}

// Gateway is the read-only value handed to the gateways.
func (c Config) Gateway() entities.GatewayConfig {
	return entities.GatewayConfig{
		ClientID:     c.PayPal.ClientID,
		Secret:       c.PayPal.Secret,
		Sandbox:      c.PayPal.Sandbox,
		Currency:     c.Shop.Currency,
		MerchantName: c.Shop.Name,
		SuccessURL:   c.PayPal.ReturnURL,
		CancelURL:    c.PayPal.CancelURL,
		Timeout:      c.Payment.Timeout,
	}
}
