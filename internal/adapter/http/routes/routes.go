package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "paypal_checkout/docs" // This will be auto-generated
	"paypal_checkout/internal/adapter/http/handlers"
	"paypal_checkout/internal/adapter/persistence/repository"
	"paypal_checkout/internal/infrastructure/config"
	"paypal_checkout/internal/infrastructure/database"
	"paypal_checkout/internal/infrastructure/logging"
	"paypal_checkout/internal/infrastructure/payments"
	"paypal_checkout/internal/usecase"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		ServiceName: cfg.App.Name,
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	router, err := NewRouter(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to wire application", zap.Error(err))
		return err
	}

	addr := ":" + strconv.Itoa(cfg.HTTP.Port)
	logger.Info("http server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("failed to startup the application", zap.Error(err))
		return err
	}
	return nil
}

// NewRouter wires the checkout API on a fresh gin engine.
func NewRouter(ctx context.Context, cfg config.Config, logger *zap.Logger) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	transactionRepo := repository.NewTransactionDynamoRepository(ddb, cfg.DynamoDB.TransactionsTable)
	if cfg.DynamoDB.Endpoint != "" {
		if err := transactionRepo.EnsureTable(ctx); err != nil {
			logger.Warn("transactions table not ready", zap.String("table", cfg.DynamoDB.TransactionsTable), zap.Error(err))
		}
	}

	clients, processor := newProcessor(cfg, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cfg.Gateway(), clients, processor, transactionRepo, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
	return router, nil
}

// newProcessor picks the payment processor. A misconfigured processor is
// logged and left nil; checkout calls then fail with 503 while reads keep
// working.
func newProcessor(cfg config.Config, logger *zap.Logger) (interfaces.IClientProvider, interfaces.IPaymentProcessor) {
	name := cfg.Payment.Processor
	if payments.IsMockEnabled() {
		name = "mock"
	}

	switch name {
	case "mock":
		return payments.MockClientProvider{}, payments.NewMockProcessor(logger)
	case "mercadopago":
		mp, err := payments.NewMercadoPagoProcessor(cfg.MercadoPago.AccessToken, logger)
		if err != nil {
			logger.Warn("mercado pago processor not configured", zap.Error(err))
			return nil, nil
		}
		return payments.MercadoPagoClientProvider{}, mp
	case "paypal", "":
		if cfg.PayPal.ClientID == "" || cfg.PayPal.Secret == "" {
			logger.Warn("paypal processor not configured", zap.Error(payments.ErrMissingCredentials))
			return nil, nil
		}
		return payments.NewGatewayContext(), payments.NewPayPalProcessor(logger)
	default:
		logger.Warn("unknown payment processor", zap.String("processor", name))
		return nil, nil
	}
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
