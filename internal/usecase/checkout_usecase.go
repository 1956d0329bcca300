package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrTransactionNotPending   = errors.New("transaction is not pending")
	ErrTransactionFlowMismatch = errors.New("transaction does not belong to the express flow")
	ErrCallbackMismatch        = errors.New("callback payment id does not match transaction")
	ErrInvalidOrder            = errors.New("invalid order")
	ErrInvalidTransactionID    = errors.New("invalid transaction id")
	ErrInvalidOrderID          = errors.New("invalid order_id")
	ErrProcessorNotConfigured  = errors.New("payment processor not configured")
	ErrRepositoryNotConfigured = errors.New("transaction repository not configured")
)

const noPaymentRequiredDetail = "No payment required"

var tracer = otel.Tracer("paypal_checkout/usecase")

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/mock_checkout_usecase.go -package=mocks

// ICheckoutUseCase drives charge attempts for the HTTP layer.
//
// Every attempt gets a fresh gateway and a persisted Transaction. When a
// gateway fails, the Transaction is still stored and returned along with the
// error, so the caller can read the final status and detail.
type ICheckoutUseCase interface {
	ChargeDirect(ctx context.Context, card entities.CreditCard, order entities.OrderSnapshot) (entities.Transaction, error)
	StartExpress(ctx context.Context, order entities.OrderSnapshot) (entities.Transaction, error)
	CompleteExpress(ctx context.Context, transactionID string, callback any) (entities.Transaction, error)
	CancelExpress(ctx context.Context, transactionID, ref string) (entities.Transaction, error)
	GetTransaction(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
}

type CheckoutUseCase struct {
	cfg       entities.GatewayConfig
	clients   interfaces.IClientProvider
	processor interfaces.IPaymentProcessor
	repo      interfaces.ITransactionRepository
	logger    *zap.Logger
	now       func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(cfg entities.GatewayConfig, clients interfaces.IClientProvider, processor interfaces.IPaymentProcessor, repo interfaces.ITransactionRepository, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{
		cfg:       cfg,
		clients:   clients,
		processor: processor,
		repo:      repo,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) ChargeDirect(ctx context.Context, card entities.CreditCard, order entities.OrderSnapshot) (_ entities.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "checkout.ChargeDirect", trace.WithAttributes(attribute.String("order.id", order.ID)))
	defer func() { endSpan(span, err) }()

	u.logger.Info("[checkout][usecase] direct start", zap.String("order_id", order.ID), zap.String("card", card.Masked()))
	if err := u.validateOrder(order); err != nil {
		return entities.Transaction{}, err
	}

	gw := NewDirectChargeGateway(u.cfg, u.clients, u.processor, u.logger).
		SetCreditCard(card.Brand, card.Number, card.ExpireMonth, card.ExpireYear, card.CVV, card.FirstName, card.LastName)
	if err := gw.OnCheckout(order); err != nil {
		u.logger.Info("[checkout][usecase] direct checkout rejected", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Transaction{}, err
	}

	tx, err := u.newTransaction(order, entities.CheckoutFlowDirect)
	if err != nil {
		return entities.Transaction{}, err
	}
	if isZeroTotal(order) {
		return u.completeWithoutPayment(ctx, tx)
	}

	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()
	chargeErr := gw.OnCharge(callCtx, order)
	tx.Apply(gw.Result())

	return u.persist(ctx, tx, chargeErr, u.repo.Create)
}

func (u *CheckoutUseCase) StartExpress(ctx context.Context, order entities.OrderSnapshot) (_ entities.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "checkout.StartExpress", trace.WithAttributes(attribute.String("order.id", order.ID)))
	defer func() { endSpan(span, err) }()

	u.logger.Info("[checkout][usecase] express start", zap.String("order_id", order.ID))
	if err := u.validateOrder(order); err != nil {
		return entities.Transaction{}, err
	}

	tx, err := u.newTransaction(order, entities.CheckoutFlowExpress)
	if err != nil {
		return entities.Transaction{}, err
	}
	if isZeroTotal(order) {
		return u.completeWithoutPayment(ctx, tx)
	}

	gw := NewRedirectChargeGateway(u.cfg, u.clients, u.processor, u.logger).
		SetRedirectURLs(withTransactionRef(u.cfg.SuccessURL, tx.ID), withTransactionRef(u.cfg.CancelURL, tx.ID))

	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()
	chargeErr := gw.OnCharge(callCtx, order)
	tx.PaymentID = gw.PaymentID()
	tx.Apply(gw.Result())

	return u.persist(ctx, tx, chargeErr, u.repo.Create)
}

func (u *CheckoutUseCase) CompleteExpress(ctx context.Context, transactionID string, callback any) (_ entities.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "checkout.CompleteExpress", trace.WithAttributes(attribute.String("transaction.id", transactionID)))
	defer func() { endSpan(span, err) }()

	u.logger.Info("[checkout][usecase] express callback start", zap.String("transaction_id", transactionID))
	cb, err := ParseCallbackData(callback)
	if err != nil {
		return entities.Transaction{}, err
	}

	tx, err := u.loadExpress(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	switch tx.Status {
	case entities.TransactionStatusCompleted:
		// Duplicate callback for an executed payment.
		u.logger.Info("[checkout][usecase] express callback already completed", zap.String("transaction_id", tx.ID))
		return tx, nil
	case entities.TransactionStatusFailed:
		return tx, ErrTransactionNotPending
	}
	if tx.PaymentID != "" && tx.PaymentID != cb.PaymentID {
		u.logger.Warn("[checkout][usecase] express callback mismatch", zap.String("transaction_id", tx.ID), zap.String("payment_id", cb.PaymentID))
		return tx, ErrCallbackMismatch
	}

	order, err := tx.Order()
	if err != nil {
		return tx, err
	}

	gw := NewRedirectChargeGateway(u.cfg, u.clients, u.processor, u.logger)
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()
	execErr := gw.OnCallbackSuccess(callCtx, order, cb)
	tx.Apply(gw.Result())

	return u.persist(ctx, tx, execErr, u.repo.Update)
}

// CancelExpress records the customer leaving the processor's page. ref is
// what the cancel URL carried back: the payment id, or the approval token.
func (u *CheckoutUseCase) CancelExpress(ctx context.Context, transactionID, ref string) (_ entities.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "checkout.CancelExpress", trace.WithAttributes(attribute.String("transaction.id", transactionID)))
	defer func() { endSpan(span, err) }()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entities.Transaction{}, ErrInvalidCallbackData
	}

	tx, err := u.loadExpress(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.Status != entities.TransactionStatusPending {
		return tx, ErrTransactionNotPending
	}
	if !matchesCancelRef(tx, ref) {
		u.logger.Warn("[checkout][usecase] express cancel mismatch", zap.String("transaction_id", tx.ID), zap.String("ref", ref))
		return tx, ErrCallbackMismatch
	}
	order, err := tx.Order()
	if err != nil {
		return tx, err
	}

	gw := NewRedirectChargeGateway(u.cfg, u.clients, u.processor, u.logger)
	gw.OnCallbackFail(order, ref)
	tx.Apply(gw.Result())

	return u.persist(ctx, tx, nil, u.repo.Update)
}

func (u *CheckoutUseCase) GetTransaction(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if u.repo == nil {
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}

	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *CheckoutUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if u.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *CheckoutUseCase) validateOrder(order entities.OrderSnapshot) error {
	if strings.TrimSpace(order.ID) == "" || order.Total < 0 {
		return ErrInvalidOrder
	}
	if u.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return nil
}

func (u *CheckoutUseCase) newTransaction(order entities.OrderSnapshot, flow entities.CheckoutFlow) (entities.Transaction, error) {
	raw, err := json.Marshal(order)
	if err != nil {
		return entities.Transaction{}, err
	}
	processor := ""
	if u.processor != nil {
		processor = u.processor.Name()
	}
	now := u.now()
	return entities.Transaction{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Flow:      flow,
		Processor: processor,
		Status:    entities.TransactionStatusPending,
		OrderRaw:  raw,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *CheckoutUseCase) loadExpress(ctx context.Context, transactionID string) (entities.Transaction, error) {
	tx, err := u.GetTransaction(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.Flow != entities.CheckoutFlowExpress {
		return entities.Transaction{}, ErrTransactionFlowMismatch
	}
	return tx, nil
}

func (u *CheckoutUseCase) completeWithoutPayment(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	u.logger.Info("[checkout][usecase] zero total, skipping processor", zap.String("order_id", tx.OrderID))
	tx.Apply(entities.TransactionResult{StatusCode: entities.TransactionStatusCompleted, Detail: noPaymentRequiredDetail})
	return u.persist(ctx, tx, nil, u.repo.Create)
}

// persist stores tx whatever the gateway outcome was. The gateway error wins
// over a storage error so callers still branch on the charge failure.
func (u *CheckoutUseCase) persist(ctx context.Context, tx entities.Transaction, gatewayErr error, store func(context.Context, entities.Transaction) (entities.Transaction, error)) (entities.Transaction, error) {
	tx.UpdatedAt = u.now()
	log := u.logger.With(zap.String("transaction_id", tx.ID), zap.String("order_id", tx.OrderID), zap.String("status", string(tx.Status)))

	saved, err := store(ctx, tx)
	if errors.Is(err, interfaces.ErrTransactionSettled) {
		return u.reloadSettled(ctx, tx.ID, gatewayErr)
	}
	if err != nil {
		log.Error("[checkout][usecase] transaction store failed", zap.Error(err))
		if gatewayErr != nil {
			return tx, gatewayErr
		}
		return tx, err
	}
	if gatewayErr != nil {
		log.Warn("[checkout][usecase] attempt failed", zap.Error(gatewayErr))
		return saved, gatewayErr
	}
	log.Info("[checkout][usecase] attempt stored")
	return saved, nil
}

// reloadSettled returns the record a concurrent callback stored first. A
// completed one is a success whatever this request's own outcome was.
func (u *CheckoutUseCase) reloadSettled(ctx context.Context, id string, gatewayErr error) (entities.Transaction, error) {
	stored, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if stored.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	u.logger.Info("[checkout][usecase] transaction settled concurrently",
		zap.String("transaction_id", id), zap.String("status", string(stored.Status)), zap.NamedError("discarded", gatewayErr))
	if stored.Status == entities.TransactionStatusCompleted {
		return stored, nil
	}
	return stored, ErrTransactionNotPending
}

// matchesCancelRef accepts the processor payment id or the token PayPal
// puts on its approval URL and echoes on cancel.
func matchesCancelRef(tx entities.Transaction, ref string) bool {
	if tx.PaymentID != "" && ref == tx.PaymentID {
		return true
	}
	if tx.ApprovalURL == "" {
		return false
	}
	u, err := url.Parse(tx.ApprovalURL)
	if err != nil {
		return false
	}
	token := u.Query().Get("token")
	return token != "" && ref == token
}

func (u *CheckoutUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.cfg.Timeout)
}

func isZeroTotal(order entities.OrderSnapshot) bool {
	return order.Total == 0
}

// withTransactionRef adds tx=<id> to a callback URL.
func withTransactionRef(raw, transactionID string) string {
	if raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("tx", transactionID)
	u.RawQuery = q.Encode()
	return u.String()
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
