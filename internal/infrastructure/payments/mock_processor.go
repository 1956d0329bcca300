package payments

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockPayerID is the payer every mock express payment is approved by.
const MockPayerID = "MOCKPAYER"

// MockProcessor is an in-memory processor for local runs
// (PAYMENT_GATEWAY_MOCK / PAYMENT_PROCESSOR=mock). Card payments are approved
// on create; express payments wait for ExecutePayment.
//
// There is no approval page: the approval URL is the request's return URL
// with paymentId and PayerID already set, so following it completes the
// express flow.
type MockProcessor struct {
	logger   *zap.Logger
	payments sync.Map
}

var _ interfaces.IPaymentProcessor = (*MockProcessor)(nil)

func NewMockProcessor(logger *zap.Logger) *MockProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[payment][mock] mock mode enabled")
	return &MockProcessor{logger: logger}
}

func (p *MockProcessor) Name() string { return "mock" }

func (p *MockProcessor) CreatePayment(_ context.Context, _ entities.ClientHandle, req entities.PaymentRequest) (entities.ProcessorPayment, error) {
	id := "PAYID-MOCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:20]

	payment := entities.ProcessorPayment{ID: id, State: "created"}
	switch req.Payer.PaymentMethod {
	case entities.PaymentMethodCreditCard:
		payment.State = "approved"
	default:
		approvalURL, err := mockApprovalURL(req.RedirectURLs, id)
		if err != nil {
			return entities.ProcessorPayment{}, err
		}
		payment.ApprovalURL = approvalURL
	}
	p.payments.Store(id, payment)
	p.logger.Info("[payment][mock] create success", zap.String("payment_id", id), zap.String("state", payment.State))
	return payment, nil
}

func (p *MockProcessor) GetPayment(_ context.Context, _ entities.ClientHandle, paymentID string) (entities.ProcessorPayment, error) {
	v, ok := p.payments.Load(paymentID)
	if !ok {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusNotFound,
			Name:       "INVALID_RESOURCE_ID",
			Message:    "Requested resource ID was not found.",
		}
	}
	return v.(entities.ProcessorPayment), nil
}

func (p *MockProcessor) ExecutePayment(ctx context.Context, client entities.ClientHandle, exec entities.PaymentExecution) (entities.ProcessorPayment, error) {
	paymentID := exec.PaymentID
	payment, err := p.GetPayment(ctx, client, paymentID)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	if strings.TrimSpace(exec.PayerID) == "" {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusBadRequest,
			Name:       "VALIDATION_ERROR",
			Message:    "Invalid request - see details.",
		}
	}
	if payment.State == "approved" {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusBadRequest,
			Name:       "PAYMENT_ALREADY_DONE",
			Message:    "Payment has been done already for this cart.",
		}
	}
	payment.State = "approved"
	p.payments.Store(paymentID, payment)
	p.logger.Info("[payment][mock] execute success", zap.String("payment_id", paymentID))
	return payment, nil
}

func mockApprovalURL(redirects *entities.RedirectURLs, paymentID string) (string, error) {
	invalid := &entities.ProcessorError{
		StatusCode: http.StatusBadRequest,
		Name:       "VALIDATION_ERROR",
		Message:    "redirect_urls.return_url is required.",
	}
	if redirects == nil || redirects.ReturnURL == "" {
		return "", invalid
	}
	u, err := url.Parse(redirects.ReturnURL)
	if err != nil {
		return "", invalid
	}
	q := u.Query()
	q.Set("paymentId", paymentID)
	q.Set("PayerID", MockPayerID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// MockClientProvider hands out credential-less handles for the mock processor.
type MockClientProvider struct{}

var _ interfaces.IClientProvider = MockClientProvider{}

func (MockClientProvider) BuildClient(cfg entities.GatewayConfig) (entities.ClientHandle, error) {
	return entities.ClientHandle{ClientID: cfg.ClientID, Mode: cfg.Mode(), BaseURL: "mock://processor"}, nil
}

// IsMockEnabled reports whether one of the mock switches is on.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYPAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
