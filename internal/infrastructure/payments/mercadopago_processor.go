package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoBaseURL = "https://api.mercadopago.com"

// MercadoPagoClientProvider hands out handles for the Mercado Pago processor.
// The SDK authenticates with the access token, so no PayPal credentials are
// needed; only the mode is carried.
type MercadoPagoClientProvider struct{}

var _ interfaces.IClientProvider = MercadoPagoClientProvider{}

func (MercadoPagoClientProvider) BuildClient(cfg entities.GatewayConfig) (entities.ClientHandle, error) {
	return entities.ClientHandle{Mode: cfg.Mode(), BaseURL: mercadoPagoBaseURL}, nil
}

// MercadoPagoProcessor runs the express flow over Mercado Pago Checkout Pro.
//
// A preference plays the role of the pending payment (its init point is the
// approval URL). On return Mercado Pago appends payment_id and preference_id;
// the callback maps them to PayerID and paymentId, and ExecutePayment captures
// the payment if it is only authorized.
type MercadoPagoProcessor struct {
	accessToken string
	logger      *zap.Logger

	once        sync.Once
	initErr     error
	payments    payment.Client
	preferences preference.Client
}

var _ interfaces.IPaymentProcessor = (*MercadoPagoProcessor)(nil)

func NewMercadoPagoProcessor(accessToken string, logger *zap.Logger) (*MercadoPagoProcessor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(accessToken) == "" {
		logger.Warn("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	return &MercadoPagoProcessor{accessToken: accessToken, logger: logger}, nil
}

func (p *MercadoPagoProcessor) Name() string { return "mercadopago" }

func (p *MercadoPagoProcessor) init() error {
	p.once.Do(func() {
		cfg, err := config.New(p.accessToken)
		if err != nil {
			p.initErr = err
			p.logger.Error("[payment][mercadopago] failed creating sdk config", zap.Error(err))
			return
		}
		p.payments = payment.NewClient(cfg)
		p.preferences = preference.NewClient(cfg)
		p.logger.Info("[payment][mercadopago] client initialized")
	})
	return p.initErr
}

func (p *MercadoPagoProcessor) CreatePayment(ctx context.Context, client entities.ClientHandle, req entities.PaymentRequest) (entities.ProcessorPayment, error) {
	if req.Payer.PaymentMethod == entities.PaymentMethodCreditCard {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusBadRequest,
			Name:       "UNSUPPORTED_PAYMENT_METHOD",
			Message:    "Mercado Pago only accepts tokenized cards.",
		}
	}
	if err := p.init(); err != nil {
		return entities.ProcessorPayment{}, err
	}

	payload, err := json.Marshal(toMercadoPagoPreference(req))
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	var prefReq preference.Request
	if err := json.Unmarshal(payload, &prefReq); err != nil {
		p.logger.Error("[payment][mercadopago] preference unmarshal failed", zap.Error(err))
		return entities.ProcessorPayment{}, err
	}

	p.logger.Debug("[payment][mercadopago] create start", zap.Int("payload_len", len(payload)))
	resp, err := p.preferences.Create(ctx, prefReq)
	if err != nil {
		p.logger.Warn("[payment][mercadopago] sdk create failed", zap.Error(err))
		return entities.ProcessorPayment{}, toMercadoPagoError(err)
	}

	var created struct {
		ID               string `json:"id"`
		InitPoint        string `json:"init_point"`
		SandboxInitPoint string `json:"sandbox_init_point"`
	}
	if err := roundTrip(resp, &created); err != nil {
		return entities.ProcessorPayment{}, err
	}

	approvalURL := created.InitPoint
	if client.Mode == entities.ProcessorModeSandbox && created.SandboxInitPoint != "" {
		approvalURL = created.SandboxInitPoint
	}
	p.logger.Debug("[payment][mercadopago] create success", zap.String("preference_id", created.ID))
	return entities.ProcessorPayment{ID: created.ID, State: "created", ApprovalURL: approvalURL}, nil
}

// GetPayment resolves numeric ids as payments and anything else as a preference.
func (p *MercadoPagoProcessor) GetPayment(ctx context.Context, _ entities.ClientHandle, paymentID string) (entities.ProcessorPayment, error) {
	if err := p.init(); err != nil {
		return entities.ProcessorPayment{}, err
	}

	if id, err := strconv.Atoi(paymentID); err == nil {
		resp, err := p.payments.Get(ctx, id)
		if err != nil {
			return entities.ProcessorPayment{}, toMercadoPagoError(err)
		}
		return entities.ProcessorPayment{ID: strconv.Itoa(resp.ID), State: resp.Status}, nil
	}

	resp, err := p.preferences.Get(ctx, paymentID)
	if err != nil {
		return entities.ProcessorPayment{}, toMercadoPagoError(err)
	}
	var pref struct {
		ID string `json:"id"`
	}
	if err := roundTrip(resp, &pref); err != nil {
		return entities.ProcessorPayment{}, err
	}
	return entities.ProcessorPayment{ID: pref.ID, State: "created"}, nil
}

// ExecutePayment confirms the payment made against the preference;
// exec.PayerID is Mercado Pago's payment id. Any payment id can be put on the
// return URL, so the payment must reference the order and cover its total
// before it is accepted.
func (p *MercadoPagoProcessor) ExecutePayment(ctx context.Context, _ entities.ClientHandle, exec entities.PaymentExecution) (entities.ProcessorPayment, error) {
	paymentID := exec.PaymentID
	id, err := strconv.Atoi(exec.PayerID)
	if err != nil {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusBadRequest,
			Name:       "INVALID_PAYMENT_ID",
			Message:    fmt.Sprintf("invalid mercado pago payment id %q", exec.PayerID),
		}
	}
	if err := p.init(); err != nil {
		return entities.ProcessorPayment{}, err
	}

	resp, err := p.payments.Get(ctx, id)
	if err != nil {
		return entities.ProcessorPayment{}, toMercadoPagoError(err)
	}
	if err := verifyMercadoPagoPayment(exec, resp.ID, resp.ExternalReference, resp.TransactionAmount, resp.CurrencyID); err != nil {
		p.logger.Warn("[payment][mercadopago] payment does not settle order",
			zap.String("preference_id", paymentID), zap.Int("payment_id", resp.ID), zap.String("order_id", exec.InvoiceNumber), zap.Error(err))
		return entities.ProcessorPayment{}, err
	}
	if resp.Status == "authorized" {
		resp, err = p.payments.Capture(ctx, id)
		if err != nil {
			return entities.ProcessorPayment{}, toMercadoPagoError(err)
		}
	}
	if resp.Status != "approved" {
		return entities.ProcessorPayment{}, &entities.ProcessorError{
			StatusCode: http.StatusConflict,
			Name:       "PAYMENT_NOT_APPROVED",
			Message:    fmt.Sprintf("payment %d is %s", resp.ID, resp.Status),
		}
	}
	p.logger.Debug("[payment][mercadopago] execute success", zap.String("preference_id", paymentID), zap.Int("payment_id", resp.ID))
	return entities.ProcessorPayment{ID: paymentID, State: resp.Status}, nil
}

// verifyMercadoPagoPayment checks that the payment was made for the order
// being settled and for its full amount.
func verifyMercadoPagoPayment(exec entities.PaymentExecution, id int, externalReference string, amount float64, currency string) error {
	mismatch := func(msg string) error {
		return &entities.ProcessorError{
			StatusCode: http.StatusConflict,
			Name:       "PAYMENT_MISMATCH",
			Message:    fmt.Sprintf("payment %d %s", id, msg),
		}
	}
	if externalReference == "" || externalReference != exec.InvoiceNumber {
		return mismatch(fmt.Sprintf("belongs to order %q, not %q", externalReference, exec.InvoiceNumber))
	}
	if math.Abs(amount-exec.Total) >= 0.005 {
		return mismatch(fmt.Sprintf("amount %.2f does not match order total %.2f", amount, exec.Total))
	}
	if currency != "" && exec.Currency != "" && !strings.EqualFold(currency, exec.Currency) {
		return mismatch(fmt.Sprintf("currency %s does not match %s", currency, exec.Currency))
	}
	return nil
}

type mercadoPagoPreference struct {
	Items             []mercadoPagoItem     `json:"items"`
	ExternalReference string                `json:"external_reference,omitempty"`
	StatementDesc     string                `json:"statement_descriptor,omitempty"`
	BackURLs          *mercadoPagoBackURLs  `json:"back_urls,omitempty"`
	Shipments         *mercadoPagoShipments `json:"shipments,omitempty"`
}

type mercadoPagoItem struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	CurrencyID  string  `json:"currency_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type mercadoPagoBackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type mercadoPagoShipments struct {
	Cost float64 `json:"cost"`
}

func toMercadoPagoPreference(req entities.PaymentRequest) mercadoPagoPreference {
	var out mercadoPagoPreference
	for _, t := range req.Transactions {
		out.ExternalReference = t.InvoiceNumber
		out.StatementDesc = t.Description
		for _, it := range t.ItemList.Items {
			out.Items = append(out.Items, mercadoPagoItem{
				ID:          it.Description,
				Title:       it.Name,
				CurrencyID:  it.Currency,
				Quantity:    it.Quantity,
				UnitPrice:   it.Price + it.Tax,
			})
		}
		if t.Amount.Details.Shipping > 0 {
			out.Shipments = &mercadoPagoShipments{Cost: t.Amount.Details.Shipping}
		}
	}
	if req.RedirectURLs != nil {
		out.BackURLs = &mercadoPagoBackURLs{
			Success: req.RedirectURLs.ReturnURL,
			Failure: req.RedirectURLs.CancelURL,
			Pending: req.RedirectURLs.ReturnURL,
		}
	}
	return out
}

// toMercadoPagoError keeps the SDK's error text; the SDK reports API
// failures as JSON bodies like {"message":..,"error":..,"status":..}.
func toMercadoPagoError(err error) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Status  int    `json:"status"`
	}
	msg := err.Error()
	if i := strings.Index(msg, "{"); i >= 0 && json.Unmarshal([]byte(msg[i:]), &body) == nil && body.Error != "" {
		return &entities.ProcessorError{
			StatusCode: body.Status,
			Name:       strings.ToUpper(body.Error),
			Message:    body.Message,
			Data:       []byte(msg[i:]),
		}
	}
	return err
}

func roundTrip(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
