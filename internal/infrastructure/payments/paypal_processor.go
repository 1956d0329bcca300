package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const payPalPaymentsPath = "/v1/payments/payment"

var ErrPayPalClientNotConfigured = errors.New("paypal client not configured")

// PayPalProcessor talks to the PayPal REST v1 payments API.
type PayPalProcessor struct {
	logger *zap.Logger
}

var _ interfaces.IPaymentProcessor = (*PayPalProcessor)(nil)

func NewPayPalProcessor(logger *zap.Logger) *PayPalProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayPalProcessor{logger: logger}
}

func (p *PayPalProcessor) Name() string { return "paypal" }

func (p *PayPalProcessor) CreatePayment(ctx context.Context, client entities.ClientHandle, req entities.PaymentRequest) (entities.ProcessorPayment, error) {
	p.logger.Debug("[payment][paypal] create start", zap.String("intent", req.Intent), zap.String("method", req.Payer.PaymentMethod))

	var out payPalPayment
	if err := p.do(ctx, client, http.MethodPost, payPalPaymentsPath, toPayPalPayment(req), &out); err != nil {
		return entities.ProcessorPayment{}, err
	}
	p.logger.Debug("[payment][paypal] create success", zap.String("payment_id", out.ID), zap.String("state", out.State))
	return out.toEntity(), nil
}

func (p *PayPalProcessor) GetPayment(ctx context.Context, client entities.ClientHandle, paymentID string) (entities.ProcessorPayment, error) {
	var out payPalPayment
	if err := p.do(ctx, client, http.MethodGet, payPalPaymentsPath+"/"+url.PathEscape(paymentID), nil, &out); err != nil {
		return entities.ProcessorPayment{}, err
	}
	return out.toEntity(), nil
}

// ExecutePayment relies on PayPal binding the payer approval to the payment
// id; the amount was fixed when the payment was created.
func (p *PayPalProcessor) ExecutePayment(ctx context.Context, client entities.ClientHandle, exec entities.PaymentExecution) (entities.ProcessorPayment, error) {
	p.logger.Debug("[payment][paypal] execute start", zap.String("payment_id", exec.PaymentID))

	var out payPalPayment
	body := payPalExecution{PayerID: exec.PayerID}
	if err := p.do(ctx, client, http.MethodPost, payPalPaymentsPath+"/"+url.PathEscape(exec.PaymentID)+"/execute", body, &out); err != nil {
		return entities.ProcessorPayment{}, err
	}
	p.logger.Debug("[payment][paypal] execute success", zap.String("payment_id", out.ID), zap.String("state", out.State))
	return out.toEntity(), nil
}

func (p *PayPalProcessor) do(ctx context.Context, client entities.ClientHandle, method, path string, in, out any) error {
	if client.HTTP == nil || client.BaseURL == "" {
		return ErrPayPalClientNotConfigured
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, client.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("PayPal-Request-Id", uuid.NewString())
	}

	resp, err := client.HTTP.Do(req)
	if err != nil {
		// Token endpoint rejections surface here wrapped in *url.Error.
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return newPayPalError(retrieveErr.Response.StatusCode, retrieveErr.Body)
		}
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Warn("[payment][paypal] request rejected", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
		return newPayPalError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// newPayPalError decodes PayPal's {name, message} error body.
func newPayPalError(status int, data []byte) *entities.ProcessorError {
	var body struct {
		Name    string `json:"name"`
		Message string `json:"message"`
		// Identity errors use the OAuth2 shape.
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(data, &body)

	name := body.Name
	msg := body.Message
	if name == "" {
		name = body.Error
		msg = body.ErrorDescription
	}
	if name == "" {
		name = http.StatusText(status)
	}
	return &entities.ProcessorError{StatusCode: status, Name: name, Message: msg, Data: data}
}

type payPalPayment struct {
	ID           string              `json:"id,omitempty"`
	Intent       string              `json:"intent"`
	State        string              `json:"state,omitempty"`
	Payer        payPalPayer         `json:"payer"`
	Transactions []payPalTransaction `json:"transactions"`
	RedirectURLs *payPalRedirectURLs `json:"redirect_urls,omitempty"`
	Links        []payPalLink        `json:"links,omitempty"`
}

type payPalPayer struct {
	PaymentMethod      string                    `json:"payment_method"`
	FundingInstruments []payPalFundingInstrument `json:"funding_instruments,omitempty"`
}

type payPalFundingInstrument struct {
	CreditCard *payPalCreditCard `json:"credit_card,omitempty"`
}

type payPalCreditCard struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	ExpireMonth int    `json:"expire_month"`
	ExpireYear  int    `json:"expire_year"`
	CVV2        string `json:"cvv2,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

type payPalTransaction struct {
	Amount        payPalAmount   `json:"amount"`
	ItemList      payPalItemList `json:"item_list"`
	Description   string         `json:"description,omitempty"`
	InvoiceNumber string         `json:"invoice_number,omitempty"`
}

type payPalAmount struct {
	Currency string        `json:"currency"`
	Total    string        `json:"total"`
	Details  payPalDetails `json:"details"`
}

type payPalDetails struct {
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Subtotal string `json:"subtotal"`
}

type payPalItemList struct {
	Items []payPalItem `json:"items"`
}

type payPalItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Currency    string `json:"currency"`
	Quantity    string `json:"quantity"`
	Tax         string `json:"tax"`
	Price       string `json:"price"`
}

type payPalRedirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type payPalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type payPalExecution struct {
	PayerID string `json:"payer_id"`
}

func (p payPalPayment) toEntity() entities.ProcessorPayment {
	out := entities.ProcessorPayment{ID: p.ID, State: p.State}
	for _, l := range p.Links {
		if l.Rel == "approval_url" {
			out.ApprovalURL = l.Href
			break
		}
	}
	return out
}

func toPayPalPayment(req entities.PaymentRequest) payPalPayment {
	out := payPalPayment{
		Intent: req.Intent,
		Payer:  payPalPayer{PaymentMethod: req.Payer.PaymentMethod},
	}
	for _, fi := range req.Payer.FundingInstruments {
		if fi.CreditCard == nil {
			continue
		}
		c := fi.CreditCard
		out.Payer.FundingInstruments = append(out.Payer.FundingInstruments, payPalFundingInstrument{
			CreditCard: &payPalCreditCard{
				Number:      c.Number,
				Type:        string(c.Brand),
				ExpireMonth: c.ExpireMonth,
				ExpireYear:  c.ExpireYear,
				CVV2:        c.CVV,
				FirstName:   c.FirstName,
				LastName:    c.LastName,
			},
		})
	}
	for _, t := range req.Transactions {
		items := make([]payPalItem, 0, len(t.ItemList.Items))
		for _, it := range t.ItemList.Items {
			items = append(items, payPalItem{
				Name:        it.Name,
				Description: it.Description,
				Currency:    it.Currency,
				Quantity:    strconv.Itoa(it.Quantity),
				Tax:         money(it.Tax, it.Currency),
				Price:       money(it.Price, it.Currency),
			})
		}
		out.Transactions = append(out.Transactions, payPalTransaction{
			Amount: payPalAmount{
				Currency: t.Amount.Currency,
				Total:    money(t.Amount.Total, t.Amount.Currency),
				Details: payPalDetails{
					Shipping: money(t.Amount.Details.Shipping, t.Amount.Currency),
					Tax:      money(t.Amount.Details.Tax, t.Amount.Currency),
					Subtotal: money(t.Amount.Details.Subtotal, t.Amount.Currency),
				},
			},
			ItemList:      payPalItemList{Items: items},
			Description:   t.Description,
			InvoiceNumber: t.InvoiceNumber,
		})
	}
	if req.RedirectURLs != nil {
		out.RedirectURLs = &payPalRedirectURLs{ReturnURL: req.RedirectURLs.ReturnURL, CancelURL: req.RedirectURLs.CancelURL}
	}
	return out
}

// zeroDecimalCurrencies are sent without a fractional part; PayPal rejects
// "1500.00" for them.
var zeroDecimalCurrencies = map[string]bool{
	"HUF": true,
	"JPY": true,
	"TWD": true,
}

// money renders an amount in PayPal's decimal string format for currency.
func money(v float64, currency string) string {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return fmt.Sprintf("%.2f", v)
}
