package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paypal_checkout/internal/adapter/http/handlers/mocks"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const directBody = `{
	"card": {"type":"visa","number":"4417119669820331","expire_month":11,"expire_year":2030,"cvv2":"874","first_name":"Betsy","last_name":"Buyer"},
	"order": {"id":"order-1","currency":"USD","total":0.99,"total_price":0.99,"items":[{"display_name":"Sticker","sku":"STK","quantity":1,"price":0.99}]}
}`

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout/direct", h.ChargeDirect)
	r.POST("/v1/checkout/express", h.StartExpress)
	r.GET("/v1/checkout/express/callback/success", h.CallbackSuccess)
	r.GET("/v1/checkout/express/callback/cancel", h.CallbackCancel)
	r.GET("/v1/transactions/:id", h.GetTransaction)
	r.GET("/v1/orders/:order_id/transactions", h.ListOrderTransactions)
	r.GET("/v1/orders/:order_id/transactions/latest", h.GetLatestOrderTransaction)
	return r
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCheckoutHandler_ChargeDirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		w := doRequest(r, http.MethodPost, "/v1/checkout/direct", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		body := `{"card":{"type":"visa","number":"4417119669820331","expire_month":11,"expire_year":2030},"order":{"id":"order-1"}}`
		w := doRequest(r, http.MethodPost, "/v1/checkout/direct", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("card rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().ChargeDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrUnsupportedBrand)

		w := doRequest(r, http.MethodPost, "/v1/checkout/direct", directBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "CARD_NOT_SUPPORTED" || body["message"] != "Credit Card is not supported." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("processor declined keeps transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		gwErr := &usecase.GatewayError{Code: usecase.GatewayErrorProcessor, Name: "INTERNAL_SERVICE_ERROR", Message: "INTERNAL_SERVICE_ERROR: Paypal payment Failed."}
		tx := entities.Transaction{ID: "tx-1", OrderID: "order-1", Status: entities.TransactionStatusFailed, Detail: gwErr.Message}
		uc.EXPECT().ChargeDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(tx, gwErr)

		w := doRequest(r, http.MethodPost, "/v1/checkout/direct", directBody)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decodeBody(t, w)
		txBody, ok := body["transaction"].(map[string]any)
		if body["code"] != "PAYMENT_DECLINED" || !ok || txBody["status"] != "failed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().ChargeDirect(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, card entities.CreditCard, order entities.OrderSnapshot) (entities.Transaction, error) {
				if card.Brand != entities.CardBrandVisa || card.CVV != "874" {
					t.Fatalf("unexpected card: %+v", card)
				}
				if order.ID != "order-1" || order.Total != 0.99 || len(order.Items) != 1 {
					t.Fatalf("unexpected order: %+v", order)
				}
				return entities.Transaction{ID: "tx-1", OrderID: "order-1", PaymentID: "PAY-1", Status: entities.TransactionStatusCompleted, Detail: "Success"}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/checkout/direct", directBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["transaction_id"] != "tx-1" || body["detail"] != "Success" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_StartExpress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns approval url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().StartExpress(gomock.Any(), gomock.Any()).Return(entities.Transaction{
			ID: "tx-1", OrderID: "order-1", Flow: entities.CheckoutFlowExpress, PaymentID: "PAY-1",
			Status: entities.TransactionStatusPending, ApprovalURL: "https://paypal.test/approve",
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/checkout/express", `{"order":{"id":"order-1","total":10}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["approval_url"] != "https://paypal.test/approve" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("processor unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		gwErr := &usecase.GatewayError{Code: usecase.GatewayErrorUnexpected, Message: "connection refused", Err: errors.New("connection refused")}
		uc.EXPECT().StartExpress(gomock.Any(), gomock.Any()).Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusFailed}, gwErr)

		w := doRequest(r, http.MethodPost, "/v1/checkout/express", `{"order":{"id":"order-1","total":10}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Callbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paypal success callback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CompleteExpress(gomock.Any(), "tx-1", usecase.CallbackData{PaymentID: "PAY-1", PayerID: "PAYER-1"}).
			Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusCompleted, Detail: "Success"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/success?tx=tx-1&paymentId=PAY-1&token=EC-1&PayerID=PAYER-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mercadopago success callback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CompleteExpress(gomock.Any(), "tx-2", usecase.CallbackData{PaymentID: "pref-1", PayerID: "123"}).
			Return(entities.Transaction{ID: "tx-2", Status: entities.TransactionStatusCompleted}, nil)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/success?tx=tx-2&preference_id=pref-1&payment_id=123&status=approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid callback data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CompleteExpress(gomock.Any(), "tx-1", gomock.Any()).Return(entities.Transaction{}, usecase.ErrInvalidCallbackData)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/success?tx=tx-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("callback mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CompleteExpress(gomock.Any(), "tx-1", gomock.Any()).
			Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusPending}, usecase.ErrCallbackMismatch)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/success?tx=tx-1&paymentId=OTHER&PayerID=P", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CancelExpress(gomock.Any(), "tx-1", "EC-1").
			Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusFailed, Detail: "Payment canceled. Ref: PAY-1"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/cancel?tx=tx-1&token=EC-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["detail"] != "Payment canceled. Ref: PAY-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel unknown transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().CancelExpress(gomock.Any(), "nope", "EC-1").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/cancel?tx=nope&token=EC-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("cancel with foreign reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		pending := entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusPending}
		uc.EXPECT().CancelExpress(gomock.Any(), "tx-1", "EC-OTHER").Return(pending, usecase.ErrCallbackMismatch)

		w := doRequest(r, http.MethodGet, "/v1/checkout/express/callback/cancel?tx=tx-1&token=EC-OTHER", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Transactions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Now().UTC()

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().GetTransaction(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusCompleted}, nil)

		w := doRequest(r, http.MethodGet, "/v1/transactions/tx-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Transaction{{ID: "a"}, {ID: "b"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders/order-1/transactions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Transaction{
			{ID: "old", CreatedAt: now.Add(-time.Hour)},
			{ID: "new", CreatedAt: now},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders/order-1/transactions/latest", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["transaction_id"] != "new" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("latest not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc, nil))

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders/order-1/transactions/latest", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapCheckoutError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid order", usecase.ErrInvalidOrder, http.StatusBadRequest, "INVALID_REQUEST"},
		{"card not set", usecase.ErrCardNotSet, http.StatusUnprocessableEntity, "CARD_NOT_SET"},
		{"card invalid", usecase.ErrInvalidNumber, http.StatusUnprocessableEntity, "CARD_INVALID"},
		{"not pending", usecase.ErrTransactionNotPending, http.StatusConflict, "TRANSACTION_NOT_PENDING"},
		{"flow mismatch", usecase.ErrTransactionFlowMismatch, http.StatusConflict, "TRANSACTION_FLOW_MISMATCH"},
		{"processor not configured", &usecase.GatewayError{Code: usecase.GatewayErrorUnexpected, Err: usecase.ErrProcessorNotConfigured}, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"timeout", &usecase.GatewayError{Code: usecase.GatewayErrorUnexpected, Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "PAYMENT_PROVIDER_TIMEOUT"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapCheckoutError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
