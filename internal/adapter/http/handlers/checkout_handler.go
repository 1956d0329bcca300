package handlers

import (
	"context"
	"errors"
	"net/http"

	"paypal_checkout/internal/adapter/http/dto/request"
	"paypal_checkout/internal/adapter/http/dto/response"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase"
	"paypal_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// CheckoutHandler exposes the direct and express checkout flows.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutHandler{usecase: uc, logger: logger}
}

// checkoutFailure is returned when an attempt was recorded but did not succeed.
type checkoutFailure struct {
	pkg.HTTPError
	Transaction response.TransactionResponse `json:"transaction"`
}

// ChargeDirect godoc
// @Summary      Charge a credit card
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.DirectCheckoutRequest  true  "card and order"
// @Success      201   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /checkout/direct [post]
func (h *CheckoutHandler) ChargeDirect(c *gin.Context) {
	var req request.DirectCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("[checkout][handler] direct invalid payload", zap.Error(err))
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	order, err := req.Order.ToEntity()
	if err != nil {
		h.writeError(c, err, entities.Transaction{})
		return
	}

	h.logger.Info("[checkout][handler] direct start", zap.String("order_id", order.ID))
	tx, err := h.usecase.ChargeDirect(c.Request.Context(), req.Card.ToEntity(), order)
	if err != nil {
		h.writeError(c, err, tx)
		return
	}
	h.logger.Info("[checkout][handler] direct success", zap.String("transaction_id", tx.ID), zap.String("status", string(tx.Status)))
	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// StartExpress godoc
// @Summary      Start an express checkout
// @Description  Creates a pending payment; redirect the customer to approval_url.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.ExpressCheckoutRequest  true  "order"
// @Success      201   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Router       /checkout/express [post]
func (h *CheckoutHandler) StartExpress(c *gin.Context) {
	var req request.ExpressCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("[checkout][handler] express invalid payload", zap.Error(err))
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	order, err := req.Order.ToEntity()
	if err != nil {
		h.writeError(c, err, entities.Transaction{})
		return
	}

	tx, err := h.usecase.StartExpress(c.Request.Context(), order)
	if err != nil {
		h.writeError(c, err, tx)
		return
	}
	h.logger.Info("[checkout][handler] express pending", zap.String("transaction_id", tx.ID), zap.String("payment_id", tx.PaymentID))
	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// CallbackSuccess godoc
// @Summary      Express checkout return URL
// @Tags         checkout
// @Produce      json
// @Param        tx             query     string  true   "transaction id"
// @Param        paymentId      query     string  false  "PayPal payment id"
// @Param        PayerID        query     string  false  "PayPal payer id"
// @Param        preference_id  query     string  false  "Mercado Pago preference id"
// @Param        payment_id     query     string  false  "Mercado Pago payment id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /checkout/express/callback/success [get]
func (h *CheckoutHandler) CallbackSuccess(c *gin.Context) {
	var q request.CallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.CompleteExpress(c.Request.Context(), q.TransactionID, q.ToCallbackData())
	if err != nil {
		h.writeError(c, err, tx)
		return
	}
	h.logger.Info("[checkout][handler] express completed", zap.String("transaction_id", tx.ID), zap.String("status", string(tx.Status)))
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// CallbackCancel godoc
// @Summary      Express checkout cancel URL
// @Tags         checkout
// @Produce      json
// @Param        tx             query     string  true   "transaction id"
// @Param        token          query     string  false  "PayPal approval token"
// @Param        paymentId      query     string  false  "processor payment id"
// @Param        preference_id  query     string  false  "Mercado Pago preference id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /checkout/express/callback/cancel [get]
func (h *CheckoutHandler) CallbackCancel(c *gin.Context) {
	var q request.CallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	h.logger.Info("[checkout][handler] express cancel", zap.String("transaction_id", q.TransactionID), zap.String("ref", q.Reference()))
	tx, err := h.usecase.CancelExpress(c.Request.Context(), q.TransactionID, q.Reference())
	if err != nil {
		h.writeError(c, err, tx)
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// GetTransaction godoc
// @Summary      Get a charge attempt
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "transaction id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /transactions/{id} [get]
func (h *CheckoutHandler) GetTransaction(c *gin.Context) {
	tx, err := h.usecase.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, entities.Transaction{})
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListOrderTransactions godoc
// @Summary      List an order's charge attempts, newest first
// @Tags         transactions
// @Produce      json
// @Param        order_id  path      string  true  "order id"
// @Success      200       {array}   response.TransactionResponse
// @Router       /orders/{order_id}/transactions [get]
func (h *CheckoutHandler) ListOrderTransactions(c *gin.Context) {
	txs, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		h.writeError(c, err, entities.Transaction{})
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

// GetLatestOrderTransaction godoc
// @Summary      Latest charge attempt of an order
// @Tags         transactions
// @Produce      json
// @Param        order_id  path      string  true  "order id"
// @Success      200       {object}  response.TransactionResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/transactions/latest [get]
func (h *CheckoutHandler) GetLatestOrderTransaction(c *gin.Context) {
	orderID := c.Param("order_id")
	txs, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err, entities.Transaction{})
		return
	}
	if len(txs) == 0 {
		h.writeError(c, usecase.ErrTransactionNotFound, entities.Transaction{})
		return
	}

	latest := txs[0]
	for _, t := range txs[1:] {
		if t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	c.JSON(http.StatusOK, response.FromTransaction(latest))
}

// writeError answers with the mapped error. When the attempt was recorded the
// stored transaction goes along, so the client sees the final status.
func (h *CheckoutHandler) writeError(c *gin.Context, err error, tx entities.Transaction) {
	appErr := mapCheckoutError(err)
	log := h.logger.With(zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus))
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[checkout][handler] request failed", zap.Error(err))
	} else {
		log.Info("[checkout][handler] request rejected", zap.Error(err))
	}

	if tx.ID == "" {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(appErr.HTTPStatus, checkoutFailure{HTTPError: appErr.ToHTTPError(), Transaction: response.FromTransaction(tx)})
}

func mapCheckoutError(err error) *pkg.AppError {
	var checkoutErr *usecase.CheckoutError
	var gatewayErr *usecase.GatewayError

	switch {
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, request.ErrInvalidOrderTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCallbackData):
		return pkg.NewDomainErrorSimple("INVALID_CALLBACK", "Invalid callback data", http.StatusBadRequest)
	case errors.As(err, &checkoutErr):
		return pkg.NewDomainErrorSimple(cardErrorCode(checkoutErr), checkoutErr.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotPending):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_PENDING", "Transaction is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionFlowMismatch):
		return pkg.NewDomainErrorSimple("TRANSACTION_FLOW_MISMATCH", "Transaction does not belong to the express flow", http.StatusConflict)
	case errors.Is(err, usecase.ErrCallbackMismatch):
		return pkg.NewDomainErrorSimple("CALLBACK_MISMATCH", "Callback does not match transaction", http.StatusConflict)
	case errors.Is(err, usecase.ErrProcessorNotConfigured), errors.Is(err, usecase.ErrRepositoryNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Payment service not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("PAYMENT_PROVIDER_TIMEOUT", "Payment provider timed out", err, http.StatusGatewayTimeout)
	case errors.As(err, &gatewayErr) && gatewayErr.IsProcessorError():
		return pkg.NewDomainError("PAYMENT_DECLINED", gatewayErr.Message, err, http.StatusPaymentRequired)
	case errors.As(err, &gatewayErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func cardErrorCode(err *usecase.CheckoutError) string {
	switch err.Code {
	case usecase.ErrCardNotSet.Code:
		return "CARD_NOT_SET"
	case usecase.ErrUnsupportedBrand.Code:
		return "CARD_NOT_SUPPORTED"
	default:
		return "CARD_INVALID"
	}
}
