package entities

import (
	"encoding/json"
	"time"
)

// TransactionStatus is the outcome of a charge phase.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// TransactionResult is what a gateway reports back after each charge phase.
// Only the gateway that produced it mutates it.
type TransactionResult struct {
	StatusCode    TransactionStatus `json:"status_code"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Detail        string            `json:"detail"`
	ApprovalURL   string            `json:"approval_url,omitempty"`
}

// CheckoutFlow tells which gateway handled a transaction.
type CheckoutFlow string

const (
	CheckoutFlowDirect  CheckoutFlow = "direct"
	CheckoutFlowExpress CheckoutFlow = "express"
)

// Transaction is the persisted record of one charge attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// OrderRaw keeps the order snapshot the attempt was started with, so the
// express callback can finish the charge against the same values.
type Transaction struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"order_id"`
	Flow      CheckoutFlow      `json:"flow"`
	Processor string            `json:"processor"`
	PaymentID string            `json:"payment_id,omitempty"`
	Status    TransactionStatus `json:"status"`
	Detail    string            `json:"detail"`

	ApprovalURL string          `json:"approval_url,omitempty"`
	OrderRaw    json.RawMessage `json:"order_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Apply copies a gateway result onto the record.
func (t *Transaction) Apply(r TransactionResult) {
	t.Status = r.StatusCode
	t.Detail = r.Detail
	if r.TransactionID != "" {
		t.PaymentID = r.TransactionID
	}
	if r.ApprovalURL != "" {
		t.ApprovalURL = r.ApprovalURL
	}
}

// Order decodes the stored order snapshot.
func (t Transaction) Order() (OrderSnapshot, error) {
	var o OrderSnapshot
	if len(t.OrderRaw) == 0 {
		return o, nil
	}
	err := json.Unmarshal(t.OrderRaw, &o)
	return o, err
}
