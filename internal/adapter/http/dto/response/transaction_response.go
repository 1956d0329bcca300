package response

import (
	"time"

	"paypal_checkout/internal/domain/entities"
)

type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	OrderID       string    `json:"order_id"`
	Flow          string    `json:"flow"`
	Processor     string    `json:"processor,omitempty"`
	PaymentID     string    `json:"payment_id,omitempty"`
	Status        string    `json:"status"`
	Detail        string    `json:"detail"`
	ApprovalURL   string    `json:"approval_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.ID,
		OrderID:       t.OrderID,
		Flow:          string(t.Flow),
		Processor:     t.Processor,
		PaymentID:     t.PaymentID,
		Status:        string(t.Status),
		Detail:        t.Detail,
		ApprovalURL:   t.ApprovalURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}
