package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionItem_RoundTripThroughAttributeValues(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 123, time.UTC)
	in := entities.Transaction{
		ID:          "tx-1",
		OrderID:     "order-1",
		Flow:        entities.CheckoutFlowExpress,
		Processor:   "paypal",
		PaymentID:   "PAY-1",
		Status:      entities.TransactionStatusPending,
		Detail:      "Pending approval: PAY-1",
		ApprovalURL: "https://www.sandbox.paypal.com/cgi-bin/webscr?token=EC-1",
		OrderRaw:    []byte(`{"id":"order-1","total":10}`),
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Second),
	}

	av, err := attributevalue.MarshalMap(toTransactionItem(in))
	require.NoError(t, err)
	assert.Contains(t, av, "order_id")

	var it transactionItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	out := fromTransactionItem(it)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Flow, out.Flow)
	assert.Equal(t, in.Status, out.Status)
	assert.Equal(t, in.PaymentID, out.PaymentID)
	assert.JSONEq(t, string(in.OrderRaw), string(out.OrderRaw))
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.True(t, in.UpdatedAt.Equal(out.UpdatedAt))
}

func TestTransactionItem_OmitsEmptyOptionalFields(t *testing.T) {
	av, err := attributevalue.MarshalMap(toTransactionItem(entities.Transaction{
		ID:      "tx-2",
		OrderID: "order-2",
		Flow:    entities.CheckoutFlowDirect,
		Status:  entities.TransactionStatusFailed,
	}))
	require.NoError(t, err)

	assert.NotContains(t, av, "payment_id")
	assert.NotContains(t, av, "approval_url")
	assert.NotContains(t, av, "order_raw")
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []entities.Transaction{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}

	sortNewestFirst(items)

	assert.Equal(t, []string{"new", "mid", "old"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

type putItemCall struct {
	ConditionExpression       string                       `json:"ConditionExpression"`
	ExpressionAttributeValues map[string]map[string]string `json:"ExpressionAttributeValues"`
}

// newFakeDynamoDB serves PutItem calls; conditionFailed makes every call fail
// its condition check.
func newFakeDynamoDB(t *testing.T, conditionFailed bool) (*dynamodb.Client, *[]putItemCall) {
	t.Helper()
	var calls []putItemCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Amz-Target") != "DynamoDB_20120810.PutItem" {
			t.Errorf("unexpected operation %q", r.Header.Get("X-Amz-Target"))
		}
		var call putItemCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Errorf("decode request: %v", err)
		}
		calls = append(calls, call)

		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		if conditionFailed {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		HTTPClient:       srv.Client(),
		RetryMaxAttempts: 1,
	})
	return client, &calls
}

func TestTransactionDynamoRepository_Update(t *testing.T) {
	tx := entities.Transaction{ID: "tx-1", OrderID: "1042", Flow: entities.CheckoutFlowExpress, CreatedAt: time.Now().UTC()}

	t.Run("failed outcome requires pending", func(t *testing.T) {
		ddb, calls := newFakeDynamoDB(t, false)
		failed := tx
		failed.Status = entities.TransactionStatusFailed

		_, err := NewTransactionDynamoRepository(ddb, "").Update(context.Background(), failed)
		require.NoError(t, err)
		require.Len(t, *calls, 1)
		assert.Equal(t, "attribute_exists(#id) AND #status = :pending", (*calls)[0].ConditionExpression)
		assert.Equal(t, map[string]map[string]string{":pending": {"S": "pending"}}, (*calls)[0].ExpressionAttributeValues)
	})

	t.Run("completed outcome replaces anything but completed", func(t *testing.T) {
		ddb, calls := newFakeDynamoDB(t, false)
		completed := tx
		completed.Status = entities.TransactionStatusCompleted

		_, err := NewTransactionDynamoRepository(ddb, "").Update(context.Background(), completed)
		require.NoError(t, err)
		require.Len(t, *calls, 1)
		assert.Equal(t, "attribute_exists(#id) AND #status <> :completed", (*calls)[0].ConditionExpression)
		assert.Equal(t, map[string]map[string]string{":completed": {"S": "completed"}}, (*calls)[0].ExpressionAttributeValues)
	})

	t.Run("settled record is left untouched", func(t *testing.T) {
		ddb, _ := newFakeDynamoDB(t, true)
		failed := tx
		failed.Status = entities.TransactionStatusFailed

		_, err := NewTransactionDynamoRepository(ddb, "").Update(context.Background(), failed)
		assert.ErrorIs(t, err, interfaces.ErrTransactionSettled)
	})
}
