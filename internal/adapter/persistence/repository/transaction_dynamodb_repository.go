package repository

import (
	"context"
	"errors"
	"sort"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsOrderIDIndex     = "order_id-index"
)

var ErrTransactionExists = errors.New("transaction already exists")

type transactionItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	Flow        string `dynamodbav:"flow"`
	Processor   string `dynamodbav:"processor,omitempty"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	Status      string `dynamodbav:"status"`
	Detail      string `dynamodbav:"detail,omitempty"`
	ApprovalURL string `dynamodbav:"approval_url,omitempty"`
	OrderRaw    string `dynamodbav:"order_raw,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = defaultTransactionsTableName
	}
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Transaction{}, ErrTransactionExists
		}
		return entities.Transaction{}, err
	}
	return t, nil
}

// Update overwrites a pending record; a completed t may also overwrite a
// failed one. It never creates a record, and a record another writer already
// settled is left untouched (interfaces.ErrTransactionSettled).
func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	withUpdateCondition(input, t.Status)

	_, err = r.ddb.PutItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Transaction{}, interfaces.ErrTransactionSettled
		}
		return entities.Transaction{}, err
	}
	return t, nil
}

// GetByID returns a zero Transaction when the id is unknown.
func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// ListByOrderID returns the order's attempts, newest first.
func (r *TransactionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	}

	items := make([]entities.Transaction, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTransactionItem(it))
		}
	}

	sortNewestFirst(items)
	return items, nil
}

func withUpdateCondition(input *dynamodb.PutItemInput, status entities.TransactionStatus) {
	input.ExpressionAttributeNames = map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	if status == entities.TransactionStatusCompleted {
		input.ConditionExpression = aws.String("attribute_exists(#id) AND #status <> :completed")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusCompleted)},
		}
		return
	}
	input.ConditionExpression = aws.String("attribute_exists(#id) AND #status = :pending")
	input.ExpressionAttributeValues = map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPending)},
	}
}

func sortNewestFirst(items []entities.Transaction) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Flow:        string(t.Flow),
		Processor:   t.Processor,
		PaymentID:   t.PaymentID,
		Status:      string(t.Status),
		Detail:      t.Detail,
		ApprovalURL: t.ApprovalURL,
		OrderRaw:    string(t.OrderRaw),
		CreatedAt:   formatItemTime(t.CreatedAt),
		UpdatedAt:   formatItemTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	t := entities.Transaction{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Flow:        entities.CheckoutFlow(it.Flow),
		Processor:   it.Processor,
		PaymentID:   it.PaymentID,
		Status:      entities.TransactionStatus(it.Status),
		Detail:      it.Detail,
		ApprovalURL: it.ApprovalURL,
		CreatedAt:   parseItemTime(it.CreatedAt),
		UpdatedAt:   parseItemTime(it.UpdatedAt),
	}
	if it.OrderRaw != "" {
		t.OrderRaw = []byte(it.OrderRaw)
	}
	return t
}

// EnsureTable creates the transactions table and its order_id index when
// missing. Meant for local DynamoDB; production tables are provisioned
// outside the service.
func (r *TransactionDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return err
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("order_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(transactionsOrderIDIndex),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("order_id"), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return err
}
