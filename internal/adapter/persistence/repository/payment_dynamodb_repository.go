package repository

import (
	"context"
	"encoding/json"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsWorkOrderIDIndex = "work_order_id-index"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	WorkOrderID        string `dynamodbav:"work_order_id"`
	InvoiceID          string `dynamodbav:"invoice_id,omitempty"`
	Amount             string `dynamodbav:"amount"`
	Method             string `dynamodbav:"method"`
	Reference          string `dynamodbav:"reference,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	PaidAt             string `dynamodbav:"paid_at"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

// Delete removes a payment record. The condition makes deleting a missing
// payment an error the caller can map to not-found.
func (r *PaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		InvoiceID:          p.InvoiceID,
		Amount:             decToString(p.Amount),
		Method:             p.Method,
		Reference:          p.Reference,
		Notes:              p.Notes,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		PaidAt:             timeToString(p.PaidAt),
		CreatedAt:          timeToString(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.Payment{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		InvoiceID:          it.InvoiceID,
		Amount:             decFromString(it.Amount),
		Method:             it.Method,
		Reference:          it.Reference,
		Notes:              it.Notes,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderPayloadRaw: raw,
		PaidAt:             timeFromString(it.PaidAt),
		CreatedAt:          timeFromString(it.CreatedAt),
	}
}
