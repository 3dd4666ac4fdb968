package repository

import (
	"context"
	"errors"
	"strconv"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesWorkOrderIDIndex = "work_order_id-index"

	// invoiceCounterItemID is the key of the counter item living alongside
	// invoice items; NextNumber increments it atomically.
	invoiceCounterItemID = "invoice_number_counter"
)

var errInvoiceCounterCorrupt = errors.New("invoice counter item has no numeric seq attribute")

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	WorkOrderID  string `dynamodbav:"work_order_id"`
	Number       string `dynamodbav:"number"`
	Subtotal     string `dynamodbav:"subtotal"`
	TaxAmount    string `dynamodbav:"tax_amount"`
	Total        string `dynamodbav:"total"`
	PaymentTerms string `dynamodbav:"payment_terms,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	IssuedAt     string `dynamodbav:"issued_at"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//
// Invoices are written once and never updated.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// LatestByWorkOrderID returns the most recently issued invoice for the
// order, or an empty Invoice when none exists.
func (r *InvoiceDynamoRepository) LatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var latest entities.Invoice
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Invoice{}, err
		}
		inv := fromInvoiceItem(it)
		if latest.ID == "" || inv.IssuedAt.After(latest.IssuedAt) {
			latest = inv
		}
	}
	return latest, nil
}

func (r *InvoiceDynamoRepository) NextNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: invoiceCounterItemID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	seqAttr, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errInvoiceCounterCorrupt
	}
	return strconv.ParseInt(seqAttr.Value, 10, 64)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:           inv.ID,
		WorkOrderID:  inv.WorkOrderID,
		Number:       inv.Number,
		Subtotal:     decToString(inv.Subtotal),
		TaxAmount:    decToString(inv.TaxAmount),
		Total:        decToString(inv.Total),
		PaymentTerms: inv.PaymentTerms,
		Notes:        inv.Notes,
		IssuedAt:     timeToString(inv.IssuedAt),
		CreatedAt:    timeToString(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:           it.ID,
		WorkOrderID:  it.WorkOrderID,
		Number:       it.Number,
		Subtotal:     decFromString(it.Subtotal),
		TaxAmount:    decFromString(it.TaxAmount),
		Total:        decFromString(it.Total),
		PaymentTerms: it.PaymentTerms,
		Notes:        it.Notes,
		IssuedAt:     timeFromString(it.IssuedAt),
		CreatedAt:    timeFromString(it.CreatedAt),
	}
}
