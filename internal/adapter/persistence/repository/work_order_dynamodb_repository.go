package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersCustomerIDIndex  = "customer_id-index"
)

type workOrderItem struct {
	ID                string `dynamodbav:"id"`
	CustomerID        string `dynamodbav:"customer_id"`
	VehicleID         string `dynamodbav:"vehicle_id"`
	Status            string `dynamodbav:"status"`
	Subtotal          string `dynamodbav:"subtotal"`
	TaxRate           string `dynamodbav:"tax_rate"`
	TaxAmount         string `dynamodbav:"tax_amount"`
	Total             string `dynamodbav:"total"`
	QuoteApproved     bool   `dynamodbav:"quote_approved"`
	QuoteApprovedAt   string `dynamodbav:"quote_approved_at,omitempty"`
	WarrantyEnabled   bool   `dynamodbav:"warranty_enabled"`
	WarrantyDays      int    `dynamodbav:"warranty_days"`
	WarrantyExpiresAt string `dynamodbav:"warranty_expires_at,omitempty"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// State and totals writes are compare-and-swap on the version attribute,
// so two concurrent transition requests can never both commit.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	it := toWorkOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkOrderItem(it))
	}
	return items, nil
}

func (r *WorkOrderDynamoRepository) UpdateState(ctx context.Context, id string, change entities.StateChange, expectedVersion int64) (entities.WorkOrder, error) {
	expr := "SET #status = :status, #updated_at = :updated_at, #version = :next_version"
	vals := map[string]types.AttributeValue{
		":status":       &types.AttributeValueMemberS{Value: string(change.Status)},
		":next_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#version":    "version",
	}
	if change.QuoteApprovedAt != nil {
		expr += ", #quote_approved = :quote_approved, #quote_approved_at = :quote_approved_at"
		vals[":quote_approved"] = &types.AttributeValueMemberBOOL{Value: true}
		vals[":quote_approved_at"] = &types.AttributeValueMemberS{Value: timeToString(*change.QuoteApprovedAt)}
		names["#quote_approved"] = "quote_approved"
		names["#quote_approved_at"] = "quote_approved_at"
	}
	if change.WarrantyExpiresAt != nil {
		expr += ", #warranty_expires_at = :warranty_expires_at"
		vals[":warranty_expires_at"] = &types.AttributeValueMemberS{Value: timeToString(*change.WarrantyExpiresAt)}
		names["#warranty_expires_at"] = "warranty_expires_at"
	}
	return r.updateVersioned(ctx, id, expr, vals, names, expectedVersion)
}

func (r *WorkOrderDynamoRepository) UpdateTotals(ctx context.Context, id string, subtotal, taxAmount, total decimal.Decimal, expectedVersion int64) (entities.WorkOrder, error) {
	expr := "SET #subtotal = :subtotal, #tax_amount = :tax_amount, #total = :total, #updated_at = :updated_at, #version = :next_version"
	vals := map[string]types.AttributeValue{
		":subtotal":     &types.AttributeValueMemberS{Value: decToString(subtotal)},
		":tax_amount":   &types.AttributeValueMemberS{Value: decToString(taxAmount)},
		":total":        &types.AttributeValueMemberS{Value: decToString(total)},
		":next_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
	}
	names := map[string]string{
		"#subtotal":   "subtotal",
		"#tax_amount": "tax_amount",
		"#total":      "total",
		"#updated_at": "updated_at",
		"#version":    "version",
	}
	return r.updateVersioned(ctx, id, expr, vals, names, expectedVersion)
}

func (r *WorkOrderDynamoRepository) updateVersioned(
	ctx context.Context,
	id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
	expectedVersion int64,
) (entities.WorkOrder, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: timeToString(time.Now())}
	values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#version": "version"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		VehicleID:         o.VehicleID,
		Status:            string(o.Status),
		Subtotal:          decToString(o.Subtotal),
		TaxRate:           decToString(o.TaxRate),
		TaxAmount:         decToString(o.TaxAmount),
		Total:             decToString(o.Total),
		QuoteApproved:     o.QuoteApproved,
		QuoteApprovedAt:   timePtrToString(o.QuoteApprovedAt),
		WarrantyEnabled:   o.WarrantyEnabled,
		WarrantyDays:      o.WarrantyDays,
		WarrantyExpiresAt: timePtrToString(o.WarrantyExpiresAt),
		Version:           o.Version,
		CreatedAt:         timeToString(o.CreatedAt),
		UpdatedAt:         timeToString(o.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		VehicleID:         it.VehicleID,
		Status:            entities.OrderStatus(it.Status),
		Subtotal:          decFromString(it.Subtotal),
		TaxRate:           decFromString(it.TaxRate),
		TaxAmount:         decFromString(it.TaxAmount),
		Total:             decFromString(it.Total),
		QuoteApproved:     it.QuoteApproved,
		QuoteApprovedAt:   timePtrFromString(it.QuoteApprovedAt),
		WarrantyEnabled:   it.WarrantyEnabled,
		WarrantyDays:      it.WarrantyDays,
		WarrantyExpiresAt: timePtrFromString(it.WarrantyExpiresAt),
		Version:           it.Version,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
}
