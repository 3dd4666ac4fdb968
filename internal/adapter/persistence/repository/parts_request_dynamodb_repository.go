package repository

import (
	"context"
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
	defaultPartsRequestsTableName = "parts_requests"
	partsRequestsWorkOrderIDIndex = "work_order_id-index"
)

type partsRequestItem struct {
	ID            string `dynamodbav:"id"`
	WorkOrderID   string `dynamodbav:"work_order_id"`
	ProcessID     string `dynamodbav:"process_id,omitempty"`
	Description   string `dynamodbav:"description"`
	Quantity      int    `dynamodbav:"quantity"`
	Urgent        bool   `dynamodbav:"urgent"`
	Status        string `dynamodbav:"status"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	RealCost      string `dynamodbav:"real_cost"`
	SupplierID    string `dynamodbav:"supplier_id,omitempty"`
	OrderedBy     string `dynamodbav:"ordered_by,omitempty"`
	RequestedAt   string `dynamodbav:"requested_at"`
	OrderedAt     string `dynamodbav:"ordered_at,omitempty"`
	ExpectedAt    string `dynamodbav:"expected_at,omitempty"`
	ReceivedAt    string `dynamodbav:"received_at,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PartsRequestDynamoRepository persists PartsRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type PartsRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartsRequestRepository = (*PartsRequestDynamoRepository)(nil)

func NewPartsRequestDynamoRepository(ddb *dynamodb.Client) *PartsRequestDynamoRepository {
	return &PartsRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_REQUESTS_TABLE", defaultPartsRequestsTableName),
	}
}

func (r *PartsRequestDynamoRepository) Create(ctx context.Context, p entities.PartsRequest) (entities.PartsRequest, error) {
	it := toPartsRequestItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PartsRequest{}, err
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
		return entities.PartsRequest{}, err
	}
	return p, nil
}

func (r *PartsRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.PartsRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PartsRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartsRequest{}, nil
	}

	var it partsRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartsRequest{}, err
	}
	return fromPartsRequestItem(it), nil
}

func (r *PartsRequestDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.PartsRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(partsRequestsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PartsRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it partsRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPartsRequestItem(it))
	}
	return items, nil
}

func (r *PartsRequestDynamoRepository) MarkOrdered(ctx context.Context, id, orderedBy, supplierID string, estimatedCost decimal.Decimal, expectedAt *time.Time) (entities.PartsRequest, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #ordered_by = :ordered_by, #estimated_cost = :estimated_cost, #ordered_at = :ordered_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.PartsRequestStatusPedido)},
			":ordered_by":     &types.AttributeValueMemberS{Value: orderedBy},
			":estimated_cost": &types.AttributeValueMemberS{Value: decToString(estimatedCost)},
			":ordered_at":     &types.AttributeValueMemberS{Value: now},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":         "status",
			"#ordered_by":     "ordered_by",
			"#estimated_cost": "estimated_cost",
			"#ordered_at":     "ordered_at",
			"#updated_at":     "updated_at",
		}
		if supplierID != "" {
			expr += ", #supplier_id = :supplier_id"
			vals[":supplier_id"] = &types.AttributeValueMemberS{Value: supplierID}
			names["#supplier_id"] = "supplier_id"
		}
		if expectedAt != nil {
			expr += ", #expected_at = :expected_at"
			vals[":expected_at"] = &types.AttributeValueMemberS{Value: timeToString(*expectedAt)}
			names["#expected_at"] = "expected_at"
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.PartsRequest{}, err
	}

	var it partsRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.PartsRequest{}, err
	}
	return fromPartsRequestItem(it), nil
}

func (r *PartsRequestDynamoRepository) MarkReceived(ctx context.Context, id string, realCost decimal.Decimal) (entities.PartsRequest, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #real_cost = :real_cost, #received_at = :received_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":      &types.AttributeValueMemberS{Value: string(entities.PartsRequestStatusRecibido)},
			":real_cost":   &types.AttributeValueMemberS{Value: decToString(realCost)},
			":received_at": &types.AttributeValueMemberS{Value: now},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#real_cost":   "real_cost",
			"#received_at": "received_at",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.PartsRequest{}, err
	}

	var it partsRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.PartsRequest{}, err
	}
	return fromPartsRequestItem(it), nil
}

func toPartsRequestItem(p entities.PartsRequest) partsRequestItem {
	return partsRequestItem{
		ID:            p.ID,
		WorkOrderID:   p.WorkOrderID,
		ProcessID:     p.ProcessID,
		Description:   p.Description,
		Quantity:      p.Quantity,
		Urgent:        p.Urgent,
		Status:        string(p.Status),
		EstimatedCost: decToString(p.EstimatedCost),
		RealCost:      decToString(p.RealCost),
		SupplierID:    p.SupplierID,
		OrderedBy:     p.OrderedBy,
		RequestedAt:   timeToString(p.RequestedAt),
		OrderedAt:     timePtrToString(p.OrderedAt),
		ExpectedAt:    timePtrToString(p.ExpectedAt),
		ReceivedAt:    timePtrToString(p.ReceivedAt),
		UpdatedAt:     timeToString(p.UpdatedAt),
	}
}

func fromPartsRequestItem(it partsRequestItem) entities.PartsRequest {
	return entities.PartsRequest{
		ID:            it.ID,
		WorkOrderID:   it.WorkOrderID,
		ProcessID:     it.ProcessID,
		Description:   it.Description,
		Quantity:      it.Quantity,
		Urgent:        it.Urgent,
		Status:        entities.PartsRequestStatus(it.Status),
		EstimatedCost: decFromString(it.EstimatedCost),
		RealCost:      decFromString(it.RealCost),
		SupplierID:    it.SupplierID,
		OrderedBy:     it.OrderedBy,
		RequestedAt:   timeFromString(it.RequestedAt),
		OrderedAt:     timePtrFromString(it.OrderedAt),
		ExpectedAt:    timePtrFromString(it.ExpectedAt),
		ReceivedAt:    timePtrFromString(it.ReceivedAt),
		UpdatedAt:     timeFromString(it.UpdatedAt),
	}
}

