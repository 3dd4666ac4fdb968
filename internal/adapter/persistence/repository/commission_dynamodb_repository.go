package repository

import (
	"context"
	"strconv"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommissionsTableName = "commissions"
	commissionsWorkOrderIndex   = "work_order_id-index"
	commissionsEmployeeIndex    = "employee_id-index"
)

type commissionItem struct {
	ID          string `dynamodbav:"id"`
	EmployeeID  string `dynamodbav:"employee_id"`
	Status      string `dynamodbav:"status"`
	Paid        string `dynamodbav:"paid"`
	Amount      string `dynamodbav:"amount"`
	Concept     string `dynamodbav:"concept"`
	WorkOrderID string `dynamodbav:"work_order_id,omitempty"`
	ProcessID   string `dynamodbav:"process_id,omitempty"`
	ReferenceID string `dynamodbav:"reference_id,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
	Date        string `dynamodbav:"date"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CommissionDynamoRepository persists Commission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//   - GSI: employee_id-index (PK: employee_id)

type CommissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb *dynamodb.Client) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMISSIONS_TABLE", defaultCommissionsTableName),
	}
}

func (r *CommissionDynamoRepository) Create(ctx context.Context, c entities.Commission) (entities.Commission, error) {
	it := toCommissionItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Commission{}, err
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
		return entities.Commission{}, err
	}
	return c, nil
}

func (r *CommissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Commission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Commission{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

func (r *CommissionDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Commission, error) {
	return r.queryIndex(ctx, commissionsWorkOrderIndex, "work_order_id", workOrderID)
}

func (r *CommissionDynamoRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Commission, error) {
	return r.queryIndex(ctx, commissionsEmployeeIndex, "employee_id", employeeID)
}

func (r *CommissionDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Commission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	commissions := make([]entities.Commission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		commissions = append(commissions, fromCommissionItem(it))
	}
	return commissions, nil
}

func (r *CommissionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CommissionStatus, paid bool) (entities.Commission, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #paid = :paid, #updated_at = :updated_at"
		values := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":paid":       &types.AttributeValueMemberS{Value: strconv.FormatBool(paid)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#paid":       "paid",
			"#updated_at": "updated_at",
		}
		return expr, values, names
	})
	if err != nil || attrs == nil {
		return entities.Commission{}, err
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

func toCommissionItem(c entities.Commission) commissionItem {
	return commissionItem{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Status:      string(c.Status),
		Paid:        strconv.FormatBool(c.Paid),
		Amount:      decToString(c.Amount),
		Concept:     c.Concept,
		WorkOrderID: c.WorkOrderID,
		ProcessID:   c.ProcessID,
		ReferenceID: c.ReferenceID,
		Notes:       c.Notes,
		Date:        timeToString(c.Date),
		CreatedAt:   timeToString(c.CreatedAt),
		UpdatedAt:   timeToString(c.UpdatedAt),
	}
}

func fromCommissionItem(it commissionItem) entities.Commission {
	paid, _ := strconv.ParseBool(it.Paid)
	return entities.Commission{
		ID:          it.ID,
		EmployeeID:  it.EmployeeID,
		Status:      entities.CommissionStatus(it.Status),
		Paid:        paid,
		Amount:      decFromString(it.Amount),
		Concept:     it.Concept,
		WorkOrderID: it.WorkOrderID,
		ProcessID:   it.ProcessID,
		ReferenceID: it.ReferenceID,
		Notes:       it.Notes,
		Date:        timeFromString(it.Date),
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}
