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
	"github.com/shopspring/decimal"
)

const (
	defaultProcessesTableName = "processes"
	processesWorkOrderIDIndex = "work_order_id-index"
)

type processItem struct {
	ID             string `dynamodbav:"id"`
	WorkOrderID    string `dynamodbav:"work_order_id"`
	Description    string `dynamodbav:"description"`
	TemplateID     string `dynamodbav:"template_id,omitempty"`
	Status         string `dynamodbav:"status"`
	EstimatedHours string `dynamodbav:"estimated_hours"`
	ActualHours    string `dynamodbav:"actual_hours"`
	HourlyRate     string `dynamodbav:"hourly_rate"`
	LaborCost      string `dynamodbav:"labor_cost"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ProcessDynamoRepository persists Process entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type ProcessDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessRepository = (*ProcessDynamoRepository)(nil)

func NewProcessDynamoRepository(ddb *dynamodb.Client) *ProcessDynamoRepository {
	return &ProcessDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCESSES_TABLE", defaultProcessesTableName),
	}
}

func (r *ProcessDynamoRepository) Create(ctx context.Context, p entities.Process) (entities.Process, error) {
	it := toProcessItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Process{}, err
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
		return entities.Process{}, err
	}
	return p, nil
}

func (r *ProcessDynamoRepository) GetByID(ctx context.Context, id string) (entities.Process, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Process{}, err
	}
	if len(out.Item) == 0 {
		return entities.Process{}, nil
	}

	var it processItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Process{}, err
	}
	return fromProcessItem(it), nil
}

func (r *ProcessDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Process, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(processesWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Process, 0, len(out.Items))
	for _, raw := range out.Items {
		var it processItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProcessItem(it))
	}
	return items, nil
}

func (r *ProcessDynamoRepository) MarkInProgress(ctx context.Context, id string) (entities.Process, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.ProcessStatusEnProgreso)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.Process{}, err
	}

	var it processItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Process{}, err
	}
	return fromProcessItem(it), nil
}

func (r *ProcessDynamoRepository) MarkCompleted(ctx context.Context, id string, actualHours float64, hourlyRate, laborCost decimal.Decimal) (entities.Process, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #actual_hours = :actual_hours, #hourly_rate = :hourly_rate, #labor_cost = :labor_cost, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.ProcessStatusCompletado)},
			":actual_hours": &types.AttributeValueMemberS{Value: floatToString(actualHours)},
			":hourly_rate":  &types.AttributeValueMemberS{Value: decToString(hourlyRate)},
			":labor_cost":   &types.AttributeValueMemberS{Value: decToString(laborCost)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#actual_hours": "actual_hours",
			"#hourly_rate":  "hourly_rate",
			"#labor_cost":   "labor_cost",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.Process{}, err
	}

	var it processItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Process{}, err
	}
	return fromProcessItem(it), nil
}

func toProcessItem(p entities.Process) processItem {
	return processItem{
		ID:             p.ID,
		WorkOrderID:    p.WorkOrderID,
		Description:    p.Description,
		TemplateID:     p.TemplateID,
		Status:         string(p.Status),
		EstimatedHours: floatToString(p.EstimatedHours),
		ActualHours:    floatToString(p.ActualHours),
		HourlyRate:     decToString(p.HourlyRate),
		LaborCost:      decToString(p.LaborCost),
		CreatedAt:      timeToString(p.CreatedAt),
		UpdatedAt:      timeToString(p.UpdatedAt),
	}
}

func fromProcessItem(it processItem) entities.Process {
	estimatedHours, _ := strconv.ParseFloat(it.EstimatedHours, 64)
	actualHours, _ := strconv.ParseFloat(it.ActualHours, 64)
	return entities.Process{
		ID:             it.ID,
		WorkOrderID:    it.WorkOrderID,
		Description:    it.Description,
		TemplateID:     it.TemplateID,
		Status:         entities.ProcessStatus(it.Status),
		EstimatedHours: estimatedHours,
		ActualHours:    actualHours,
		HourlyRate:     decFromString(it.HourlyRate),
		LaborCost:      decFromString(it.LaborCost),
		CreatedAt:      timeFromString(it.CreatedAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
