package repository

import (
	"context"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuthorizationsTableName = "authorizations"
	authorizationsWorkOrderIDIndex = "work_order_id-index"
)

type authorizationItem struct {
	ID                 string `dynamodbav:"id"`
	WorkOrderID        string `dynamodbav:"work_order_id"`
	ProcessID          string `dynamodbav:"process_id,omitempty"`
	ProblemDescription string `dynamodbav:"problem_description"`
	Urgent             bool   `dynamodbav:"urgent"`
	Status             string `dynamodbav:"status"`
	EstimatedPartsCost string `dynamodbav:"estimated_parts_cost"`
	EstimatedLaborCost string `dynamodbav:"estimated_labor_cost"`
	TotalCost          string `dynamodbav:"total_cost"`
	RequestedBy        string `dynamodbav:"requested_by"`
	DecidedBy          string `dynamodbav:"decided_by,omitempty"`
	RejectionReason    string `dynamodbav:"rejection_reason,omitempty"`
	RequestedAt        string `dynamodbav:"requested_at"`
	DecidedAt          string `dynamodbav:"decided_at,omitempty"`
}

// AuthorizationDynamoRepository persists Authorization entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type AuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuthorizationRepository = (*AuthorizationDynamoRepository)(nil)

func NewAuthorizationDynamoRepository(ddb *dynamodb.Client) *AuthorizationDynamoRepository {
	return &AuthorizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUTHORIZATIONS_TABLE", defaultAuthorizationsTableName),
	}
}

func (r *AuthorizationDynamoRepository) Create(ctx context.Context, a entities.Authorization) (entities.Authorization, error) {
	it := toAuthorizationItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Authorization{}, err
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
		return entities.Authorization{}, err
	}
	return a, nil
}

func (r *AuthorizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Authorization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Authorization{}, err
	}
	if len(out.Item) == 0 {
		return entities.Authorization{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Authorization{}, err
	}
	return fromAuthorizationItem(it), nil
}

func (r *AuthorizationDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Authorization, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(authorizationsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Authorization, 0, len(out.Items))
	for _, raw := range out.Items {
		var it authorizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAuthorizationItem(it))
	}
	return items, nil
}

func (r *AuthorizationDynamoRepository) UpdateDecision(ctx context.Context, id string, status entities.AuthorizationStatus, decidedBy, reason string) (entities.Authorization, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #decided_by = :decided_by, #decided_at = :decided_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":decided_by": &types.AttributeValueMemberS{Value: decidedBy},
			":decided_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#decided_by": "decided_by",
			"#decided_at": "decided_at",
		}
		if reason != "" {
			expr += ", #rejection_reason = :rejection_reason"
			vals[":rejection_reason"] = &types.AttributeValueMemberS{Value: reason}
			names["#rejection_reason"] = "rejection_reason"
		}
		return expr, vals, names
	})
	if err != nil || attrs == nil {
		return entities.Authorization{}, err
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Authorization{}, err
	}
	return fromAuthorizationItem(it), nil
}

func toAuthorizationItem(a entities.Authorization) authorizationItem {
	return authorizationItem{
		ID:                 a.ID,
		WorkOrderID:        a.WorkOrderID,
		ProcessID:          a.ProcessID,
		ProblemDescription: a.ProblemDescription,
		Urgent:             a.Urgent,
		Status:             string(a.Status),
		EstimatedPartsCost: decToString(a.EstimatedPartsCost),
		EstimatedLaborCost: decToString(a.EstimatedLaborCost),
		TotalCost:          decToString(a.TotalCost),
		RequestedBy:        a.RequestedBy,
		DecidedBy:          a.DecidedBy,
		RejectionReason:    a.RejectionReason,
		RequestedAt:        timeToString(a.RequestedAt),
		DecidedAt:          timePtrToString(a.DecidedAt),
	}
}

func fromAuthorizationItem(it authorizationItem) entities.Authorization {
	return entities.Authorization{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		ProcessID:          it.ProcessID,
		ProblemDescription: it.ProblemDescription,
		Urgent:             it.Urgent,
		Status:             entities.AuthorizationStatus(it.Status),
		EstimatedPartsCost: decFromString(it.EstimatedPartsCost),
		EstimatedLaborCost: decFromString(it.EstimatedLaborCost),
		TotalCost:          decFromString(it.TotalCost),
		RequestedBy:        it.RequestedBy,
		DecidedBy:          it.DecidedBy,
		RejectionReason:    it.RejectionReason,
		RequestedAt:        timeFromString(it.RequestedAt),
		DecidedAt:          timePtrFromString(it.DecidedAt),
	}
}
