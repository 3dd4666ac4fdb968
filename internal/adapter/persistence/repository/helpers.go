package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary values and timestamps are persisted as strings: decimal text
// keeps DynamoDB out of float territory, RFC3339Nano keeps items sortable.

func decToString(d decimal.Decimal) string {
	return d.String()
}

func decFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func timePtrFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}

// updateExisting runs an UpdateItem keyed by id, conditioned on the item
// existing, and returns the new attribute map. A failed condition returns
// (nil, nil): callers treat it the same as a missing item.
func updateExisting(
	ctx context.Context,
	ddb *dynamodb.Client,
	tableName, id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (map[string]types.AttributeValue, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return out.Attributes, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
