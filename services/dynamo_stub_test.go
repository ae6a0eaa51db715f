package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// stubDynamo implements DynamoAPI through optional function fields. A call
// into an unset field fails the stub loudly, so each test declares exactly
// the storage surface it expects to be touched.
type stubDynamo struct {
	getItem               func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	putItem               func(ctx context.Context, tableName string, item interface{}) error
	putItemIfAbsent       func(ctx context.Context, tableName string, item interface{}, keyAttribute string) error
	updateItem              func(ctx context.Context, tableName, updateExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)
	updateItemWithCondition func(ctx context.Context, tableName, updateExpression, conditionExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) error
	deleteItem            func(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	queryItems            func(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	queryItemsWithIndex   func(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	queryItemsWithOptions func(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error)
	scanItems             func(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error)
	transactWriteItems    func(ctx context.Context, items []types.TransactWriteItem) error
}

var _ DynamoAPI = (*stubDynamo)(nil)

func (s *stubDynamo) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if s.getItem == nil {
		panic("unexpected GetItem call on table " + tableName)
	}
	return s.getItem(ctx, tableName, key)
}

func (s *stubDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	if s.putItem == nil {
		panic("unexpected PutItem call on table " + tableName)
	}
	return s.putItem(ctx, tableName, item)
}

func (s *stubDynamo) PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttribute string) error {
	if s.putItemIfAbsent == nil {
		panic("unexpected PutItemIfAbsent call on table " + tableName)
	}
	return s.putItemIfAbsent(ctx, tableName, item, keyAttribute)
}

func (s *stubDynamo) UpdateItem(ctx context.Context, tableName, updateExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	if s.updateItem == nil {
		panic("unexpected UpdateItem call on table " + tableName)
	}
	return s.updateItem(ctx, tableName, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
}

func (s *stubDynamo) UpdateItemWithCondition(ctx context.Context, tableName, updateExpression, conditionExpression string, key, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) error {
	if s.updateItemWithCondition == nil {
		panic("unexpected UpdateItemWithCondition call on table " + tableName)
	}
	return s.updateItemWithCondition(ctx, tableName, updateExpression, conditionExpression, key, expressionAttributeValues, expressionAttributeNames)
}

func (s *stubDynamo) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	if s.deleteItem == nil {
		panic("unexpected DeleteItem call on table " + tableName)
	}
	return s.deleteItem(ctx, tableName, key)
}

func (s *stubDynamo) QueryItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	if s.queryItems == nil {
		panic("unexpected QueryItems call on table " + tableName)
	}
	return s.queryItems(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit)
}

func (s *stubDynamo) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	if s.queryItemsWithIndex == nil {
		panic("unexpected QueryItemsWithIndex call on table " + tableName)
	}
	return s.queryItemsWithIndex(ctx, tableName, indexName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit)
}

func (s *stubDynamo) QueryItemsWithOptions(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	if s.queryItemsWithOptions == nil {
		panic("unexpected QueryItemsWithOptions call on table " + tableName)
	}
	return s.queryItemsWithOptions(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit, latestFirst)
}

func (s *stubDynamo) ScanItems(ctx context.Context, tableName, filterExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error) {
	if s.scanItems == nil {
		panic("unexpected ScanItems call on table " + tableName)
	}
	return s.scanItems(ctx, tableName, filterExpression, expressionAttributeValues, expressionAttributeNames)
}

func (s *stubDynamo) TransactWriteItems(ctx context.Context, items []types.TransactWriteItem) error {
	if s.transactWriteItems == nil {
		panic("unexpected TransactWriteItems call")
	}
	return s.transactWriteItems(ctx, items)
}

// mustItem marshals a value into a DynamoDB item for stub responses.
func mustItem(t *testing.T, value interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(value)
	require.NoError(t, err)
	return item
}

// notFoundErr mimics DynamoService.GetItem's miss result.
func notFoundErr(tableName string) error {
	return fmt.Errorf("item not found in table '%s': %w", tableName, ErrNotFound)
}

// conflictErr mimics DynamoService.PutItemIfAbsent losing the condition.
func conflictErr(tableName string) error {
	return fmt.Errorf("item already exists in table '%s': %w", tableName, ErrConflict)
}
