// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/wiki-service/dyndb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hasValue(values map[string]types.AttributeValue, want string) bool {
	for _, v := range values {
		if s, ok := v.(*types.AttributeValueMemberS); ok && s.Value == want {
			return true
		}
	}
	return false
}

func item(id, owner, category string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberS{Value: id},
		"owner":    &types.AttributeValueMemberS{Value: owner},
		"title":    &types.AttributeValueMemberS{Value: "t-" + id},
		"category": &types.AttributeValueMemberS{Value: category},
	}
}

func TestQuery_Exec_Success(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.TableName == "test-table" &&
			*input.IndexName == "owner" &&
			input.KeyConditionExpression != nil &&
			input.FilterExpression == nil &&
			hasValue(input.ExpressionAttributeValues, "u1")
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{item("1", "u1", "c1"), item("2", "u1", "c2")},
	}, nil)

	results, err := store.Query().Index("owner").KeyEqual("owner", "u1").Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
	mockClient.AssertExpectations(t)
}

func TestQuery_Exec_WithFilter(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return input.FilterExpression != nil &&
			hasValue(input.ExpressionAttributeValues, "u1") &&
			hasValue(input.ExpressionAttributeValues, "c1")
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{item("1", "u1", "c1")},
	}, nil)

	results, err := store.Query().
		Index("owner").
		KeyEqual("owner", "u1").
		FilterEqual("category", "c1").
		Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Category)
	mockClient.AssertExpectations(t)
}

func TestQuery_Exec_DrainsAllPages(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	lastKey := map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "1"},
		"owner": &types.AttributeValueMemberS{Value: "u1"},
	}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.QueryOutput{
		Items:            []map[string]types.AttributeValue{item("1", "u1", "c1")},
		LastEvaluatedKey: lastKey,
	}, nil).Once()

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{item("2", "u1", "c1")},
	}, nil).Once()

	results, err := store.Query().Index("owner").KeyEqual("owner", "u1").Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2", results[1].ID)
	mockClient.AssertExpectations(t)
}

func TestQuery_Exec_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

	results, err := store.Query().Index("owner").KeyEqual("owner", "nobody").Exec(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestQuery_Exec_Error(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, apiError("ResourceNotFoundException"))

	results, err := store.Query().KeyEqual("owner", "u1").Exec(context.Background())

	assert.Nil(t, results)
	assert.ErrorIs(t, err, dyndb.ErrStoreQuery)
}

func TestQuery_Exec_MissingKeyCondition(t *testing.T) {
	t.Parallel()

	mockClient := &MockDynamoClient{}
	store := createTestStore(mockClient)

	results, err := store.Query().FilterEqual("category", "c1").Exec(context.Background())

	assert.Nil(t, results)
	assert.ErrorIs(t, err, dyndb.ErrStoreQuery)
	mockClient.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}
