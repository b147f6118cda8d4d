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
package dyndb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBClient interface para abstrair o cliente DynamoDB.
// *dynamodb.Client satisfaz esta interface.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store: interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Delete(ctx context.Context, hashKey, sortKey any) error

	// Query e Update retornam builders fluentes
	Query() *QueryBuilder[T]
	Update(hashKey, sortKey any) *UpdateBuilder[T]
}

// TableConfig: configuração da tabela. HashKey vazia assume "id".
type TableConfig[T any] struct {
	TableName string
	HashKey   string
	SortKey   string // opcional
}

// QueryBuilder: o builder fluente de consultas
type QueryBuilder[T any] struct {
	store      *dynamoStore[T]
	keyCond    *expression.KeyConditionBuilder
	filterCond *expression.ConditionBuilder
	indexName  *string
}

// UpdateBuilder: o builder fluente de atualizações parciais
type UpdateBuilder[T any] struct {
	store     *dynamoStore[T]
	hashKey   any
	sortKey   any
	update    *expression.UpdateBuilder
	mustExist bool
}
