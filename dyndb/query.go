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
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var errMissingKeyCondition = errors.New("query requires a key condition")

// Query inicia uma Query
func (s *dynamoStore[T]) Query() *QueryBuilder[T] {
	return &QueryBuilder[T]{store: s}
}

// Index seleciona um índice secundário
func (qb *QueryBuilder[T]) Index(name string) *QueryBuilder[T] {
	qb.indexName = aws.String(name)
	return qb
}

// KeyEqual adiciona `key = value` à condição de chave
func (qb *QueryBuilder[T]) KeyEqual(key string, value any) *QueryBuilder[T] {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

// FilterEqual adiciona `field = value` ao filtro. O filtro é avaliado pelo
// DynamoDB depois da leitura do índice e não reduz a capacidade consumida.
func (qb *QueryBuilder[T]) FilterEqual(field string, value any) *QueryBuilder[T] {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

// Exec executa a consulta e percorre todas as páginas.
// O resultado nunca é nil: sem itens, retorna um slice vazio.
func (qb *QueryBuilder[T]) Exec(ctx context.Context) ([]T, error) {
	if qb.keyCond == nil {
		return nil, &StoreError{Op: "query", Kind: ErrStoreQuery, Err: errMissingKeyCondition}
	}

	builder := expression.NewBuilder().WithKeyCondition(*qb.keyCond)
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, &StoreError{Op: "query", Kind: ErrStoreQuery, Err: fmt.Errorf("build expression: %w", err)}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result := make([]T, 0)
	paginator := dynamodb.NewQueryPaginator(qb.store.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, clientError("query", ErrStoreQuery, err)
		}
		for _, item := range page.Items {
			var t T
			if err := attributevalue.UnmarshalMap(item, &t); err != nil {
				return nil, &StoreError{Op: "query", Kind: ErrStoreQuery, Err: fmt.Errorf("unmarshal failed: %w", err)}
			}
			result = append(result, t)
		}
	}

	return result, nil
}
