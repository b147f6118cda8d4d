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
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Update inicia uma atualização parcial do item com a chave informada
func (s *dynamoStore[T]) Update(hashKey, sortKey any) *UpdateBuilder[T] {
	return &UpdateBuilder[T]{
		store:   s,
		hashKey: hashKey,
		sortKey: sortKey,
	}
}

// Set adiciona `SET field = value`. Campos não informados ficam intactos.
func (ub *UpdateBuilder[T]) Set(field string, value any) *UpdateBuilder[T] {
	if ub.update == nil {
		u := expression.Set(expression.Name(field), expression.Value(value))
		ub.update = &u
	} else {
		u := ub.update.Set(expression.Name(field), expression.Value(value))
		ub.update = &u
	}
	return ub
}

// IfExists condiciona a escrita à existência do item (attribute_exists na
// hash key). Sem o item, Exec retorna ErrNotFound e nada é criado.
func (ub *UpdateBuilder[T]) IfExists() *UpdateBuilder[T] {
	ub.mustExist = true
	return ub
}

// Exec aplica a atualização e retorna o item completo após a escrita.
func (ub *UpdateBuilder[T]) Exec(ctx context.Context) (*T, error) {
	if ub.update == nil && !ub.mustExist {
		return ub.store.Get(ctx, ub.hashKey, ub.sortKey)
	}

	builder := expression.NewBuilder()
	if ub.update != nil {
		builder = builder.WithUpdate(*ub.update)
	}
	if ub.mustExist {
		builder = builder.WithCondition(expression.AttributeExists(expression.Name(ub.store.cfg.HashKey)))
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, &StoreError{Op: "update", Kind: ErrStoreWrite, Err: fmt.Errorf("build expression: %w", err)}
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(ub.store.cfg.TableName),
		Key:                       ub.store.key(ub.hashKey, ub.sortKey),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}
	if ub.update != nil {
		input.UpdateExpression = expr.Update()
	}

	out, err := ub.store.client.UpdateItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrNotFound
		}
		return nil, clientError("update", ErrStoreWrite, err)
	}

	// uma atualização só com condição pode voltar sem atributos
	if len(out.Attributes) == 0 {
		return ub.store.Get(ctx, ub.hashKey, ub.sortKey)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, &StoreError{Op: "update", Kind: ErrStoreWrite, Err: fmt.Errorf("unmarshal failed: %w", err)}
	}
	return &item, nil
}
