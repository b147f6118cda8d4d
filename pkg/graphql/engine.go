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
package graphql

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/raywall/wiki-service/pkg/metrics"
	"github.com/raywall/wiki-service/pkg/wiki/models"
	"github.com/raywall/wiki-service/pkg/wiki/resolver"
	"github.com/rs/zerolog"
)

// WikiResolver são as operações expostas pelo schema.
// *resolver.Resolver satisfaz esta interface.
type WikiResolver interface {
	Read(ctx context.Context, in resolver.ReadInput) ([]models.Wiki, error)
	Create(ctx context.Context, in resolver.CreateInput) (*models.Wiki, error)
	Update(ctx context.Context, in resolver.UpdateInput) (*models.Wiki, error)
	Delete(ctx context.Context, in resolver.DeleteInput) (resolver.DeleteOutput, error)
}

// Engine mantém o schema GraphQL do serviço. É imutável depois de criado.
type Engine struct {
	Schema   graphql.Schema
	resolver WikiResolver
	recorder *metrics.Recorder
}

// NewEngine monta o schema. recorder pode ser nil.
func NewEngine(r WikiResolver, recorder *metrics.Recorder) (*Engine, error) {
	engine := &Engine{
		resolver: r,
		recorder: recorder,
	}

	schema, err := engine.buildSchema()
	if err != nil {
		return nil, err
	}

	engine.Schema = schema
	return engine, nil
}

// Execute roda uma operação GraphQL.
func (e *Engine) Execute(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result {
	params := graphql.Params{
		Schema:         e.Schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	}
	return graphql.Do(params)
}

// instrument mede cada campo raiz e traduz o erro para o cliente
func (e *Engine) instrument(operation string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		result, err := fn(p)

		if e.recorder != nil {
			if mErr := e.recorder.ObserveResolver(operation, err, time.Since(start)); mErr != nil {
				zerolog.Ctx(p.Context).Warn().Err(mErr).Msg("failed to record metrics")
			}
		}

		if err != nil {
			return nil, toClientError(p.Context, operation, err)
		}
		return result, nil
	}
}
