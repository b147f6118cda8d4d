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
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"
	ContextKeyCorrID    = contextKey("correlation_id")

	healthPath = "/healthz"
)

type contextKey string

// Executor executa uma operação GraphQL. *graphql.Engine (pkg/graphql) satisfaz esta interface.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}, operationName string) *graphql.Result
}

// graphQLRequest é o corpo aceito em POST {route}
type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

var errEmptyQuery = errors.New("query must not be empty")

// correlationID devolve o id de correlação da requisição, se houver.
func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyCorrID).(string)
	return id
}

// execute decodifica o corpo e executa a operação. Erros de GraphQL vão no
// corpo com status 200; só um corpo ilegível gera 400.
func execute(ctx context.Context, exec Executor, body []byte) (int, []byte) {
	var req graphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("invalid request body")
		return http.StatusBadRequest, errorBody("invalid JSON body")
	}
	if req.Query == "" {
		return http.StatusBadRequest, errorBody(errEmptyQuery.Error())
	}

	result := exec.Execute(ctx, req.Query, req.Variables, req.OperationName)

	resp, err := json.Marshal(result)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode result")
		return http.StatusInternalServerError, errorBody("internal server error")
	}
	return http.StatusOK, resp
}

// errorBody segue o formato de erros do GraphQL
func errorBody(message string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"errors": []map[string]string{{"message": message}},
	})
	return body
}
