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
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/wiki-service/pkg/config"
	gql "github.com/raywall/wiki-service/pkg/graphql"
	"github.com/rs/zerolog/log"
)

// LambdaHandler adapta eventos do API Gateway para o Executor GraphQL
type LambdaHandler struct {
	exec    Executor
	cfg     config.ServiceDetails
	page    []byte
	timeout time.Duration
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(exec Executor, cfg config.ServiceDetails) (*LambdaHandler, error) {
	h := &LambdaHandler{
		exec:    exec,
		cfg:     cfg,
		timeout: cfg.GetTimeout(),
	}

	if !cfg.DisablePlayground {
		page, err := gql.PlaygroundPage(cfg.Name, cfg.Route)
		if err != nil {
			return nil, fmt.Errorf("render playground: %w", err)
		}
		h.page = page
	}
	return h, nil
}

// Handle processa a requisição Lambda com as mesmas rotas do servidor HTTP
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	// API Gateway pode ou não normalizar o nome do header
	corrID := header(req.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

	response := h.route(ctx, req)

	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[HeaderCorrelationID] = corrID
	response.Headers[HeaderLatency] = fmt.Sprintf("%d", time.Since(start).Milliseconds())

	logRequest(&logger, req.HTTPMethod, req.Path, response.StatusCode, start)
	return response, nil
}

func (h *LambdaHandler) route(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	switch {
	case req.HTTPMethod == http.MethodGet && req.Path == healthPath:
		return jsonResponse(http.StatusOK, []byte(`{"status":"ok"}`))

	case req.HTTPMethod == http.MethodGet && req.Path == h.cfg.Route && h.page != nil:
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
			Body:       string(h.page),
		}

	case req.HTTPMethod == http.MethodPost && req.Path == h.cfg.Route:
		ctx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()

		body, err := requestBody(req)
		if err != nil {
			return jsonResponse(http.StatusBadRequest, errorBody("invalid base64 body"))
		}

		code, resp := execute(ctx, h.exec, body)
		return jsonResponse(code, resp)

	default:
		return jsonResponse(http.StatusNotFound, errorBody("not found"))
	}
}

// requestBody decodifica o corpo quando o API Gateway o entrega em base64
func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	return base64.StdEncoding.DecodeString(req.Body)
}

func jsonResponse(code int, body []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
