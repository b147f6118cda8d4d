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
	"errors"

	"github.com/raywall/wiki-service/pkg/wiki/resolver"
	"github.com/rs/zerolog"
)

// Códigos em extensions.code
const (
	CodeBadUserInput  = "BAD_USER_INPUT"
	CodeInternalError = "INTERNAL_SERVER_ERROR"
)

// Error é o erro devolvido ao cliente GraphQL. Implementa
// gqlerrors.ExtendedError, então Code aparece em extensions.code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// toClientError decide o que o cliente vê. Falhas de infraestrutura são
// registradas com detalhe e devolvidas de forma opaca.
func toClientError(ctx context.Context, operation string, err error) error {
	if errors.Is(err, resolver.ErrRequestShape) {
		return &Error{Message: err.Error(), Code: CodeBadUserInput}
	}

	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("operation", operation).
		Msg("operation failed")

	return &Error{Message: "internal server error", Code: CodeInternalError}
}
