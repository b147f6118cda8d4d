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
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	// ErrNotFound indica que o item endereçado não existe.
	ErrNotFound = errors.New("dyndb: item not found")

	// ErrStoreQuery indica falha de protocolo/serviço em uma leitura.
	ErrStoreQuery = errors.New("dyndb: query error")

	// ErrStoreWrite indica falha de protocolo/serviço em uma escrita.
	ErrStoreWrite = errors.New("dyndb: write error")

	// ErrStoreUnavailable: o DynamoDB não respondeu (transporte, throttling
	// ou indisponibilidade do serviço).
	ErrStoreUnavailable = errors.New("dyndb: store unavailable")
)

// StoreError descreve uma falha de infraestrutura em uma operação do Store.
//
// Kind é um dos sentinelas ErrStoreQuery, ErrStoreWrite ou
// ErrStoreUnavailable; Err é o erro original do SDK. Ambos participam de
// errors.Is / errors.As.
type StoreError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("dyndb: %s failed: %v", e.Op, e.Err)
}

// Unwrap expõe o sentinela e o erro original.
func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// códigos de erro do serviço que indicam indisponibilidade, não falha do pedido
var unavailableCodes = map[string]struct{}{
	"InternalServerError":                    {},
	"ServiceUnavailable":                     {},
	"ThrottlingException":                    {},
	"RequestLimitExceeded":                   {},
	"ProvisionedThroughputExceededException": {},
}

// clientError classifica um erro devolvido pelo cliente do SDK.
// Erros sem resposta do serviço (rede, DNS, timeout) viram ErrStoreUnavailable.
func clientError(op string, kind, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		kind = ErrStoreUnavailable
	} else if _, ok := unavailableCodes[apiErr.ErrorCode()]; ok {
		kind = ErrStoreUnavailable
	}
	return &StoreError{Op: op, Kind: kind, Err: err}
}
