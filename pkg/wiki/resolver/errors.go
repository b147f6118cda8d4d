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
package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequestShape indica que um argumento obrigatório não foi informado.
var ErrRequestShape = errors.New("resolver: invalid request shape")

// ShapeError lista os campos obrigatórios ausentes de uma operação.
// É detectado antes de qualquer chamada ao store.
type ShapeError struct {
	Operation string
	Missing   []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: missing required field(s): %s", e.Operation, strings.Join(e.Missing, ", "))
}

func (e *ShapeError) Unwrap() error {
	return ErrRequestShape
}
