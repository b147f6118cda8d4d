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

// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// O pacote `dyndb` oferece a interface `Store[T]`, que esconde os tipos de
// baixo nível do SDK (AttributeValue, expressões) atrás de operações tipadas.
// Consultas e atualizações são montadas de forma fluente sobre os Expression
// Builders do SDK, então nenhuma string de expressão é escrita à mão.
//
// Funcionalidades Principais:
//   - Put incondicional e Delete idempotente por chave.
//   - QueryBuilder: `Query().Index(...).KeyEqual(...).FilterEqual(...).Exec(ctx)`,
//     percorrendo todas as páginas do resultado.
//   - UpdateBuilder: `Update(pk, nil).Set(...).IfExists().Exec(ctx)`, com
//     ReturnValues ALL_NEW (o item atualizado volta na mesma chamada).
//   - Erros classificados: ErrStoreQuery, ErrStoreWrite, ErrStoreUnavailable
//     e ErrNotFound, todos compatíveis com errors.Is.
//
// Exemplo:
//
//	type Wiki struct {
//		ID    string `dynamodbav:"id"`
//		Owner string `dynamodbav:"owner"`
//	}
//
//	store := dyndb.New(client, dyndb.TableConfig[Wiki]{TableName: "wiki", HashKey: "id"})
//
//	items, err := store.Query().
//		Index("owner").
//		KeyEqual("owner", "u1").
//		FilterEqual("category", "c1").
//		Exec(ctx)
//
//	updated, err := store.Update("wiki-id", nil).
//		Set("title", "novo").
//		IfExists().
//		Exec(ctx)
//	if errors.Is(err, dyndb.ErrNotFound) { /* ... */ }
package dyndb
