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

// Package wikiservice é uma API GraphQL de wikis pessoais persistidas no
// DynamoDB.
//
// Visão Geral:
// Cada wiki pertence a um owner e tem título, texto e categoria. A API expõe
// uma consulta (wiki) e três mutações (createWiki, updateWiki, deleteWiki),
// servidas por HTTP ou por AWS Lambda (API Gateway).
//
// Sub-Pacotes Principais:
//
// 1. envloader:
//   - Carregamento de configurações via tags "env", "envDefault" e "envRequired".
//
// 2. dyndb:
//   - Abstração de persistência (Store[T]) com Get, Put, Delete, Query paginada
//     e Update parcial condicionado à existência do item.
//   - Erros classificados (ErrNotFound, ErrStoreQuery, ErrStoreWrite,
//     ErrStoreUnavailable).
//
// 3. pkg/wiki:
//   - models: registro armazenado e projeção pública.
//   - repository: chaves, índice por owner e geração de ids (UUIDv7).
//   - resolver: validação dos argumentos e delegação ao repositório.
//
// 4. pkg/graphql e pkg/transport:
//   - Schema, mapeamento de erros para extensions.code, console GraphQL.
//   - Servidor HTTP (gorilla/mux + rs/cors) e adaptador Lambda.
//
// Exemplo de Início Rápido:
//
//	export DYNAMODB_ENDPOINT=http://localhost:8001
//	export STORE_ACCESS_KEY_ID=local STORE_SECRET_ACCESS_KEY=local
//	go run ./cmd/server
//
//	curl -s localhost:8000/ -d '{"query":"{ wiki(owner: \"u1\") { id title } }"}'
//
// A configuração completa pode vir de um arquivo YAML (CONFIG_FILE_PATH), de
// s3://bucket/chave ou de ssm://parametro; veja pkg/config.
package wikiservice
