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
package models

// Nomes dos atributos no DynamoDB
const (
	AttrID       = "id"
	AttrOwner    = "owner"
	AttrTitle    = "title"
	AttrText     = "text"
	AttrCategory = "category"
)

// Record é o item como armazenado na tabela.
// id é a partition key; owner é a hash key do índice "owner".
type Record struct {
	ID       string `dynamodbav:"id"`
	Owner    string `dynamodbav:"owner"`
	Title    string `dynamodbav:"title"`
	Text     string `dynamodbav:"text"`
	Category string `dynamodbav:"category"`
}

// Wiki é a projeção pública de Record devolvida pela API.
type Wiki struct {
	ID       string `json:"id"`
	Owner    string `json:"owner"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Patch mapeia nome de atributo para o novo valor. Só as chaves presentes
// são alteradas; id e owner nunca fazem parte de um Patch.
type Patch map[string]string

// ToPublic converte o registro armazenado para a forma pública.
func ToPublic(r Record) Wiki {
	return Wiki{
		ID:       r.ID,
		Owner:    r.Owner,
		Title:    r.Title,
		Text:     r.Text,
		Category: r.Category,
	}
}

// ToPublicList converte uma lista preservando a ordem. Nunca retorna nil.
func ToPublicList(records []Record) []Wiki {
	out := make([]Wiki, 0, len(records))
	for _, r := range records {
		out = append(out, ToPublic(r))
	}
	return out
}
