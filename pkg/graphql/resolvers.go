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
	"github.com/graphql-go/graphql"
	"github.com/raywall/wiki-service/pkg/wiki/resolver"
)

// optString lê um argumento String opcional. Ausente e null são equivalentes.
func optString(args map[string]interface{}, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	input, _ := p.Args["input"].(map[string]interface{})
	return input
}

func (e *Engine) resolveWiki(p graphql.ResolveParams) (interface{}, error) {
	return e.resolver.Read(p.Context, resolver.ReadInput{
		Owner:    optString(p.Args, "owner"),
		Category: optString(p.Args, "category"),
	})
}

func (e *Engine) resolveCreateWiki(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	return e.resolver.Create(p.Context, resolver.CreateInput{
		Title:    optString(input, "title"),
		Owner:    optString(input, "owner"),
		Text:     optString(input, "text"),
		Category: optString(input, "category"),
	})
}

func (e *Engine) resolveUpdateWiki(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	wiki, err := e.resolver.Update(p.Context, resolver.UpdateInput{
		ID:       optString(input, "id"),
		Title:    optString(input, "title"),
		Text:     optString(input, "text"),
		Category: optString(input, "category"),
	})
	if err != nil || wiki == nil {
		return nil, err
	}
	return wiki, nil
}

func (e *Engine) resolveDeleteWiki(p graphql.ResolveParams) (interface{}, error) {
	return e.resolver.Delete(p.Context, resolver.DeleteInput{
		ID: optString(p.Args, "id"),
	})
}
