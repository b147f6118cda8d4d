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
)

var wikiType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Wiki",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"owner":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"text":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"title":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"category": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var deleteWikiOutputType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteWikiOutput",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var createWikiInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateWikiInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"owner":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"text":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"category": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

// Campos opcionais omitidos não são alterados
var updateWikiInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateWikiInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"title":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"text":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"category": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func (e *Engine) buildSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"wiki": &graphql.Field{
				Type:        graphql.NewList(graphql.NewNonNull(wikiType)),
				Description: "Wikis de um owner, opcionalmente filtradas por categoria",
				Args: graphql.FieldConfigArgument{
					"owner":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: e.instrument("wiki", e.resolveWiki),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createWiki": &graphql.Field{
				Type: wikiType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createWikiInputType)},
				},
				Resolve: e.instrument("createWiki", e.resolveCreateWiki),
			},
			"updateWiki": &graphql.Field{
				Type:        wikiType,
				Description: "null quando o id não existe",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateWikiInputType)},
				},
				Resolve: e.instrument("updateWiki", e.resolveUpdateWiki),
			},
			"deleteWiki": &graphql.Field{
				Type: graphql.NewNonNull(deleteWikiOutputType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: e.instrument("deleteWiki", e.resolveDeleteWiki),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
