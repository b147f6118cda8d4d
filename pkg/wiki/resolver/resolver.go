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
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/wiki-service/pkg/wiki/models"
	"github.com/rs/zerolog"
)

// WikiStore é o contrato que o resolver espera da camada de persistência.
// *repository.WikiRepository satisfaz esta interface.
type WikiStore interface {
	QueryByOwner(ctx context.Context, owner string, category *string) ([]models.Record, error)
	Create(ctx context.Context, record models.Record) (models.Record, error)
	Update(ctx context.Context, id string, patch models.Patch) (*models.Record, error)
	Delete(ctx context.Context, id string) error
}

// ReadInput: argumentos de wiki(owner, category)
type ReadInput struct {
	Owner    *string `json:"owner" validate:"required"`
	Category *string `json:"category"`
}

// CreateInput: argumentos de createWiki
type CreateInput struct {
	Title    *string `json:"title" validate:"required"`
	Owner    *string `json:"owner" validate:"required"`
	Text     *string `json:"text" validate:"required"`
	Category *string `json:"category" validate:"required"`
}

// UpdateInput: argumentos de updateWiki. Campos nil não são alterados.
type UpdateInput struct {
	ID       *string `json:"id" validate:"required"`
	Title    *string `json:"title"`
	Text     *string `json:"text"`
	Category *string `json:"category"`
}

// DeleteInput: argumentos de deleteWiki
type DeleteInput struct {
	ID *string `json:"id" validate:"required"`
}

// DeleteOutput: resultado de deleteWiki
type DeleteOutput struct {
	Success bool `json:"success"`
}

// Resolver implementa as quatro operações da API sobre um WikiStore.
// Não guarda estado entre requisições.
type Resolver struct {
	store    WikiStore
	validate *validator.Validate
}

// New cria o resolver.
func New(store WikiStore) *Resolver {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Resolver{store: store, validate: v}
}

// Read retorna as wikis do owner, opcionalmente filtradas por categoria.
// Nenhum resultado é uma lista vazia, nunca nil.
func (r *Resolver) Read(ctx context.Context, in ReadInput) ([]models.Wiki, error) {
	if err := r.check(ctx, "wiki", in); err != nil {
		return nil, err
	}

	records, err := r.store.QueryByOwner(ctx, *in.Owner, in.Category)
	if err != nil {
		return nil, err
	}
	return models.ToPublicList(records), nil
}

// Create grava uma nova wiki; o id é gerado pelo store.
func (r *Resolver) Create(ctx context.Context, in CreateInput) (*models.Wiki, error) {
	if err := r.check(ctx, "createWiki", in); err != nil {
		return nil, err
	}

	record, err := r.store.Create(ctx, models.Record{
		Owner:    *in.Owner,
		Title:    *in.Title,
		Text:     *in.Text,
		Category: *in.Category,
	})
	if err != nil {
		return nil, err
	}

	wiki := models.ToPublic(record)
	return &wiki, nil
}

// Update altera apenas os campos informados. Retorna nil (sem erro) quando
// o id não existe.
func (r *Resolver) Update(ctx context.Context, in UpdateInput) (*models.Wiki, error) {
	if err := r.check(ctx, "updateWiki", in); err != nil {
		return nil, err
	}

	patch := models.Patch{}
	if in.Title != nil {
		patch[models.AttrTitle] = *in.Title
	}
	if in.Text != nil {
		patch[models.AttrText] = *in.Text
	}
	if in.Category != nil {
		patch[models.AttrCategory] = *in.Category
	}

	record, err := r.store.Update(ctx, *in.ID, patch)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	wiki := models.ToPublic(*record)
	return &wiki, nil
}

// Delete remove a wiki. Um id inexistente também é sucesso.
func (r *Resolver) Delete(ctx context.Context, in DeleteInput) (DeleteOutput, error) {
	if err := r.check(ctx, "deleteWiki", in); err != nil {
		return DeleteOutput{}, err
	}

	if err := r.store.Delete(ctx, *in.ID); err != nil {
		return DeleteOutput{}, err
	}
	return DeleteOutput{Success: true}, nil
}

// check valida a presença dos campos obrigatórios
func (r *Resolver) check(ctx context.Context, op string, in any) error {
	err := r.validate.Struct(in)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w: %v", op, ErrRequestShape, err)
	}

	shapeErr := &ShapeError{Operation: op}
	for _, fe := range validationErrors {
		shapeErr.Missing = append(shapeErr.Missing, fe.Field())
	}

	zerolog.Ctx(ctx).Debug().
		Str("operation", op).
		Strs("missing", shapeErr.Missing).
		Msg("request rejected")
	return shapeErr
}
