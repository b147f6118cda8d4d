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
package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/raywall/wiki-service/dyndb"
	"github.com/raywall/wiki-service/pkg/wiki/models"
	"github.com/rs/zerolog"
)

// Config identifica a tabela e o índice usados pelo repositório.
type Config struct {
	TableName  string `env:"DYNAMODB_TABLE_NAME" envDefault:"wiki"`
	HashKey    string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
	OwnerIndex string `env:"DYNAMODB_OWNER_INDEX" envDefault:"owner"`
}

// WikiRepository traduz as operações de wiki para chamadas ao DynamoDB.
// É o único ponto do serviço que conhece chaves, índices e expressões.
type WikiRepository struct {
	store      dyndb.Store[models.Record]
	ownerIndex string
	newID      func() (string, error)
}

// NewWikiRepository cria o repositório sobre um cliente compartilhado.
func NewWikiRepository(client dyndb.DynamoDBClient, cfg Config) *WikiRepository {
	if cfg.OwnerIndex == "" {
		cfg.OwnerIndex = models.AttrOwner
	}
	return &WikiRepository{
		store: dyndb.New(client, dyndb.TableConfig[models.Record]{
			TableName: cfg.TableName,
			HashKey:   cfg.HashKey,
		}),
		ownerIndex: cfg.OwnerIndex,
		newID:      newUUIDv7,
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// QueryByOwner: consulta o índice owner, com filtro opcional por categoria
func (r *WikiRepository) QueryByOwner(ctx context.Context, owner string, category *string) ([]models.Record, error) {
	q := r.store.Query().
		Index(r.ownerIndex).
		KeyEqual(models.AttrOwner, owner)
	if category != nil {
		q = q.FilterEqual(models.AttrCategory, *category)
	}

	records, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wikis of owner %q: %w", owner, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("owner", owner).
		Bool("filtered", category != nil).
		Int("count", len(records)).
		Msg("wikis queried")

	return records, nil
}

// Create: gera o id e grava o registro (put incondicional)
func (r *WikiRepository) Create(ctx context.Context, record models.Record) (models.Record, error) {
	id, err := r.newID()
	if err != nil {
		return models.Record{}, &dyndb.StoreError{Op: "put", Kind: dyndb.ErrStoreWrite, Err: fmt.Errorf("generate id: %w", err)}
	}
	record.ID = id

	if err := r.store.Put(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("create wiki: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("id", id).Str("owner", record.Owner).Msg("wiki created")
	return record, nil
}

// Update aplica um SET por entrada do patch, apenas se o id existir.
// Retorna (nil, nil) quando o id não existe.
func (r *WikiRepository) Update(ctx context.Context, id string, patch models.Patch) (*models.Record, error) {
	u := r.store.Update(id, nil).IfExists()
	for _, field := range slices.Sorted(maps.Keys(patch)) {
		u = u.Set(field, patch[field])
	}

	record, err := u.Exec(ctx)
	if errors.Is(err, dyndb.ErrNotFound) {
		zerolog.Ctx(ctx).Debug().Str("id", id).Msg("wiki not found for update")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update wiki %q: %w", id, err)
	}

	zerolog.Ctx(ctx).Debug().Str("id", id).Int("fields", len(patch)).Msg("wiki updated")
	return record, nil
}

// Delete: remoção idempotente por id
func (r *WikiRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id, nil); err != nil {
		return fmt.Errorf("delete wiki %q: %w", id, err)
	}

	zerolog.Ctx(ctx).Debug().Str("id", id).Msg("wiki deleted")
	return nil
}
