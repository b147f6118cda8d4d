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
package resolver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/raywall/wiki-service/dyndb"
	"github.com/raywall/wiki-service/pkg/wiki/models"
	"github.com/raywall/wiki-service/pkg/wiki/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func create(t *testing.T, r *resolver.Resolver, title, owner, text, category string) *models.Wiki {
	t.Helper()
	w, err := r.Create(context.Background(), resolver.CreateInput{
		Title: str(title), Owner: str(owner), Text: str(text), Category: str(category),
	})
	require.NoError(t, err)
	require.NotNil(t, w)
	return w
}

func TestScenario_CreateReadUpdateDelete(t *testing.T) {
	ctx := context.Background()
	r := resolver.New(newMemStore())

	created := create(t, r, "A", "u1", "hello", "c1")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.Owner)
	assert.Equal(t, "c1", created.Category)

	list, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *created, list[0])

	updated, err := r.Update(ctx, resolver.UpdateInput{ID: str(created.ID), Category: str("c2")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "c2", updated.Category)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "hello", updated.Text)

	filtered, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1"), Category: str("c1")})
	require.NoError(t, err)
	assert.Empty(t, filtered)

	out, err := r.Delete(ctx, resolver.DeleteInput{ID: str(created.ID)})
	require.NoError(t, err)
	assert.True(t, out.Success)

	list, err = r.Read(ctx, resolver.ReadInput{Owner: str("u1")})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_UniqueIDs(t *testing.T) {
	r := resolver.New(newMemStore())

	first := create(t, r, "A", "u1", "hello", "c1")
	second := create(t, r, "A", "u1", "hello", "c1")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRead_FiltersByOwnerAndCategory(t *testing.T) {
	ctx := context.Background()
	r := resolver.New(newMemStore())

	create(t, r, "A", "u1", "x", "c1")
	create(t, r, "B", "u1", "y", "c2")
	create(t, r, "C", "u2", "z", "c1")

	all, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1")})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, w := range all {
		assert.Equal(t, "u1", w.Owner)
	}

	onlyC1, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1"), Category: str("c1")})
	require.NoError(t, err)
	require.Len(t, onlyC1, 1)
	assert.Equal(t, "A", onlyC1[0].Title)
}

func TestRead_UnknownOwnerIsEmptyList(t *testing.T) {
	r := resolver.New(newMemStore())

	list, err := r.Read(context.Background(), resolver.ReadInput{Owner: str("nobody")})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUpdate_FieldIndependence(t *testing.T) {
	ctx := context.Background()
	r := resolver.New(newMemStore())
	w := create(t, r, "A", "u1", "hello", "c1")

	_, err := r.Update(ctx, resolver.UpdateInput{ID: str(w.ID), Title: str("")})
	require.NoError(t, err)

	list, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].Title) // string vazia é um valor informado
	assert.Equal(t, "hello", list[0].Text)
	assert.Equal(t, "c1", list[0].Category)
}

func TestUpdate_NoFieldsReturnsUnchanged(t *testing.T) {
	r := resolver.New(newMemStore())
	w := create(t, r, "A", "u1", "hello", "c1")

	got, err := r.Update(context.Background(), resolver.UpdateInput{ID: str(w.ID)})

	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestUpdate_UnknownIDIsNil(t *testing.T) {
	r := resolver.New(newMemStore())

	got, err := r.Update(context.Background(), resolver.UpdateInput{ID: str("missing"), Title: str("x")})

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_Idempotent(t *testing.T) {
	r := resolver.New(newMemStore())

	out, err := r.Delete(context.Background(), resolver.DeleteInput{ID: str("never-existed")})

	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestRequestShape_RejectedBeforeStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(r *resolver.Resolver) error
		missing []string
	}{
		{
			name: "read without owner",
			call: func(r *resolver.Resolver) error {
				_, err := r.Read(ctx, resolver.ReadInput{Category: str("c1")})
				return err
			},
			missing: []string{"owner"},
		},
		{
			name: "create without text and category",
			call: func(r *resolver.Resolver) error {
				_, err := r.Create(ctx, resolver.CreateInput{Title: str("A"), Owner: str("u1")})
				return err
			},
			missing: []string{"text", "category"},
		},
		{
			name: "update without id",
			call: func(r *resolver.Resolver) error {
				_, err := r.Update(ctx, resolver.UpdateInput{Title: str("A")})
				return err
			},
			missing: []string{"id"},
		},
		{
			name: "delete without id",
			call: func(r *resolver.Resolver) error {
				_, err := r.Delete(ctx, resolver.DeleteInput{})
				return err
			},
			missing: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			r := resolver.New(store)

			err := tt.call(r)

			require.ErrorIs(t, err, resolver.ErrRequestShape)
			var shapeErr *resolver.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.missing, shapeErr.Missing)
			assert.Zero(t, store.calls)
		})
	}
}

func TestCreate_EmptyStringsArePresent(t *testing.T) {
	r := resolver.New(newMemStore())

	w, err := r.Create(context.Background(), resolver.CreateInput{
		Title: str(""), Owner: str(""), Text: str(""), Category: str(""),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
}

func TestStoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.err = fmt.Errorf("query wikis: %w", &dyndb.StoreError{Op: "query", Kind: dyndb.ErrStoreUnavailable, Err: fmt.Errorf("timeout")})
	r := resolver.New(store)

	_, err := r.Read(ctx, resolver.ReadInput{Owner: str("u1")})
	assert.ErrorIs(t, err, dyndb.ErrStoreUnavailable)

	out, err := r.Delete(ctx, resolver.DeleteInput{ID: str("1")})
	assert.ErrorIs(t, err, dyndb.ErrStoreUnavailable)
	assert.False(t, out.Success)
}
