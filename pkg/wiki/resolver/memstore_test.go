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
	"strconv"
	"sync"

	"github.com/raywall/wiki-service/pkg/wiki/models"
)

// memStore é um WikiStore em memória com a mesma semântica do repositório
// DynamoDB: ids gerados no create, update condicional, delete idempotente.
type memStore struct {
	mu      sync.Mutex
	seq     int
	order   []string
	records map[string]models.Record
	calls   int
	err     error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]models.Record)}
}

func (m *memStore) QueryByOwner(ctx context.Context, owner string, category *string) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := make([]models.Record, 0)
	for _, id := range m.order {
		r, ok := m.records[id]
		if !ok || r.Owner != owner {
			continue
		}
		if category != nil && r.Category != *category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) Create(ctx context.Context, record models.Record) (models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return models.Record{}, m.err
	}

	m.seq++
	record.ID = "wiki-" + strconv.Itoa(m.seq)
	m.records[record.ID] = record
	m.order = append(m.order, record.ID)
	return record, nil
}

func (m *memStore) Update(ctx context.Context, id string, patch models.Patch) (*models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	r, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	for field, value := range patch {
		switch field {
		case models.AttrTitle:
			r.Title = value
		case models.AttrText:
			r.Text = value
		case models.AttrCategory:
			r.Category = value
		}
	}
	m.records[id] = r
	return &r, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}

	delete(m.records, id)
	return nil
}
