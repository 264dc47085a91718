package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Store used for demo mode and tests. Change
// notifications fire synchronously from Upsert.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage
	subs map[string][]func(docs []Document)
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]map[string]json.RawMessage),
		subs: make(map[string][]func(docs []Document)),
	}
}

func (m *Memory) Upsert(_ context.Context, collection, id string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", collection, id, err)
	}

	m.mu.Lock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]json.RawMessage)
	}
	m.data[collection][id] = doc
	docs := m.snapshotLocked(collection)
	subs := append([]func([]Document){}, m.subs[collection]...)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(docs)
	}
	return nil
}

func (m *Memory) Load(_ context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked(collection), nil
}

func (m *Memory) QueryByField(_ context.Context, collection, field, value string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Document
	for _, d := range m.snapshotLocked(collection) {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(d.Data, &fields); err != nil {
			continue
		}
		var v string
		if err := json.Unmarshal(fields[field], &v); err != nil {
			continue
		}
		if v == value {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) Subscribe(ctx context.Context, collection string, onChange func(docs []Document)) (func(), error) {
	m.mu.Lock()
	m.subs[collection] = append(m.subs[collection], onChange)
	docs := m.snapshotLocked(collection)
	m.mu.Unlock()

	onChange(docs)

	// Individual unsubscribe is not needed here; demo mode and tests tear
	// the whole store down at once.
	return func() {}, nil
}

func (m *Memory) snapshotLocked(collection string) []Document {
	records := m.data[collection]
	docs := make([]Document, 0, len(records))
	for id, data := range records {
		docs = append(docs, Document{ID: id, Data: data})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// SeedDemo loads the starter dataset shown when the service runs without a
// database: two customers, their open jobs, and a stocked shelf.
func (m *Memory) SeedDemo(ctx context.Context) error {
	return SeedDemo(ctx, m)
}
