// Package store provides the document persistence boundary: named
// collections of JSON records with snapshot subscriptions, upserts, and
// single-field queries. Callers subscribe to a collection and receive the
// entire collection again after every change, so reads stay simple
// replace-the-snapshot operations.
package store

import (
	"context"
	"encoding/json"
)

// Collection names used by the application.
const (
	CollectionCustomers = "customers"
	CollectionJobs      = "jobs"
	CollectionExpenses  = "expenses"
	CollectionUsers     = "users"
	CollectionData      = "data"
)

// InventoryDocID is the id of the singleton stock document inside the
// "data" collection.
const InventoryDocID = "inventory"

// Document is one stored record: its id plus the raw JSON body.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Store is the persistence contract. Subscribe delivers the full collection
// immediately and again after every change until cancel is called or ctx is
// done. Upsert creates or replaces a record. QueryByField matches records
// whose named top-level field equals the given string value.
type Store interface {
	Subscribe(ctx context.Context, collection string, onChange func(docs []Document)) (cancel func(), err error)
	Upsert(ctx context.Context, collection, id string, record any) error
	QueryByField(ctx context.Context, collection, field, value string) ([]Document, error)
	Load(ctx context.Context, collection string) ([]Document, error)
}

// InventoryDoc is the wire shape of the singleton stock document.
type InventoryDoc struct {
	Counts map[string]int `json:"counts"`
}

// UserDoc is the wire shape of a per-user role profile.
type UserDoc struct {
	Role string `json:"role"`
}
