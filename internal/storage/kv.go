// Package storage is the persistence gateway: a string key/value store plus
// typed load/save helpers for the stand's three persisted entities.
package storage

import "context"

// Stable keys of the persisted layout.
const (
	KeyProducts     = "products"
	KeyCashBalance  = "cashBalance"
	KeyTransactions = "transactions"
)

// KV is the get/set string store the gateway is built on.
type KV interface {
	// Get returns ok=false when the key was never written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
