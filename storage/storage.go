// Package storage is the key-value boundary cart and order state survives
// restarts through. Values are JSON-serialized blobs owned by exactly one
// writer per key, last write wins.
package storage

// Storage is a synchronous string key-value store. Get reports ok=false when
// the key has never been written.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
