package cache

import (
	"sync"
	"time"
)

// MemoStore in-memory store
type MemoStore struct {
	Store *sync.Map
}

// item stored value with an absolute expiry
type itemWithTTL struct {
	Expires int64
	Value   interface{}
}

// newItem wraps value with ttl seconds of life, 0 for no expiry
func newItem(value interface{}, expires int) itemWithTTL {
	expires64 := int64(expires)
	if expires > 0 {
		expires64 = time.Now().Unix() + expires64
	}
	return itemWithTTL{
		Value:   value,
		Expires: expires64,
	}
}

// getValue unwraps a stored item, reporting whether it is still alive
func getValue(item interface{}, ok bool) (interface{}, bool) {
	if !ok {
		return nil, ok
	}

	var itemObj itemWithTTL
	if itemObj, ok = item.(itemWithTTL); !ok {
		return item, true
	}

	if itemObj.Expires > 0 && itemObj.Expires < time.Now().Unix() {
		return nil, false
	}

	return itemObj.Value, ok
}

// GarbageCollect drops expired items
func (store *MemoStore) GarbageCollect() {
	store.Store.Range(func(key, value interface{}) bool {
		if item, ok := value.(itemWithTTL); ok {
			if item.Expires > 0 && item.Expires < time.Now().Unix() {
				store.Store.Delete(key)
			}
		}
		return true
	})
}

// NewMemoStore creates a new in-memory store
func NewMemoStore() *MemoStore {
	return &MemoStore{
		Store: &sync.Map{},
	}
}

// Set stores a value
func (store *MemoStore) Set(key string, value interface{}, ttl int) error {
	store.Store.Store(key, newItem(value, ttl))
	return nil
}

// Get fetches a value
func (store *MemoStore) Get(key string) (interface{}, bool) {
	return getValue(store.Store.Load(key))
}

// Gets fetches values in batch
func (store *MemoStore) Gets(keys []string, prefix string) (map[string]interface{}, []string) {
	var res = make(map[string]interface{})
	var notFound = make([]string, 0, len(keys))

	for _, key := range keys {
		if value, ok := getValue(store.Store.Load(prefix + key)); ok {
			res[key] = value
		} else {
			notFound = append(notFound, key)
		}
	}

	return res, notFound
}

// Sets stores values in batch
func (store *MemoStore) Sets(values map[string]interface{}, prefix string) error {
	for key, value := range values {
		store.Store.Store(prefix+key, newItem(value, 0))
	}
	return nil
}

// Delete removes values by prefix + key
func (store *MemoStore) Delete(prefix string, keys ...string) error {
	// no key given, delete every key with the prefix
	if len(keys) == 0 {
		store.Store.Range(func(key, value interface{}) bool {
			if keyStr, ok := key.(string); ok && len(keyStr) >= len(prefix) && keyStr[:len(prefix)] == prefix {
				store.Store.Delete(key)
			}
			return true
		})
		return nil
	}

	for _, key := range keys {
		store.Store.Delete(prefix + key)
	}
	return nil
}
