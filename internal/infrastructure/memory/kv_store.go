package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore almacenamiento clave-valor en memoria (tests y servidor HTTP).
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore crea un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
