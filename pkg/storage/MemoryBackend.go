package storage

import (
	"context"
	"sync"
)

type MemoryBackend struct {
	lock  *sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() MemoryBackend {
	return MemoryBackend{
		lock:  &sync.RWMutex{},
		slots: map[string][]byte{},
	}
}

func (b MemoryBackend) Get(ctx context.Context, slot string) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	data, ok := b.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

func (b MemoryBackend) Put(ctx context.Context, slot string, data []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.slots[slot] = stored
	return nil
}
