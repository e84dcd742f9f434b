package storage

import (
	"context"
	"fmt"
)

var (
	ErrSlotNotFound = fmt.Errorf("storage slot not found")
)

/*
Backend persists raw bytes under a named slot. Put fully overwrites
whatever was there before.
*/
type Backend interface {
	Get(ctx context.Context, slot string) ([]byte, error)
	Put(ctx context.Context, slot string, data []byte) error
}
