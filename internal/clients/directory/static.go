package directory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Static is an in-process directory. With AllowUnknown every lookup
// succeeds, which suits local play without a record store.
type Static struct {
	mu           sync.RWMutex
	records      map[string]struct{}
	allowUnknown bool
}

var _ Directory = (*Static)(nil)

// NewStatic creates an empty directory
func NewStatic(allowUnknown bool) *Static {
	return &Static{records: make(map[string]struct{}), allowUnknown: allowUnknown}
}

// Register records that an entity exists
func (d *Static) Register(kind entities.EntityType, uids ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, uid := range uids {
		key, err := keyFor(kind, uid)
		if err != nil {
			return err
		}
		d.records[key] = struct{}{}
	}
	return nil
}

// Exists reports whether the entity was registered
func (d *Static) Exists(_ context.Context, kind entities.EntityType, uid string) (bool, error) {
	if uid == "" {
		return false, errors.InvalidArgument("uid cannot be empty")
	}
	key, err := keyFor(kind, uid)
	if err != nil {
		return false, err
	}
	if d.allowUnknown {
		return true, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.records[key]
	return ok, nil
}
