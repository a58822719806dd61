package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/storage"
)

// snapshotVersion is the current serialized snapshot schema. Bump it when
// the item shape changes and add a migration branch in loadSnapshot.
const snapshotVersion = 1

// envelope wraps a store's collection so future shape changes can migrate
// old snapshots instead of discarding them.
type envelope struct {
	Version int             `json:"version"`
	Items   json.RawMessage `json:"items"`
}

// saveSnapshot serializes the collection and writes it through to durable
// storage. Failures are logged and swallowed; in-memory state remains the
// source of truth.
func saveSnapshot(ctx context.Context, backend storage.Store, logger *zap.Logger, key string, items any) {
	raw, err := json.Marshal(items)
	if err != nil {
		logger.Error("Failed to marshal snapshot", zap.String("key", key), zap.Error(err))
		return
	}
	data, err := json.Marshal(envelope{Version: snapshotVersion, Items: raw})
	if err != nil {
		logger.Error("Failed to marshal snapshot envelope", zap.String("key", key), zap.Error(err))
		return
	}
	if err := backend.Set(ctx, key, string(data)); err != nil {
		logger.Error("Failed to write snapshot", zap.String("key", key), zap.Error(err))
	}
}

// loadSnapshot reads a prior snapshot into items. A missing key or corrupt
// payload leaves items untouched and returns false; neither is fatal.
// Legacy payloads (a bare JSON array, the pre-envelope schema) are still
// accepted and will be rewritten in envelope form on the next mutation.
func loadSnapshot(ctx context.Context, backend storage.Store, logger *zap.Logger, key string, items any) bool {
	data, err := backend.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		logger.Error("Failed to read snapshot", zap.String("key", key), zap.Error(err))
		return false
	}

	raw := json.RawMessage(data)
	if !strings.HasPrefix(strings.TrimSpace(data), "[") {
		var env envelope
		if err := json.Unmarshal([]byte(data), &env); err != nil {
			logger.Warn("Discarding corrupt snapshot", zap.String("key", key), zap.Error(err))
			return false
		}
		if env.Version > snapshotVersion {
			logger.Warn("Discarding snapshot from a newer schema",
				zap.String("key", key), zap.Int("version", env.Version))
			return false
		}
		raw = env.Items
	}

	if err := json.Unmarshal(raw, items); err != nil {
		logger.Warn("Discarding corrupt snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func snapshotKey(prefix, owner string) string {
	return fmt.Sprintf("%s:%s", prefix, owner)
}
