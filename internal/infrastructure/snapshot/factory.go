package snapshot

import (
	"fmt"

	sharedConfig "ghitdesk/internal/shared/config"
)

// Open constructs the snapshot backend selected by configuration.
func Open(cfg sharedConfig.SnapshotConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "redis":
		return NewRedisStore(cfg.Redis)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown snapshot driver: %s", cfg.Driver)
	}
}
