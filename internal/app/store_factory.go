package app

import (
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/semla/internal/store"
	"github.com/shrimpsizemoose/semla/internal/store/postgres"
	"github.com/shrimpsizemoose/semla/internal/store/redis"
	"github.com/shrimpsizemoose/semla/internal/store/sqlite"
)

// NewKV picks a backend from the DSN shape: redis:// and postgres URLs go to
// their drivers, anything else is treated as a sqlite path.
func NewKV(dsn string) (store.KV, error) {
	storageType := store.StorageTypeSQLite
	switch {
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		storageType = store.StorageTypeRedis
	case strings.HasPrefix(dsn, "postgres"):
		storageType = store.StorageTypePostgres
	}

	switch storageType {
	case store.StorageTypeRedis:
		return redis.NewRedisStore(dsn)
	case store.StorageTypePostgres:
		return postgres.NewPostgresStore(dsn)
	case store.StorageTypeSQLite:
		return sqlite.NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unable to determine storage type from DSN: %s", dsn)
	}
}
